package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
)

// UserStore implements store.UserStore using in-memory storage.
type UserStore struct {
	mu sync.RWMutex

	users        map[uuid.UUID]*models.User // id -> User
	byExternalID map[string]uuid.UUID       // external user id -> id
}

// NewUserStore creates a new in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{
		users:        make(map[uuid.UUID]*models.User),
		byExternalID: make(map[string]uuid.UUID),
	}
}

// Create creates a new user in memory.
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; exists {
		return store.ErrUserAlreadyExists
	}
	if _, exists := s.byExternalID[user.ExternalUserID]; exists {
		return store.ErrUserAlreadyExists
	}

	clone := cloneUser(user)
	s.users[clone.ID] = clone
	s.byExternalID[clone.ExternalUserID] = clone.ID

	return nil
}

// Get retrieves a user by ID.
func (s *UserStore) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[id]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	return cloneUser(user), nil
}

// GetByExternalID retrieves a user by identity provider id.
func (s *UserStore) GetByExternalID(ctx context.Context, externalUserID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, exists := s.byExternalID[externalUserID]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	return cloneUser(s.users[id]), nil
}

// Update overwrites the mutable fields of an existing user.
func (s *UserStore) Update(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.users[user.ID]
	if !exists {
		return store.ErrUserNotFound
	}

	existing.Email = clonePtr(user.Email)
	existing.FullName = clonePtr(user.FullName)
	existing.Role = clonePtr(user.Role)
	existing.OrganizationID = clonePtr(user.OrganizationID)

	return nil
}

// List returns all users ordered by creation time.
func (s *UserStore) List(ctx context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		result = append(result, cloneUser(user))
	}

	slices.SortFunc(result, func(a, b *models.User) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return result, nil
}

func cloneUser(user *models.User) *models.User {
	clone := *user
	clone.Email = clonePtr(user.Email)
	clone.FullName = clonePtr(user.FullName)
	clone.Role = clonePtr(user.Role)
	clone.OrganizationID = clonePtr(user.OrganizationID)
	return &clone
}
