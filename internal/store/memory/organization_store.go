package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
)

// OrganizationStore implements store.OrganizationStore using in-memory storage.
// Slug and external id uniqueness is enforced the same way the database does.
type OrganizationStore struct {
	mu sync.RWMutex

	organizations map[uuid.UUID]*models.Organization // id -> Organization
	bySlug        map[string]uuid.UUID               // slug -> id
	byExternalID  map[string]uuid.UUID               // external org id -> id
}

// NewOrganizationStore creates a new in-memory organization store.
func NewOrganizationStore() *OrganizationStore {
	return &OrganizationStore{
		organizations: make(map[uuid.UUID]*models.Organization),
		bySlug:        make(map[string]uuid.UUID),
		byExternalID:  make(map[string]uuid.UUID),
	}
}

// Create creates a new organization in memory.
func (s *OrganizationStore) Create(ctx context.Context, org *models.Organization) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.organizations[org.ID]; exists {
		return store.ErrOrganizationAlreadyExists
	}
	if _, exists := s.bySlug[org.Slug]; exists {
		return store.ErrOrganizationAlreadyExists
	}
	if org.IsLinked() {
		if _, exists := s.byExternalID[*org.ExternalOrgID]; exists {
			return store.ErrOrganizationAlreadyExists
		}
	}

	s.put(org)

	return nil
}

// Get retrieves an organization by ID.
func (s *OrganizationStore) Get(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	org, exists := s.organizations[id]
	if !exists {
		return nil, store.ErrOrganizationNotFound
	}

	return cloneOrganization(org), nil
}

// GetBySlug retrieves an organization by slug.
func (s *OrganizationStore) GetBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, exists := s.bySlug[slug]
	if !exists {
		return nil, store.ErrOrganizationNotFound
	}

	return cloneOrganization(s.organizations[id]), nil
}

// GetByExternalID retrieves an organization by identity provider id.
func (s *OrganizationStore) GetByExternalID(ctx context.Context, externalOrgID string) (*models.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, exists := s.byExternalID[externalOrgID]
	if !exists {
		return nil, store.ErrOrganizationNotFound
	}

	return cloneOrganization(s.organizations[id]), nil
}

// Update overwrites an existing organization, keeping the secondary indexes in step.
func (s *OrganizationStore) Update(ctx context.Context, org *models.Organization) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.organizations[org.ID]
	if !exists {
		return store.ErrOrganizationNotFound
	}

	if id, taken := s.bySlug[org.Slug]; taken && id != org.ID {
		return store.ErrOrganizationAlreadyExists
	}
	if org.IsLinked() {
		if id, taken := s.byExternalID[*org.ExternalOrgID]; taken && id != org.ID {
			return store.ErrOrganizationAlreadyExists
		}
	}

	delete(s.bySlug, existing.Slug)
	if existing.IsLinked() {
		delete(s.byExternalID, *existing.ExternalOrgID)
	}

	// CreatedAt and CreatedByUserID are immutable
	updated := cloneOrganization(org)
	updated.CreatedAt = existing.CreatedAt
	updated.CreatedByUserID = existing.CreatedByUserID
	s.put(updated)

	return nil
}

// List returns all organizations ordered by creation time.
func (s *OrganizationStore) List(ctx context.Context) ([]*models.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Organization, 0, len(s.organizations))
	for _, org := range s.organizations {
		result = append(result, cloneOrganization(org))
	}

	slices.SortFunc(result, func(a, b *models.Organization) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return result, nil
}

// put stores a clone and indexes it. Callers must hold the write lock.
func (s *OrganizationStore) put(org *models.Organization) {
	clone := cloneOrganization(org)
	s.organizations[clone.ID] = clone
	s.bySlug[clone.Slug] = clone.ID
	if clone.IsLinked() {
		s.byExternalID[*clone.ExternalOrgID] = clone.ID
	}
}

func cloneOrganization(org *models.Organization) *models.Organization {
	clone := *org
	clone.ExternalOrgID = clonePtr(org.ExternalOrgID)
	clone.CreatedByExternalUserID = clonePtr(org.CreatedByExternalUserID)
	clone.CreatedByUserID = clonePtr(org.CreatedByUserID)
	return &clone
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
