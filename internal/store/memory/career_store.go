package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
)

// CareerStore implements store.CareerStore using in-memory storage.
type CareerStore struct {
	mu      sync.RWMutex
	careers map[uuid.UUID]*models.Career
}

// NewCareerStore creates a new in-memory career store.
func NewCareerStore() *CareerStore {
	return &CareerStore{
		careers: make(map[uuid.UUID]*models.Career),
	}
}

func (s *CareerStore) Create(ctx context.Context, career *models.Career) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := cloneCareer(career)
	s.careers[clone.ID] = clone
	return nil
}

func (s *CareerStore) Get(ctx context.Context, id uuid.UUID) (*models.Career, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	career, exists := s.careers[id]
	if !exists {
		return nil, store.ErrCareerNotFound
	}
	return cloneCareer(career), nil
}

func (s *CareerStore) List(ctx context.Context, orgID *uuid.UUID) ([]*models.Career, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Career, 0, len(s.careers))
	for _, career := range s.careers {
		if orgID != nil && career.OrganizationID != *orgID {
			continue
		}
		result = append(result, cloneCareer(career))
	}

	slices.SortFunc(result, func(a, b *models.Career) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return result, nil
}

func (s *CareerStore) UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	career, exists := s.careers[id]
	if !exists {
		return store.ErrCareerNotFound
	}
	career.JobStatus = status
	return nil
}

func (s *CareerStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.careers[id]; !exists {
		return store.ErrCareerNotFound
	}
	delete(s.careers, id)
	return nil
}

func cloneCareer(c *models.Career) *models.Career {
	clone := *c
	clone.Requirements = slices.Clone(c.Requirements)
	clone.JobScope = slices.Clone(c.JobScope)
	return &clone
}
