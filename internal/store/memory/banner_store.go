package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
)

// HomeBannerStore implements store.HomeBannerStore using in-memory storage.
type HomeBannerStore struct {
	mu      sync.RWMutex
	banners map[uuid.UUID]*models.HomeBanner
}

// NewHomeBannerStore creates a new in-memory banner store.
func NewHomeBannerStore() *HomeBannerStore {
	return &HomeBannerStore{
		banners: make(map[uuid.UUID]*models.HomeBanner),
	}
}

func (s *HomeBannerStore) Create(ctx context.Context, banner *models.HomeBanner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := cloneBanner(banner)
	s.banners[clone.ID] = clone
	return nil
}

func (s *HomeBannerStore) Get(ctx context.Context, id uuid.UUID) (*models.HomeBanner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	banner, exists := s.banners[id]
	if !exists {
		return nil, store.ErrBannerNotFound
	}
	return cloneBanner(banner), nil
}

func (s *HomeBannerStore) List(ctx context.Context) ([]*models.HomeBanner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.HomeBanner, 0, len(s.banners))
	for _, banner := range s.banners {
		result = append(result, cloneBanner(banner))
	}

	slices.SortFunc(result, func(a, b *models.HomeBanner) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return result, nil
}

func (s *HomeBannerStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.banners[id]; !exists {
		return store.ErrBannerNotFound
	}
	delete(s.banners, id)
	return nil
}

func cloneBanner(b *models.HomeBanner) *models.HomeBanner {
	clone := *b
	clone.Subtitle = clonePtr(b.Subtitle)
	clone.CTALabel = clonePtr(b.CTALabel)
	clone.CTAURL = clonePtr(b.CTAURL)
	return &clone
}
