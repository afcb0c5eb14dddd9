package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
)

// ProductStore implements store.ProductStore using in-memory storage.
type ProductStore struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*models.Product
}

// NewProductStore creates a new in-memory product store.
func NewProductStore() *ProductStore {
	return &ProductStore{
		products: make(map[uuid.UUID]*models.Product),
	}
}

func (s *ProductStore) Create(ctx context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := cloneProduct(product)
	s.products[clone.ID] = clone
	return nil
}

func (s *ProductStore) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, exists := s.products[id]
	if !exists {
		return nil, store.ErrProductNotFound
	}
	return cloneProduct(product), nil
}

func (s *ProductStore) List(ctx context.Context, orgID *uuid.UUID) ([]*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Product, 0, len(s.products))
	for _, product := range s.products {
		if orgID != nil && product.OrganizationID != *orgID {
			continue
		}
		result = append(result, cloneProduct(product))
	}

	slices.SortFunc(result, func(a, b *models.Product) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return result, nil
}

func (s *ProductStore) Patch(ctx context.Context, id uuid.UUID, patch models.ProductPatch) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, exists := s.products[id]
	if !exists {
		return nil, store.ErrProductNotFound
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Status != nil {
		product.Status = *patch.Status
	}
	if patch.AttachmentStorageID != nil {
		product.AttachmentStorageID = clonePtr(patch.AttachmentStorageID)
	}
	if patch.ClearAttachment {
		product.AttachmentStorageID = nil
	}

	return cloneProduct(product), nil
}

func (s *ProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[id]; !exists {
		return store.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

func cloneProduct(p *models.Product) *models.Product {
	clone := *p
	clone.AttachmentStorageID = clonePtr(p.AttachmentStorageID)
	return &clone
}
