package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
)

// CertificationStore implements store.CertificationStore using in-memory storage.
type CertificationStore struct {
	mu             sync.RWMutex
	certifications map[uuid.UUID]*models.Certification
}

// NewCertificationStore creates a new in-memory certification store.
func NewCertificationStore() *CertificationStore {
	return &CertificationStore{
		certifications: make(map[uuid.UUID]*models.Certification),
	}
}

func (s *CertificationStore) Create(ctx context.Context, cert *models.Certification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := cloneCertification(cert)
	s.certifications[clone.ID] = clone
	return nil
}

func (s *CertificationStore) Get(ctx context.Context, id uuid.UUID) (*models.Certification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cert, exists := s.certifications[id]
	if !exists {
		return nil, store.ErrCertificationNotFound
	}
	return cloneCertification(cert), nil
}

func (s *CertificationStore) List(ctx context.Context, orgID *uuid.UUID) ([]*models.Certification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Certification, 0, len(s.certifications))
	for _, cert := range s.certifications {
		if orgID != nil && cert.OrganizationID != *orgID {
			continue
		}
		result = append(result, cloneCertification(cert))
	}

	slices.SortFunc(result, func(a, b *models.Certification) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return result, nil
}

func (s *CertificationStore) Patch(ctx context.Context, id uuid.UUID, patch models.CertificationPatch) (*models.Certification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cert, exists := s.certifications[id]
	if !exists {
		return nil, store.ErrCertificationNotFound
	}

	setIf(&cert.Issuer, patch.Issuer)
	setIf(&cert.Name, patch.Name)
	setIf(&cert.Standard, patch.Standard)
	setIf(&cert.Scope, patch.Scope)
	setIf(&cert.IssuedDate, patch.IssuedDate)
	setIf(&cert.ExpiredDate, patch.ExpiredDate)
	if patch.AttachmentStorageID != nil {
		cert.AttachmentStorageID = clonePtr(patch.AttachmentStorageID)
	}
	if patch.ClearAttachment {
		cert.AttachmentStorageID = nil
	}

	return cloneCertification(cert), nil
}

func (s *CertificationStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.certifications[id]; !exists {
		return store.ErrCertificationNotFound
	}
	delete(s.certifications, id)
	return nil
}

func cloneCertification(c *models.Certification) *models.Certification {
	clone := *c
	clone.AttachmentStorageID = clonePtr(c.AttachmentStorageID)
	return &clone
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
