package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nazmedical/portal/internal/models"
)

// Sentinel errors for content store operations
var (
	ErrProductNotFound       = errors.New("product not found")
	ErrCareerNotFound        = errors.New("career not found")
	ErrCertificationNotFound = errors.New("certification not found")
	ErrBannerNotFound        = errors.New("home banner not found")
)

// ProductStore defines storage operations for the product catalog.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)

	// List returns products, restricted to one organization when orgID is non-nil.
	List(ctx context.Context, orgID *uuid.UUID) ([]*models.Product, error)

	// Patch applies a partial update and returns the updated product.
	Patch(ctx context.Context, id uuid.UUID, patch models.ProductPatch) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CareerStore defines storage operations for career listings.
type CareerStore interface {
	Create(ctx context.Context, career *models.Career) error
	Get(ctx context.Context, id uuid.UUID) (*models.Career, error)
	List(ctx context.Context, orgID *uuid.UUID) ([]*models.Career, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CertificationStore defines storage operations for certifications.
type CertificationStore interface {
	Create(ctx context.Context, cert *models.Certification) error
	Get(ctx context.Context, id uuid.UUID) (*models.Certification, error)
	List(ctx context.Context, orgID *uuid.UUID) ([]*models.Certification, error)
	Patch(ctx context.Context, id uuid.UUID, patch models.CertificationPatch) (*models.Certification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// HomeBannerStore defines storage operations for the home page carousel.
type HomeBannerStore interface {
	Create(ctx context.Context, banner *models.HomeBanner) error
	Get(ctx context.Context, id uuid.UUID) (*models.HomeBanner, error)
	List(ctx context.Context) ([]*models.HomeBanner, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivityLogStore is an append-only log of portal activity.
type ActivityLogStore interface {
	Append(ctx context.Context, entry *models.ActivityLog) error

	// Latest returns up to limit entries, newest first.
	Latest(ctx context.Context, limit int) ([]*models.ActivityLog, error)
}
