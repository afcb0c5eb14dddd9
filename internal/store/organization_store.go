package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nazmedical/portal/internal/models"
)

// Sentinel errors for organization store operations
var (
	ErrOrganizationNotFound      = errors.New("organization not found")
	ErrOrganizationAlreadyExists = errors.New("organization already exists")
)

// OrganizationStore defines the interface for organization storage operations.
// Slug and external organization id are unique; implementations reject a
// Create that would violate either with ErrOrganizationAlreadyExists.
type OrganizationStore interface {
	// Create inserts a new organization.
	Create(ctx context.Context, org *models.Organization) error

	// Get retrieves an organization by ID.
	// Returns ErrOrganizationNotFound if the organization doesn't exist.
	Get(ctx context.Context, id uuid.UUID) (*models.Organization, error)

	// GetBySlug retrieves an organization by its unique slug.
	GetBySlug(ctx context.Context, slug string) (*models.Organization, error)

	// GetByExternalID retrieves an organization by its identity provider id.
	GetByExternalID(ctx context.Context, externalOrgID string) (*models.Organization, error)

	// Update overwrites name, slug and identity provider linkage of an existing organization.
	// Returns ErrOrganizationNotFound if the organization doesn't exist.
	Update(ctx context.Context, org *models.Organization) error

	// List returns all organizations ordered by creation time.
	List(ctx context.Context) ([]*models.Organization, error)
}
