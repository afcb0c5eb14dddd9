package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nazmedical/portal/internal/models"
)

// Sentinel errors for user store operations
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserStore defines the interface for user storage operations.
type UserStore interface {
	// Create inserts a new user.
	// Returns ErrUserAlreadyExists if the external user id is already taken.
	Create(ctx context.Context, user *models.User) error

	// Get retrieves a user by ID.
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)

	// GetByExternalID retrieves a user by identity provider user id.
	// Returns ErrUserNotFound if no such user has been reconciled yet.
	GetByExternalID(ctx context.Context, externalUserID string) (*models.User, error)

	// Update overwrites email, full name, role and organization of an existing user.
	Update(ctx context.Context, user *models.User) error

	// List returns all users ordered by creation time.
	List(ctx context.Context) ([]*models.User, error)
}
