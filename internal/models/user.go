package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the local record of a staff member signed in through the identity provider.
type User struct {
	ID             uuid.UUID // UUIDv7
	ExternalUserID string    // unique
	Email          *string
	FullName       *string
	Role           *string
	OrganizationID *uuid.UUID // FK to organizations

	CreatedAt time.Time
}
