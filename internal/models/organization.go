package models

import (
	"time"

	"github.com/google/uuid"
)

// Organization represents a tenant owning website content.
// Organizations mirrored from the identity provider carry its organization id;
// the default tenant has none.
type Organization struct {
	ID   uuid.UUID // UUIDv7
	Name string
	Slug string // unique

	// Identity provider linkage
	ExternalOrgID           *string // unique when set
	CreatedByExternalUserID *string
	CreatedByUserID         *uuid.UUID // FK to users

	CreatedAt time.Time
}

// IsLinked returns true if the organization is mirrored from the identity provider.
func (o *Organization) IsLinked() bool {
	return o.ExternalOrgID != nil && *o.ExternalOrgID != ""
}
