package models

import (
	"time"

	"github.com/google/uuid"
)

// HomeBanner is one slide of the home page carousel.
type HomeBanner struct {
	ID             uuid.UUID
	Title          string
	Subtitle       *string
	CTALabel       *string
	CTAURL         *string
	StorageID      string // image blob, required
	OrganizationID uuid.UUID
	CreatedAt      time.Time
}
