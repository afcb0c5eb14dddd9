package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity types recorded by the portal.
const (
	ActivityProductCreated       = "product.created"
	ActivityProductUpdated       = "product.updated"
	ActivityProductRemoved       = "product.removed"
	ActivityCareerCreated        = "career.created"
	ActivityCareerStatusUpdated  = "career.status_updated"
	ActivityCareerRemoved        = "career.removed"
	ActivityCertificationCreated = "certification.created"
	ActivityCertificationUpdated = "certification.updated"
	ActivityCertificationRemoved = "certification.removed"
	ActivityBannerCreated        = "banner.created"
	ActivityBannerRemoved        = "banner.removed"
)

// ActivityLog is an append-only audit entry shown on the portal dashboard.
type ActivityLog struct {
	ID             uuid.UUID
	Type           string
	Message        string
	ActorUserID    *uuid.UUID
	OrganizationID uuid.UUID
	CreatedAt      time.Time
}
