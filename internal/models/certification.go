package models

import (
	"time"

	"github.com/google/uuid"
)

// Certification is a quality or regulatory certificate held by the company.
// Dates are kept as entered by staff.
type Certification struct {
	ID                  uuid.UUID
	Issuer              string
	Name                string
	Standard            string
	Scope               string
	IssuedDate          string
	ExpiredDate         string
	AttachmentStorageID *string
	OrganizationID      uuid.UUID
	CreatedAt           time.Time
}

// CertificationPatch holds the fields of a partial certification update.
type CertificationPatch struct {
	Issuer              *string
	Name                *string
	Standard            *string
	Scope               *string
	IssuedDate          *string
	ExpiredDate         *string
	AttachmentStorageID *string
	ClearAttachment     bool
}
