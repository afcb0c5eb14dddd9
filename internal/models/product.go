package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductStatus controls whether a product is shown on the public catalog.
type ProductStatus string

const (
	ProductStatusVisible ProductStatus = "visible"
	ProductStatusHidden  ProductStatus = "hidden"
)

// Valid returns true for the known product statuses.
func (s ProductStatus) Valid() bool {
	return s == ProductStatusVisible || s == ProductStatusHidden
}

// Product is a catalog entry, optionally with a brochure or datasheet attachment.
type Product struct {
	ID                  uuid.UUID
	Name                string
	Description         string
	Status              ProductStatus
	AttachmentStorageID *string
	OrganizationID      uuid.UUID
	CreatedAt           time.Time
}

// ProductPatch holds the fields of a partial product update. Nil fields are left untouched.
type ProductPatch struct {
	Name                *string
	Description         *string
	Status              *ProductStatus
	AttachmentStorageID *string
	ClearAttachment     bool
}
