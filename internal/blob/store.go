// Package blob stores file attachments and banner images.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

var (
	// ErrNotFound is returned when no blob exists for a storage id.
	ErrNotFound = errors.New("blob not found")
	// ErrAlreadyExists is returned by Put when the storage id is taken.
	ErrAlreadyExists = errors.New("blob already exists")
)

// Store is an object store addressed by opaque storage ids.
type Store interface {
	// Put stores size bytes read from body under id. Storage ids are write
	// once: Put returns ErrAlreadyExists if a blob is already stored under id.
	Put(ctx context.Context, id, contentType string, body io.Reader, size int64) error
	// URL returns a time-limited download URL for id, or ErrNotFound.
	URL(ctx context.Context, id string) (string, error)
	// Delete removes the blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, id string) error
}

// NewStorageID returns a new, URL-safe storage id.
func NewStorageID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate storage id: %w", err)
	}
	return base58.Encode(id[:]), nil
}

// ValidStorageID reports whether s could have been produced by NewStorageID.
func ValidStorageID(s string) bool {
	b, err := base58.Decode(s)
	return err == nil && len(b) == len(uuid.UUID{})
}

// URLOrEmpty resolves a download URL for an optional storage id. Missing
// blobs resolve to an empty URL rather than an error.
func URLOrEmpty(ctx context.Context, s Store, id *string) (string, error) {
	if id == nil || *id == "" {
		return "", nil
	}
	u, err := s.URL(ctx, *id)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return u, err
}
