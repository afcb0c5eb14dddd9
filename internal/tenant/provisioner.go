// Package tenant provisions the fallback organization that owns content
// created without an explicit tenant.
package tenant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
	"github.com/rs/zerolog/log"
)

const (
	DefaultOrganizationName = "NAZ Medical"
	DefaultOrganizationSlug = "naz-medical"
)

// Provisioner guarantees a single default organization exists.
type Provisioner struct {
	orgs store.OrganizationStore
	now  func() time.Time
}

// NewProvisioner creates a provisioner backed by the given organization store.
func NewProvisioner(orgs store.OrganizationStore) *Provisioner {
	return &Provisioner{
		orgs: orgs,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// EnsureDefaultOrganization returns the id of the default organization,
// creating it on first use.
//
// Two callers racing past the lookup both attempt the insert; the unique slug
// rejects the loser, which then reads back the winner's row.
func (p *Provisioner) EnsureDefaultOrganization(ctx context.Context) (uuid.UUID, error) {
	org, err := p.orgs.GetBySlug(ctx, DefaultOrganizationSlug)
	if err == nil {
		return org.ID, nil
	}
	if !errors.Is(err, store.ErrOrganizationNotFound) {
		return uuid.Nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate organization id: %w", err)
	}

	org = &models.Organization{
		ID:        id,
		Name:      DefaultOrganizationName,
		Slug:      DefaultOrganizationSlug,
		CreatedAt: p.now(),
	}

	err = p.orgs.Create(ctx, org)
	switch {
	case err == nil:
		log.Info().Str("org_id", org.ID.String()).Msg("Provisioned default organization")
		return org.ID, nil
	case errors.Is(err, store.ErrOrganizationAlreadyExists):
		existing, err := p.orgs.GetBySlug(ctx, DefaultOrganizationSlug)
		if err != nil {
			return uuid.Nil, err
		}
		log.Debug().Str("org_id", existing.ID.String()).Msg("Default organization created concurrently")
		return existing.ID, nil
	default:
		return uuid.Nil, err
	}
}

// GetDefaultOrganization looks up the default organization without creating it.
func (p *Provisioner) GetDefaultOrganization(ctx context.Context) (*models.Organization, error) {
	return p.orgs.GetBySlug(ctx, DefaultOrganizationSlug)
}

// ResolveOrganizationID returns explicit when set, otherwise the default organization.
func (p *Provisioner) ResolveOrganizationID(ctx context.Context, explicit *uuid.UUID) (uuid.UUID, error) {
	if explicit != nil && *explicit != uuid.Nil {
		return *explicit, nil
	}
	return p.EnsureDefaultOrganization(ctx)
}
