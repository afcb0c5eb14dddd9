// Package identity mirrors identity provider users and organizations into
// local records.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
	"github.com/nazmedical/portal/internal/tenant"
	"github.com/rs/zerolog/log"
)

// ErrInvalidInput is returned when a required identity field is missing.
var ErrInvalidInput = errors.New("invalid identity input")

// OrganizationInput is an organization as observed at the identity provider.
type OrganizationInput struct {
	ExternalOrgID string
	Name          string
	Slug          *string // defaults to ExternalOrgID
	CreatedBy     *string // external user id of the creator
}

// UserInput is a user as observed at the identity provider.
type UserInput struct {
	ExternalUserID string
	Email          string // may be empty
	FullName       string
	ExternalOrgID  *string
}

// Reconciler creates or overwrites local records from identity provider data.
// Each call is a lookup followed by exactly one insert or update; uniqueness
// of external ids is enforced by the stores.
type Reconciler struct {
	orgs    store.OrganizationStore
	users   store.UserStore
	tenants *tenant.Provisioner
	now     func() time.Time
}

// NewReconciler creates a reconciler.
func NewReconciler(orgs store.OrganizationStore, users store.UserStore, tenants *tenant.Provisioner) *Reconciler {
	return &Reconciler{
		orgs:    orgs,
		users:   users,
		tenants: tenants,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// ReconcileOrganization upserts the organization keyed by its external id.
func (r *Reconciler) ReconcileOrganization(ctx context.Context, in OrganizationInput) (uuid.UUID, error) {
	if in.ExternalOrgID == "" {
		return uuid.Nil, fmt.Errorf("%w: external organization id is required", ErrInvalidInput)
	}
	if in.Name == "" {
		return uuid.Nil, fmt.Errorf("%w: organization name is required", ErrInvalidInput)
	}

	slug := in.ExternalOrgID
	if in.Slug != nil && *in.Slug != "" {
		slug = *in.Slug
	}
	externalOrgID := in.ExternalOrgID

	existing, err := r.orgs.GetByExternalID(ctx, in.ExternalOrgID)
	switch {
	case err == nil:
		existing.Name = in.Name
		existing.Slug = slug
		existing.ExternalOrgID = &externalOrgID
		existing.CreatedByExternalUserID = in.CreatedBy
		if err := r.orgs.Update(ctx, existing); err != nil {
			return uuid.Nil, err
		}
		log.Debug().
			Str("org_id", existing.ID.String()).
			Str("external_org_id", externalOrgID).
			Msg("Updated organization from identity provider")
		return existing.ID, nil
	case !errors.Is(err, store.ErrOrganizationNotFound):
		return uuid.Nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate organization id: %w", err)
	}

	org := &models.Organization{
		ID:                      id,
		Name:                    in.Name,
		Slug:                    slug,
		ExternalOrgID:           &externalOrgID,
		CreatedByExternalUserID: in.CreatedBy,
		CreatedAt:               r.now(),
	}

	if in.CreatedBy != nil && *in.CreatedBy != "" {
		creator, err := r.users.GetByExternalID(ctx, *in.CreatedBy)
		switch {
		case err == nil:
			org.CreatedByUserID = &creator.ID
		case !errors.Is(err, store.ErrUserNotFound):
			return uuid.Nil, err
		}
	}

	if err := r.orgs.Create(ctx, org); err != nil {
		return uuid.Nil, err
	}

	log.Info().
		Str("org_id", org.ID.String()).
		Str("external_org_id", externalOrgID).
		Msg("Created organization from identity provider")

	return org.ID, nil
}

// ReconcileUser upserts the user keyed by its external id. The user is linked
// to the organization with the given external id, or to the default
// organization when none is given or it is not known locally.
func (r *Reconciler) ReconcileUser(ctx context.Context, in UserInput) (uuid.UUID, error) {
	if in.ExternalUserID == "" {
		return uuid.Nil, fmt.Errorf("%w: external user id is required", ErrInvalidInput)
	}

	orgID, err := r.resolveUserOrganization(ctx, in.ExternalOrgID)
	if err != nil {
		return uuid.Nil, err
	}

	email, fullName := in.Email, in.FullName

	existing, err := r.users.GetByExternalID(ctx, in.ExternalUserID)
	switch {
	case err == nil:
		existing.Email = &email
		existing.FullName = &fullName
		existing.OrganizationID = &orgID
		if err := r.users.Update(ctx, existing); err != nil {
			return uuid.Nil, err
		}
		log.Debug().
			Str("user_id", existing.ID.String()).
			Str("external_user_id", in.ExternalUserID).
			Msg("Updated user from identity provider")
		return existing.ID, nil
	case !errors.Is(err, store.ErrUserNotFound):
		return uuid.Nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate user id: %w", err)
	}

	user := &models.User{
		ID:             id,
		ExternalUserID: in.ExternalUserID,
		Email:          &email,
		FullName:       &fullName,
		OrganizationID: &orgID,
		CreatedAt:      r.now(),
	}
	if err := r.users.Create(ctx, user); err != nil {
		return uuid.Nil, err
	}

	log.Info().
		Str("user_id", user.ID.String()).
		Str("external_user_id", in.ExternalUserID).
		Str("org_id", orgID.String()).
		Msg("Created user from identity provider")

	return user.ID, nil
}

func (r *Reconciler) resolveUserOrganization(ctx context.Context, externalOrgID *string) (uuid.UUID, error) {
	if externalOrgID != nil && *externalOrgID != "" {
		org, err := r.orgs.GetByExternalID(ctx, *externalOrgID)
		if err == nil {
			return org.ID, nil
		}
		if !errors.Is(err, store.ErrOrganizationNotFound) {
			return uuid.Nil, err
		}
	}
	return r.tenants.EnsureDefaultOrganization(ctx)
}

// Result holds the local ids produced by Reconcile.
type Result struct {
	OrganizationID *uuid.UUID
	UserID         uuid.UUID
}

// Reconcile applies a snapshot, reconciling the organization before the user
// so the user can be linked to it. A failed organization does not stop the
// user from being reconciled; the user falls back to the default organization
// and the organization error is still returned.
func (r *Reconciler) Reconcile(ctx context.Context, snap Snapshot) (*Result, error) {
	res := &Result{}
	var orgErr error

	if snap.HasOrganization() {
		orgID, err := r.ReconcileOrganization(ctx, OrganizationInput{
			ExternalOrgID: snap.ExternalOrgID,
			Name:          snap.OrganizationName,
			Slug:          optional(snap.OrganizationSlug),
			CreatedBy:     optional(snap.ExternalUserID),
		})
		if err != nil {
			orgErr = fmt.Errorf("failed to reconcile organization: %w", err)
		} else {
			res.OrganizationID = &orgID
		}
	}

	userID, err := r.ReconcileUser(ctx, UserInput{
		ExternalUserID: snap.ExternalUserID,
		Email:          snap.Email,
		FullName:       snap.FullName,
		ExternalOrgID:  optional(snap.ExternalOrgID),
	})
	if err != nil {
		return nil, errors.Join(orgErr, fmt.Errorf("failed to reconcile user: %w", err))
	}
	res.UserID = userID

	if orgErr != nil {
		return res, orgErr
	}
	return res, nil
}

// GetActiveOrganization returns the organization a signed-in user is acting
// for: the one with the given external id, else the user's own organization,
// else the default organization. It never creates records and returns nil
// when nothing resolves or the user's organization no longer exists.
func (r *Reconciler) GetActiveOrganization(ctx context.Context, externalOrgID, externalUserID *string) (*models.Organization, error) {
	if externalOrgID != nil && *externalOrgID != "" {
		org, err := r.orgs.GetByExternalID(ctx, *externalOrgID)
		if err == nil {
			return org, nil
		}
		if !errors.Is(err, store.ErrOrganizationNotFound) {
			return nil, err
		}
	}

	if externalUserID != nil && *externalUserID != "" {
		user, err := r.users.GetByExternalID(ctx, *externalUserID)
		switch {
		case err == nil && user.OrganizationID != nil:
			org, err := r.orgs.Get(ctx, *user.OrganizationID)
			if errors.Is(err, store.ErrOrganizationNotFound) {
				return nil, nil
			}
			return org, err
		case err != nil && !errors.Is(err, store.ErrUserNotFound):
			return nil, err
		}
	}

	org, err := r.tenants.GetDefaultOrganization(ctx)
	if errors.Is(err, store.ErrOrganizationNotFound) {
		return nil, nil
	}
	return org, err
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
