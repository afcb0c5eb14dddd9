// Package webhook receives identity provider events and mirrors them into
// local organizations and users.
package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/nazmedical/portal/internal/identity"
	"github.com/nazmedical/portal/internal/identity/clerk"
	"github.com/nazmedical/portal/internal/store"
	"github.com/nazmedical/portal/internal/telemetry"
	"github.com/rs/zerolog/log"
)

const maxPayloadBytes = 1 << 20

// Event types handled by the receiver.
const (
	EventUserCreated                = "user.created"
	EventUserUpdated                = "user.updated"
	EventOrganizationCreated        = "organization.created"
	EventOrganizationUpdated        = "organization.updated"
	EventOrganizationMembershipNew  = "organizationMembership.created"
	EventOrganizationMembershipEdit = "organizationMembership.updated"
)

type event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type membership struct {
	Organization   clerk.Organization `json:"organization"`
	PublicUserData struct {
		UserID     string  `json:"user_id"`
		FirstName  *string `json:"first_name"`
		LastName   *string `json:"last_name"`
		Identifier string  `json:"identifier"`
	} `json:"public_user_data"`
}

// Handler serves POST /api/webhooks/clerk.
type Handler struct {
	verifier   *Verifier
	reconciler *identity.Reconciler
	orgs       store.OrganizationStore
	users      store.UserStore
	tracker    *identity.Tracker
	metrics    *telemetry.Metrics
}

// NewHandler creates the webhook receiver. The tracker is optional; when set,
// users touched by an event are re-synced on their next page load.
func NewHandler(verifier *Verifier, reconciler *identity.Reconciler, stores store.Stores, tracker *identity.Tracker) *Handler {
	return &Handler{
		verifier:   verifier,
		reconciler: reconciler,
		orgs:       stores.Organizations,
		users:      stores.Users,
		tracker:    tracker,
		metrics:    telemetry.GetMetrics(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if err := h.verifier.Verify(r.Header, body); err != nil {
		log.Warn().Err(err).Msg("Rejected webhook delivery")
		h.metrics.RecordWebhookEvent(r.Context(), "unknown", "rejected")
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	var evt event
	if err := json.Unmarshal(body, &evt); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	handled, err := h.dispatch(r.Context(), evt)
	if err != nil {
		log.Error().Err(err).Str("type", evt.Type).Msg("Failed to handle webhook event")
		h.metrics.RecordWebhookEvent(r.Context(), evt.Type, "error")
		if errors.Is(err, identity.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to process event", http.StatusInternalServerError)
		return
	}

	outcome := "ignored"
	if handled {
		outcome = "handled"
	}
	h.metrics.RecordWebhookEvent(r.Context(), evt.Type, outcome)
	log.Debug().Str("type", evt.Type).Str("outcome", outcome).Msg("Webhook event processed")

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"received": true})
}

func (h *Handler) dispatch(ctx context.Context, evt event) (bool, error) {
	switch evt.Type {
	case EventUserCreated, EventUserUpdated:
		var u clerk.User
		if err := json.Unmarshal(evt.Data, &u); err != nil {
			return false, fmt.Errorf("%w: %w", identity.ErrInvalidInput, err)
		}
		return true, h.syncUser(ctx, &u)

	case EventOrganizationCreated, EventOrganizationUpdated:
		var o clerk.Organization
		if err := json.Unmarshal(evt.Data, &o); err != nil {
			return false, fmt.Errorf("%w: %w", identity.ErrInvalidInput, err)
		}
		_, err := h.reconciler.ReconcileOrganization(ctx, organizationInput(&o))
		return true, err

	case EventOrganizationMembershipNew, EventOrganizationMembershipEdit:
		var m membership
		if err := json.Unmarshal(evt.Data, &m); err != nil {
			return false, fmt.Errorf("%w: %w", identity.ErrInvalidInput, err)
		}
		return true, h.syncMembership(ctx, &m)
	}
	return false, nil
}

// syncUser keeps the user's current organization, since user events carry
// no organization.
func (h *Handler) syncUser(ctx context.Context, u *clerk.User) error {
	orgRef, err := h.currentExternalOrg(ctx, u.ID)
	if err != nil {
		return err
	}

	if _, err := h.reconciler.ReconcileUser(ctx, identity.UserInput{
		ExternalUserID: u.ID,
		Email:          u.PrimaryEmail(),
		FullName:       u.FullName(),
		ExternalOrgID:  orgRef,
	}); err != nil {
		return err
	}
	h.forget(u.ID)
	return nil
}

func (h *Handler) syncMembership(ctx context.Context, m *membership) error {
	if _, err := h.reconciler.ReconcileOrganization(ctx, organizationInput(&m.Organization)); err != nil {
		return err
	}

	name := (&clerk.User{FirstName: m.PublicUserData.FirstName, LastName: m.PublicUserData.LastName}).FullName()
	email := ""
	existing, err := h.users.GetByExternalID(ctx, m.PublicUserData.UserID)
	switch {
	case err == nil:
		if existing.Email != nil {
			email = *existing.Email
		}
		if existing.FullName != nil && name == identity.DefaultFullName {
			name = *existing.FullName
		}
	case errors.Is(err, store.ErrUserNotFound):
		email = m.PublicUserData.Identifier
	default:
		return err
	}

	orgID := m.Organization.ID
	if _, err := h.reconciler.ReconcileUser(ctx, identity.UserInput{
		ExternalUserID: m.PublicUserData.UserID,
		Email:          email,
		FullName:       name,
		ExternalOrgID:  &orgID,
	}); err != nil {
		return err
	}
	h.forget(m.PublicUserData.UserID)
	return nil
}

// currentExternalOrg returns the external id of the organization a known
// user is linked to, or nil.
func (h *Handler) currentExternalOrg(ctx context.Context, externalUserID string) (*string, error) {
	user, err := h.users.GetByExternalID(ctx, externalUserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if user.OrganizationID == nil {
		return nil, nil
	}

	org, err := h.orgs.Get(ctx, *user.OrganizationID)
	if errors.Is(err, store.ErrOrganizationNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return org.ExternalOrgID, nil
}

func (h *Handler) forget(externalUserID string) {
	if h.tracker != nil {
		h.tracker.Forget(externalUserID)
	}
}

func organizationInput(o *clerk.Organization) identity.OrganizationInput {
	return identity.OrganizationInput{
		ExternalOrgID: o.ID,
		Name:          o.Name,
		Slug:          o.Slug,
		CreatedBy:     o.CreatedBy,
	}
}
