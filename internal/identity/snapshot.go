package identity

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// DefaultFullName is used when the identity provider has no name for a user.
const DefaultFullName = "NAZ Staff"

// Snapshot is the identity state observed for one signed-in session.
type Snapshot struct {
	ExternalUserID string
	Email          string
	FullName       string

	ExternalOrgID    string
	OrganizationName string
	OrganizationSlug string
}

// HasOrganization reports whether the session has an active organization
// complete enough to reconcile.
func (s Snapshot) HasOrganization() bool {
	return s.ExternalOrgID != "" && s.OrganizationName != ""
}

// SyncKey identifies the identity state that was last reconciled. It is
// empty when there is no signed-in user.
func SyncKey(s Snapshot) string {
	if s.ExternalUserID == "" {
		return ""
	}
	return strings.Join([]string{
		s.ExternalOrgID,
		s.OrganizationName,
		s.ExternalUserID,
		s.Email,
		s.FullName,
	}, "\x1f")
}

// ShouldResync reports whether reconciliation must run for current given the
// key of the last successful run.
func ShouldResync(previous, current string) bool {
	return current != "" && current != previous
}

// Tracker runs reconciliation once per observed identity change for each user.
// A failed run forgets the user's key so the next observation retries.
type Tracker struct {
	reconciler *Reconciler

	mu   sync.Mutex
	keys map[string]string // external user id -> last synced key
}

// NewTracker creates a tracker backed by the given reconciler.
func NewTracker(reconciler *Reconciler) *Tracker {
	return &Tracker{
		reconciler: reconciler,
		keys:       make(map[string]string),
	}
}

// Observe reconciles the snapshot if it changed since the last successful
// run. It returns a nil result without error when nothing needed to be done.
func (t *Tracker) Observe(ctx context.Context, snap Snapshot) (*Result, error) {
	key := SyncKey(snap)

	t.mu.Lock()
	previous := t.keys[snap.ExternalUserID]
	if !ShouldResync(previous, key) {
		t.mu.Unlock()
		return nil, nil
	}
	t.keys[snap.ExternalUserID] = key
	t.mu.Unlock()

	res, err := t.reconciler.Reconcile(ctx, snap)
	if err != nil {
		t.mu.Lock()
		if t.keys[snap.ExternalUserID] == key {
			delete(t.keys, snap.ExternalUserID)
		}
		t.mu.Unlock()

		log.Warn().Err(err).Str("external_user_id", snap.ExternalUserID).Msg("Identity sync failed")
		return nil, err
	}

	return res, nil
}

// Forget drops the remembered key, forcing the next observation to sync.
func (t *Tracker) Forget(externalUserID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.keys, externalUserID)
}
