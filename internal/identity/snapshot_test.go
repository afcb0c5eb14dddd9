package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
	"github.com/stretchr/testify/require"
)

func TestShouldResync(t *testing.T) {
	tests := []struct {
		name     string
		previous string
		current  string
		want     bool
	}{
		{name: "first observation", previous: "", current: "k1", want: true},
		{name: "unchanged", previous: "k1", current: "k1", want: false},
		{name: "changed", previous: "k1", current: "k2", want: true},
		{name: "signed out", previous: "k1", current: "", want: false},
		{name: "nothing observed", previous: "", current: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ShouldResync(tt.previous, tt.current))
		})
	}
}

func TestSyncKey(t *testing.T) {
	base := Snapshot{ExternalUserID: "user_1", Email: "a@x.com", FullName: "Alice", ExternalOrgID: "org_1", OrganizationName: "Acme"}

	require.Empty(t, SyncKey(Snapshot{Email: "a@x.com"}))
	require.Equal(t, SyncKey(base), SyncKey(base))

	renamed := base
	renamed.OrganizationName = "Acme Clinic"
	require.NotEqual(t, SyncKey(base), SyncKey(renamed))

	// slug is not part of the key
	reslugged := base
	reslugged.OrganizationSlug = "acme"
	require.Equal(t, SyncKey(base), SyncKey(reslugged))
}

func TestTracker(t *testing.T) {
	ctx := context.Background()
	snap := Snapshot{ExternalUserID: "user_1", Email: "a@x.com", FullName: "Alice"}

	t.Run("skips unchanged state", func(t *testing.T) {
		f := newFixture()
		tracker := NewTracker(f.reconciler)

		synced, err := tracker.Observe(ctx, snap)
		require.NoError(t, err)
		require.NotNil(t, synced)

		synced, err = tracker.Observe(ctx, snap)
		require.NoError(t, err)
		require.Nil(t, synced)

		changed := snap
		changed.FullName = "Alice B"
		synced, err = tracker.Observe(ctx, changed)
		require.NoError(t, err)
		require.NotNil(t, synced)
	})

	t.Run("retries after failure", func(t *testing.T) {
		f := newFixture()
		users := &flakyUserStore{UserStore: f.users, failures: 1}
		tracker := NewTracker(NewReconciler(f.orgs, users, f.tenants))

		_, err := tracker.Observe(ctx, snap)
		require.Error(t, err)

		synced, err := tracker.Observe(ctx, snap)
		require.NoError(t, err)
		require.NotNil(t, synced)

		_, err = f.users.GetByExternalID(ctx, "user_1")
		require.NoError(t, err)
	})

	t.Run("forget forces sync", func(t *testing.T) {
		f := newFixture()
		tracker := NewTracker(f.reconciler)

		_, err := tracker.Observe(ctx, snap)
		require.NoError(t, err)
		tracker.Forget(snap.ExternalUserID)

		synced, err := tracker.Observe(ctx, snap)
		require.NoError(t, err)
		require.NotNil(t, synced)
	})
}

type flakyUserStore struct {
	store.UserStore
	failures int
}

func (s *flakyUserStore) Create(ctx context.Context, user *models.User) error {
	if s.failures > 0 {
		s.failures--
		return errors.New("store unavailable")
	}
	return s.UserStore.Create(ctx, user)
}
