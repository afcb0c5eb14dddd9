package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
	"github.com/stretchr/testify/require"
)

func newTestOrganization(t *testing.T, slug string, externalID *string) *models.Organization {
	t.Helper()

	id, err := uuid.NewV7()
	require.NoError(t, err)

	return &models.Organization{
		ID:            id,
		Name:          "Org " + slug,
		Slug:          slug,
		ExternalOrgID: externalID,
		CreatedAt:     time.Now(),
	}
}

func strPtr(s string) *string { return &s }

func TestOrganizationStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get by every key", func(t *testing.T) {
		st := NewOrganizationStore()
		org := newTestOrganization(t, "acme", strPtr("org_1"))

		require.NoError(t, st.Create(ctx, org))

		got, err := st.Get(ctx, org.ID)
		require.NoError(t, err)
		require.Equal(t, "acme", got.Slug)

		got, err = st.GetBySlug(ctx, "acme")
		require.NoError(t, err)
		require.Equal(t, org.ID, got.ID)

		got, err = st.GetByExternalID(ctx, "org_1")
		require.NoError(t, err)
		require.Equal(t, org.ID, got.ID)
	})

	t.Run("duplicate slug is rejected", func(t *testing.T) {
		st := NewOrganizationStore()
		require.NoError(t, st.Create(ctx, newTestOrganization(t, "acme", nil)))

		err := st.Create(ctx, newTestOrganization(t, "acme", nil))
		require.ErrorIs(t, err, store.ErrOrganizationAlreadyExists)
	})

	t.Run("duplicate external id is rejected", func(t *testing.T) {
		st := NewOrganizationStore()
		require.NoError(t, st.Create(ctx, newTestOrganization(t, "a", strPtr("org_1"))))

		err := st.Create(ctx, newTestOrganization(t, "b", strPtr("org_1")))
		require.ErrorIs(t, err, store.ErrOrganizationAlreadyExists)
	})

	t.Run("unlinked organizations do not collide", func(t *testing.T) {
		st := NewOrganizationStore()
		require.NoError(t, st.Create(ctx, newTestOrganization(t, "a", nil)))
		require.NoError(t, st.Create(ctx, newTestOrganization(t, "b", nil)))

		orgs, err := st.List(ctx)
		require.NoError(t, err)
		require.Len(t, orgs, 2)
	})
}

func TestOrganizationStore_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("update moves slug and external id indexes", func(t *testing.T) {
		st := NewOrganizationStore()
		org := newTestOrganization(t, "old", strPtr("org_old"))
		require.NoError(t, st.Create(ctx, org))

		org.Slug = "new"
		org.ExternalOrgID = strPtr("org_new")
		require.NoError(t, st.Update(ctx, org))

		_, err := st.GetBySlug(ctx, "old")
		require.ErrorIs(t, err, store.ErrOrganizationNotFound)
		_, err = st.GetByExternalID(ctx, "org_old")
		require.ErrorIs(t, err, store.ErrOrganizationNotFound)

		got, err := st.GetBySlug(ctx, "new")
		require.NoError(t, err)
		require.Equal(t, org.ID, got.ID)
	})

	t.Run("update to a taken slug is rejected", func(t *testing.T) {
		st := NewOrganizationStore()
		first := newTestOrganization(t, "first", nil)
		second := newTestOrganization(t, "second", nil)
		require.NoError(t, st.Create(ctx, first))
		require.NoError(t, st.Create(ctx, second))

		second.Slug = "first"
		require.ErrorIs(t, st.Update(ctx, second), store.ErrOrganizationAlreadyExists)
	})

	t.Run("update missing organization", func(t *testing.T) {
		st := NewOrganizationStore()
		err := st.Update(ctx, newTestOrganization(t, "ghost", nil))
		require.ErrorIs(t, err, store.ErrOrganizationNotFound)
	})

	t.Run("returned values are copies", func(t *testing.T) {
		st := NewOrganizationStore()
		org := newTestOrganization(t, "acme", strPtr("org_1"))
		require.NoError(t, st.Create(ctx, org))

		got, err := st.Get(ctx, org.ID)
		require.NoError(t, err)
		*got.ExternalOrgID = "tampered"

		again, err := st.Get(ctx, org.ID)
		require.NoError(t, err)
		require.Equal(t, "org_1", *again.ExternalOrgID)
	})
}
