package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
	"github.com/nazmedical/portal/internal/store/memory"
	"github.com/nazmedical/portal/internal/tenant"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	orgs       *memory.OrganizationStore
	users      *memory.UserStore
	tenants    *tenant.Provisioner
	reconciler *Reconciler
}

func newFixture() *fixture {
	orgs := memory.NewOrganizationStore()
	users := memory.NewUserStore()
	tenants := tenant.NewProvisioner(orgs)
	return &fixture{
		orgs:       orgs,
		users:      users,
		tenants:    tenants,
		reconciler: NewReconciler(orgs, users, tenants),
	}
}

func strPtr(s string) *string { return &s }

func TestReconcileOrganization(t *testing.T) {
	ctx := context.Background()

	t.Run("validation happens before store access", func(t *testing.T) {
		f := newFixture()
		_, err := f.reconciler.ReconcileOrganization(ctx, OrganizationInput{Name: "Acme"})
		require.ErrorIs(t, err, ErrInvalidInput)
		_, err = f.reconciler.ReconcileOrganization(ctx, OrganizationInput{ExternalOrgID: "org_1"})
		require.ErrorIs(t, err, ErrInvalidInput)

		all, err := f.orgs.List(ctx)
		require.NoError(t, err)
		require.Empty(t, all)
	})

	t.Run("slug defaults to external id", func(t *testing.T) {
		f := newFixture()
		id, err := f.reconciler.ReconcileOrganization(ctx, OrganizationInput{ExternalOrgID: "org_1", Name: "Acme Clinic"})
		require.NoError(t, err)

		org, err := f.orgs.Get(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "org_1", org.Slug)
		require.Equal(t, "org_1", *org.ExternalOrgID)
	})

	t.Run("overwrite keeps id", func(t *testing.T) {
		f := newFixture()
		id, err := f.reconciler.ReconcileOrganization(ctx, OrganizationInput{
			ExternalOrgID: "org_1",
			Name:          "Acme Clinic",
			Slug:          strPtr("acme"),
			CreatedBy:     strPtr("user_1"),
		})
		require.NoError(t, err)

		again, err := f.reconciler.ReconcileOrganization(ctx, OrganizationInput{ExternalOrgID: "org_1", Name: "Acme Hospital"})
		require.NoError(t, err)
		require.Equal(t, id, again)

		org, err := f.orgs.Get(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Acme Hospital", org.Name)
		require.Equal(t, "org_1", org.Slug, "slug is overwritten, not merged")
		require.Nil(t, org.CreatedByExternalUserID)

		all, err := f.orgs.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("creator resolved when known", func(t *testing.T) {
		f := newFixture()
		userID, err := f.reconciler.ReconcileUser(ctx, UserInput{ExternalUserID: "user_1", Email: "a@x.com", FullName: "Alice"})
		require.NoError(t, err)

		orgID, err := f.reconciler.ReconcileOrganization(ctx, OrganizationInput{ExternalOrgID: "org_1", Name: "Acme", CreatedBy: strPtr("user_1")})
		require.NoError(t, err)

		org, err := f.orgs.Get(ctx, orgID)
		require.NoError(t, err)
		require.Equal(t, userID, *org.CreatedByUserID)
		require.Equal(t, "user_1", *org.CreatedByExternalUserID)
	})

	t.Run("unknown creator is not an error", func(t *testing.T) {
		f := newFixture()
		orgID, err := f.reconciler.ReconcileOrganization(ctx, OrganizationInput{ExternalOrgID: "org_1", Name: "Acme", CreatedBy: strPtr("user_x")})
		require.NoError(t, err)

		org, err := f.orgs.Get(ctx, orgID)
		require.NoError(t, err)
		require.Nil(t, org.CreatedByUserID)
	})
}

func TestReconcileUser(t *testing.T) {
	ctx := context.Background()

	t.Run("scenario A links to external organization", func(t *testing.T) {
		f := newFixture()
		orgID, err := f.reconciler.ReconcileOrganization(ctx, OrganizationInput{ExternalOrgID: "org_1", Name: "Acme Clinic"})
		require.NoError(t, err)

		_, err = f.reconciler.ReconcileUser(ctx, UserInput{ExternalUserID: "user_1", Email: "a@x.com", FullName: "Alice", ExternalOrgID: strPtr("org_1")})
		require.NoError(t, err)

		user, err := f.users.GetByExternalID(ctx, "user_1")
		require.NoError(t, err)
		require.Equal(t, orgID, *user.OrganizationID)

		_, err = f.tenants.GetDefaultOrganization(ctx)
		require.ErrorIs(t, err, store.ErrOrganizationNotFound)
	})

	t.Run("scenario B provisions default organization", func(t *testing.T) {
		f := newFixture()
		_, err := f.reconciler.ReconcileUser(ctx, UserInput{ExternalUserID: "user_2", Email: "b@x.com", FullName: "Bob"})
		require.NoError(t, err)

		def, err := f.tenants.GetDefaultOrganization(ctx)
		require.NoError(t, err)
		require.Equal(t, tenant.DefaultOrganizationName, def.Name)
		require.Equal(t, tenant.DefaultOrganizationSlug, def.Slug)

		user, err := f.users.GetByExternalID(ctx, "user_2")
		require.NoError(t, err)
		require.Equal(t, def.ID, *user.OrganizationID)
	})

	t.Run("unknown external organization falls back to default", func(t *testing.T) {
		f := newFixture()
		_, err := f.reconciler.ReconcileUser(ctx, UserInput{ExternalUserID: "user_3", FullName: "Cara", ExternalOrgID: strPtr("org_missing")})
		require.NoError(t, err)

		def, err := f.tenants.GetDefaultOrganization(ctx)
		require.NoError(t, err)
		user, err := f.users.GetByExternalID(ctx, "user_3")
		require.NoError(t, err)
		require.Equal(t, def.ID, *user.OrganizationID)
		require.Equal(t, "", *user.Email)
	})

	t.Run("overwrite keeps id", func(t *testing.T) {
		f := newFixture()
		id, err := f.reconciler.ReconcileUser(ctx, UserInput{ExternalUserID: "user_1", Email: "a@x.com", FullName: "Alice"})
		require.NoError(t, err)

		again, err := f.reconciler.ReconcileUser(ctx, UserInput{ExternalUserID: "user_1", Email: "alice@x.com", FullName: "Alice B"})
		require.NoError(t, err)
		require.Equal(t, id, again)

		all, err := f.users.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		require.Equal(t, "alice@x.com", *all[0].Email)
		require.Equal(t, "Alice B", *all[0].FullName)
	})

	t.Run("missing external id", func(t *testing.T) {
		f := newFixture()
		_, err := f.reconciler.ReconcileUser(ctx, UserInput{FullName: "Nobody"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestReconcile_OrganizationBeforeUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	res, err := f.reconciler.Reconcile(ctx, Snapshot{
		ExternalUserID:   "user_1",
		Email:            "a@x.com",
		FullName:         "Alice",
		ExternalOrgID:    "org_1",
		OrganizationName: "Acme Clinic",
	})
	require.NoError(t, err)
	require.NotNil(t, res.OrganizationID)

	user, err := f.users.Get(ctx, res.UserID)
	require.NoError(t, err)
	require.Equal(t, *res.OrganizationID, *user.OrganizationID)
}

func TestReconcile_UserSurvivesOrganizationFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	def, err := f.tenants.EnsureDefaultOrganization(ctx)
	require.NoError(t, err)

	snap := Snapshot{
		ExternalUserID:   "user_1",
		Email:            "a@x.com",
		FullName:         "Alice",
		ExternalOrgID:    "org_naz",
		OrganizationName: "NAZ Medical",
		OrganizationSlug: tenant.DefaultOrganizationSlug,
	}

	res, err := f.reconciler.Reconcile(ctx, snap)
	require.ErrorIs(t, err, store.ErrOrganizationAlreadyExists)
	require.NotNil(t, res)
	require.Nil(t, res.OrganizationID)

	user, err := f.users.GetByExternalID(ctx, "user_1")
	require.NoError(t, err)
	require.Equal(t, res.UserID, user.ID)
	require.Equal(t, def, *user.OrganizationID)

	tracker := NewTracker(f.reconciler)
	_, err = tracker.Observe(ctx, snap)
	require.Error(t, err)

	// The failed key is not remembered, so the next observation retries.
	_, err = tracker.Observe(ctx, snap)
	require.Error(t, err)
}

func TestGetActiveOrganization(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing resolves", func(t *testing.T) {
		f := newFixture()
		org, err := f.reconciler.GetActiveOrganization(ctx, nil, nil)
		require.NoError(t, err)
		require.Nil(t, org)
	})

	t.Run("external organization first", func(t *testing.T) {
		f := newFixture()
		orgID, err := f.reconciler.ReconcileOrganization(ctx, OrganizationInput{ExternalOrgID: "org_1", Name: "Acme"})
		require.NoError(t, err)
		_, err = f.reconciler.ReconcileUser(ctx, UserInput{ExternalUserID: "user_1", FullName: "Alice"})
		require.NoError(t, err)

		org, err := f.reconciler.GetActiveOrganization(ctx, strPtr("org_1"), strPtr("user_1"))
		require.NoError(t, err)
		require.Equal(t, orgID, org.ID)
	})

	t.Run("user organization then default", func(t *testing.T) {
		f := newFixture()
		_, err := f.reconciler.ReconcileUser(ctx, UserInput{ExternalUserID: "user_1", FullName: "Alice"})
		require.NoError(t, err)
		def, err := f.tenants.GetDefaultOrganization(ctx)
		require.NoError(t, err)

		org, err := f.reconciler.GetActiveOrganization(ctx, strPtr("org_missing"), strPtr("user_1"))
		require.NoError(t, err)
		require.Equal(t, def.ID, org.ID)

		org, err = f.reconciler.GetActiveOrganization(ctx, nil, strPtr("user_unknown"))
		require.NoError(t, err)
		require.Equal(t, def.ID, org.ID)
	})

	t.Run("user organization missing", func(t *testing.T) {
		f := newFixture()
		_, err := f.tenants.EnsureDefaultOrganization(ctx)
		require.NoError(t, err)

		orphaned := uuid.New()
		require.NoError(t, f.users.Create(ctx, &models.User{
			ID:             uuid.New(),
			ExternalUserID: "user_1",
			OrganizationID: &orphaned,
			CreatedAt:      time.Now(),
		}))

		org, err := f.reconciler.GetActiveOrganization(ctx, nil, strPtr("user_1"))
		require.NoError(t, err)
		require.Nil(t, org)
	})
}
