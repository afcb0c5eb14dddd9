package tenant

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
	"github.com/nazmedical/portal/internal/store/memory"
	"github.com/stretchr/testify/require"
)

func TestEnsureDefaultOrganization(t *testing.T) {
	ctx := context.Background()

	t.Run("idempotent", func(t *testing.T) {
		orgs := memory.NewOrganizationStore()
		p := NewProvisioner(orgs)

		first, err := p.EnsureDefaultOrganization(ctx)
		require.NoError(t, err)
		second, err := p.EnsureDefaultOrganization(ctx)
		require.NoError(t, err)
		require.Equal(t, first, second)

		all, err := orgs.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		require.Equal(t, DefaultOrganizationName, all[0].Name)
		require.Equal(t, DefaultOrganizationSlug, all[0].Slug)
		require.Nil(t, all[0].ExternalOrgID)
	})

	t.Run("concurrent callers share one row", func(t *testing.T) {
		orgs := memory.NewOrganizationStore()
		p := NewProvisioner(orgs)

		const callers = 8
		ids := make([]uuid.UUID, callers)
		errs := make([]error, callers)
		var wg sync.WaitGroup
		for i := range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ids[i], errs[i] = p.EnsureDefaultOrganization(ctx)
			}()
		}
		wg.Wait()

		for i := range callers {
			require.NoError(t, errs[i])
			require.Equal(t, ids[0], ids[i])
		}
		all, err := orgs.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("lost insert race reads winner", func(t *testing.T) {
		orgs := &racingOrganizationStore{OrganizationStore: memory.NewOrganizationStore()}
		p := NewProvisioner(orgs)

		id, err := p.EnsureDefaultOrganization(ctx)
		require.NoError(t, err)
		require.Equal(t, orgs.winner, id)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		boom := errors.New("connection refused")
		p := NewProvisioner(&failingOrganizationStore{OrganizationStore: memory.NewOrganizationStore(), err: boom})

		_, err := p.EnsureDefaultOrganization(ctx)
		require.ErrorIs(t, err, boom)
	})
}

func TestGetDefaultOrganization(t *testing.T) {
	ctx := context.Background()
	p := NewProvisioner(memory.NewOrganizationStore())

	_, err := p.GetDefaultOrganization(ctx)
	require.ErrorIs(t, err, store.ErrOrganizationNotFound)

	id, err := p.EnsureDefaultOrganization(ctx)
	require.NoError(t, err)

	org, err := p.GetDefaultOrganization(ctx)
	require.NoError(t, err)
	require.Equal(t, id, org.ID)
}

func TestResolveOrganizationID(t *testing.T) {
	ctx := context.Background()
	orgs := memory.NewOrganizationStore()
	p := NewProvisioner(orgs)

	explicit := uuid.New()
	got, err := p.ResolveOrganizationID(ctx, &explicit)
	require.NoError(t, err)
	require.Equal(t, explicit, got)

	all, err := orgs.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all, "explicit tenant must not provision the default")

	got, err = p.ResolveOrganizationID(ctx, nil)
	require.NoError(t, err)
	def, err := p.GetDefaultOrganization(ctx)
	require.NoError(t, err)
	require.Equal(t, def.ID, got)
}

// racingOrganizationStore simulates another process inserting the default
// organization between our lookup and insert.
type racingOrganizationStore struct {
	store.OrganizationStore
	winner uuid.UUID
}

func (s *racingOrganizationStore) Create(ctx context.Context, org *models.Organization) error {
	if s.winner == uuid.Nil {
		winner := *org
		winner.ID = uuid.New()
		if err := s.OrganizationStore.Create(ctx, &winner); err != nil {
			return err
		}
		s.winner = winner.ID
	}
	return s.OrganizationStore.Create(ctx, org)
}

type failingOrganizationStore struct {
	store.OrganizationStore
	err error
}

func (s *failingOrganizationStore) GetBySlug(context.Context, string) (*models.Organization, error) {
	return nil, s.err
}
