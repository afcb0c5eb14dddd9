//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T, ctx context.Context) (store.Stores, func()) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	pool, err := NewPool(ctx, &PoolConfig{
		ConnString:  fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port()),
		AutoMigrate: true,
	})
	require.NoError(t, err)

	cleanup := func() {
		pool.Close()
		_ = container.Terminate(ctx)
	}

	return NewStores(pool), cleanup
}

func strPtr(s string) *string { return &s }

func TestIntegration_OrganizationUniqueness(t *testing.T) {
	ctx := context.Background()
	stores, cleanup := setupPostgresContainer(t, ctx)
	defer cleanup()

	org := &models.Organization{
		ID:            uuid.Must(uuid.NewV7()),
		Name:          "NAZ Medical",
		Slug:          "naz-medical",
		ExternalOrgID: strPtr("org_123"),
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, stores.Organizations.Create(ctx, org))

	t.Run("duplicate slug", func(t *testing.T) {
		dup := *org
		dup.ID = uuid.Must(uuid.NewV7())
		dup.ExternalOrgID = nil
		err := stores.Organizations.Create(ctx, &dup)
		require.ErrorIs(t, err, store.ErrOrganizationAlreadyExists)
	})

	t.Run("duplicate external id", func(t *testing.T) {
		dup := *org
		dup.ID = uuid.Must(uuid.NewV7())
		dup.Slug = "other"
		err := stores.Organizations.Create(ctx, &dup)
		require.ErrorIs(t, err, store.ErrOrganizationAlreadyExists)
	})

	t.Run("lookup by external id", func(t *testing.T) {
		got, err := stores.Organizations.GetByExternalID(ctx, "org_123")
		require.NoError(t, err)
		require.Equal(t, org.ID, got.ID)

		_, err = stores.Organizations.GetByExternalID(ctx, "org_missing")
		require.ErrorIs(t, err, store.ErrOrganizationNotFound)
	})
}

func TestIntegration_UserLifecycle(t *testing.T) {
	ctx := context.Background()
	stores, cleanup := setupPostgresContainer(t, ctx)
	defer cleanup()

	org := &models.Organization{ID: uuid.Must(uuid.NewV7()), Name: "NAZ Medical", Slug: "naz-medical", CreatedAt: time.Now().UTC()}
	require.NoError(t, stores.Organizations.Create(ctx, org))

	user := &models.User{
		ID:             uuid.Must(uuid.NewV7()),
		ExternalUserID: "user_1",
		Email:          strPtr("a@naz.example"),
		OrganizationID: &org.ID,
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, stores.Users.Create(ctx, user))

	dup := *user
	dup.ID = uuid.Must(uuid.NewV7())
	require.ErrorIs(t, stores.Users.Create(ctx, &dup), store.ErrUserAlreadyExists)

	user.FullName = strPtr("Aisha")
	require.NoError(t, stores.Users.Update(ctx, user))

	got, err := stores.Users.GetByExternalID(ctx, "user_1")
	require.NoError(t, err)
	require.Equal(t, "Aisha", *got.FullName)
	require.Equal(t, org.ID, *got.OrganizationID)
}

func TestIntegration_ContentStores(t *testing.T) {
	ctx := context.Background()
	stores, cleanup := setupPostgresContainer(t, ctx)
	defer cleanup()

	org := &models.Organization{ID: uuid.Must(uuid.NewV7()), Name: "NAZ Medical", Slug: "naz-medical", CreatedAt: time.Now().UTC()}
	require.NoError(t, stores.Organizations.Create(ctx, org))

	t.Run("product patch", func(t *testing.T) {
		p := &models.Product{
			ID:                  uuid.Must(uuid.NewV7()),
			Name:                "Gloves",
			Description:         "Nitrile",
			Status:              models.ProductStatusVisible,
			AttachmentStorageID: strPtr("blob-1"),
			OrganizationID:      org.ID,
			CreatedAt:           time.Now().UTC(),
		}
		require.NoError(t, stores.Products.Create(ctx, p))

		got, err := stores.Products.Patch(ctx, p.ID, models.ProductPatch{Name: strPtr("Sterile gloves")})
		require.NoError(t, err)
		require.Equal(t, "Sterile gloves", got.Name)
		require.Equal(t, "blob-1", *got.AttachmentStorageID)

		got, err = stores.Products.Patch(ctx, p.ID, models.ProductPatch{AttachmentStorageID: strPtr("blob-2"), ClearAttachment: true})
		require.NoError(t, err)
		require.Nil(t, got.AttachmentStorageID)

		_, err = stores.Products.Patch(ctx, uuid.Must(uuid.NewV7()), models.ProductPatch{})
		require.ErrorIs(t, err, store.ErrProductNotFound)

		other := uuid.Must(uuid.NewV7())
		list, err := stores.Products.List(ctx, &other)
		require.NoError(t, err)
		require.Empty(t, list)

		list, err = stores.Products.List(ctx, nil)
		require.NoError(t, err)
		require.Len(t, list, 1)

		require.NoError(t, stores.Products.Delete(ctx, p.ID))
		require.ErrorIs(t, stores.Products.Delete(ctx, p.ID), store.ErrProductNotFound)
	})

	t.Run("career keeps list order", func(t *testing.T) {
		c := &models.Career{
			ID:             uuid.Must(uuid.NewV7()),
			Role:           "Sales Engineer",
			Department:     "Sales",
			Location:       "Kuala Lumpur",
			ReportTo:       "Head of Sales",
			JobStatus:      models.JobStatusFullTime,
			Requirements:   []string{"Degree", "Driving licence"},
			OrganizationID: org.ID,
			CreatedAt:      time.Now().UTC(),
		}
		require.NoError(t, stores.Careers.Create(ctx, c))
		require.NoError(t, stores.Careers.UpdateStatus(ctx, c.ID, models.JobStatusContract))

		got, err := stores.Careers.Get(ctx, c.ID)
		require.NoError(t, err)
		require.Equal(t, models.JobStatusContract, got.JobStatus)
		require.Equal(t, []string{"Degree", "Driving licence"}, got.Requirements)
		require.Empty(t, got.JobScope)
	})

	t.Run("activity log newest first", func(t *testing.T) {
		base := time.Now().UTC()
		for i := range 3 {
			require.NoError(t, stores.ActivityLogs.Append(ctx, &models.ActivityLog{
				ID:             uuid.Must(uuid.NewV7()),
				Type:           models.ActivityProductCreated,
				Message:        fmt.Sprintf("entry %d", i),
				OrganizationID: org.ID,
				CreatedAt:      base.Add(time.Duration(i) * time.Second),
			}))
		}

		entries, err := stores.ActivityLogs.Latest(ctx, 2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		require.Equal(t, "entry 2", entries[0].Message)
		require.Equal(t, "entry 1", entries[1].Message)
	})
}
