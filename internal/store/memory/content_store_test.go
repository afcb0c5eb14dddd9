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

func TestProductStore_Patch(t *testing.T) {
	ctx := context.Background()
	st := NewProductStore()

	product := &models.Product{
		ID:                  uuid.New(),
		Name:                "Gloves",
		Description:         "Nitrile examination gloves",
		Status:              models.ProductStatusVisible,
		AttachmentStorageID: strPtr("blob-1"),
		OrganizationID:      uuid.New(),
		CreatedAt:           time.Now(),
	}
	require.NoError(t, st.Create(ctx, product))

	t.Run("partial update leaves other fields", func(t *testing.T) {
		hidden := models.ProductStatusHidden
		got, err := st.Patch(ctx, product.ID, models.ProductPatch{Status: &hidden})
		require.NoError(t, err)
		require.Equal(t, models.ProductStatusHidden, got.Status)
		require.Equal(t, "Gloves", got.Name)
		require.Equal(t, "blob-1", *got.AttachmentStorageID)
	})

	t.Run("clear attachment", func(t *testing.T) {
		got, err := st.Patch(ctx, product.ID, models.ProductPatch{ClearAttachment: true})
		require.NoError(t, err)
		require.Nil(t, got.AttachmentStorageID)
	})

	t.Run("patch missing product", func(t *testing.T) {
		_, err := st.Patch(ctx, uuid.New(), models.ProductPatch{})
		require.ErrorIs(t, err, store.ErrProductNotFound)
	})
}

func TestProductStore_ListByOrganization(t *testing.T) {
	ctx := context.Background()
	st := NewProductStore()
	orgA, orgB := uuid.New(), uuid.New()

	for i, org := range []uuid.UUID{orgA, orgA, orgB} {
		require.NoError(t, st.Create(ctx, &models.Product{
			ID:             uuid.New(),
			Name:           "p",
			Status:         models.ProductStatusVisible,
			OrganizationID: org,
			CreatedAt:      time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	all, err := st.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	onlyA, err := st.List(ctx, &orgA)
	require.NoError(t, err)
	require.Len(t, onlyA, 2)
}

func TestCareerStore_ListsAreCopied(t *testing.T) {
	ctx := context.Background()
	st := NewCareerStore()

	career := &models.Career{
		ID:           uuid.New(),
		Role:         "Sales Executive",
		JobStatus:    models.JobStatusFullTime,
		Requirements: []string{"Degree", "Driving licence"},
		JobScope:     []string{"Visit clinics"},
		CreatedAt:    time.Now(),
	}
	require.NoError(t, st.Create(ctx, career))
	career.Requirements[0] = "changed"

	got, err := st.Get(ctx, career.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Degree", "Driving licence"}, got.Requirements)

	require.NoError(t, st.UpdateStatus(ctx, career.ID, models.JobStatusContract))
	got, err = st.Get(ctx, career.ID)
	require.NoError(t, err)
	require.Equal(t, models.JobStatusContract, got.JobStatus)

	require.ErrorIs(t, st.UpdateStatus(ctx, uuid.New(), models.JobStatusContract), store.ErrCareerNotFound)
}

func TestActivityLogStore_Latest(t *testing.T) {
	ctx := context.Background()
	st := NewActivityLogStore()

	for _, msg := range []string{"one", "two", "three"} {
		require.NoError(t, st.Append(ctx, &models.ActivityLog{
			ID:        uuid.New(),
			Type:      "test",
			Message:   msg,
			CreatedAt: time.Now(),
		}))
	}

	latest, err := st.Latest(ctx, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	require.Equal(t, "three", latest[0].Message)
	require.Equal(t, "two", latest[1].Message)

	all, err := st.Latest(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)

	none, err := st.Latest(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, none)
}
