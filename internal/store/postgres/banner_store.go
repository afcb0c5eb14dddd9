package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
)

const bannerColumns = `id, title, subtitle, cta_label, cta_url, storage_id, organization_id, created_at`

// HomeBannerStore implements store.HomeBannerStore using PostgreSQL.
type HomeBannerStore struct {
	pool *pgxpool.Pool
}

// NewHomeBannerStore creates a new PostgreSQL-backed banner store.
func NewHomeBannerStore(pool *pgxpool.Pool) *HomeBannerStore {
	return &HomeBannerStore{pool: pool}
}

func (s *HomeBannerStore) Create(ctx context.Context, b *models.HomeBanner) error {
	query := `
		INSERT INTO home_banners (` + bannerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.pool.Exec(ctx, query,
		b.ID,
		b.Title,
		b.Subtitle,
		b.CTALabel,
		b.CTAURL,
		b.StorageID,
		b.OrganizationID,
		b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create home banner: %w", mapPostgresError(err))
	}
	return nil
}

func (s *HomeBannerStore) Get(ctx context.Context, id uuid.UUID) (*models.HomeBanner, error) {
	b, err := scanBanner(s.pool.QueryRow(ctx, `SELECT `+bannerColumns+` FROM home_banners WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrBannerNotFound
		}
		return nil, fmt.Errorf("failed to get home banner: %w", mapPostgresError(err))
	}
	return b, nil
}

func (s *HomeBannerStore) List(ctx context.Context) ([]*models.HomeBanner, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+bannerColumns+` FROM home_banners ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list home banners: %w", mapPostgresError(err))
	}
	defer rows.Close()

	banners := []*models.HomeBanner{}
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan home banner: %w", err)
		}
		banners = append(banners, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating home banners: %w", err)
	}

	return banners, nil
}

func (s *HomeBannerStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM home_banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete home banner: %w", mapPostgresError(err))
	}
	if result.RowsAffected() == 0 {
		return store.ErrBannerNotFound
	}
	return nil
}

func scanBanner(row pgx.Row) (*models.HomeBanner, error) {
	var b models.HomeBanner
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Subtitle,
		&b.CTALabel,
		&b.CTAURL,
		&b.StorageID,
		&b.OrganizationID,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
