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
	"github.com/rs/zerolog/log"
)

const organizationColumns = `id, name, slug, external_org_id, created_by_external_user_id, created_by_user_id, created_at`

// OrganizationStore implements store.OrganizationStore using PostgreSQL.
// Uniqueness of slug and external_org_id is enforced by table constraints.
type OrganizationStore struct {
	pool *pgxpool.Pool
}

// NewOrganizationStore creates a new PostgreSQL-backed organization store.
// It shares the connection pool with other stores.
func NewOrganizationStore(pool *pgxpool.Pool) *OrganizationStore {
	return &OrganizationStore{
		pool: pool,
	}
}

// Create creates a new organization in the database.
func (s *OrganizationStore) Create(ctx context.Context, org *models.Organization) error {
	query := `
		INSERT INTO organizations (` + organizationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.pool.Exec(ctx, query,
		org.ID,
		org.Name,
		org.Slug,
		org.ExternalOrgID,
		org.CreatedByExternalUserID,
		org.CreatedByUserID,
		org.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return mapPostgresError(err)
		}
		return fmt.Errorf("failed to create organization: %w", mapPostgresError(err))
	}

	log.Debug().
		Str("org_id", org.ID.String()).
		Str("slug", org.Slug).
		Msg("Created organization")

	return nil
}

// Get retrieves an organization by ID.
func (s *OrganizationStore) Get(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	return s.getOne(ctx, `SELECT `+organizationColumns+` FROM organizations WHERE id = $1`, id)
}

// GetBySlug retrieves an organization by slug.
func (s *OrganizationStore) GetBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	return s.getOne(ctx, `SELECT `+organizationColumns+` FROM organizations WHERE slug = $1`, slug)
}

// GetByExternalID retrieves an organization by identity provider id.
func (s *OrganizationStore) GetByExternalID(ctx context.Context, externalOrgID string) (*models.Organization, error) {
	return s.getOne(ctx, `SELECT `+organizationColumns+` FROM organizations WHERE external_org_id = $1`, externalOrgID)
}

// Update overwrites name, slug and identity provider linkage.
func (s *OrganizationStore) Update(ctx context.Context, org *models.Organization) error {
	query := `
		UPDATE organizations SET
			name = $2,
			slug = $3,
			external_org_id = $4,
			created_by_external_user_id = $5
		WHERE id = $1
	`

	result, err := s.pool.Exec(ctx, query,
		org.ID,
		org.Name,
		org.Slug,
		org.ExternalOrgID,
		org.CreatedByExternalUserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return mapPostgresError(err)
		}
		return fmt.Errorf("failed to update organization: %w", mapPostgresError(err))
	}

	if result.RowsAffected() == 0 {
		return store.ErrOrganizationNotFound
	}

	log.Debug().
		Str("org_id", org.ID.String()).
		Msg("Updated organization")

	return nil
}

// List returns all organizations ordered by creation time.
func (s *OrganizationStore) List(ctx context.Context) ([]*models.Organization, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+organizationColumns+` FROM organizations ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", mapPostgresError(err))
	}
	defer rows.Close()

	orgs := []*models.Organization{}
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, org)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating organizations: %w", err)
	}

	return orgs, nil
}

func (s *OrganizationStore) getOne(ctx context.Context, query string, arg any) (*models.Organization, error) {
	org, err := scanOrganization(s.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", mapPostgresError(err))
	}
	return org, nil
}

func scanOrganization(row pgx.Row) (*models.Organization, error) {
	var org models.Organization
	err := row.Scan(
		&org.ID,
		&org.Name,
		&org.Slug,
		&org.ExternalOrgID,
		&org.CreatedByExternalUserID,
		&org.CreatedByUserID,
		&org.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &org, nil
}
