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

const certificationColumns = `id, issuer, name, standard, scope, issued_date, expired_date, attachment_storage_id, organization_id, created_at`

// CertificationStore implements store.CertificationStore using PostgreSQL.
type CertificationStore struct {
	pool *pgxpool.Pool
}

// NewCertificationStore creates a new PostgreSQL-backed certification store.
func NewCertificationStore(pool *pgxpool.Pool) *CertificationStore {
	return &CertificationStore{pool: pool}
}

func (s *CertificationStore) Create(ctx context.Context, c *models.Certification) error {
	query := `
		INSERT INTO certifications (` + certificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.pool.Exec(ctx, query,
		c.ID,
		c.Issuer,
		c.Name,
		c.Standard,
		c.Scope,
		c.IssuedDate,
		c.ExpiredDate,
		c.AttachmentStorageID,
		c.OrganizationID,
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create certification: %w", mapPostgresError(err))
	}
	return nil
}

func (s *CertificationStore) Get(ctx context.Context, id uuid.UUID) (*models.Certification, error) {
	c, err := scanCertification(s.pool.QueryRow(ctx, `SELECT `+certificationColumns+` FROM certifications WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrCertificationNotFound
		}
		return nil, fmt.Errorf("failed to get certification: %w", mapPostgresError(err))
	}
	return c, nil
}

func (s *CertificationStore) List(ctx context.Context, orgID *uuid.UUID) ([]*models.Certification, error) {
	query := `
		SELECT ` + certificationColumns + `
		FROM certifications
		WHERE $1::uuid IS NULL OR organization_id = $1
		ORDER BY created_at
	`

	rows, err := s.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list certifications: %w", mapPostgresError(err))
	}
	defer rows.Close()

	certs := []*models.Certification{}
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certification: %w", err)
		}
		certs = append(certs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating certifications: %w", err)
	}

	return certs, nil
}

func (s *CertificationStore) Patch(ctx context.Context, id uuid.UUID, patch models.CertificationPatch) (*models.Certification, error) {
	query := `
		UPDATE certifications SET
			issuer = COALESCE($2, issuer),
			name = COALESCE($3, name),
			standard = COALESCE($4, standard),
			scope = COALESCE($5, scope),
			issued_date = COALESCE($6, issued_date),
			expired_date = COALESCE($7, expired_date),
			attachment_storage_id = CASE WHEN $9 THEN NULL ELSE COALESCE($8, attachment_storage_id) END
		WHERE id = $1
		RETURNING ` + certificationColumns

	c, err := scanCertification(s.pool.QueryRow(ctx, query,
		id,
		patch.Issuer,
		patch.Name,
		patch.Standard,
		patch.Scope,
		patch.IssuedDate,
		patch.ExpiredDate,
		patch.AttachmentStorageID,
		patch.ClearAttachment,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrCertificationNotFound
		}
		return nil, fmt.Errorf("failed to update certification: %w", mapPostgresError(err))
	}
	return c, nil
}

func (s *CertificationStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete certification: %w", mapPostgresError(err))
	}
	if result.RowsAffected() == 0 {
		return store.ErrCertificationNotFound
	}
	return nil
}

func scanCertification(row pgx.Row) (*models.Certification, error) {
	var c models.Certification
	err := row.Scan(
		&c.ID,
		&c.Issuer,
		&c.Name,
		&c.Standard,
		&c.Scope,
		&c.IssuedDate,
		&c.ExpiredDate,
		&c.AttachmentStorageID,
		&c.OrganizationID,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
