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

const careerColumns = `id, role, department, location, report_to, job_status, requirements, job_scope, organization_id, created_at`

// CareerStore implements store.CareerStore using PostgreSQL.
type CareerStore struct {
	pool *pgxpool.Pool
}

// NewCareerStore creates a new PostgreSQL-backed career store.
func NewCareerStore(pool *pgxpool.Pool) *CareerStore {
	return &CareerStore{pool: pool}
}

func (s *CareerStore) Create(ctx context.Context, c *models.Career) error {
	query := `
		INSERT INTO careers (` + careerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.pool.Exec(ctx, query,
		c.ID,
		c.Role,
		c.Department,
		c.Location,
		c.ReportTo,
		string(c.JobStatus),
		nonNil(c.Requirements),
		nonNil(c.JobScope),
		c.OrganizationID,
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create career: %w", mapPostgresError(err))
	}
	return nil
}

func (s *CareerStore) Get(ctx context.Context, id uuid.UUID) (*models.Career, error) {
	c, err := scanCareer(s.pool.QueryRow(ctx, `SELECT `+careerColumns+` FROM careers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrCareerNotFound
		}
		return nil, fmt.Errorf("failed to get career: %w", mapPostgresError(err))
	}
	return c, nil
}

func (s *CareerStore) List(ctx context.Context, orgID *uuid.UUID) ([]*models.Career, error) {
	query := `
		SELECT ` + careerColumns + `
		FROM careers
		WHERE $1::uuid IS NULL OR organization_id = $1
		ORDER BY created_at
	`

	rows, err := s.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list careers: %w", mapPostgresError(err))
	}
	defer rows.Close()

	careers := []*models.Career{}
	for rows.Next() {
		c, err := scanCareer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan career: %w", err)
		}
		careers = append(careers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating careers: %w", err)
	}

	return careers, nil
}

func (s *CareerStore) UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) error {
	result, err := s.pool.Exec(ctx, `UPDATE careers SET job_status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("failed to update career status: %w", mapPostgresError(err))
	}
	if result.RowsAffected() == 0 {
		return store.ErrCareerNotFound
	}
	return nil
}

func (s *CareerStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM careers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete career: %w", mapPostgresError(err))
	}
	if result.RowsAffected() == 0 {
		return store.ErrCareerNotFound
	}
	return nil
}

func scanCareer(row pgx.Row) (*models.Career, error) {
	var (
		c      models.Career
		status string
	)
	err := row.Scan(
		&c.ID,
		&c.Role,
		&c.Department,
		&c.Location,
		&c.ReportTo,
		&status,
		&c.Requirements,
		&c.JobScope,
		&c.OrganizationID,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.JobStatus = models.JobStatus(status)
	return &c, nil
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
