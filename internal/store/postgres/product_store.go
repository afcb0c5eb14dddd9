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

const productColumns = `id, name, description, status, attachment_storage_id, organization_id, created_at`

// ProductStore implements store.ProductStore using PostgreSQL.
type ProductStore struct {
	pool *pgxpool.Pool
}

// NewProductStore creates a new PostgreSQL-backed product store.
func NewProductStore(pool *pgxpool.Pool) *ProductStore {
	return &ProductStore{pool: pool}
}

func (s *ProductStore) Create(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.pool.Exec(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		string(p.Status),
		p.AttachmentStorageID,
		p.OrganizationID,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", mapPostgresError(err))
	}
	return nil
}

func (s *ProductStore) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, err := scanProduct(s.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", mapPostgresError(err))
	}
	return p, nil
}

func (s *ProductStore) List(ctx context.Context, orgID *uuid.UUID) ([]*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE $1::uuid IS NULL OR organization_id = $1
		ORDER BY created_at
	`

	rows, err := s.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", mapPostgresError(err))
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// Patch applies the non-nil fields of patch in a single statement.
// ClearAttachment wins over a new attachment id.
func (s *ProductStore) Patch(ctx context.Context, id uuid.UUID, patch models.ProductPatch) (*models.Product, error) {
	query := `
		UPDATE products SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			status = COALESCE($4, status),
			attachment_storage_id = CASE WHEN $6 THEN NULL ELSE COALESCE($5, attachment_storage_id) END
		WHERE id = $1
		RETURNING ` + productColumns

	var status *string
	if patch.Status != nil {
		v := string(*patch.Status)
		status = &v
	}

	p, err := scanProduct(s.pool.QueryRow(ctx, query,
		id,
		patch.Name,
		patch.Description,
		status,
		patch.AttachmentStorageID,
		patch.ClearAttachment,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", mapPostgresError(err))
	}
	return p, nil
}

func (s *ProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", mapPostgresError(err))
	}
	if result.RowsAffected() == 0 {
		return store.ErrProductNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	var (
		p      models.Product
		status string
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&status,
		&p.AttachmentStorageID,
		&p.OrganizationID,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Status = models.ProductStatus(status)
	return &p, nil
}
