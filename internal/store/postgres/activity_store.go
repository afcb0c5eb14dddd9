package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nazmedical/portal/internal/models"
)

// ActivityLogStore implements store.ActivityLogStore using PostgreSQL.
type ActivityLogStore struct {
	pool *pgxpool.Pool
}

// NewActivityLogStore creates a new PostgreSQL-backed activity log.
func NewActivityLogStore(pool *pgxpool.Pool) *ActivityLogStore {
	return &ActivityLogStore{pool: pool}
}

func (s *ActivityLogStore) Append(ctx context.Context, entry *models.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, type, message, actor_user_id, organization_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.pool.Exec(ctx, query,
		entry.ID,
		entry.Type,
		entry.Message,
		entry.ActorUserID,
		entry.OrganizationID,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append activity log: %w", mapPostgresError(err))
	}
	return nil
}

// Latest returns up to limit entries, newest first. Entries created in the
// same instant are ordered by id, which is time-ordered for UUIDv7.
func (s *ActivityLogStore) Latest(ctx context.Context, limit int) ([]*models.ActivityLog, error) {
	query := `
		SELECT id, type, message, actor_user_id, organization_id, created_at
		FROM activity_logs
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := s.pool.Query(ctx, query, max(limit, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", mapPostgresError(err))
	}
	defer rows.Close()

	entries := []*models.ActivityLog{}
	for rows.Next() {
		var e models.ActivityLog
		if err := rows.Scan(&e.ID, &e.Type, &e.Message, &e.ActorUserID, &e.OrganizationID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity log: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity logs: %w", err)
	}

	return entries, nil
}
