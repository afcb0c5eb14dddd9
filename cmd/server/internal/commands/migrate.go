package commands

import (
	"context"
	"fmt"

	"github.com/nazmedical/portal/internal/logger"
	postgresstore "github.com/nazmedical/portal/internal/store/postgres"
)

// MigrateCmd applies pending PostgreSQL migrations and exits.
type MigrateCmd struct {
	Postgres PostgresFlags `embed:"" prefix:"postgres-"`
}

func (c *MigrateCmd) Run(ctx context.Context, globals *Globals) error {
	log := logger.Setup(globals.Debug)

	if err := c.Postgres.Validate(); err != nil {
		return err
	}

	cfg := c.Postgres.poolConfig()
	cfg.AutoMigrate = false
	pool, err := postgresstore.NewPool(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer pool.Close()

	if err := postgresstore.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	log.Info().Msg("Migrations applied")
	return nil
}
