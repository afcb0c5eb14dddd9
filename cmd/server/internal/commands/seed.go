package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/nazmedical/portal/internal/logger"
	"github.com/nazmedical/portal/internal/seed"
	"github.com/nazmedical/portal/internal/tenant"
)

// SeedCmd loads website content from a YAML file.
type SeedCmd struct {
	File           string     `help:"seed file" default:"content.yaml" type:"existingfile"`
	OrganizationID string     `help:"organization to seed, defaults to the default organization" env:"NAZ_SEED_ORGANIZATION_ID"`
	BaseURL        string     `help:"public base URL of the portal" default:"http://localhost:8080" env:"NAZ_BASE_URL"`
	Store          StoreFlags `embed:""`
	Blob           BlobFlags  `embed:""`
}

func (c *SeedCmd) Run(ctx context.Context, globals *Globals) error {
	log := logger.Setup(globals.Debug)

	var orgID *uuid.UUID
	if c.OrganizationID != "" {
		id, err := uuid.Parse(c.OrganizationID)
		if err != nil {
			return fmt.Errorf("invalid organization id: %w", err)
		}
		orgID = &id
	}

	f, err := seed.Load(c.File)
	if err != nil {
		return err
	}

	stores, closeStores, err := c.Store.open(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	blobs, err := c.Blob.open(ctx, c.BaseURL)
	if err != nil {
		return err
	}

	seeder := seed.NewSeeder(stores, tenant.NewProvisioner(stores.Organizations), blobs, filepath.Dir(c.File))
	sum, err := seeder.Apply(ctx, f, orgID)
	if err != nil {
		return err
	}

	log.Info().
		Int("products", sum.Products).
		Int("careers", sum.Careers).
		Int("certifications", sum.Certifications).
		Int("banners", sum.Banners).
		Msg("Seed complete")
	return nil
}
