package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/nazmedical/portal/cmd/server/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		Debug   bool `help:"Enable debug mode." env:"NAZ_DEBUG"`
		Version kong.VersionFlag
		Serve   commands.ServeCmd   `cmd:"" default:"withargs" help:"Start the server (website + API)"`
		Migrate commands.MigrateCmd `cmd:"" help:"Apply PostgreSQL migrations"`
		Seed    commands.SeedCmd    `cmd:"" help:"Load website content from a YAML file"`
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Name("naz-portal"),
		kong.Description("NAZ Medical website and staff portal."),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version})
	cmd.FatalIfErrorf(err)
}
