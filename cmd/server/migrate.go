package main

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agencypulse/kpi-dashboard/internal/infrastructure/config"
	"github.com/agencypulse/kpi-dashboard/internal/infrastructure/db/migrations"
	"github.com/agencypulse/kpi-dashboard/internal/infrastructure/db/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

func init() {
	migrateCmd.AddCommand(
		migrationCommand("up", "Apply all pending migrations", migrations.Up),
		migrationCommand("down", "Roll back the most recent migration", migrations.Down),
		migrationCommand("status", "Print the state of every migration", migrations.Status),
	)
}

type migrationFunc func(ctx context.Context, db *sql.DB, logger zerolog.Logger) error

func migrationCommand(use, short string, run migrationFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, log, err := bootstrap(ctx)
			if err != nil {
				return err
			}

			db, err := postgres.Connect(ctx, postgresConfig(cfg), log)
			if err != nil {
				return err
			}
			defer db.Close()

			return run(ctx, db.DB, log)
		},
	}
}

func postgresConfig(cfg *config.Config) postgres.Config {
	return postgres.Config{
		URL:             cfg.Postgres.URL,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
}
