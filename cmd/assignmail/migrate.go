package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mle-ats/assignmail/internal/config"
	"github.com/mle-ats/assignmail/internal/records/migrations"
	"github.com/mle-ats/assignmail/pkg/db"
)

func newMigrateCmd(envFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the users/jobs/clients schema for local and test databases",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, log, err := loadDatabaseConfig(*envFile)
				if err != nil {
					return err
				}

				pool, err := db.Connect(cmd.Context(), cfg.Database)
				if err != nil {
					return err
				}
				defer pool.Close()

				log.Info("running migrations")
				if err := db.Migrate(cmd.Context(), pool, migrations.FS, cfg.Database.MigrationsTable, log); err != nil {
					return err
				}
				log.Info("migrations completed")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the current schema version",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, log, err := loadDatabaseConfig(*envFile)
				if err != nil {
					return err
				}

				pool, err := db.Connect(cmd.Context(), cfg.Database)
				if err != nil {
					return err
				}
				defer pool.Close()

				version, err := db.MigrationStatus(cmd.Context(), pool, migrations.FS, cfg.Database.MigrationsTable, log)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", version)
				return err
			},
		},
	)

	return cmd
}

// loadDatabaseConfig only needs the database keys, so transport and storage
// settings are not validated for migrations.
func loadDatabaseConfig(envFile string) (config.Config, *slog.Logger, error) {
	cfg, err := config.Read(envFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	if cfg.Database.ConnectionString == "" {
		return config.Config{}, nil, fmt.Errorf("%w: DATABASE_CONN_URL is required", config.ErrInvalidConfig)
	}
	return cfg, newLogger(cfg), nil
}
