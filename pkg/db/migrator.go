package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies all pending migrations found at the root of migrations.
// goose needs database/sql, so the pgx pool is bridged through stdlib; the
// bridge shares the pool's connections and must not be closed here.
func Migrate(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS, table string, log *slog.Logger) error {
	if err := setup(migrations, table, log); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, stdlib.OpenDBFromPool(pool), "."); err != nil {
		return errors.Join(ErrApplyMigrations, err)
	}

	return nil
}

// MigrationStatus reports the current schema version.
func MigrationStatus(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS, table string, log *slog.Logger) (int64, error) {
	if err := setup(migrations, table, log); err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersionContext(ctx, stdlib.OpenDBFromPool(pool))
	if err != nil {
		return 0, errors.Join(ErrMigrationStatus, err)
	}
	return version, nil
}

// setup configures goose's package-level state. Migrations run once per
// process from the CLI, never concurrently.
func setup(migrations fs.FS, table string, log *slog.Logger) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(&gooseLoggerAdapter{log})
	goose.SetTableName(table)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrSetDialect, err)
	}
	return nil
}

type gooseLoggerAdapter struct {
	log *slog.Logger
}

func (g *gooseLoggerAdapter) Printf(format string, args ...any) {
	g.log.Info(fmt.Sprintf(format, args...))
}

// Fatalf only logs; goose returns the error and the caller decides how to exit.
func (g *gooseLoggerAdapter) Fatalf(format string, args ...any) {
	g.log.Error(fmt.Sprintf(format, args...))
}
