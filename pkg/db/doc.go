// Package db connects to PostgreSQL with pgx and applies goose migrations.
//
//	pool, err := db.Connect(ctx, cfg.Database)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := db.Migrate(ctx, pool, records.Migrations, cfg.Database.MigrationsTable, log); err != nil {
//		return err
//	}
//
// Connect retries on startup and pings the pool before returning it.
// Healthcheck and Shutdown return closures for readiness probes and
// graceful-shutdown hooks.
package db
