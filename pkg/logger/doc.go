// Package logger builds the service's *slog.Logger.
//
// Output is JSON (or text) on stdout. Context extractors inject request-scoped
// attributes such as the request id into every record:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "email sent", slog.String("delivery_id", id))
//
// When a Sentry DSN is configured, warnings and errors are mirrored to Sentry
// and errors create issues. If Sentry cannot be initialised the logger keeps
// writing to stdout.
package logger
