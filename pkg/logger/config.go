package logger

import (
	"log/slog"
	"strings"
)

// Config holds logger configuration.
type Config struct {
	Level  string       `env:"LEVEL" envDefault:"info"`
	Format string       `env:"FORMAT" envDefault:"json"` // json or text
	Sentry SentryConfig `envPrefix:"SENTRY_"`
}

// SentryConfig enables forwarding warnings and errors to Sentry.
// An empty DSN disables the integration.
type SentryConfig struct {
	DSN         string `env:"DSN"`
	Environment string `env:"ENVIRONMENT" envDefault:"production"`
	// ErrorsOnly limits Sentry log forwarding to error level; warnings stay on stdout.
	ErrorsOnly bool `env:"ERRORS_ONLY"`
}

// ParseLevel converts a level name to slog.Level. Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
