// Package config assembles the process configuration from the environment.
// Each package owns its Config struct; this package nests them under their
// env prefixes and validates the combination.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mle-ats/assignmail/internal/assignment"
	"github.com/mle-ats/assignmail/pkg/db"
	"github.com/mle-ats/assignmail/pkg/logger"
	"github.com/mle-ats/assignmail/pkg/mailer/gmail"
	"github.com/mle-ats/assignmail/pkg/mailer/resend"
	"github.com/mle-ats/assignmail/pkg/mailer/smtp"
	"github.com/mle-ats/assignmail/pkg/storage"
)

// Records drivers.
const (
	RecordsPostgres = "postgres"
	RecordsFixtures = "fixtures"
)

// Mail transports.
const (
	TransportSMTP   = "smtp"
	TransportResend = "resend"
	TransportGmail  = "gmail"
	TransportLog    = "log"
)

// ErrInvalidConfig is returned when the environment describes an unusable setup.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete process configuration.
type Config struct {
	HTTP       HTTPConfig        `envPrefix:"HTTP_"`
	Records    RecordsConfig     `envPrefix:"RECORDS_"`
	Database   db.Config         `envPrefix:"DATABASE_"`
	Storage    storage.Config    `envPrefix:"STORAGE_"`
	Mail       MailConfig        `envPrefix:"MAIL_"`
	SMTP       smtp.Config       `envPrefix:"SMTP_"`
	Resend     resend.Config     `envPrefix:"RESEND_"`
	Gmail      gmail.Config      `envPrefix:"GMAIL_"`
	Log        logger.Config     `envPrefix:"LOG_"`
	Assignment assignment.Config // unprefixed: JD_BUCKET, PORTAL_URL, MAIL_STANDING_CC, MAIL_TEAM_NAME

	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Addr            string        `env:"ADDR" envDefault:":4000"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	MaxBodySize     int64         `env:"MAX_BODY_SIZE" envDefault:"10485760"`
}

// RecordsConfig selects where recruiter, job and client rows come from.
type RecordsConfig struct {
	Driver       string `env:"DRIVER" envDefault:"postgres"`
	FixturesFile string `env:"FIXTURES_FILE" envDefault:"./fixtures.yaml"`
}

// MailConfig selects the mail transport.
type MailConfig struct {
	Transport string `env:"TRANSPORT" envDefault:"smtp"`
}

// Load reads the environment like Read and validates the result.
func Load(envFiles ...string) (Config, error) {
	cfg, err := Read(envFiles...)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read loads optional .env files and parses the environment without
// validating driver requirements. Variables already set in the process win
// over the files.
func Read(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// A missing file is normal outside local development.
		_ = godotenv.Load(f)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Parse builds a Config from an explicit variable set. Used by tests and tools.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks driver names and the keys the selected drivers require.
func (c Config) Validate() error {
	var errs []error

	switch c.Records.Driver {
	case RecordsPostgres:
		if c.Database.ConnectionString == "" {
			errs = append(errs, errors.New("DATABASE_CONN_URL is required for the postgres records driver"))
		}
	case RecordsFixtures:
		if c.Records.FixturesFile == "" {
			errs = append(errs, errors.New("RECORDS_FIXTURES_FILE is required for the fixtures records driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown RECORDS_DRIVER %q", c.Records.Driver))
	}

	switch c.Storage.Driver {
	case "s3":
		if c.Storage.AccessKey == "" || c.Storage.SecretKey == "" {
			errs = append(errs, errors.New("STORAGE_ACCESS_KEY and STORAGE_SECRET_KEY are required for the s3 storage driver"))
		}
	case "fs":
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver))
	}

	switch c.Mail.Transport {
	case TransportSMTP:
		if c.SMTP.Username == "" || c.SMTP.Password == "" {
			errs = append(errs, errors.New("SMTP_USER and SMTP_PASS are required for the smtp transport"))
		}
	case TransportResend:
		if c.Resend.APIKey == "" || c.Resend.SenderEmail == "" {
			errs = append(errs, errors.New("RESEND_API_KEY and RESEND_FROM_EMAIL are required for the resend transport"))
		}
	case TransportGmail:
		if c.Gmail.SenderEmail == "" {
			errs = append(errs, errors.New("GMAIL_FROM_EMAIL is required for the gmail transport"))
		}
		if c.Gmail.CredentialsJSON == "" && (c.Gmail.ClientID == "" || c.Gmail.ClientSecret == "" || c.Gmail.RefreshToken == "") {
			errs = append(errs, errors.New("GMAIL_CREDENTIALS_JSON or GMAIL_CLIENT_ID, GMAIL_CLIENT_SECRET and GMAIL_REFRESH_TOKEN are required for the gmail transport"))
		}
	case TransportLog:
	default:
		errs = append(errs, fmt.Errorf("unknown MAIL_TRANSPORT %q", c.Mail.Transport))
	}

	if c.Assignment.PortalURL == "" {
		errs = append(errs, errors.New("PORTAL_URL must not be empty"))
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}
