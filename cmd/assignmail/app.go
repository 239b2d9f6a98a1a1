package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mle-ats/assignmail/internal/assignment"
	"github.com/mle-ats/assignmail/internal/config"
	"github.com/mle-ats/assignmail/internal/records"
	"github.com/mle-ats/assignmail/middlewares"
	"github.com/mle-ats/assignmail/pkg/db"
	"github.com/mle-ats/assignmail/pkg/health"
	"github.com/mle-ats/assignmail/pkg/logger"
	"github.com/mle-ats/assignmail/pkg/mailer"
	"github.com/mle-ats/assignmail/pkg/mailer/gmail"
	"github.com/mle-ats/assignmail/pkg/mailer/resend"
	"github.com/mle-ats/assignmail/pkg/mailer/smtp"
	"github.com/mle-ats/assignmail/pkg/storage"
)

// app holds the wired dependencies shared by the commands.
type app struct {
	cfg      config.Config
	log      *slog.Logger
	mailer   *mailer.Mailer
	service  *assignment.Service
	checks   health.Checks
	shutdown []func(context.Context) error
}

func loadConfig(envFile string) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, newLogger(cfg), nil
}

func newLogger(cfg config.Config) *slog.Logger {
	return logger.New(cfg.Log, middlewares.RequestIDExtractor())
}

// newApp connects the records store, blob store and mail transport selected by cfg.
func newApp(ctx context.Context, cfg config.Config, log *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log, checks: health.Checks{}}

	store, err := a.openRecords(ctx)
	if err != nil {
		return nil, err
	}

	files, err := storage.Open(cfg.Storage)
	if err != nil {
		a.close(ctx)
		return nil, fmt.Errorf("open storage: %w", err)
	}
	if s3, ok := files.(*storage.S3Storage); ok {
		a.checks["storage"] = s3.Healthcheck(cfg.Assignment.Bucket)
	}

	sender, err := newSender(ctx, cfg, log)
	if err != nil {
		a.close(ctx)
		return nil, fmt.Errorf("open mail transport: %w", err)
	}
	a.mailer = mailer.New(sender, mailer.WithLogger(log))
	a.checks["mail"] = a.mailer.Verify

	composer, err := assignment.NewComposer(cfg.Assignment, mailer.NewMarkdown())
	if err != nil {
		a.close(ctx)
		return nil, err
	}

	resolver := assignment.NewResolver(store, files, cfg.Assignment.Bucket, assignment.WithResolverLogger(log))
	a.service = assignment.NewService(resolver, composer, a.mailer, log)

	return a, nil
}

func (a *app) openRecords(ctx context.Context) (records.Store, error) {
	switch a.cfg.Records.Driver {
	case config.RecordsFixtures:
		store, err := records.LoadFixtures(a.cfg.Records.FixturesFile)
		if err != nil {
			return nil, err
		}
		a.log.Info("using fixture records", slog.String("file", a.cfg.Records.FixturesFile))
		return store, nil

	case config.RecordsPostgres:
		pool, err := db.Connect(ctx, a.cfg.Database)
		if err != nil {
			return nil, err
		}
		a.checks["records"] = db.Healthcheck(pool)
		a.shutdown = append(a.shutdown, db.Shutdown(pool))
		return records.NewPostgresStore(pool), nil

	default:
		return nil, fmt.Errorf("%w: unknown records driver %q", config.ErrInvalidConfig, a.cfg.Records.Driver)
	}
}

func newSender(ctx context.Context, cfg config.Config, log *slog.Logger) (mailer.Sender, error) {
	switch cfg.Mail.Transport {
	case config.TransportSMTP:
		return smtp.New(cfg.SMTP)
	case config.TransportResend:
		return resend.New(cfg.Resend)
	case config.TransportGmail:
		return gmail.New(ctx, cfg.Gmail)
	case config.TransportLog:
		return mailer.NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("%w: unknown mail transport %q", config.ErrInvalidConfig, cfg.Mail.Transport)
	}
}

// close runs the registered shutdown hooks; used when a command exits
// without the server runtime.
func (a *app) close(ctx context.Context) {
	var errs []error
	for _, fn := range a.shutdown {
		errs = append(errs, fn(ctx))
	}
	if err := errors.Join(errs...); err != nil {
		a.log.Error("cleanup failed", slog.Any("error", err))
	}
}
