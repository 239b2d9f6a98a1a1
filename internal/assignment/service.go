package assignment

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mle-ats/assignmail/pkg/logger"
	"github.com/mle-ats/assignmail/pkg/mailer"
)

// Transport delivers composed emails; *mailer.Mailer implements it.
type Transport interface {
	Send(ctx context.Context, email *mailer.Email) (string, error)
}

// Service runs the resolve, compose, send pipeline.
type Service struct {
	resolver  *Resolver
	composer  *Composer
	transport Transport
	log       *slog.Logger
}

// NewService wires a resolver, a composer and a transport.
func NewService(resolver *Resolver, composer *Composer, transport Transport, log *slog.Logger) *Service {
	if log == nil {
		log = logger.NewNope()
	}
	return &Service{
		resolver:  resolver,
		composer:  composer,
		transport: transport,
		log:       log,
	}
}

// Compose resolves the records and returns the email without sending it.
func (s *Service) Compose(ctx context.Context, recruiterID, jobID string) (mailer.Email, error) {
	res, err := s.resolver.Resolve(ctx, recruiterID, jobID)
	if err != nil {
		return mailer.Email{}, err
	}
	return s.composer.Compose(*res), nil
}

// Send composes the assignment email and hands it to the transport.
// Returns the transport's delivery id.
func (s *Service) Send(ctx context.Context, recruiterID, jobID string) (string, error) {
	email, err := s.Compose(ctx, recruiterID, jobID)
	if err != nil {
		s.log.WarnContext(ctx, "assignment email not composed",
			slog.String("recruiter_id", recruiterID),
			slog.String("job_id", jobID),
			slog.Any("error", err),
		)
		return "", err
	}

	id, err := s.transport.Send(ctx, &email)
	if err != nil {
		return "", errors.Join(ErrDelivery, err)
	}

	s.log.InfoContext(ctx, "assignment email sent",
		slog.String("recruiter_id", recruiterID),
		slog.String("job_id", jobID),
		slog.String("delivery_id", id),
	)

	return id, nil
}
