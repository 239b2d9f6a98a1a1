package mailer

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mle-ats/assignmail/pkg/logger"
)

// Mailer validates composed emails and hands them to the configured Sender.
type Mailer struct {
	sender Sender
	log    *slog.Logger
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithLogger sets the logger used for delivery logs.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mailer) {
		if l != nil {
			m.log = l
		}
	}
}

// New creates a new Mailer around the given sender.
func New(sender Sender, opts ...Option) *Mailer {
	m := &Mailer{
		sender: sender,
		log:    logger.NewNope(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send validates the email and delivers it through the sender.
// When only an HTML body is present, a plain text alternative is derived from it.
// Returns the provider delivery id.
func (m *Mailer) Send(ctx context.Context, email *Email) (string, error) {
	if err := Validate(email); err != nil {
		return "", err
	}

	if strings.TrimSpace(email.Text) == "" && email.HTML != "" {
		email.Text = PlainText(email.HTML)
	}

	id, err := m.sender.Send(ctx, email)
	if err != nil {
		m.log.ErrorContext(ctx, "email delivery failed",
			slog.String("to", email.To),
			slog.String("subject", email.Subject),
			slog.Any("error", err),
		)
		return "", errors.Join(ErrSendFailed, err)
	}

	m.log.InfoContext(ctx, "email sent",
		slog.String("to", email.To),
		slog.Any("cc", email.CC),
		slog.String("subject", email.Subject),
		slog.Int("attachments", len(email.Attachments)),
		slog.String("delivery_id", id),
	)

	return id, nil
}

// Verify checks transport connectivity when the sender supports it.
// Senders without a connectivity check are assumed healthy.
func (m *Mailer) Verify(ctx context.Context) error {
	v, ok := m.sender.(Verifier)
	if !ok {
		return nil
	}
	if err := v.Verify(ctx); err != nil {
		return errors.Join(ErrVerifyFailed, err)
	}
	return nil
}

// Validate checks that an email carries everything a transport needs.
func Validate(email *Email) error {
	if email == nil || strings.TrimSpace(email.To) == "" {
		return ErrNoRecipient
	}
	if strings.TrimSpace(email.Subject) == "" {
		return ErrNoSubject
	}
	if strings.TrimSpace(email.Text) == "" && strings.TrimSpace(email.HTML) == "" {
		return ErrNoContent
	}
	for _, a := range email.Attachments {
		if a.Filename == "" || (a.Content == nil && a.URL == "") {
			return ErrInvalidAttachment
		}
	}
	return nil
}
