package mailer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogSender logs emails instead of delivering them.
// Use it for local development and demos.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a log-only sender.
func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

// Send logs the email and returns a random delivery id.
func (s *LogSender) Send(ctx context.Context, email *Email) (string, error) {
	id := uuid.NewString()

	names := make([]string, 0, len(email.Attachments))
	for _, a := range email.Attachments {
		names = append(names, a.Filename)
	}

	s.log.InfoContext(ctx, "email not delivered (log transport)",
		slog.String("delivery_id", id),
		slog.String("to", email.To),
		slog.Any("cc", email.CC),
		slog.Any("bcc", email.BCC),
		slog.String("subject", email.Subject),
		slog.String("text", email.Text),
		slog.Any("attachments", names),
	)

	return id, nil
}
