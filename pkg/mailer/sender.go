package mailer

import "context"

// Sender is the single capability every mail transport implements.
type Sender interface {
	// Send delivers the email and returns the provider's delivery id.
	// The email has already been validated by Mailer.
	Send(ctx context.Context, email *Email) (string, error)
}

// Verifier is implemented by transports that can check connectivity
// without sending anything (e.g. an SMTP dial + auth).
type Verifier interface {
	Verify(ctx context.Context) error
}
