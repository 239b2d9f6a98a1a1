package smtp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gomail "github.com/wneessen/go-mail"

	"github.com/mle-ats/assignmail/pkg/mailer"
)

// ErrMissingCredentials is returned by New when the SMTP login is incomplete.
var ErrMissingCredentials = errors.New("smtp: username and password are required")

// Sender implements mailer.Sender over an authenticated SMTP relay.
// Every Send dials its own connection, so a Sender is safe for concurrent use.
type Sender struct {
	httpClient *http.Client
	options    []gomail.Option
	config     Config
}

// New creates a new SMTP sender. No connection is made until Send or Verify.
func New(cfg Config) (*Sender, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, ErrMissingCredentials
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	}
	if cfg.Port == 465 {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSMandatory))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, gomail.WithTimeout(cfg.Timeout))
	}

	s := &Sender{
		httpClient: &http.Client{Timeout: cfg.Timeout * 2},
		options:    opts,
		config:     cfg,
	}

	// Surface option errors (bad port, empty host) at startup.
	if _, err := s.newClient(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Sender) newClient() (*gomail.Client, error) {
	client, err := gomail.NewClient(s.config.Host, s.options...)
	if err != nil {
		return nil, fmt.Errorf("smtp: failed to create client: %w", err)
	}
	return client, nil
}

// Send implements mailer.Sender. The delivery id is the generated Message-ID.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	attachments, err := mailer.ResolveAttachments(ctx, s.httpClient, email.Attachments, s.config.MaxAttachmentSize)
	if err != nil {
		return "", err
	}

	resolved := *email
	resolved.Attachments = attachments

	msg, err := BuildMessage(mailer.Recipient(s.config.SenderName, s.config.SenderEmail()), &resolved)
	if err != nil {
		return "", err
	}

	client, err := s.newClient()
	if err != nil {
		return "", err
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return "", fmt.Errorf("smtp: failed to send email: %w", err)
	}

	return msg.GetMessageID(), nil
}

// Verify dials and authenticates against the relay without sending.
func (s *Sender) Verify(ctx context.Context) error {
	client, err := s.newClient()
	if err != nil {
		return err
	}
	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp: failed to connect: %w", err)
	}
	return client.Close()
}
