package gmail

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/mle-ats/assignmail/pkg/mailer"
	"github.com/mle-ats/assignmail/pkg/mailer/smtp"
)

var (
	// ErrMissingSender is returned when no sender address is configured.
	ErrMissingSender = errors.New("gmail: sender address is required")

	// ErrMissingCredentials is returned when neither credential form is configured.
	ErrMissingCredentials = errors.New("gmail: credentials json or client id, secret and refresh token are required")
)

// Sender implements mailer.Sender using the Gmail API.
type Sender struct {
	service    *gmailapi.Service
	httpClient *http.Client
	config     Config
}

// New creates a Gmail API sender.
func New(ctx context.Context, cfg Config) (*Sender, error) {
	if cfg.SenderEmail == "" {
		return nil, ErrMissingSender
	}

	var client *http.Client
	switch {
	case cfg.usesServiceAccount():
		jwtConfig, err := google.JWTConfigFromJSON([]byte(cfg.CredentialsJSON), gmailapi.GmailSendScope)
		if err != nil {
			return nil, fmt.Errorf("gmail: failed to parse credentials: %w", err)
		}
		// Impersonate the sender mailbox.
		jwtConfig.Subject = cfg.SenderEmail
		client = jwtConfig.Client(ctx)
	case cfg.usesRefreshToken():
		oauthCfg := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gmailapi.GmailSendScope},
		}
		client = oauthCfg.Client(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
	default:
		return nil, ErrMissingCredentials
	}

	svc, err := gmailapi.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("gmail: failed to create service: %w", err)
	}

	return &Sender{
		service:    svc,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		config:     cfg,
	}, nil
}

// Send implements mailer.Sender. The delivery id is the Gmail message id.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	raw, err := s.encode(ctx, email)
	if err != nil {
		return "", err
	}

	sent, err := s.service.Users.Messages.Send("me", &gmailapi.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gmail: failed to send email: %w", err)
	}

	return sent.Id, nil
}

// encode builds the RFC 5322 message and returns it base64url encoded.
func (s *Sender) encode(ctx context.Context, email *mailer.Email) (string, error) {
	attachments, err := mailer.ResolveAttachments(ctx, s.httpClient, email.Attachments, s.config.MaxAttachmentSize)
	if err != nil {
		return "", err
	}

	resolved := *email
	resolved.Attachments = attachments

	msg, err := smtp.BuildMessage(mailer.Recipient(s.config.SenderName, s.config.SenderEmail), &resolved)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("gmail: failed to encode message: %w", err)
	}

	return base64.URLEncoding.EncodeToString(buf.Bytes()), nil
}
