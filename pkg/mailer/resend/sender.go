package resend

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/resend/resend-go/v3"

	"github.com/mle-ats/assignmail/pkg/mailer"
)

// ErrMissingAPIKey is returned by New when no API key is configured.
var ErrMissingAPIKey = errors.New("resend: api key is required")

// Sender implements mailer.Sender using the Resend API.
// Reference attachments are passed through as remote paths; Resend fetches them.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a new Resend sender.
func New(cfg Config) (*Sender, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.SenderEmail == "" {
		return nil, errors.New("resend: sender email is required")
	}
	return &Sender{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	resp, err := s.client.Emails.SendWithContext(ctx, s.buildRequest(email))
	if err != nil {
		return "", fmt.Errorf("resend: failed to send email: %w", err)
	}
	return resp.Id, nil
}

func (s *Sender) buildRequest(email *mailer.Email) *resend.SendEmailRequest {
	req := &resend.SendEmailRequest{
		From:    mailer.Recipient(s.config.SenderName, s.config.SenderEmail),
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Cc:      email.CC,
		Bcc:     email.BCC,
		Headers: email.Headers,
	}

	if len(email.Attachments) > 0 {
		req.Attachments = convertAttachments(email.Attachments)
	}
	if len(email.Tags) > 0 {
		req.Tags = convertTags(email.Tags)
	}

	return req
}

func convertAttachments(attachments []mailer.Attachment) []*resend.Attachment {
	out := make([]*resend.Attachment, 0, len(attachments))
	for _, a := range attachments {
		att := &resend.Attachment{Filename: a.Filename, ContentType: a.ContentType}
		if a.IsReference() {
			// Resend downloads remote paths itself.
			att.Path = a.URL
		} else {
			att.Content = a.Content
		}
		out = append(out, att)
	}
	return out
}

// convertTags maps tags to Resend tags, sorted by name for stable requests.
// Presence-only tags are sent with the value "true".
func convertTags(tags mailer.Tags) []resend.Tag {
	names := slices.Sorted(maps.Keys(tags))
	out := make([]resend.Tag, 0, len(names))
	for _, name := range names {
		out = append(out, resend.Tag{Name: name, Value: tagValue(tags[name])})
	}
	return out
}

func tagValue(v any) string {
	switch v.(type) {
	case nil, struct{}:
		return "true"
	default:
		return fmt.Sprint(v)
	}
}
