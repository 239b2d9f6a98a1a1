package smtp

import (
	"bytes"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/mle-ats/assignmail/pkg/mailer"
)

// BuildMessage converts a composed email into a MIME message.
// Attachments must already be in byte form (see mailer.ResolveAttachments).
func BuildMessage(from string, email *mailer.Email) (*gomail.Msg, error) {
	m := gomail.NewMsg()

	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("smtp: invalid sender %q: %w", from, err)
	}
	if err := m.To(email.To); err != nil {
		return nil, fmt.Errorf("smtp: invalid recipient %q: %w", email.To, err)
	}
	if len(email.CC) > 0 {
		if err := m.Cc(email.CC...); err != nil {
			return nil, fmt.Errorf("smtp: invalid cc: %w", err)
		}
	}
	if len(email.BCC) > 0 {
		if err := m.Bcc(email.BCC...); err != nil {
			return nil, fmt.Errorf("smtp: invalid bcc: %w", err)
		}
	}
	if email.ReplyTo != "" {
		if err := m.ReplyTo(email.ReplyTo); err != nil {
			return nil, fmt.Errorf("smtp: invalid reply-to: %w", err)
		}
	}
	for k, v := range email.Headers {
		m.SetGenHeader(gomail.Header(k), v)
	}

	m.Subject(email.Subject)
	m.SetMessageID()

	switch {
	case email.Text != "" && email.HTML != "":
		m.SetBodyString(gomail.TypeTextPlain, email.Text)
		m.AddAlternativeString(gomail.TypeTextHTML, email.HTML)
	case email.HTML != "":
		m.SetBodyString(gomail.TypeTextHTML, email.HTML)
	default:
		m.SetBodyString(gomail.TypeTextPlain, email.Text)
	}

	for _, a := range email.Attachments {
		if a.IsReference() {
			return nil, fmt.Errorf("smtp: attachment %q was not resolved", a.Filename)
		}
		var opts []gomail.FileOption
		if a.ContentType != "" {
			opts = append(opts, gomail.WithFileContentType(gomail.ContentType(a.ContentType)))
		}
		if err := m.AttachReader(a.Filename, bytes.NewReader(a.Content), opts...); err != nil {
			return nil, fmt.Errorf("smtp: failed to attach %q: %w", a.Filename, err)
		}
	}

	return m, nil
}
