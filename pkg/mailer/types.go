package mailer

import "net/mail"

// Tags represents email tags/categories that can be either presence-only
// (using struct{}{}) or key-value pairs (using string values).
// Providers that support tags convert them; the others ignore them.
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns `"Name" <email>` if name is provided, otherwise just email.
// Non-ASCII names are RFC 2047 encoded.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return (&mail.Address{Name: name, Address: email}).String()
}

// Email is a fully composed, transport-agnostic message.
// It is the only value handed to a Sender.
type Email struct {
	Headers     map[string]string // Custom headers
	Tags        Tags              // Provider-specific tags/categories
	To          string            // Primary recipient (required)
	Subject     string            // Email subject
	Text        string            // Plain text body
	HTML        string            // Optional HTML body
	ReplyTo     string            // Reply-to address
	CC          []string          // Carbon copy recipients
	BCC         []string          // Blind carbon copy recipients
	Attachments []Attachment      // File attachments
}

// Attachment is either a byte attachment (Content non-nil, possibly empty) or
// a reference attachment (Content nil, URL set) whose bytes are fetched by the
// transport.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	URL         string // Source URL for reference attachments
	Content     []byte // Raw file content
}

// IsReference reports whether the attachment carries a URL instead of bytes.
func (a Attachment) IsReference() bool {
	return a.Content == nil && a.URL != ""
}
