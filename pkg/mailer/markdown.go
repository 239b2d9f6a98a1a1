package mailer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

// Markdown converts short markdown fragments (paragraphs, emphasis, links,
// [!button|Label](URL) call-to-action buttons) into email-safe HTML.
// Raw HTML in the source is not passed through.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown creates a markdown converter with the button extension.
func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(goldmark.WithExtensions(NewButtonExtension())),
	}
}

// Render converts a markdown fragment to HTML.
func (m *Markdown) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("mailer: failed to convert markdown: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// markdownSpecial lists the ASCII punctuation CommonMark lets us backslash-escape.
const markdownSpecial = "\\`*_{}[]()#+-.!|<>&~"

// EscapeMarkdown backslash-escapes markdown syntax so that user-supplied
// values are rendered literally.
func EscapeMarkdown(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(markdownSpecial, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
