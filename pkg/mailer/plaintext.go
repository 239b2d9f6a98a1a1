package mailer

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	policyOnce   sync.Once

	blockTagRe   = regexp.MustCompile(`(?i)<\s*(br\s*/?|/p|/div|/tr|/h[1-6]|/li)\s*>`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// PlainText derives a plain text alternative from an HTML body.
// Block-level boundaries become newlines; every tag is stripped.
func PlainText(body string) string {
	policyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})

	withBreaks := blockTagRe.ReplaceAllString(body, "$0\n")
	stripped := html.UnescapeString(strictPolicy.Sanitize(withBreaks))

	lines := strings.Split(stripped, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return strings.TrimSpace(blankLinesRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}
