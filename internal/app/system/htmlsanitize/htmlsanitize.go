// Package htmlsanitize strips markup from free-text applicant fields.
//
// Notes and considering-reason values arrive from staff through the
// tracking UI and are stored verbatim, so anything that survives here is
// later rendered as-is. The policy is strict: no tags at all, only the
// text content survives.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Sanitize returns s with all HTML markup removed. Script and style
// bodies are dropped entirely, not just their tags. Entities introduced
// by the stripping pass are decoded again so stored values carry no
// escaping artifacts.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(policy.Sanitize(s))
}

// IsPlainText reports whether s contains no markup — that is, whether
// Sanitize would return it unchanged apart from whitespace.
func IsPlainText(s string) bool {
	return !strings.Contains(s, "<") || !strings.Contains(s, ">")
}
