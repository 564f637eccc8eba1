// Package htmlsanitize cleans user-supplied text before it is forwarded to
// the Garden API.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// PlainText strips every tag and returns the remaining text, trimmed.
// Entities produced by the sanitizer are decoded so push notifications
// show "&" rather than "&amp;".
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}
