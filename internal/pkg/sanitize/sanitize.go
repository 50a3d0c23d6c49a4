// Package sanitize neutralizes the characters that break outbound message
// templates. It is not an HTML sanitizer: only < > " ' / are escaped.
package sanitize

import "strings"

var replacer = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// Text escapes the five template-unsafe characters and trims surrounding whitespace.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(replacer.Replace(s))
}
