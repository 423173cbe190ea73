package nlp

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	disallowed    = regexp.MustCompile(`[^a-z0-9 ?!.]`)
)

// Normalize lower-cases text, collapses whitespace runs to single spaces,
// trims, and strips every character outside [a-z0-9 ?!.]. Always returns a
// string, possibly empty.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = whitespaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
	return disallowed.ReplaceAllString(text, "")
}
