// Package normalize canonicalizes free-text tokens so that extracted rules
// and aircraft configurations can be compared reliably.
package normalize

import (
	"regexp"
	"strings"
)

// Runs of whitespace, hyphens and en-dashes all collapse to one hyphen.
var separators = regexp.MustCompile(`[\s\x{2013}-]+`)

// Model canonicalizes an aircraft model designator for comparison: trims
// surrounding whitespace, collapses internal separators to a single hyphen
// and upper-cases the result. It is pure, total and idempotent; input with
// no recognized separators comes back upper-cased unchanged.
//
// "Boeing 737-800" and "737-800" normalize to "BOEING-737-800" and
// "737-800", so the former always ends with the latter.
func Model(s string) string {
	s = strings.TrimSpace(s)
	s = separators.ReplaceAllString(s, "-")
	return strings.ToUpper(s)
}
