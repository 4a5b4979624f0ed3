// Package normalize canonicalizes free-text product descriptions before
// fuzzy comparison. Invoice OCR output and catalog rows disagree on casing,
// punctuation, and spacing far more often than on the words themselves.
package normalize

import (
	"regexp"
	"strings"
)

var (
	reNonAlnum   = regexp.MustCompile(`[^A-Z0-9 ]`)
	reMultiSpace = regexp.MustCompile(`\s+`)
)

// Text uppercases s, replaces every rune that is not an ASCII letter, digit,
// or space with a single space, collapses whitespace runs, and trims.
// Total and idempotent: Text(Text(s)) == Text(s).
func Text(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToUpper(s)
	s = reNonAlnum.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
