// Package keyword implements the deterministic keyword-to-action resolution
// engine: text normalization, priority-ordered matching and reply building.
package keyword

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a trigger phrase or user input for matching:
// NFKC unicode normalization (fullwidth forms collapse to halfwidth),
// lowercase, and removal of all whitespace. Whitespace is stripped rather
// than collapsed so "奉香 簽到" and "奉香簽到" compare equal.
// Normalize is idempotent.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
