// Package slug derives URL-safe identifiers from post titles.
package slug

import (
	"regexp"
	"strings"
)

// MaxLength bounds slug length; the content store indexes slugs and the
// original pipeline capped them at 100 characters.
const MaxLength = 100

var (
	// Punctuation, including in-word hyphens, is deleted outright so
	// "E-commerce" slugs as "ecommerce" rather than "e-commerce".
	invalidChars = regexp.MustCompile(`[^\p{L}\p{N}\s_]`)
	separators   = regexp.MustCompile(`[\s_]+`)
)

// Make builds a slug from a title: lowercase, delete everything that is not
// a letter, digit, whitespace or underscore, collapse separator runs into
// single hyphens, trim hyphens, and truncate. Truncation can expose a
// trailing hyphen, so the trim is applied once more after it. Deterministic
// for a given title; uniqueness across titles is the content store's concern.
func Make(title string) string {
	s := strings.ToLower(title)
	s = invalidChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if r := []rune(s); len(r) > MaxLength {
		s = string(r[:MaxLength])
	}
	return strings.Trim(s, "-")
}
