// Package slug derives URL-safe article slugs from titles.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// disallowed matches anything outside lowercase latin, digits, hyphens
	// and the CJK unified ideograph block.
	disallowed  = regexp.MustCompile(`[^a-z0-9\x{4e00}-\x{9fa5}-]+`)
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts a title into a URL-safe slug: accents are stripped via NFD
// decomposition, the result is lowercased, whitespace becomes hyphens, and
// every remaining character outside [a-z0-9-] and CJK ideographs is removed.
// Returns "" when nothing usable survives; callers must supply a fallback.
func From(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, title)
	if err != nil {
		s = title
	}

	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '_' || r == '/' {
			return '-'
		}
		return r
	}, s)

	s = disallowed.ReplaceAllString(s, "")
	s = multiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
