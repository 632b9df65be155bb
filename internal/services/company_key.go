package services

import (
	"strings"
	"unicode"
)

// CanonicalCompanyKey reduces a company name to the form dedup matching
// runs against: lower-cased, punctuation replaced with spaces, whitespace
// collapsed. "Acme Corp, Inc." and "ACME  corp inc" both map to
// "acme corp inc". The result contains only letters, digits and single
// spaces, so it is safe to embed in a LIKE pattern without escaping.
func CanonicalCompanyKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastSpace := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}

	return strings.TrimRight(b.String(), " ")
}
