package similarity

import (
	"strings"
	"unicode"
)

// Normalize lowercases s and strips whitespace and punctuation, so that
// guesses differing only in spacing, case or special characters compare
// equal to the answer.
func Normalize(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
