// Package normalize produces the canonical form of a query string.
package normalize

import (
	"strings"
	"unicode"
)

// Normalize lowercases the input, trims it, and collapses runs of whitespace
// and punctuation into a single space. Decimal separators between two digits
// are kept ("1,5л" stays one token), so the numeric extractor downstream sees
// the value intact. Normalize is a pure, total function: Normalize(Normalize(s))
// == Normalize(s) for any s.
func Normalize(s string) string {
	runes := []rune(strings.ToLower(s))

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false

	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSep = false
			b.WriteRune(r)
		case isDecimalSeparator(r, runes, i):
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}

	return b.String()
}

// isDecimalSeparator reports whether runes[i] is a comma or dot between two
// digits.
func isDecimalSeparator(r rune, runes []rune, i int) bool {
	if r != ',' && r != '.' {
		return false
	}
	if i == 0 || i == len(runes)-1 {
		return false
	}
	return unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1])
}
