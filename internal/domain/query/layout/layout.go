// Package layout detects and repairs keyboard layout mismatches: input typed
// with the wrong layout selected, producing foreign-alphabet characters at the
// physical key positions of the intended word. The repair is a pure character
// remap over a key-position table, not a language model.
package layout

import (
	"strings"
	"unicode"
)

// Paired layout strings: the rune at position i of one string shares a
// physical key with the rune at position i of the other (ЙЦУКЕН vs QWERTY).
const (
	ruKeys = "йцукенгшщзхъфывапролджэячсмитьбю"
	enKeys = "qwertyuiop[]asdfghjkl;'zxcvbnm,."
)

// defaultThreshold is the foreign-character ratio above which a token is
// considered mistyped. At exactly one half the token is left untouched.
const defaultThreshold = 0.5

// Corrector remaps tokens typed in a foreign layout back to the home
// (catalog-language) alphabet. The zero value is not usable; call New.
type Corrector struct {
	toHome    map[rune]rune
	threshold float64
}

// New builds a corrector from the paired layout tables. The home layout is
// Cyrillic: Latin-majority tokens are candidates for remapping.
func New() *Corrector {
	toHome := make(map[rune]rune, len(enKeys))
	ru := []rune(ruKeys)
	for i, r := range enKeys {
		toHome[r] = ru[i]
	}
	return &Corrector{toHome: toHome, threshold: defaultThreshold}
}

// Fix remaps each whitespace-separated token whose foreign-character ratio
// exceeds the threshold. Tokens already in the home alphabet, and characters
// with no key-position mapping, pass through unchanged. Fix never fails.
func (c *Corrector) Fix(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return strings.TrimSpace(text)
	}
	for i, tok := range fields {
		fields[i] = c.fixToken(tok)
	}
	return strings.Join(fields, " ")
}

func (c *Corrector) fixToken(tok string) string {
	foreign, home := 0, 0
	for _, r := range strings.ToLower(tok) {
		switch {
		case unicode.IsDigit(r):
			// Quantity tokens ("10л", "5kg", "1.5") are never layout typos.
			return tok
		case isForeign(r):
			foreign++
		case isHome(r):
			home++
		}
	}
	total := foreign + home
	if total == 0 || float64(foreign)/float64(total) <= c.threshold {
		return tok
	}

	var b strings.Builder
	b.Grow(len(tok))
	for _, r := range strings.ToLower(tok) {
		if mapped, ok := c.toHome[r]; ok {
			b.WriteRune(mapped)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isForeign reports whether r belongs to the foreign (Latin) alphabet.
// Punctuation keys that carry Cyrillic letters ("[", ";", ...) are remapped
// but stay neutral for the ratio, so "dr." style tokens are not skewed.
func isForeign(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// isHome reports whether r belongs to the home (Cyrillic) alphabet.
func isHome(r rune) bool {
	return unicode.Is(unicode.Cyrillic, r)
}
