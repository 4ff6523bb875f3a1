// Package numeric extracts a structured quantity filter from normalized query
// text: patterns of the form <number><unit-suffix> such as "10л" or "5kg".
package numeric

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Dimension is the physical dimension of a quantity unit.
type Dimension string

// Supported dimensions.
const (
	Weight Dimension = "weight"
	Volume Dimension = "volume"
)

// Unit is a canonical quantity unit suffix as stored in the index.
type Unit string

// Canonical units.
const (
	Kilogram   Unit = "kg"
	Gram       Unit = "g"
	Liter      Unit = "l"
	Milliliter Unit = "ml"
)

// Dimension returns the physical dimension of the unit.
func (u Unit) Dimension() Dimension {
	switch u {
	case Liter, Milliliter:
		return Volume
	default:
		return Weight
	}
}

// unitAliases maps recognized suffix variants to canonical units.
var unitAliases = map[string]Unit{
	"кг": Kilogram,
	"kg": Kilogram,
	"г":  Gram,
	"гр": Gram,
	"g":  Gram,
	"л":  Liter,
	"l":  Liter,
	"мл": Milliliter,
	"ml": Milliliter,
}

// Longer alternatives first: the regexp engine tries alternatives in order,
// so "кг" must win over "г" and "мл" over "л".
var quantityRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(кг|гр|мл|kg|ml|г|g|л|l)`)

// Filter is an extracted quantity constraint (equality by default).
type Filter struct {
	quantity float64
	unit     Unit
}

// NewFilter creates a quantity filter.
func NewFilter(quantity float64, unit Unit) Filter {
	return Filter{quantity: quantity, unit: unit}
}

// Quantity returns the extracted numeric value.
func (f Filter) Quantity() float64 { return f.quantity }

// Unit returns the canonical unit.
func (f Filter) Unit() Unit { return f.unit }

// Extract scans normalized text for the first value+unit pattern. It returns
// the filter, the text with the matched substring removed, and whether a
// match was found. Later numeric expressions remain in the text as ordinary
// tokens. Extract never fails: non-matching numeric-looking substrings are
// left as plain text and the input is returned unchanged.
func Extract(text string) (Filter, string, bool) {
	for _, m := range quantityRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		if isLetterAt(text, end) {
			// Suffix continues into a longer word ("10литров") — not a unit.
			continue
		}

		rawValue := text[m[2]:m[3]]
		rawUnit := text[m[4]:m[5]]

		value, err := strconv.ParseFloat(strings.ReplaceAll(rawValue, ",", "."), 64)
		if err != nil {
			continue
		}
		unit, ok := unitAliases[rawUnit]
		if !ok {
			continue
		}

		remaining := strings.Join(strings.Fields(text[:start]+" "+text[end:]), " ")
		return NewFilter(value, unit), remaining, true
	}
	return Filter{}, text, false
}

func isLetterAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsLetter(r)
}
