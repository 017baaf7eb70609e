package alphabet

import (
	"strings"
	"unicode"

	"github.com/segmentio/asm/ascii"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize upper-cases text, strips diacritics and drops everything that
// is not a letter of the alphabet. "Águia!" becomes "AGUIA".
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	if ascii.ValidString(text) {
		return Letters(text)
	}

	// Casers and transform chains carry state, so they are built per call.
	upper := cases.Upper(language.Und).String(text)
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn))), upper)
	if err != nil {
		stripped = upper
	}
	return Letters(stripped)
}

// Letters keeps only the ASCII letters of text, upper-cased, in order.
func Letters(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case 'A' <= c && c <= 'Z':
			b.WriteByte(c)
		case 'a' <= c && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		}
	}
	return b.String()
}
