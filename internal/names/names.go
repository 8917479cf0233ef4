// Package names normalizes player names so the stats feed and the draft feed
// can be joined even when one side carries accents the other drops.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Normalize folds s to a canonical join key: NFKD-decompose, drop combining
// marks, drop anything still non-ASCII, lowercase, and collapse every run of
// non-letters into a single space. "Ødegaard" and "Odegaard " both come out
// as the same key.
func Normalize(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingSpace := false
	for _, r := range folded {
		if r > unicode.MaxASCII {
			// Characters NFKD could not reduce (ø, ð, ...) are dropped
			// outright, not treated as separators.
			continue
		}
		switch {
		case r >= 'a' && r <= 'z':
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r + ('a' - 'A'))
		default:
			pendingSpace = true
		}
	}
	return b.String()
}
