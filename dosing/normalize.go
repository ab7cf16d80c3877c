package dosing

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decomposes characters and strips combining marks, so that
// "ş" becomes "s", "ü" becomes "u" and so on.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText lower-cases s, folds diacritics to plain ASCII letters and
// collapses whitespace runs to single spaces. Used as the fallback key for
// catalog lookups so that "ampisilin" matches "AMPİSİLİN" or "ampisilın".
func NormalizeText(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// Dotless ı has no combining mark to strip, map it by hand
	s = strings.Map(func(r rune) rune {
		if r == 'ı' {
			return 'i'
		}
		return r
	}, s)

	if folded, _, err := transform.String(foldTransformer, s); err == nil {
		s = folded
	}

	return strings.Join(strings.Fields(s), " ")
}
