package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacritics covers the Combining Diacritical Marks block only.
// Marks from other blocks survive folding.
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// Fold decomposes s, strips combining diacritics and lowercases the result.
func Fold(s string) string {
	if s == "" {
		return ""
	}
	if isASCII(s) {
		return strings.ToLower(s)
	}
	// Transformers carry state, so the chain is built per call.
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(combiningDiacritics)),
		cases.Lower(language.Und),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
