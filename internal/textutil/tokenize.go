package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const zeroWidthSpace = "\u200b"

// CollapseWhitespace replaces whitespace runs with a single space and trims
// both ends.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// CleanTitle prepares extracted title text for classification: whitespace is
// collapsed and zero-width spaces are removed.
func CleanTitle(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(CollapseWhitespace(text), zeroWidthSpace, ""))
}

// Tokenize splits text into folded tokens. Punctuation and symbols act as
// separators and tokens of a single rune are dropped.
func Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, text)

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if utf8.RuneCountInString(field) <= 1 {
			continue
		}
		tokens = append(tokens, Fold(field))
	}
	return tokens
}
