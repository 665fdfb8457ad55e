package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"tubelang/internal/textutil"
)

// ariaSeparator ends the title part of an aria-label.
var ariaSeparator = regexp.MustCompile(`\s[•·|]\s|\n| - | — `)

// bylineSplitters introduce the channel name in an aria-label. They only
// count after the first few runes so short titles such as "Made by me" are
// kept whole.
var bylineSplitters = []string{" by ", " por ", " par ", " von "}

const minBylineIndex = 10

// ReadNodeText returns the visible text of sel, falling back to its title
// attribute and then to the title portion of its aria-label.
func ReadNodeText(sel *goquery.Selection) string {
	if text := textutil.CollapseWhitespace(sel.Text()); text != "" {
		return text
	}
	if title := textutil.CollapseWhitespace(sel.AttrOr("title", "")); title != "" {
		return title
	}
	if aria := textutil.CollapseWhitespace(sel.AttrOr("aria-label", "")); aria != "" {
		return TrimAriaLabel(aria)
	}
	return ""
}

// TrimAriaLabel strips channel and metadata suffixes from an aria-label.
func TrimAriaLabel(label string) string {
	head := label
	if loc := ariaSeparator.FindStringIndex(label); loc != nil {
		head = label[:loc[0]]
	}
	head = strings.TrimSpace(head)

	runes := []rune(head)
	lowered := make([]rune, len(runes))
	for i, r := range runes {
		lowered[i] = unicode.ToLower(r)
	}
	for _, splitter := range bylineSplitters {
		if idx := indexRunes(lowered, []rune(splitter)); idx > minBylineIndex {
			return strings.TrimSpace(string(runes[:idx]))
		}
	}
	return head
}

func indexRunes(haystack, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
outer:
	for i := 0; i+len(needle) <= len(haystack); i++ {
		for j, r := range needle {
			if haystack[i+j] != r {
				continue outer
			}
		}
		return i
	}
	return -1
}
