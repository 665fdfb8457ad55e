package channels

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	// Paths embedded in inline JSON with escaped slashes, e.g. "\/@handle".
	escapedPathPattern = regexp.MustCompile(`\\/(?:@[^"\\/?]+|channel\\/[A-Za-z0-9_-]+|c\\/[A-Za-z0-9_.-]+|user\\/[A-Za-z0-9_.-]+)`)
	plainPathPattern   = regexp.MustCompile(`/(?:@[^"/?]+|channel/[A-Za-z0-9_-]+|c/[A-Za-z0-9_.-]+|user/[A-Za-z0-9_.-]+)`)
)

// guideSelector scopes the sidebar that lists subscriptions on every page.
const guideSelector = "ytd-guide-renderer"

// ParseFeed extracts subscribed channels from a subscriptions page. Anchor
// hrefs are read from the parsed document and the raw markup is scanned for
// channel paths inside inline data.
func ParseFeed(html string) (Set, error) {
	set := make(Set)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse feed html: %w", err)
	}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		set.Add(sel.AttrOr("href", ""))
	})

	for _, match := range escapedPathPattern.FindAllString(html, -1) {
		set.Add(strings.ReplaceAll(match, `\/`, "/"))
	}
	for _, match := range plainPathPattern.FindAllString(html, -1) {
		set.Add(match)
	}
	return set, nil
}

// ParseGuide collects channel links from the sidebar guide of any listing page.
func ParseGuide(doc *goquery.Document) Set {
	set := make(Set)
	doc.Find(guideSelector).Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		set.Add(sel.AttrOr("href", ""))
	})
	return set
}
