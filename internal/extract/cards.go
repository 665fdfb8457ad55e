package extract

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"tubelang/internal/textutil"
)

// Card is a video card found in a listing.
type Card struct {
	VideoID      string      `json:"video_id,omitempty"`
	Title        string      `json:"title"`
	Source       Source      `json:"source,omitempty"`
	Candidates   []Candidate `json:"candidates,omitempty"`
	ChannelHrefs []string    `json:"channel_hrefs,omitempty"`
}

// Page is the result of parsing one listing document.
type Page struct {
	Cards []Card
	// Document is kept for callers that need page-level lookups such as the
	// subscription guide.
	Document *goquery.Document
	// Subscribed reports a subscribe button in the subscribed state, which
	// marks the page owner as a subscribed channel.
	Subscribed bool
}

// Parse reads an HTML listing and extracts its cards.
func Parse(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse listing html: %w", err)
	}
	return &Page{
		Cards:      Cards(doc.Selection),
		Document:   doc,
		Subscribed: doc.Find(subscribedButtonSelector).Length() > 0,
	}, nil
}

// Cards finds every card under root in document order of discovery. Cards
// inside the miniplayer are skipped and nested matches collapse onto their
// outer card root.
func Cards(root *goquery.Selection) []Card {
	var (
		roots []*goquery.Selection
		seen  = make(map[*html.Node]struct{})
	)
	add := func(sel *goquery.Selection) {
		node := sel.Get(0)
		if _, dup := seen[node]; dup {
			return
		}
		seen[node] = struct{}{}
		roots = append(roots, sel)
	}

	root.Find(cardSelector).Each(func(_ int, el *goquery.Selection) {
		if inMiniplayer(el) {
			return
		}
		add(outermostRoot(el))
	})
	root.Find(videoLinkSelector).Each(func(_ int, link *goquery.Selection) {
		if inMiniplayer(link) {
			return
		}
		if card := link.Closest(cardRootSelector); card.Length() > 0 {
			add(outermostRoot(card))
		}
	})

	cards := make([]Card, 0, len(roots))
	for _, sel := range roots {
		cards = append(cards, readCard(sel))
	}
	return cards
}

// outermostRoot climbs from sel to the last enclosing card root, so a grid
// media element inside a rich item counts once.
func outermostRoot(sel *goquery.Selection) *goquery.Selection {
	current := sel
	for {
		up := current.Parent().Closest(cardRootSelector)
		if up.Length() == 0 {
			return current
		}
		current = up
	}
}

func inMiniplayer(sel *goquery.Selection) bool {
	return sel.Closest(miniplayerSelector).Length() > 0
}

func readCard(sel *goquery.Selection) Card {
	candidates := Candidates(sel)
	card := Card{
		VideoID:      videoID(sel),
		Candidates:   candidates,
		ChannelHrefs: channelHrefs(sel),
	}
	if best, ok := Best(candidates); ok {
		card.Title = best.Text
		card.Source = best.Source
	}
	return card
}

// Candidates collects every distinct title reading of a card, scored.
func Candidates(card *goquery.Selection) []Candidate {
	var out []Candidate
	seen := make(map[string]struct{})
	push := func(raw string, source Source) {
		text := textutil.CleanTitle(raw)
		if text == "" {
			return
		}
		key := strings.ToLower(text)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, Candidate{Text: text, Source: source, Score: Score(text, source)})
	}

	card.Find(titleSelector).Each(func(_ int, el *goquery.Selection) {
		push(ReadNodeText(el), SourceTitleNode)
		push(el.AttrOr("title", ""), SourceTitleAttr)
		push(el.AttrOr("aria-label", ""), SourceTitleAria)
	})
	card.Find(videoLinkSelector).Each(func(_ int, el *goquery.Selection) {
		push(ReadNodeText(el), SourceLinkNode)
		push(el.AttrOr("title", ""), SourceLinkAttr)
		push(el.AttrOr("aria-label", ""), SourceLinkAria)
	})
	card.Find(listLinkSelector).Each(func(_ int, el *goquery.Selection) {
		push(ReadNodeText(el), SourceListLink)
		push(el.AttrOr("aria-label", ""), SourceListLink)
		push(el.AttrOr("title", ""), SourceListLink)
	})
	if alt := card.Find(fallbackSelector).First(); alt.Length() > 0 {
		push(alt.AttrOr("title", ""), SourceFallbackAttr)
	}
	return out
}

func channelHrefs(card *goquery.Selection) []string {
	var hrefs []string
	card.Find(channelLinkSelector).Each(func(_ int, el *goquery.Selection) {
		if href := strings.TrimSpace(el.AttrOr("href", "")); href != "" {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs
}

func videoID(card *goquery.Selection) string {
	var id string
	card.Find(`a[href*="/watch"], a[href*="/shorts/"]`).EachWithBreak(func(_ int, el *goquery.Selection) bool {
		id = videoIDFromHref(el.AttrOr("href", ""))
		return id == ""
	})
	return id
}

func videoIDFromHref(href string) string {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	if v := u.Query().Get("v"); v != "" && strings.HasSuffix(u.Path, "/watch") {
		return v
	}
	if rest, ok := strings.CutPrefix(u.Path, "/shorts/"); ok {
		rest, _, _ = strings.Cut(rest, "/")
		return rest
	}
	return ""
}
