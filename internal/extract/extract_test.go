package extract

import (
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		source Source
		want   int
	}{
		{"plain title node", "Hello world", SourceTitleNode, 11 + 90},
		{"placeholder mix", "Mix", SourceTitleNode, 3 + 90 - 200},
		{"placeholder playlist", "PLAYLIST", SourceLinkNode, 8 + 70 - 200},
		{"short mix", "Mix – Queen", SourceLinkNode, 11 + 70 - 120},
		{"long mix", "Mix - Daft Punk Discovery", SourceLinkAria, 25 + 65 + 10},
		{"language marker", "Learn Mandarin", SourceLinkAttr, 14 + 60 + 30},
		{"metadata noise", "1.2M views", SourceTitleAria, 10 + 80 - 80},
		{"age noise", "Episode 3 years ago", SourceLinkNode, 19 + 70 - 80},
		{"unknown source", "Hello", Source("other"), 5},
		{"length cap", strings.Repeat("a", 300), SourceFallbackAttr, 180 + 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.text, tt.source); got != tt.want {
				t.Fatalf("Score(%q, %s) = %d, want %d", tt.text, tt.source, got, tt.want)
			}
		})
	}
}

func TestScoreBlank(t *testing.T) {
	if Score("  \u200b ", SourceTitleNode) > Score("x", SourceFallbackAttr) {
		t.Fatal("blank text must score below any real text")
	}
}

func TestTrimAriaLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Amazing Long Title by Some Channel 1.2M views", "Amazing Long Title"},
		{"Made by me 3 days ago", "Made by me 3 days ago"},
		{"Un titre assez long par Quelqu'un", "Un titre assez long"},
		{"Title | Channel", "Title"},
		{"Title • 3 days ago", "Title"},
		{"Mix - Artist", "Mix"},
		{"Nothing to trim", "Nothing to trim"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := TrimAriaLabel(tt.in); got != tt.want {
				t.Fatalf("TrimAriaLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func parse(t *testing.T, markup string) *Page {
	t.Helper()
	page, err := Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return page
}

func TestReadNodeTextFallbacks(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body>
<a id="text">  Visible   text </a>
<a id="title" title="From title"></a>
<a id="aria" aria-label="Aria title goes here by Channel Name"></a>
<a id="none"></a>
</body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	tests := map[string]string{
		"#text":  "Visible text",
		"#title": "From title",
		"#aria":  "Aria title goes here",
		"#none":  "",
	}
	for selector, want := range tests {
		if got := ReadNodeText(doc.Find(selector)); got != want {
			t.Fatalf("ReadNodeText(%s) = %q, want %q", selector, got, want)
		}
	}
}

func TestCardsPrefersFullMixLabel(t *testing.T) {
	page := parse(t, `<html><body>
<ytd-rich-item-renderer>
  <a id="video-title-link" href="/watch?v=abc123&list=RDabc123"
     aria-label="Mix - BAD BUNNY - YO PERREO SOLA | YHLQMDLG (Video Oficial)"><span>Mix</span></a>
</ytd-rich-item-renderer>
</body></html>`)

	if len(page.Cards) != 1 {
		t.Fatalf("found %d cards, want 1", len(page.Cards))
	}
	card := page.Cards[0]
	if card.Title != "Mix - BAD BUNNY - YO PERREO SOLA | YHLQMDLG (Video Oficial)" {
		t.Fatalf("title = %q", card.Title)
	}
	if card.Source != SourceTitleAria {
		t.Fatalf("source = %s, want %s", card.Source, SourceTitleAria)
	}
	if card.VideoID != "abc123" {
		t.Fatalf("video id = %q", card.VideoID)
	}
}

func TestCardsDiscovery(t *testing.T) {
	page := parse(t, `<html><body>
<ytd-rich-item-renderer>
  <ytd-rich-grid-media>
    <a id="video-title-link" href="/watch?v=one" title="Los mejores momentos del partido">Los mejores momentos del partido</a>
    <ytd-channel-name><a href="/@Futbol">Futbol</a></ytd-channel-name>
  </ytd-rich-grid-media>
</ytd-rich-item-renderer>
<ytd-video-renderer>
  <h3><a href="/shorts/two">Les plus beaux endroits</a></h3>
</ytd-video-renderer>
<ytd-miniplayer>
  <ytd-video-renderer><a href="/watch?v=mini">Hidden player</a></ytd-video-renderer>
</ytd-miniplayer>
<ytd-compact-video-renderer></ytd-compact-video-renderer>
<ytd-subscribe-button-renderer subscribed></ytd-subscribe-button-renderer>
</body></html>`)

	if len(page.Cards) != 3 {
		t.Fatalf("found %d cards, want 3: %+v", len(page.Cards), page.Cards)
	}
	if !page.Subscribed {
		t.Fatal("subscribed button not detected")
	}

	first := page.Cards[0]
	if first.VideoID != "one" || first.Title != "Los mejores momentos del partido" {
		t.Fatalf("first card = %+v", first)
	}
	if !reflect.DeepEqual(first.ChannelHrefs, []string{"/@Futbol"}) {
		t.Fatalf("channel hrefs = %v", first.ChannelHrefs)
	}
	if len(first.Candidates) != 1 {
		t.Fatalf("duplicate readings should collapse, got %+v", first.Candidates)
	}

	second := page.Cards[1]
	if second.VideoID != "two" || second.Title != "Les plus beaux endroits" {
		t.Fatalf("second card = %+v", second)
	}

	empty := page.Cards[2]
	if empty.Title != "" || len(empty.Candidates) != 0 {
		t.Fatalf("empty card = %+v", empty)
	}
}

func TestVideoIDFromHref(t *testing.T) {
	tests := map[string]string{
		"/watch?v=abc":                        "abc",
		"https://www.youtube.com/watch?v=xyz": "xyz",
		"/shorts/short1":                      "short1",
		"/shorts/short2/extra":                "short2",
		"/playlist?list=PL1":                  "",
		"/watch":                              "",
	}
	for href, want := range tests {
		if got := videoIDFromHref(href); got != want {
			t.Fatalf("videoIDFromHref(%q) = %q, want %q", href, got, want)
		}
	}
}

func TestBest(t *testing.T) {
	if _, ok := Best(nil); ok {
		t.Fatal("Best(nil) should report no candidate")
	}
	got, _ := Best([]Candidate{{Text: "a", Score: 5}, {Text: "b", Score: 9}, {Text: "c", Score: 9}})
	if got.Text != "b" {
		t.Fatalf("Best = %q, want b", got.Text)
	}
}
