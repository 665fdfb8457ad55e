package filter

import (
	"net/url"
	"strings"

	"tubelang/internal/language"
	"tubelang/internal/preferences"
	"tubelang/internal/textutil"
)

// Reason explains a decision. Values are stable and appear in logs and API
// responses.
type Reason string

const (
	ReasonSelected      Reason = "selected_language"
	ReasonNotSelected   Reason = "language_not_selected"
	ReasonShowUnknown   Reason = "show_unknown"
	ReasonSearchHint    Reason = "search_hint"
	ReasonHiddenUnknown Reason = "unknown_hidden"
)

// Decide reports whether a title with the given verdict is hidden.
func Decide(verdict language.Code, settings preferences.Settings, hints []language.Code) bool {
	hidden, _ := Explain(verdict, settings, hints)
	return hidden
}

// Explain is Decide with the reason for the outcome.
func Explain(verdict language.Code, settings preferences.Settings, hints []language.Code) (bool, Reason) {
	if verdict.Known() {
		if settings.Selects(verdict) {
			return false, ReasonSelected
		}
		return true, ReasonNotSelected
	}
	if settings.ShowUnknown {
		return false, ReasonShowUnknown
	}
	for _, hint := range hints {
		if settings.Selects(hint) {
			return false, ReasonSearchHint
		}
	}
	return true, ReasonHiddenUnknown
}

// SearchHints extracts language mentions from a search query. Tokens naming a
// code ("fr") or an alias ("french", "español") count; order follows the
// query and duplicates are dropped.
func SearchHints(query string) []language.Code {
	var hints []language.Code
	seen := make(map[language.Code]struct{})
	for _, token := range textutil.Tokenize(query) {
		code, ok := hintCode(token)
		if !ok {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		hints = append(hints, code)
	}
	return hints
}

func hintCode(token string) (language.Code, bool) {
	if code := language.Code(token); language.IsSupported(code) {
		return code, true
	}
	return language.FromAlias(token)
}

// HintsFromURL returns search hints for a results page URL. Other pages have
// no hints.
func HintsFromURL(rawURL string) []language.Code {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Path != "/results" {
		return nil
	}
	q := u.Query()
	query := q.Get("search_query")
	if query == "" {
		query = q.Get("query")
	}
	return SearchHints(query)
}
