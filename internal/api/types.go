package api

import (
	"tubelang/internal/classifier"
	"tubelang/internal/extract"
	"tubelang/internal/language"
	"tubelang/internal/preferences"
	"tubelang/internal/titlecache"
	"tubelang/internal/visibility"
)

// ClassifyRequest asks for verdicts on a batch of titles.
type ClassifyRequest struct {
	Titles  []string `json:"titles"`
	Explain bool     `json:"explain,omitempty"`
}

// Classification is the verdict for one title.
type Classification struct {
	Title   string              `json:"title"`
	Verdict language.Code       `json:"verdict"`
	Rule    classifier.RuleName `json:"rule,omitempty"`
}

// ClassifyResponse wraps classifications in request order.
type ClassifyResponse struct {
	Results []Classification `json:"results"`
}

// EvaluateRequest asks for hide/show decisions on cards from one page.
type EvaluateRequest struct {
	Cards []visibility.Card `json:"cards"`
	// URL is the page address; search hints come from its query string.
	URL string `json:"url,omitempty"`
	// Query adds search hints when no URL is available.
	Query string `json:"query,omitempty"`
	// Hints are explicit language codes treated as search hints.
	Hints []string `json:"hints,omitempty"`
	// PageSubscribed marks the page owner as subscribed.
	PageSubscribed bool `json:"pageSubscribed,omitempty"`
}

// EvaluateResponse carries one result per card.
type EvaluateResponse struct {
	Settings preferences.Settings `json:"settings"`
	Hints    []language.Code      `json:"hints,omitempty"`
	Results  []visibility.Result  `json:"results"`
	Hidden   int                  `json:"hidden"`
}

// ScanResponse is the outcome of evaluating a saved listing page.
type ScanResponse struct {
	EvaluateResponse
	Cards []extract.Card `json:"cards"`
}

// SettingsResponse wraps the effective settings.
type SettingsResponse struct {
	Settings preferences.Settings `json:"settings"`
	// SelectedLanguage mirrors the first selection for legacy readers.
	SelectedLanguage language.Code `json:"selectedLanguage"`
}

// ChannelsResponse lists stored subscriptions.
type ChannelsResponse struct {
	Channels []string `json:"channels"`
	Count    int      `json:"count"`
	Added    int      `json:"added,omitempty"`
}

// Status summarizes a running server.
type Status struct {
	Running      bool                 `json:"running"`
	PID          int                  `json:"pid"`
	StartedAt    string               `json:"startedAt,omitempty"`
	DatabasePath string               `json:"databasePath"`
	LockFilePath string               `json:"lockFilePath"`
	Cache        titlecache.Stats     `json:"cache"`
	Settings     preferences.Settings `json:"settings"`
	Channels     int                  `json:"channels"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newSettingsResponse(settings preferences.Settings) SettingsResponse {
	return SettingsResponse{Settings: settings, SelectedLanguage: settings.SelectedLanguage()}
}
