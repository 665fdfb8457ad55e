package visibility

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"tubelang/internal/channels"
	"tubelang/internal/filter"
	"tubelang/internal/language"
	"tubelang/internal/logging"
	"tubelang/internal/preferences"
	"tubelang/internal/textutil"
)

const (
	// ReasonDisabled means filtering is switched off.
	ReasonDisabled filter.Reason = "filter_disabled"
	// ReasonSubscribed means the card belongs to a subscribed channel.
	ReasonSubscribed filter.Reason = "subscribed_channel"
)

// minTitleRunes is the shortest title worth classifying.
const minTitleRunes = 2

// Verdicts resolves a cleaned title to a verdict. *titlecache.Cache
// satisfies it.
type Verdicts interface {
	Get(title string) language.Code
}

// Card is the input for one decision.
type Card struct {
	ID           string   `json:"id,omitempty"`
	Title        string   `json:"title"`
	ChannelHrefs []string `json:"channelHrefs,omitempty"`
}

// Page carries the state shared by every card in a listing.
type Page struct {
	Hints         []language.Code
	Subscriptions channels.Set
	// OwnerSubscribed marks cards without channel links as belonging to a
	// subscribed channel page.
	OwnerSubscribed bool
}

// Result is the outcome for one card.
type Result struct {
	ID      string        `json:"id,omitempty"`
	Title   string        `json:"title"`
	Verdict language.Code `json:"verdict"`
	Hidden  bool          `json:"hidden"`
	Reason  filter.Reason `json:"reason"`
}

// Evaluator applies settings to cards.
type Evaluator struct {
	verdicts Verdicts
	logger   *slog.Logger
}

// NewEvaluator returns an evaluator that looks verdicts up in verdicts.
func NewEvaluator(verdicts Verdicts, logger *slog.Logger) *Evaluator {
	return &Evaluator{
		verdicts: verdicts,
		logger:   logging.NewComponentLogger(logger, "visibility"),
	}
}

// Verdict classifies a raw title. Titles shorter than two runes after
// cleaning are Unknown without a lookup.
func (e *Evaluator) Verdict(title string) language.Code {
	cleaned := textutil.CleanTitle(title)
	if utf8.RuneCountInString(cleaned) < minTitleRunes {
		return language.Unknown
	}
	return e.verdicts.Get(cleaned)
}

// Evaluate decides whether card is hidden.
func (e *Evaluator) Evaluate(ctx context.Context, settings preferences.Settings, page Page, card Card) Result {
	result := Result{
		ID:      card.ID,
		Title:   textutil.CleanTitle(card.Title),
		Verdict: e.Verdict(card.Title),
	}

	switch {
	case !settings.Enabled:
		result.Reason = ReasonDisabled
	case settings.KeepSubscribed && page.subscribed(card):
		result.Reason = ReasonSubscribed
	default:
		result.Hidden, result.Reason = filter.Explain(result.Verdict, settings, page.Hints)
	}

	outcome := "visible"
	if result.Hidden {
		outcome = "hidden"
	}
	attrs := logging.DecisionAttrs("visibility", outcome, string(result.Reason))
	attrs = append(attrs,
		logging.String(logging.FieldVerdict, result.Verdict.String()),
		logging.String("title", result.Title),
	)
	if card.ID != "" {
		attrs = append(attrs, logging.String(logging.FieldVideoID, card.ID))
	}
	logging.WithContext(ctx, e.logger).Debug("card evaluated", logging.Args(attrs...)...)
	return result
}

// EvaluateAll decides every card against the same page state.
func (e *Evaluator) EvaluateAll(ctx context.Context, settings preferences.Settings, page Page, cards []Card) []Result {
	results := make([]Result, 0, len(cards))
	for _, card := range cards {
		results = append(results, e.Evaluate(ctx, settings, page, card))
	}
	return results
}

func (p Page) subscribed(card Card) bool {
	if len(card.ChannelHrefs) == 0 {
		return p.OwnerSubscribed
	}
	return p.Subscriptions.HasAny(card.ChannelHrefs)
}

// Hidden counts hidden results.
func Hidden(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Hidden {
			n++
		}
	}
	return n
}
