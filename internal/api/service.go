package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"tubelang/internal/channels"
	"tubelang/internal/classifier"
	"tubelang/internal/config"
	"tubelang/internal/extract"
	"tubelang/internal/filter"
	"tubelang/internal/language"
	"tubelang/internal/logging"
	"tubelang/internal/preferences"
	"tubelang/internal/textutil"
	"tubelang/internal/titlecache"
	"tubelang/internal/visibility"
)

// ErrNoStore is returned by operations that need persistence when the
// service was built without a store.
var ErrNoStore = errors.New("settings store unavailable")

// Store abstracts the persistence the service needs. *store.Store
// satisfies it.
type Store interface {
	Settings(ctx context.Context, defaults preferences.Raw) (preferences.Settings, error)
	SaveRaw(ctx context.Context, raw preferences.Raw) error
	ResetPreferences(ctx context.Context) error
	Channels(ctx context.Context) (channels.Set, error)
	AddChannels(ctx context.Context, set channels.Set) (int, error)
	ClearChannels(ctx context.Context) error
}

// Service resolves classification and visibility requests.
type Service struct {
	store      Store
	defaults   preferences.Raw
	classifier *classifier.Classifier
	cache      *titlecache.Cache
	evaluator  *visibility.Evaluator
	logger     *slog.Logger
}

// NewService wires a service from configuration. store may be nil for
// callers that only classify.
func NewService(cfg *config.Config, store Store, logger *slog.Logger) *Service {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	c := classifier.New(classifier.WithThresholds(cfg.Thresholds()))
	cache := titlecache.New(c, cfg.Classifier.CacheSize, logger)
	return &Service{
		store:      store,
		defaults:   cfg.Filter,
		classifier: c,
		cache:      cache,
		evaluator:  visibility.NewEvaluator(cache, logger),
		logger:     logging.NewComponentLogger(logger, "api"),
	}
}

// Classify returns a verdict per title. With explain the deciding rule is
// included and the cache is bypassed.
func (s *Service) Classify(req ClassifyRequest) ClassifyResponse {
	results := make([]Classification, 0, len(req.Titles))
	for _, title := range req.Titles {
		cleaned := textutil.CleanTitle(title)
		item := Classification{Title: cleaned}
		if req.Explain {
			decision := s.classifier.Explain(cleaned)
			item.Verdict = decision.Verdict
			item.Rule = decision.Rule
		} else {
			item.Verdict = s.evaluator.Verdict(cleaned)
		}
		results = append(results, item)
	}
	return ClassifyResponse{Results: results}
}

// CacheStats reports the title cache counters.
func (s *Service) CacheStats() titlecache.Stats {
	return s.cache.Stats()
}

// Settings returns the effective settings.
func (s *Service) Settings(ctx context.Context) (SettingsResponse, error) {
	settings, err := s.settings(ctx)
	if err != nil {
		return SettingsResponse{}, err
	}
	return newSettingsResponse(settings), nil
}

// UpdateSettings layers raw over the current settings, normalizes and
// stores the result.
func (s *Service) UpdateSettings(ctx context.Context, raw preferences.Raw) (SettingsResponse, error) {
	if s.store == nil {
		return SettingsResponse{}, ErrNoStore
	}
	current, err := s.settings(ctx)
	if err != nil {
		return SettingsResponse{}, err
	}
	next := preferences.Normalize(preferences.Merge(current.Raw(), raw))
	if err := s.store.SaveRaw(ctx, next.Raw()); err != nil {
		return SettingsResponse{}, fmt.Errorf("save settings: %w", err)
	}
	s.logger.Info("settings updated",
		logging.String("selected_languages", fmt.Sprint(next.SelectedLanguages)),
		logging.Bool("enabled", next.Enabled),
		logging.Bool("show_unknown", next.ShowUnknown),
		logging.Bool("keep_subscribed", next.KeepSubscribed),
	)
	return newSettingsResponse(next), nil
}

// ResetSettings drops stored settings so configured defaults apply.
func (s *Service) ResetSettings(ctx context.Context) (SettingsResponse, error) {
	if s.store == nil {
		return SettingsResponse{}, ErrNoStore
	}
	if err := s.store.ResetPreferences(ctx); err != nil {
		return SettingsResponse{}, err
	}
	return s.Settings(ctx)
}

// Evaluate decides visibility for a batch of cards.
func (s *Service) Evaluate(ctx context.Context, req EvaluateRequest) (EvaluateResponse, error) {
	return s.evaluate(ctx, req, nil)
}

// Scan parses a saved listing page and evaluates its cards. Channels in the
// page guide count as subscriptions alongside the stored set.
func (s *Service) Scan(ctx context.Context, r io.Reader, pageURL string) (ScanResponse, error) {
	parsed, err := extract.Parse(r)
	if err != nil {
		return ScanResponse{}, err
	}
	guide := channels.ParseGuide(parsed.Document)

	req := EvaluateRequest{
		URL:            pageURL,
		PageSubscribed: parsed.Subscribed,
		Cards:          make([]visibility.Card, 0, len(parsed.Cards)),
	}
	for _, card := range parsed.Cards {
		req.Cards = append(req.Cards, visibility.Card{
			ID:           card.VideoID,
			Title:        card.Title,
			ChannelHrefs: card.ChannelHrefs,
		})
	}

	resp, err := s.evaluate(ctx, req, guide)
	if err != nil {
		return ScanResponse{}, err
	}
	s.logger.Debug("listing scanned",
		logging.Int("cards", len(resp.Results)),
		logging.Int("hidden", resp.Hidden),
		logging.Int("guide_channels", guide.Len()),
		logging.String(logging.FieldEventType, "listing_scanned"),
	)
	return ScanResponse{EvaluateResponse: resp, Cards: parsed.Cards}, nil
}

func (s *Service) evaluate(ctx context.Context, req EvaluateRequest, extra channels.Set) (EvaluateResponse, error) {
	settings, err := s.settings(ctx)
	if err != nil {
		return EvaluateResponse{}, err
	}
	subs, err := s.subscriptions(ctx)
	if err != nil {
		return EvaluateResponse{}, err
	}
	subs.Merge(extra)

	page := visibility.Page{
		Hints:           requestHints(req),
		Subscriptions:   subs,
		OwnerSubscribed: req.PageSubscribed,
	}
	if owner, ok := channels.PageChannel(req.URL); ok && subs.Has(owner) {
		page.OwnerSubscribed = true
	}

	results := s.evaluator.EvaluateAll(ctx, settings, page, req.Cards)
	return EvaluateResponse{
		Settings: settings,
		Hints:    page.Hints,
		Results:  results,
		Hidden:   visibility.Hidden(results),
	}, nil
}

// Channels lists stored subscriptions.
func (s *Service) Channels(ctx context.Context) (ChannelsResponse, error) {
	subs, err := s.subscriptions(ctx)
	if err != nil {
		return ChannelsResponse{}, err
	}
	return ChannelsResponse{Channels: subs.Sorted(), Count: subs.Len()}, nil
}

// ImportChannels stores every channel found in a subscriptions page.
func (s *Service) ImportChannels(ctx context.Context, html string) (ChannelsResponse, error) {
	if s.store == nil {
		return ChannelsResponse{}, ErrNoStore
	}
	found, err := channels.ParseFeed(html)
	if err != nil {
		return ChannelsResponse{}, err
	}
	added, err := s.store.AddChannels(ctx, found)
	if err != nil {
		return ChannelsResponse{}, err
	}
	s.logger.Info("subscriptions imported",
		logging.Int("found", found.Len()),
		logging.Int("added", added),
		logging.String(logging.FieldEventType, "channels_imported"),
	)
	resp, err := s.Channels(ctx)
	if err != nil {
		return ChannelsResponse{}, err
	}
	resp.Added = added
	return resp, nil
}

// ClearChannels removes every stored subscription.
func (s *Service) ClearChannels(ctx context.Context) error {
	if s.store == nil {
		return ErrNoStore
	}
	return s.store.ClearChannels(ctx)
}

func (s *Service) settings(ctx context.Context) (preferences.Settings, error) {
	if s.store == nil {
		return preferences.Normalize(s.defaults), nil
	}
	settings, err := s.store.Settings(ctx, s.defaults)
	if err != nil {
		return preferences.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

func (s *Service) subscriptions(ctx context.Context) (channels.Set, error) {
	if s.store == nil {
		return make(channels.Set), nil
	}
	subs, err := s.store.Channels(ctx)
	if err != nil {
		return nil, fmt.Errorf("load channels: %w", err)
	}
	return subs, nil
}

// requestHints combines URL, query and explicit hints, keeping first
// occurrence order.
func requestHints(req EvaluateRequest) []language.Code {
	var hints []language.Code
	seen := make(map[language.Code]struct{})
	add := func(codes ...language.Code) {
		for _, code := range codes {
			if _, dup := seen[code]; dup {
				continue
			}
			seen[code] = struct{}{}
			hints = append(hints, code)
		}
	}
	add(filter.HintsFromURL(req.URL)...)
	add(filter.SearchHints(req.Query)...)
	for _, value := range req.Hints {
		if code, ok := language.Parse(value); ok && code.Known() {
			add(code)
		}
	}
	return hints
}
