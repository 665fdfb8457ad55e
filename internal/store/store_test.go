package store_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tubelang/internal/channels"
	"tubelang/internal/language"
	"tubelang/internal/preferences"
	"tubelang/internal/store"
	"tubelang/internal/testsupport"
)

func boolPtr(v bool) *bool { return &v }

func TestOpenCreatesSchema(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	if st.Path() != cfg.DatabasePath() {
		t.Fatalf("unexpected path %q", st.Path())
	}

	raw, err := st.LoadRaw(context.Background())
	if err != nil {
		t.Fatalf("LoadRaw failed: %v", err)
	}
	if !reflect.DeepEqual(raw, preferences.Raw{}) {
		t.Fatalf("expected empty record, got %+v", raw)
	}

	// Reopening an initialized database must pass the version check.
	if err := st.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	again, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	again.Close()
}

func TestSchemaMismatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	if err := st.ForceSchemaVersion(context.Background(), 99); err != nil {
		t.Fatalf("ForceSchemaVersion: %v", err)
	}
	st.Close()

	_, err := store.Open(cfg)
	if !errors.Is(err, store.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	want := preferences.Settings{
		Enabled:           true,
		SelectedLanguages: []language.Code{language.French, language.Chinese},
		ShowUnknown:       false,
		KeepSubscribed:    true,
	}
	if err := st.SaveSettings(ctx, want); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := st.Settings(ctx, cfg.Filter)
	if err != nil {
		t.Fatalf("Settings failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Settings = %+v, want %+v", got, want)
	}

	raw, err := st.LoadRaw(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if raw.SelectedLanguage != "fr" {
		t.Fatalf("legacy field should mirror the first selection, got %q", raw.SelectedLanguage)
	}
}

func TestPartialSaveKeepsOtherFields(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := st.SaveRaw(ctx, preferences.Raw{SelectedLanguages: preferences.LanguageList{"es"}, ShowUnknown: boolPtr(false)}); err != nil {
		t.Fatal(err)
	}
	if err := st.SaveRaw(ctx, preferences.Raw{Enabled: boolPtr(false)}); err != nil {
		t.Fatal(err)
	}

	got, err := st.Settings(ctx, cfg.Filter)
	if err != nil {
		t.Fatal(err)
	}
	if got.Enabled || got.ShowUnknown || !reflect.DeepEqual(got.SelectedLanguages, []language.Code{language.Spanish}) {
		t.Fatalf("unexpected settings %+v", got)
	}

	// A legacy single-language write replaces the stored list.
	if err := st.SaveRaw(ctx, preferences.Raw{SelectedLanguage: "zh"}); err != nil {
		t.Fatal(err)
	}
	got, err = st.Settings(ctx, cfg.Filter)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got.SelectedLanguages, []language.Code{language.Chinese}) {
		t.Fatalf("legacy write ignored: %v", got.SelectedLanguages)
	}
}

func TestResetPreferences(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithFilter(preferences.Raw{SelectedLanguages: preferences.LanguageList{"fr"}}))
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := st.SaveRaw(ctx, preferences.Raw{SelectedLanguages: preferences.LanguageList{"es"}}); err != nil {
		t.Fatal(err)
	}
	if err := st.ResetPreferences(ctx); err != nil {
		t.Fatalf("ResetPreferences failed: %v", err)
	}
	got, err := st.Settings(ctx, cfg.Filter)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got.SelectedLanguages, []language.Code{language.French}) {
		t.Fatalf("configured defaults should apply after reset, got %v", got.SelectedLanguages)
	}
}

func TestChannels(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	added, err := st.AddChannels(ctx, channels.NewSet("/@One", "/channel/UC2"))
	if err != nil {
		t.Fatalf("AddChannels failed: %v", err)
	}
	if added != 2 {
		t.Fatalf("added = %d, want 2", added)
	}
	added, err = st.AddChannels(ctx, channels.NewSet("/@one", "/c/three"))
	if err != nil {
		t.Fatal(err)
	}
	if added != 1 {
		t.Fatalf("second import added %d, want 1", added)
	}

	set, err := st.Channels(ctx)
	if err != nil {
		t.Fatalf("Channels failed: %v", err)
	}
	want := []string{"/@one", "/c/three", "/channel/uc2"}
	if got := set.Sorted(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Channels = %v, want %v", got, want)
	}

	if err := st.ClearChannels(ctx); err != nil {
		t.Fatalf("ClearChannels failed: %v", err)
	}
	set, err = st.Channels(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 0 {
		t.Fatalf("expected no channels after clear, got %v", set.Sorted())
	}
}
