package preferences

import (
	"encoding/json"
	"reflect"
	"testing"

	"tubelang/internal/language"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in   string
		want language.Code
	}{
		{"", language.English},
		{"   ", language.English},
		{"fr", language.French},
		{" FR ", language.French},
		{"fr-CA", language.French},
		{"zh-Hant-TW", language.Chinese},
		{"es-419", language.Spanish},
		{"Español", language.Spanish},
		{"espanol", language.Spanish},
		{"Français", language.French},
		{"Mandarin", language.Chinese},
		{"chinese", language.Chinese},
		{"English", language.English},
		{"xx", language.English},
		{"klingon", language.English},
		{"unknown", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeCode(tt.in); got != tt.want {
				t.Fatalf("NormalizeCode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeList(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []language.Code
	}{
		{"nil", nil, []language.Code{language.English}},
		{"empty", []string{}, []language.Code{language.English}},
		{"dedup", []string{"fr", "FR", "français"}, []language.Code{language.French}},
		{"order", []string{"zh", "es", "en"}, []language.Code{language.Chinese, language.Spanish, language.English}},
		{"unrecognized becomes default", []string{"fr", "xx"}, []language.Code{language.French, language.English}},
		{"blank entries", []string{"", " "}, []language.Code{language.English}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeList(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("NormalizeList(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeFromJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Settings
	}{
		{
			name: "empty record",
			body: `{}`,
			want: Defaults(),
		},
		{
			name: "legacy single language",
			body: `{"selectedLanguage":"es","showUnknown":false}`,
			want: Settings{Enabled: true, SelectedLanguages: []language.Code{language.Spanish}, ShowUnknown: false, KeepSubscribed: true},
		},
		{
			name: "list wins over legacy",
			body: `{"selectedLanguage":"es","selectedLanguages":["fr","zh"]}`,
			want: Settings{Enabled: true, SelectedLanguages: []language.Code{language.French, language.Chinese}, ShowUnknown: true, KeepSubscribed: true},
		},
		{
			name: "list given as string",
			body: `{"selectedLanguages":"fr-CA"}`,
			want: Settings{Enabled: true, SelectedLanguages: []language.Code{language.French}, ShowUnknown: true, KeepSubscribed: true},
		},
		{
			name: "empty list falls back to default",
			body: `{"selectedLanguage":"fr","selectedLanguages":[]}`,
			want: Settings{Enabled: true, SelectedLanguages: []language.Code{language.English}, ShowUnknown: true, KeepSubscribed: true},
		},
		{
			name: "null list is present and overrides legacy",
			body: `{"selectedLanguage":"fr","selectedLanguages":null}`,
			want: Settings{Enabled: true, SelectedLanguages: []language.Code{language.English}, ShowUnknown: true, KeepSubscribed: true},
		},
		{
			name: "disabled",
			body: `{"enabled":false,"keepSubscribed":false}`,
			want: Settings{Enabled: false, SelectedLanguages: []language.Code{language.English}, ShowUnknown: true, KeepSubscribed: false},
		},
		{
			name: "non-string entries",
			body: `{"selectedLanguages":[42,"es"]}`,
			want: Settings{Enabled: true, SelectedLanguages: []language.Code{language.English, language.Spanish}, ShowUnknown: true, KeepSubscribed: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw Raw
			if err := json.Unmarshal([]byte(tt.body), &raw); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := Normalize(raw); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Normalize = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLanguageListRejectsObject(t *testing.T) {
	var raw Raw
	if err := json.Unmarshal([]byte(`{"selectedLanguages":{"a":1}}`), &raw); err == nil {
		t.Fatal("expected error for object value")
	}
}

func TestMerge(t *testing.T) {
	base := Raw{
		Enabled:           boolPtr(true),
		SelectedLanguages: LanguageList{"en"},
		ShowUnknown:       boolPtr(true),
	}

	t.Run("overlay list", func(t *testing.T) {
		got := Normalize(Merge(base, Raw{SelectedLanguages: LanguageList{"es"}, ShowUnknown: boolPtr(false)}))
		if !reflect.DeepEqual(got.SelectedLanguages, []language.Code{language.Spanish}) || got.ShowUnknown {
			t.Fatalf("unexpected merge result %+v", got)
		}
	})

	t.Run("overlay legacy replaces base list", func(t *testing.T) {
		got := Normalize(Merge(base, Raw{SelectedLanguage: "fr"}))
		if !reflect.DeepEqual(got.SelectedLanguages, []language.Code{language.French}) {
			t.Fatalf("unexpected merge result %+v", got)
		}
	})

	t.Run("null overlay list resets to default", func(t *testing.T) {
		var overlay Raw
		if err := json.Unmarshal([]byte(`{"selectedLanguages":null}`), &overlay); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		got := Normalize(Merge(Raw{SelectedLanguages: LanguageList{"fr"}}, overlay))
		if !reflect.DeepEqual(got.SelectedLanguages, []language.Code{language.English}) {
			t.Fatalf("unexpected merge result %+v", got)
		}
	})

	t.Run("empty overlay keeps base", func(t *testing.T) {
		got := Normalize(Merge(base, Raw{}))
		if !reflect.DeepEqual(got, Normalize(base)) {
			t.Fatalf("unexpected merge result %+v", got)
		}
	})
}

func TestSettingsHelpers(t *testing.T) {
	s := Settings{SelectedLanguages: []language.Code{language.French, language.Chinese}}
	if s.SelectedLanguage() != language.French {
		t.Fatalf("SelectedLanguage = %q", s.SelectedLanguage())
	}
	if !s.Selects(language.Chinese) || s.Selects(language.English) {
		t.Fatalf("Selects mismatch for %v", s.SelectedLanguages)
	}
	if (Settings{}).SelectedLanguage() != language.English {
		t.Fatal("empty settings should report the default language")
	}

	round := Normalize(s.Raw())
	if !reflect.DeepEqual(round.SelectedLanguages, s.SelectedLanguages) {
		t.Fatalf("Raw round trip = %v", round.SelectedLanguages)
	}
}

func TestParseLanguageList(t *testing.T) {
	got := ParseLanguageList(" fr, ,es ,")
	want := LanguageList{"fr", "es"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseLanguageList = %v, want %v", got, want)
	}
}
