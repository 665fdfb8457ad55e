package preferences

import (
	"slices"

	"tubelang/internal/language"
)

// Settings is the normalized filter configuration.
type Settings struct {
	Enabled bool `json:"enabled"`
	// SelectedLanguages is never empty and holds unique supported codes.
	SelectedLanguages []language.Code `json:"selectedLanguages"`
	ShowUnknown       bool            `json:"showUnknown"`
	KeepSubscribed    bool            `json:"keepSubscribed"`
}

// Defaults returns the settings used when nothing has been stored.
func Defaults() Settings {
	return Settings{
		Enabled:           true,
		SelectedLanguages: []language.Code{language.Default},
		ShowUnknown:       true,
		KeepSubscribed:    true,
	}
}

// SelectedLanguage returns the primary selection for callers that only
// understand a single language.
func (s Settings) SelectedLanguage() language.Code {
	if len(s.SelectedLanguages) == 0 {
		return language.Default
	}
	return s.SelectedLanguages[0]
}

// Selects reports whether code is one of the selected languages.
func (s Settings) Selects(code language.Code) bool {
	return slices.Contains(s.SelectedLanguages, code)
}

// Raw returns the settings in wire shape, including the legacy field.
func (s Settings) Raw() Raw {
	langs := make(LanguageList, 0, len(s.SelectedLanguages))
	for _, code := range s.SelectedLanguages {
		langs = append(langs, string(code))
	}
	return Raw{
		Enabled:           boolPtr(s.Enabled),
		SelectedLanguage:  string(s.SelectedLanguage()),
		SelectedLanguages: langs,
		ShowUnknown:       boolPtr(s.ShowUnknown),
		KeepSubscribed:    boolPtr(s.KeepSubscribed),
	}
}

func boolPtr(v bool) *bool { return &v }
