package preferences

import (
	"strings"

	"tubelang/internal/language"
	"tubelang/internal/textutil"
)

// NormalizeCode maps a user-supplied language value to a supported code.
// Locale tags ("fr-CA"), native names ("Español") and English names are
// accepted. Anything unrecognized becomes language.Default.
func NormalizeCode(value string) language.Code {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return language.Default
	}
	folded := textutil.Fold(trimmed)
	primary, _, _ := strings.Cut(folded, "-")
	if code := language.Code(primary); language.IsSupported(code) {
		return code
	}
	if code, ok := language.FromAlias(folded); ok {
		return code
	}
	return language.Default
}

// NormalizeList normalizes each value, drops duplicates and keeps first-seen
// order. An empty result becomes the default selection.
func NormalizeList(values []string) []language.Code {
	seen := make(map[language.Code]struct{}, len(values))
	out := make([]language.Code, 0, len(values))
	for _, value := range values {
		code := NormalizeCode(value)
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	if len(out) == 0 {
		return []language.Code{language.Default}
	}
	return out
}

// Normalize converts a raw record into Settings. The list form wins when
// present; the legacy single value is used otherwise.
func Normalize(raw Raw) Settings {
	settings := Defaults()
	if raw.Enabled != nil {
		settings.Enabled = *raw.Enabled
	}
	if raw.ShowUnknown != nil {
		settings.ShowUnknown = *raw.ShowUnknown
	}
	if raw.KeepSubscribed != nil {
		settings.KeepSubscribed = *raw.KeepSubscribed
	}

	switch {
	case raw.SelectedLanguages != nil:
		settings.SelectedLanguages = NormalizeList(raw.SelectedLanguages)
	case strings.TrimSpace(raw.SelectedLanguage) != "":
		settings.SelectedLanguages = []language.Code{NormalizeCode(raw.SelectedLanguage)}
	}
	return settings
}
