package preferences

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Raw is the free-form settings record. Nil fields are absent.
type Raw struct {
	Enabled           *bool        `json:"enabled,omitempty" toml:"enabled,omitempty"`
	SelectedLanguage  string       `json:"selectedLanguage,omitempty" toml:"selected_language,omitempty"`
	SelectedLanguages LanguageList `json:"selectedLanguages,omitempty" toml:"selected_languages,omitempty"`
	ShowUnknown       *bool        `json:"showUnknown,omitempty" toml:"show_unknown,omitempty"`
	KeepSubscribed    *bool        `json:"keepSubscribed,omitempty" toml:"keep_subscribed,omitempty"`
}

// LanguageList decodes from a JSON array of strings or a single string. A nil
// list is absent; a non-nil empty list is present and normalizes to the
// default.
type LanguageList []string

// UnmarshalJSON accepts "fr", ["fr","es"] and null. An explicit null still
// marks the list as present so it overrides the legacy single value.
func (l *LanguageList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = LanguageList{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return fmt.Errorf("decode selected languages: %w", err)
		}
		*l = LanguageList{single}
		return nil
	}
	var values []any
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decode selected languages: %w", err)
	}
	out := make(LanguageList, 0, len(values))
	for _, v := range values {
		// Non-string entries normalize to the default like any other
		// unrecognized value.
		if s, ok := v.(string); ok {
			out = append(out, s)
		} else {
			out = append(out, fmt.Sprint(v))
		}
	}
	*l = out
	return nil
}

// ParseLanguageList splits a comma separated flag value.
func ParseLanguageList(value string) LanguageList {
	parts := strings.Split(value, ",")
	out := make(LanguageList, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Merge layers overlay on top of base. Present overlay fields win.
func Merge(base, overlay Raw) Raw {
	out := base
	if overlay.Enabled != nil {
		out.Enabled = overlay.Enabled
	}
	if overlay.SelectedLanguages != nil {
		out.SelectedLanguages = overlay.SelectedLanguages
		out.SelectedLanguage = overlay.SelectedLanguage
	} else if strings.TrimSpace(overlay.SelectedLanguage) != "" {
		out.SelectedLanguages = nil
		out.SelectedLanguage = overlay.SelectedLanguage
	}
	if overlay.ShowUnknown != nil {
		out.ShowUnknown = overlay.ShowUnknown
	}
	if overlay.KeepSubscribed != nil {
		out.KeepSubscribed = overlay.KeepSubscribed
	}
	return out
}
