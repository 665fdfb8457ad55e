package language

import "strings"

// Code identifies a supported language or the Unknown verdict.
type Code string

const (
	English Code = "en"
	Spanish Code = "es"
	French  Code = "fr"
	Chinese Code = "zh"

	// Unknown is the verdict for titles that could not be classified.
	Unknown Code = "unknown"

	// Default is the fallback code used whenever a selection would be empty
	// or a value cannot be recognized.
	Default = English
)

type entry struct {
	code    Code
	display string
	aliases []string // accent-folded, lowercase
}

var languages = []entry{
	{English, "English", []string{"english"}},
	{Spanish, "Spanish", []string{"spanish", "espanol"}},
	{French, "French", []string{"french", "francais"}},
	{Chinese, "Chinese", []string{"mandarin", "chinese"}},
}

var (
	byCode  map[Code]*entry
	byAlias map[string]*entry
)

func init() {
	byCode = make(map[Code]*entry, len(languages))
	byAlias = make(map[string]*entry, len(languages)*2)
	for i := range languages {
		e := &languages[i]
		byCode[e.code] = e
		for _, alias := range e.aliases {
			byAlias[alias] = e
		}
	}
}

// All returns the supported codes in canonical order.
func All() []Code {
	codes := make([]Code, 0, len(languages))
	for _, e := range languages {
		codes = append(codes, e.code)
	}
	return codes
}

// IsSupported reports whether code is one of the classifiable languages.
func IsSupported(code Code) bool {
	_, ok := byCode[code]
	return ok
}

// Known reports whether the verdict names a concrete language.
func (c Code) Known() bool {
	return IsSupported(c)
}

func (c Code) String() string {
	return string(c)
}

// Parse matches a bare code ("fr") exactly. It does not apply aliases or
// locale handling; see the preferences package for lenient normalization.
func Parse(value string) (Code, bool) {
	code := Code(strings.ToLower(strings.TrimSpace(value)))
	if code == Unknown {
		return Unknown, true
	}
	if IsSupported(code) {
		return code, true
	}
	return "", false
}

// FromAlias resolves an accent-folded, lowercase alias such as "espanol".
func FromAlias(alias string) (Code, bool) {
	if e, ok := byAlias[alias]; ok {
		return e.code, true
	}
	return "", false
}

// DisplayName returns a human-readable name for a code.
func DisplayName(code Code) string {
	if e, ok := byCode[code]; ok {
		return e.display
	}
	if code == Unknown || strings.TrimSpace(string(code)) == "" {
		return "Unknown"
	}
	return strings.ToUpper(string(code))
}
