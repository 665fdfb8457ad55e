package channels

import (
	"net/url"
	"slices"
	"strings"
)

// Origin is the site origin relative hrefs are resolved against.
const Origin = "https://www.youtube.com"

var originURL, _ = url.Parse(Origin)

// NormalizeHref returns the canonical channel path for href, or false when
// href does not point at a channel.
func NormalizeHref(href string) (string, bool) {
	path := strings.TrimSpace(href)
	if path == "" {
		return "", false
	}
	if ref, err := url.Parse(path); err == nil {
		path = originURL.ResolveReference(ref).Path
	}
	path, _, _ = strings.Cut(path, "?")
	path, _, _ = strings.Cut(path, "#")
	path = strings.ToLower(path)

	parts := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return "", false
	}
	first := parts[0]
	if strings.HasPrefix(first, "@") {
		return "/" + first, true
	}
	switch first {
	case "channel", "c", "user":
		if len(parts) > 1 {
			return "/" + first + "/" + parts[1], true
		}
	}
	return "", false
}

// PageChannel returns the channel a page URL belongs to, if any.
func PageChannel(pageURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil {
		return "", false
	}
	return NormalizeHref(u.Path)
}

// Set is a collection of normalized channel paths. The zero value is not
// usable; create one with NewSet.
type Set map[string]struct{}

// NewSet builds a set from hrefs, normalizing each and skipping non-channel
// links.
func NewSet(hrefs ...string) Set {
	s := make(Set, len(hrefs))
	for _, href := range hrefs {
		s.Add(href)
	}
	return s
}

// Add normalizes href and records it. It reports whether href was a new
// channel.
func (s Set) Add(href string) bool {
	normalized, ok := NormalizeHref(href)
	if !ok {
		return false
	}
	if _, exists := s[normalized]; exists {
		return false
	}
	s[normalized] = struct{}{}
	return true
}

// Has reports whether href normalizes to a member of the set.
func (s Set) Has(href string) bool {
	if len(s) == 0 {
		return false
	}
	normalized, ok := NormalizeHref(href)
	if !ok {
		return false
	}
	_, exists := s[normalized]
	return exists
}

// HasAny reports whether any of hrefs is in the set.
func (s Set) HasAny(hrefs []string) bool {
	for _, href := range hrefs {
		if s.Has(href) {
			return true
		}
	}
	return false
}

// Merge adds every member of other and returns the number added.
func (s Set) Merge(other Set) int {
	added := 0
	for key := range other {
		if _, exists := s[key]; !exists {
			s[key] = struct{}{}
			added++
		}
	}
	return added
}

// Len returns the number of channels.
func (s Set) Len() int { return len(s) }

// Sorted returns the members in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for key := range s {
		out = append(out, key)
	}
	slices.Sort(out)
	return out
}
