package extract

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"tubelang/internal/textutil"
)

// Source tags where a candidate title was read from.
type Source string

const (
	SourceTitleNode    Source = "title_node"
	SourceTitleAttr    Source = "title_attr"
	SourceTitleAria    Source = "title_aria"
	SourceLinkNode     Source = "link_node"
	SourceLinkAttr     Source = "link_attr"
	SourceLinkAria     Source = "link_aria"
	SourceListLink     Source = "list_link"
	SourceFallbackAttr Source = "fallback_attr"
)

var sourceBonus = map[Source]int{
	SourceTitleNode:    90,
	SourceTitleAttr:    75,
	SourceTitleAria:    80,
	SourceLinkNode:     70,
	SourceLinkAttr:     60,
	SourceLinkAria:     65,
	SourceListLink:     85,
	SourceFallbackAttr: 50,
}

const (
	maxLengthScore  = 180
	shortMixRunes   = 12
	placeholderCost = 200
	shortMixCost    = 120
	mixBonus        = 10
	markerBonus     = 30
	metadataCost    = 80
)

var (
	mixPrefix     = regexp.MustCompile(`^mix\b`)
	markerPattern = regexp.MustCompile(`(?i)video oficial|spanishdrill|reggaeton|francais|mandarin|chinese|中文|漢語|汉语`)
	metadataNoise = regexp.MustCompile(`(?i)\b\d+(?:[.,]\d+)?\s*(?:k|m|b)?\s*views?\b|\b(?:streamed|updated)\b|\b\d+\s*(?:hours?|days?|weeks?|months?|years?)\s+ago\b`)
)

// Candidate is one title reading of a card.
type Candidate struct {
	Text   string `json:"text"`
	Source Source `json:"source"`
	Score  int    `json:"score"`
}

// Score rates how likely text is the real title. Blank text scores
// math.MinInt so it never wins.
func Score(text string, source Source) int {
	normalized := textutil.CleanTitle(text)
	if normalized == "" {
		return math.MinInt
	}
	runes := utf8.RuneCountInString(normalized)
	lower := strings.ToLower(normalized)

	score := min(runes, maxLengthScore) + sourceBonus[source]

	switch {
	case lower == "mix" || lower == "playlist":
		score -= placeholderCost
	case mixPrefix.MatchString(lower) && runes <= shortMixRunes:
		score -= shortMixCost
	case mixPrefix.MatchString(lower):
		score += mixBonus
	}

	if markerPattern.MatchString(normalized) {
		score += markerBonus
	}
	if metadataNoise.MatchString(normalized) {
		score -= metadataCost
	}
	return score
}

// Best returns the highest scoring candidate. Ties keep the earlier one.
func Best(candidates []Candidate) (Candidate, bool) {
	var (
		best  Candidate
		found bool
	)
	for _, c := range candidates {
		if !found || c.Score > best.Score {
			best = c
			found = true
		}
	}
	return best, found
}
