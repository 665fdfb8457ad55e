package classifier

// Thresholds holds the tuned cut-offs used by the cascade. The defaults were
// picked empirically against real listing titles; they are not derived.
type Thresholds struct {
	// MinIdeographs is the ideograph count required before density counts.
	MinIdeographs int
	// IdeographDensity is the ideograph share of non-space runes that must be exceeded.
	IdeographDensity float64
	// IdeographOverride is the ideograph count that means Chinese regardless of density.
	IdeographOverride int
	// MinVoteTokens is the token count below which voting is not attempted.
	MinVoteTokens int
	// MinVotes is the function-word count the winning language needs.
	MinVotes int
	// ShortTitleTokens is the longest title, in tokens, that uses ShortTitleRatio.
	ShortTitleTokens int
	// ShortTitleRatio is the minimum winning share for short titles.
	ShortTitleRatio float64
	// LongTitleRatio is the minimum winning share for longer titles.
	LongTitleRatio float64
}

// DefaultThresholds returns the cut-offs the keyword tables were tuned with.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinIdeographs:     2,
		IdeographDensity:  0.12,
		IdeographOverride: 4,
		MinVoteTokens:     3,
		MinVotes:          2,
		ShortTitleTokens:  10,
		ShortTitleRatio:   0.20,
		LongTitleRatio:    0.18,
	}
}

func (t Thresholds) minVoteRatio(tokens int) float64 {
	if tokens <= t.ShortTitleTokens {
		return t.ShortTitleRatio
	}
	return t.LongTitleRatio
}
