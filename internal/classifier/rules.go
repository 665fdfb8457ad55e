package classifier

import (
	"strings"

	"tubelang/internal/language"
	"tubelang/internal/textutil"
)

// RuleName identifies the cascade step that produced a verdict.
type RuleName string

const (
	RuleEmpty              RuleName = "empty"
	RuleScriptGate         RuleName = "script_gate"
	RuleIdeographDensity   RuleName = "ideograph_density"
	RuleStrongKeyword      RuleName = "strong_keyword"
	RuleWeakKeywordContext RuleName = "weak_keyword_context"
	RuleAccentKeyword      RuleName = "accent_keyword"
	RuleInsufficientSignal RuleName = "insufficient_signal"
	RuleFunctionWordVote   RuleName = "function_word_vote"
	RuleNoSignal           RuleName = "no_signal"
)

// Result is the outcome of a single rule: either no match, or a verdict that
// ends the cascade.
type Result struct {
	verdict language.Code
	matched bool
}

// NoMatch lets the cascade continue with the next rule.
func NoMatch() Result { return Result{} }

// Match ends the cascade with code, which may be language.Unknown.
func Match(code language.Code) Result { return Result{verdict: code, matched: true} }

// Verdict returns the rule's verdict and whether it matched.
func (r Result) Verdict() (language.Code, bool) { return r.verdict, r.matched }

// sample carries one title through the cascade. Tokens are computed on first
// use so script-only decisions skip tokenization.
type sample struct {
	title  string
	lower  string
	tokens []string
}

func newSample(title string) *sample {
	return &sample{title: title}
}

func (s *sample) words() []string {
	if s.tokens == nil {
		s.tokens = textutil.Tokenize(s.title)
	}
	return s.tokens
}

func (s *sample) lowered() string {
	if s.lower == "" {
		s.lower = strings.ToLower(s.title)
	}
	return s.lower
}

func (s *sample) count(set wordSet) int {
	if len(set) == 0 {
		return 0
	}
	n := 0
	for _, w := range s.words() {
		if set.has(w) {
			n++
		}
	}
	return n
}

type rule struct {
	name RuleName
	eval func(*sample, Thresholds) Result
}

func defaultRules() []rule {
	return []rule{
		{RuleScriptGate, scriptGate},
		{RuleIdeographDensity, ideographDensity},
		{RuleStrongKeyword, strongKeyword},
		{RuleWeakKeywordContext, weakKeywordContext},
		{RuleAccentKeyword, accentKeyword},
		{RuleInsufficientSignal, insufficientSignal},
		{RuleFunctionWordVote, functionWordVote},
	}
}

// scriptGate rejects Japanese and Korean. Chinese text never contains kana.
func scriptGate(s *sample, _ Thresholds) Result {
	if containsScript(s.title, kana) || containsScript(s.title, hangul) {
		return Match(language.Unknown)
	}
	return NoMatch()
}

func ideographDensity(s *sample, t Thresholds) Result {
	count, nonSpace := ideographStats(s.title)
	if count == 0 {
		return NoMatch()
	}
	if count >= t.MinIdeographs && nonSpace > 0 && float64(count)/float64(nonSpace) > t.IdeographDensity {
		return Match(language.Chinese)
	}
	if count >= t.IdeographOverride {
		return Match(language.Chinese)
	}
	return NoMatch()
}

func strongKeyword(s *sample, _ Thresholds) Result {
	for _, code := range strongOrder {
		if s.count(lexicons[code].strong) >= 1 {
			return Match(code)
		}
	}
	return NoMatch()
}

// weakKeywordContext separates "Learn Chinese" from a video about China.
func weakKeywordContext(s *sample, _ Thresholds) Result {
	if s.count(learningContext) == 0 {
		return NoMatch()
	}
	for _, code := range weakOrder {
		if s.count(lexicons[code].weak) >= 1 {
			return Match(code)
		}
	}
	return NoMatch()
}

func accentKeyword(s *sample, _ Thresholds) Result {
	for _, code := range accentOrder {
		lex := lexicons[code]
		keywords := s.count(lex.medium)
		if keywords == 0 {
			continue
		}
		hasAccent := lex.accents != "" && strings.ContainsAny(s.lowered(), lex.accents)
		if keywords >= 2 || hasAccent {
			return Match(code)
		}
		if s.count(lex.function) >= 1 {
			return Match(code)
		}
		if lex.phrase != nil && lex.phrase.MatchString(s.title) {
			return Match(code)
		}
	}
	return NoMatch()
}

func insufficientSignal(s *sample, t Thresholds) Result {
	if len(s.words()) < t.MinVoteTokens {
		return Match(language.Unknown)
	}
	return NoMatch()
}

func functionWordVote(s *sample, t Thresholds) Result {
	total := len(s.words())
	if total == 0 {
		return NoMatch()
	}

	best := language.Unknown
	bestCount, secondCount := 0, 0
	for _, code := range voteOrder {
		n := s.count(lexicons[code].function)
		if n > bestCount {
			secondCount = bestCount
			bestCount = n
			best = code
		} else if n > secondCount {
			secondCount = n
		}
	}

	if bestCount < t.MinVotes || float64(bestCount)/float64(total) < t.minVoteRatio(total) {
		return NoMatch()
	}
	if bestCount <= secondCount {
		return NoMatch()
	}
	return Match(best)
}
