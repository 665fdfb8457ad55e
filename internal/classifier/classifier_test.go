package classifier

import (
	"strings"
	"testing"

	"tubelang/internal/language"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		title string
		want  language.Code
	}{
		// English
		{"Every Seinfeld Episode Based On A True Story", language.English},
		{"Why Do the French Criticize Parisians", language.English},
		{"The most amazing things you will ever see (in life)", language.English},
		{"This is how you can do it by yourself", language.English},

		// Spanish
		{"Los mejores momentos del partido de esta temporada", language.Spanish},
		{"Los más grandes momentos del fútbol en esta temporada", language.Spanish},
		{"Nickzzy - La Para (Video Oficial) #SPANISHDRILL", language.Spanish},
		{"Mix - BAD BUNNY - YO PERREO SOLA | YHLQMDLG (Video Oficial)", language.Spanish},
		{"Cómo GTA San Andreas rompió la PS2 para funcionar", language.Spanish},
		{"Learn Spanish Grammar and Vocabulary", language.Spanish},
		{"Tutorial de Photoshop en Espanol", language.Spanish},

		// French
		{"Les plus beaux endroits dans le monde avec nous", language.French},
		{"Call of Duty a sorti un BANGER", language.French},
		{"3 semaines pour acheter des consoles dans le PIRE état au Japon", language.French},
		{"LE TITAN DU TEMPS | Game of Roles Sheol #11", language.French},
		{"Game of Roles Saison 1 Episode 1 : Le début d'une grande aventure", language.French},
		{"E01 Learning French Naturally", language.French},
		{"French Comprehensible Input", language.French},
		{"Podcast en Francais", language.French},

		// Chinese
		{"今天的中文课程非常有趣", language.Chinese},
		{"NBA季后赛精彩时刻集锦", language.Chinese},
		{"溫蒂漫步 Wendy Wander - Spring Spring (Full Album)", language.Chinese},
		{"今天学习中文语法和词汇", language.Chinese},
		{"初级汉语听力训练课程", language.Chinese},
		{"Chinese Vocabulary HSK Level", language.Chinese},
		{"Learn Chinese Mandarin", language.Chinese},
		{"Why you understand MY CHINESE - Chinese Comprehensible Input", language.Chinese},

		// Unknown
		{"", language.Unknown},
		{"   ", language.Unknown},
		{"FULL EPISODE | Season 22 Episode 1 | Mock The Week", language.Unknown},
		{"The Strange Reason Chinese Doesn't Borrow Words", language.Unknown},
		{"The Spanish Civil War Documentary", language.Unknown},
		{"日本語の勉強は楽しいです", language.Unknown},
		{"한국어 배우기 초급 강좌", language.Unknown},
		{"Vlog 2024", language.Unknown},
		{"Parkour 2024", language.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Classify(tt.title); got != tt.want {
				t.Fatalf("Classify(%q) = %q, want %q (rule %s)", tt.title, got, tt.want, Explain(tt.title).Rule)
			}
		})
	}
}

func TestExplainReportsRule(t *testing.T) {
	tests := []struct {
		title string
		want  Decision
	}{
		{"", Decision{language.Unknown, RuleEmpty}},
		{"ひらがな and English", Decision{language.Unknown, RuleScriptGate}},
		{"今天的中文课程非常有趣", Decision{language.Chinese, RuleIdeographDensity}},
		{"Chinese Vocabulary HSK Level", Decision{language.Chinese, RuleStrongKeyword}},
		{"French Comprehensible Input", Decision{language.French, RuleWeakKeywordContext}},
		{"Call of Duty a sorti un BANGER", Decision{language.French, RuleAccentKeyword}},
		{"Vlog 2024", Decision{language.Unknown, RuleInsufficientSignal}},
		{"Los mejores momentos del partido de esta temporada", Decision{language.Spanish, RuleFunctionWordVote}},
		{"FULL EPISODE | Season 22 Episode 1 | Mock The Week", Decision{language.Unknown, RuleNoSignal}},
	}

	for _, tt := range tests {
		t.Run(string(tt.want.Rule), func(t *testing.T) {
			if got := Explain(tt.title); got != tt.want {
				t.Fatalf("Explain(%q) = %+v, want %+v", tt.title, got, tt.want)
			}
		})
	}
}

func TestVoteRatioDependsOnTitleLength(t *testing.T) {
	// Two English function words among filler tokens: 2/10 meets the short
	// ratio, 2/11 only meets the long one, 2/13 meets neither.
	tests := []struct {
		title string
		want  Decision
	}{
		{"aa bb cc dd ee ff gg hh the and", Decision{language.English, RuleFunctionWordVote}},
		{"aa bb cc dd ee ff gg hh ii the and", Decision{language.English, RuleFunctionWordVote}},
		{"aa bb cc dd ee ff gg hh ii jj kk the and", Decision{language.Unknown, RuleNoSignal}},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Explain(tt.title); got != tt.want {
				t.Fatalf("Explain(%q) = %+v, want %+v", tt.title, got, tt.want)
			}
		})
	}
}

func TestVideoOficialBacksSingleSpanishKeyword(t *testing.T) {
	tests := []struct {
		title string
		want  Decision
	}{
		{"Nickzzy Video Oficial", Decision{language.Spanish, RuleAccentKeyword}},
		{"Nickzzy VIDEO   oficial", Decision{language.Spanish, RuleAccentKeyword}},
		// Without the phrase a lone medium keyword is not enough.
		{"Nickzzy Oficial Tonight", Decision{language.Unknown, RuleNoSignal}},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Explain(tt.title); got != tt.want {
				t.Fatalf("Explain(%q) = %+v, want %+v", tt.title, got, tt.want)
			}
		})
	}
}

func TestStrongKeywordBeatsWeakContext(t *testing.T) {
	// Every strong keyword is checked before any weak keyword, so a native
	// language name outranks "Chinese" plus a learning word.
	tests := []struct {
		title string
		want  Decision
	}{
		{"Learn Chinese en Español", Decision{language.Spanish, RuleStrongKeyword}},
		{"Chinese Lessons Francais", Decision{language.French, RuleStrongKeyword}},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Explain(tt.title); got != tt.want {
				t.Fatalf("Explain(%q) = %+v, want %+v", tt.title, got, tt.want)
			}
		})
	}
}

func TestScriptGateWinsOverIdeographs(t *testing.T) {
	// Japanese mixes kanji with kana; the kana must decide.
	title := "東京大学の入学試験"
	if got := Classify(title); got != language.Unknown {
		t.Fatalf("Classify(%q) = %q, want unknown", title, got)
	}
}

func TestIdeographOverride(t *testing.T) {
	// Four ideographs in a long Latin title fall under the density cut-off
	// but still count as Chinese.
	title := "Wendy Wander Spring Spring Full Album Official Music Video 溫蒂漫步"
	if got := Classify(title); got != language.Chinese {
		t.Fatalf("Classify(%q) = %q, want zh", title, got)
	}

	sparse := "Wendy Wander Spring Spring Full Album Official Music Video 溫蒂"
	if got := Explain(sparse); got.Rule == RuleIdeographDensity {
		t.Fatalf("two sparse ideographs should not decide, got %+v", got)
	}
}

func TestVoteRequiresStrictLead(t *testing.T) {
	// "on" and "la" tie English against Spanish and French.
	title := "Pizza on la table with friends tonight"
	if got := Explain(title); got.Rule == RuleFunctionWordVote {
		t.Fatalf("tie should not produce a vote verdict, got %+v", got)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	titles := []string{
		"Les plus beaux endroits dans le monde avec nous",
		"NBA季后赛精彩时刻集锦",
		"Every Seinfeld Episode Based On A True Story",
	}
	c := New()
	for _, title := range titles {
		first := c.Classify(title)
		for i := 0; i < 3; i++ {
			if got := c.Classify(title); got != first {
				t.Fatalf("Classify(%q) changed from %q to %q", title, first, got)
			}
		}
	}
}

func TestWithThresholds(t *testing.T) {
	th := DefaultThresholds()
	th.MinIdeographs = 100
	th.IdeographOverride = 100
	c := New(WithThresholds(th))

	if got := c.Thresholds(); got != th {
		t.Fatalf("Thresholds() = %+v, want %+v", got, th)
	}
	if got := c.Classify("NBA季后赛精彩时刻集锦"); got != language.Unknown {
		t.Fatalf("raised ideograph thresholds: got %q, want unknown", got)
	}
}

func TestVerdictNeverEmpty(t *testing.T) {
	inputs := []string{"", "a", "!!", "12 34 56", strings.Repeat("x ", 50), "\u200b"}
	for _, in := range inputs {
		if got := Classify(in); got == "" {
			t.Fatalf("Classify(%q) returned empty verdict", in)
		}
	}
}
