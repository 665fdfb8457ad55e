package classifier

import (
	"regexp"

	"tubelang/internal/language"
)

type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	set := make(wordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func (s wordSet) has(word string) bool {
	_, ok := s[word]
	return ok
}

// lexicon groups the evidence tiers for one language. All words are folded.
type lexicon struct {
	// strong words name the language in its own tongue and decide alone.
	strong wordSet
	// weak words name the language in English and need learning context.
	weak wordSet
	// medium words are slang or topic words correlated with the language.
	medium wordSet
	// function words are closed-class words used for voting.
	function wordSet
	// accents lists the lowercase accented letters typical of the language.
	accents string
	// phrase is an optional marker that backs a single medium match.
	phrase *regexp.Regexp
}

var (
	// strongOrder and weakOrder put Chinese first: its Latin-script markers
	// are the most specific.
	strongOrder = []language.Code{language.Chinese, language.Spanish, language.French}
	weakOrder   = []language.Code{language.Chinese, language.Spanish, language.French}
	// accentOrder covers the languages with accent heuristics.
	accentOrder = []language.Code{language.Spanish, language.French}
	// voteOrder also fixes the winner when counts tie.
	voteOrder = []language.Code{language.English, language.Spanish, language.French}
)

// learningContext marks a weak keyword as referring to language-learning content.
var learningContext = newWordSet(
	"learn", "learning", "comprehensible", "input", "podcast", "vocabulary",
	"grammar", "lesson", "lessons", "beginner", "intermediate", "advanced",
	"study", "studying", "course", "courses", "naturally",
)

var lexicons = map[language.Code]lexicon{
	language.English: {
		function: newWordSet(
			"the", "and", "is", "are", "was", "were", "will", "have", "has", "been",
			"this", "that", "with", "for", "not", "but", "you", "all", "can", "from",
			"they", "her", "his", "what", "when", "how", "why", "who", "which",
			"about", "would", "could", "should", "into", "more", "some", "than",
			"them", "these", "other", "only", "also", "very", "even", "most",
			"much", "many", "where", "after", "before", "every", "through",
			"because", "your", "our", "their", "there", "here", "while",
			"between", "both", "during", "might", "another", "being", "over",
			"again", "then", "once", "such", "same", "just", "like",
			"or", "if", "so", "my", "to", "of", "in", "it", "on", "at", "by",
			"an", "we", "do", "no", "its", "out", "did", "had", "any", "now",
		),
	},
	language.Spanish: {
		strong: newWordSet("espanol"),
		weak:   newWordSet("spanish"),
		medium: newWordSet(
			"spanishdrill", "reggaeton", "latino", "bachata", "merced",
			"oficial", "perreo", "instale", "rompio", "cambia",
		),
		function: newWordSet(
			"el", "la", "los", "las", "un", "una", "de", "del", "al", "con", "por",
			"para", "que", "en", "es", "son", "como", "mas", "pero", "este",
			"esta", "estos", "estas", "ese", "esa", "muy", "cuando", "donde",
			"porque", "entre", "desde", "hasta", "sobre", "todo", "cada",
			"otro", "otra", "sin", "siempre", "nunca", "puede", "tiene",
			"hay", "tambien", "despues", "antes", "nos", "les", "su", "sus",
			"mi", "mis", "tu", "tus", "yo", "ella", "ellos", "nosotros",
			"ya", "aqui", "asi", "solo", "mucho", "poco", "mejor", "peor",
			"nuevo", "nueva", "bueno", "buena", "grande", "se", "lo", "le",
		),
		accents: "áéíóúñ",
		phrase:  regexp.MustCompile(`(?i)\bvideo\s+oficial\b`),
	},
	language.French: {
		strong: newWordSet("francais", "francophone"),
		weak:   newWordSet("french"),
		medium: newWordSet(
			"retour", "frontieres", "miroir", "pourquoi", "merci", "saison",
			"debut", "aventure", "itineraire", "gourmand", "semaines", "meduses",
			"histoire", "cote", "sorti", "faut", "pire", "monde", "temps",
			"tete", "tetes", "acheter", "disparition",
		),
		function: newWordSet(
			"le", "la", "les", "un", "une", "de", "des", "du", "au", "aux",
			"et", "est", "sont", "dans", "pour", "pas", "qui", "vers",
			"sur", "avec", "plus", "mais", "tout", "cette", "ces", "ses",
			"mon", "mes", "par", "vous", "nous", "ils", "elles",
			"aussi", "tres", "meme", "ou", "comme", "quand", "depuis",
			"apres", "avant", "toujours", "jamais", "je", "tu", "il",
			"elle", "on", "leur", "leurs", "notre", "votre", "ce", "cet",
			"ici", "donc", "alors", "ni", "car", "puis",
			"encore", "rien", "peu", "beaucoup", "trop", "assez", "ne",
		),
		accents: "àâçéèêëîïôûùüÿœæ",
	},
	language.Chinese: {
		strong: newWordSet(
			"mandarin", "zhongwen", "putonghua", "hanyu", "hanzi", "hsk",
			"pinyin", "cantonese",
		),
		weak: newWordSet("chinese"),
	},
}
