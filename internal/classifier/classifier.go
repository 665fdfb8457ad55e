package classifier

import (
	"strings"

	"tubelang/internal/language"
)

// Decision is a verdict together with the rule that produced it.
type Decision struct {
	Verdict language.Code `json:"verdict"`
	Rule    RuleName      `json:"rule"`
}

// Classifier runs the rule cascade with a fixed set of thresholds.
type Classifier struct {
	thresholds Thresholds
	rules      []rule
}

// Option customizes a Classifier.
type Option func(*Classifier)

// WithThresholds replaces the default cut-offs.
func WithThresholds(t Thresholds) Option {
	return func(c *Classifier) {
		c.thresholds = t
	}
}

// New builds a classifier. Without options it uses DefaultThresholds.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		thresholds: DefaultThresholds(),
		rules:      defaultRules(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Thresholds returns the cut-offs in use.
func (c *Classifier) Thresholds() Thresholds {
	return c.thresholds
}

// Classify returns the language of title, or language.Unknown.
func (c *Classifier) Classify(title string) language.Code {
	return c.Explain(title).Verdict
}

// Explain classifies title and reports which rule decided.
func (c *Classifier) Explain(title string) Decision {
	title = strings.TrimSpace(title)
	if title == "" {
		return Decision{Verdict: language.Unknown, Rule: RuleEmpty}
	}
	s := newSample(title)
	for _, r := range c.rules {
		if verdict, ok := r.eval(s, c.thresholds).Verdict(); ok {
			return Decision{Verdict: verdict, Rule: r.name}
		}
	}
	return Decision{Verdict: language.Unknown, Rule: RuleNoSignal}
}

var defaultClassifier = New()

// Classify runs the default classifier.
func Classify(title string) language.Code {
	return defaultClassifier.Classify(title)
}

// Explain runs the default classifier and reports the deciding rule.
func Explain(title string) Decision {
	return defaultClassifier.Explain(title)
}
