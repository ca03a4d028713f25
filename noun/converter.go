package noun

import (
	"log/slog"
	"strings"
)

// Direction names the number a conversion produces.
type Direction string

const (
	Plural   Direction = "plural"
	Singular Direction = "singular"
)

// Sources reported in Result.Source besides rule names.
const (
	SourceIrregular = "irregular"
	SourceDefault   = "default"
)

// Result describes one conversion and what produced it.
type Result struct {
	Direction Direction
	Input     string
	Output    string
	// Source is SourceIrregular, SourceDefault, or the name of the rule
	// that matched.
	Source string
}

// Observer is notified of every conversion. Implementations must be safe
// for concurrent use.
type Observer interface {
	ObserveConversion(Result)
}

// Option customizes a Converter.
type Option func(*Converter)

// WithObserver registers o to receive every conversion result.
func WithObserver(o Observer) Option {
	return func(c *Converter) {
		c.observer = o
	}
}

// Converter turns nouns into their plural or singular form. Its tables are
// fixed at construction, so one Converter can be shared by any number of
// goroutines.
//
// Conversion is total: every input string, including "", yields an output
// and nothing is validated.
type Converter struct {
	irregulars    *irregularTable
	pluralRules   []Rule
	singularRules []Rule
	observer      Observer
	logger        *slog.Logger
}

// New creates a Converter from the built-in tables extended by cfg
func New(cfg Config, logger *slog.Logger, opts ...Option) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Converter{
		irregulars:    newIrregularTable(cfg.Irregulars, logger),
		pluralRules:   PluralRules(),
		singularRules: SingularRules(),
		logger:        logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Default returns a Converter with the built-in tables only
func Default() *Converter {
	return New(DefaultConfig(), nil)
}

// ToPlural returns the plural form of noun.
// Example: "city" -> "cities", "man" -> "men", "cat" -> "cats"
func (c *Converter) ToPlural(noun string) string {
	return c.ExplainPlural(noun).Output
}

// ToSingular returns the singular form of noun.
// Example: "cities" -> "city", "men" -> "man", "cats" -> "cat"
func (c *Converter) ToSingular(noun string) string {
	return c.ExplainSingular(noun).Output
}

// ExplainPlural pluralizes noun and reports which table entry decided it.
// Irregulars are checked first, then rules in declared order, then "s" is
// appended.
func (c *Converter) ExplainPlural(noun string) Result {
	res := Result{Direction: Plural, Input: noun}
	if plural, ok := c.irregulars.plural(noun); ok {
		res.Output, res.Source = plural, SourceIrregular
	} else if rule, ok := firstMatch(c.pluralRules, noun); ok {
		res.Output, res.Source = rule.Apply(noun), rule.Name
	} else {
		res.Output, res.Source = noun+"s", SourceDefault
	}
	c.observe(res)
	return res
}

// ExplainSingular singularizes noun and reports which table entry decided
// it. Without an irregular or rule match every trailing "s" is stripped,
// so "bass" becomes "ba".
func (c *Converter) ExplainSingular(noun string) Result {
	res := Result{Direction: Singular, Input: noun}
	if singular, ok := c.irregulars.singular(noun); ok {
		res.Output, res.Source = singular, SourceIrregular
	} else if rule, ok := firstMatch(c.singularRules, noun); ok {
		res.Output, res.Source = rule.Apply(noun), rule.Name
	} else {
		res.Output, res.Source = strings.TrimRight(noun, "s"), SourceDefault
	}
	c.observe(res)
	return res
}

// Irregulars returns the converter's irregular table, built-ins first, in
// the order used to resolve ambiguous plurals.
func (c *Converter) Irregulars() []Irregular {
	return append([]Irregular(nil), c.irregulars.entries...)
}

func (c *Converter) observe(res Result) {
	if c.observer != nil {
		c.observer.ObserveConversion(res)
	}
}

var defaultConverter = Default()

// ToPlural pluralizes noun with the built-in tables.
func ToPlural(noun string) string {
	return defaultConverter.ToPlural(noun)
}

// ToSingular singularizes noun with the built-in tables.
func ToSingular(noun string) string {
	return defaultConverter.ToSingular(noun)
}
