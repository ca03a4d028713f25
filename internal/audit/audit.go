// Package audit compares converter output with the jinzhu/inflection
// reference inflector. Divergences point at rule-table entries that are
// kept for compatibility but produce non-words, such as the singular "es"
// rule turning "tables" into "tablesis".
package audit

import (
	"log/slog"

	"github.com/jinzhu/inflection"

	"nounform/noun"
)

// Finding is one word whose converted form differs from the reference.
type Finding struct {
	Direction noun.Direction
	Word      string
	Got       string
	Reference string
	// Source is the converter table entry that produced Got.
	Source string
}

// Report groups findings by direction.
type Report struct {
	Checked  int
	Plural   []Finding
	Singular []Finding
}

// Total returns the number of findings in both directions.
func (r Report) Total() int {
	return len(r.Plural) + len(r.Singular)
}

// Auditor checks a Converter against the reference inflector.
type Auditor struct {
	conv   *noun.Converter
	logger *slog.Logger
}

// New creates an Auditor for conv.
func New(conv *noun.Converter, logger *slog.Logger) *Auditor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Auditor{conv: conv, logger: logger}
}

// CheckPlural pluralizes every word and returns the divergent ones in input
// order.
func (a *Auditor) CheckPlural(words []string) []Finding {
	return a.check(words, a.conv.ExplainPlural, inflection.Plural)
}

// CheckSingular singularizes every word and returns the divergent ones in
// input order.
func (a *Auditor) CheckSingular(words []string) []Finding {
	return a.check(words, a.conv.ExplainSingular, inflection.Singular)
}

// Check runs CheckPlural over singulars and CheckSingular over plurals.
func (a *Auditor) Check(singulars, plurals []string) Report {
	return Report{
		Checked:  len(singulars) + len(plurals),
		Plural:   a.CheckPlural(singulars),
		Singular: a.CheckSingular(plurals),
	}
}

func (a *Auditor) check(words []string, explain func(string) noun.Result, reference func(string) string) []Finding {
	var findings []Finding
	for _, word := range words {
		res := explain(word)
		ref := reference(word)
		if res.Output == ref {
			continue
		}
		f := Finding{
			Direction: res.Direction,
			Word:      word,
			Got:       res.Output,
			Reference: ref,
			Source:    res.Source,
		}
		a.logger.Debug("noun conversion diverges from reference",
			slog.String("direction", string(f.Direction)),
			slog.String("word", f.Word),
			slog.String("got", f.Got),
			slog.String("reference", f.Reference),
			slog.String("source", f.Source),
		)
		findings = append(findings, f)
	}
	return findings
}
