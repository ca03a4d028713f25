package noun

import "regexp"

// Rule is a single suffix rewrite: a case-insensitive pattern and the
// template applied to the matched suffix.
type Rule struct {
	Name     string
	pattern  *regexp.Regexp
	template string
}

// NewRule compiles pattern with case folding enabled. It panics on an
// invalid pattern, so rules are meant to be declared at package init.
func NewRule(name, pattern, template string) Rule {
	return Rule{
		Name:     name,
		pattern:  regexp.MustCompile("(?i)" + pattern),
		template: template,
	}
}

// Matches reports whether the rule applies to word.
func (r Rule) Matches(word string) bool {
	return r.pattern.MatchString(word)
}

// Apply rewrites the matched suffix of word. Words the rule does not match
// are returned unchanged.
func (r Rule) Apply(word string) string {
	return r.pattern.ReplaceAllString(word, r.template)
}

// Pattern returns the compiled expression, including the case-folding flag.
func (r Rule) Pattern() string {
	return r.pattern.String()
}

// Template returns the replacement template.
func (r Rule) Template() string {
	return r.template
}

// Declared order matters: the first matching rule wins.
// "us" and "is" sit behind "sibilant" and never fire through ToPlural.
var pluralRules = []Rule{
	NewRule("sibilant", `(s|ss|sh|ch|x|z)$`, "${1}es"),
	NewRule("consonant-y", `([^aeiou])y$`, "${1}ies"),
	NewRule("o", `(o)$`, "${1}es"),
	NewRule("f-fe", `(f|fe)$`, "ves"),
	NewRule("us", `(us)$`, "uses"),
	NewRule("is", `(is)$`, "es"),
}

// "ves" and "es" keep the whole capture in the template, so
// leaves -> leavesf and tables -> tablesis.
var singularRules = []Rule{
	NewRule("sibilant-es", `(s|ss|sh|ch|x|z)es$`, "${1}"),
	NewRule("consonant-ies", `([^aeiou])ies$`, "${1}y"),
	NewRule("oes", `(oes)$`, "o"),
	NewRule("ves", `(ves)$`, "${1}f"),
	NewRule("uses", `(uses)$`, "${1}us"),
	NewRule("es", `(es)$`, "${1}is"),
}

// PluralRules returns a copy of the built-in pluralization rules in
// declaration order.
func PluralRules() []Rule {
	return append([]Rule(nil), pluralRules...)
}

// SingularRules returns a copy of the built-in singularization rules in
// declaration order.
func SingularRules() []Rule {
	return append([]Rule(nil), singularRules...)
}

// firstMatch returns the first rule in rules that matches word.
func firstMatch(rules []Rule, word string) (Rule, bool) {
	for _, rule := range rules {
		if rule.Matches(word) {
			return rule, true
		}
	}
	return Rule{}, false
}
