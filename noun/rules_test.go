package noun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluralRuleOrder(t *testing.T) {
	names := make([]string, 0, len(pluralRules))
	for _, r := range PluralRules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"sibilant", "consonant-y", "o", "f-fe", "us", "is"}, names)
}

func TestSingularRuleOrder(t *testing.T) {
	names := make([]string, 0, len(singularRules))
	for _, r := range SingularRules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"sibilant-es", "consonant-ies", "oes", "ves", "uses", "es"}, names)
}

func TestPluralRules(t *testing.T) {
	rules := map[string]Rule{}
	for _, r := range PluralRules() {
		rules[r.Name] = r
	}

	tests := []struct {
		rule     string
		input    string
		expected string
	}{
		{"sibilant", "bus", "buses"},
		{"sibilant", "boss", "bosses"},
		{"sibilant", "dish", "dishes"},
		{"sibilant", "church", "churches"},
		{"sibilant", "box", "boxes"},
		{"sibilant", "quiz", "quizes"},
		{"sibilant", "BOX", "BOXes"},
		{"consonant-y", "city", "cities"},
		{"consonant-y", "CITY", "CITies"},
		{"o", "potato", "potatoes"},
		{"o", "hero", "heroes"},
		{"f-fe", "leaf", "leaves"},
		{"f-fe", "knife", "knives"},
		{"f-fe", "wolf", "wolves"},
		{"us", "cactus", "cactuses"},
		{"is", "axis", "axes"},
	}

	for _, tt := range tests {
		t.Run(tt.rule+"/"+tt.input, func(t *testing.T) {
			rule, ok := rules[tt.rule]
			require.True(t, ok)
			require.True(t, rule.Matches(tt.input))
			assert.Equal(t, tt.expected, rule.Apply(tt.input))
		})
	}
}

func TestSingularRules(t *testing.T) {
	rules := map[string]Rule{}
	for _, r := range SingularRules() {
		rules[r.Name] = r
	}

	tests := []struct {
		rule     string
		input    string
		expected string
	}{
		{"sibilant-es", "buses", "bus"},
		{"sibilant-es", "bosses", "boss"},
		{"sibilant-es", "dishes", "dish"},
		{"sibilant-es", "boxes", "box"},
		{"sibilant-es", "quizes", "quiz"},
		{"consonant-ies", "cities", "city"},
		{"consonant-ies", "parties", "party"},
		{"oes", "potatoes", "potato"},
		{"ves", "leaves", "leavesf"},
		{"ves", "wolves", "wolvesf"},
		{"uses", "buses", "busesus"},
		{"es", "tables", "tablesis"},
	}

	for _, tt := range tests {
		t.Run(tt.rule+"/"+tt.input, func(t *testing.T) {
			rule, ok := rules[tt.rule]
			require.True(t, ok)
			require.True(t, rule.Matches(tt.input))
			assert.Equal(t, tt.expected, rule.Apply(tt.input))
		})
	}
}

func TestRuleDoesNotMatch(t *testing.T) {
	consonantY := PluralRules()[1]
	assert.False(t, consonantY.Matches("day"))
	assert.False(t, consonantY.Matches("y"))
	assert.Equal(t, "day", consonantY.Apply("day"))
}

func TestRulesAreCaseInsensitive(t *testing.T) {
	for _, r := range append(PluralRules(), SingularRules()...) {
		assert.Contains(t, r.Pattern(), "(?i)", r.Name)
	}
}

func TestRuleAccessorsReturnCopies(t *testing.T) {
	rules := PluralRules()
	rules[0] = NewRule("replaced", `x$`, "y")
	assert.Equal(t, "sibilant", PluralRules()[0].Name)

	irregulars := Irregulars()
	irregulars[0].Plural = "mans"
	assert.Equal(t, "men", Irregulars()[0].Plural)
}

func TestFirstMatch(t *testing.T) {
	rule, ok := firstMatch(pluralRules, "axis")
	require.True(t, ok)
	assert.Equal(t, "sibilant", rule.Name, "us/is rules are shadowed by the sibilant rule")

	_, ok = firstMatch(pluralRules, "cat")
	assert.False(t, ok)
}
