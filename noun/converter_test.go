package noun

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPlural(t *testing.T) {
	conv := Default()

	tests := []struct {
		input    string
		expected string
	}{
		{"cat", "cats"},
		{"bus", "buses"},
		{"city", "cities"},
		{"potato", "potatoes"},
		{"leaf", "leaves"},
		{"knife", "knives"},
		{"man", "men"},
		{"sheep", "sheep"},
		{"day", "days"},
		{"axis", "axises"},
		{"cactus", "cactuses"},
		{"CITY", "CITies"},
		{"Man", "Mans"},
		{"y", "ys"},
		{"", "s"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, conv.ToPlural(tt.input))
		})
	}
}

func TestToSingular(t *testing.T) {
	conv := Default()

	tests := []struct {
		input    string
		expected string
	}{
		{"cats", "cat"},
		{"cities", "city"},
		{"buses", "bus"},
		{"boxes", "box"},
		{"potatoes", "potato"},
		{"heroes", "hero"},
		{"days", "day"},
		{"glasses", "glass"},
		{"men", "man"},
		{"sheep", "sheep"},
		{"data", "datum"},
		{"analyses", "analysis"},
		{"oxen", "ox"},
		{"leaves", "leavesf"},
		{"tables", "tablesis"},
		{"houses", "hous"},
		{"bass", "ba"},
		{"CATS", "CATS"},
		{"Men", "Men"},
		{"s", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, conv.ToSingular(tt.input))
		})
	}
}

func TestIrregularsBothDirections(t *testing.T) {
	conv := Default()
	for _, irr := range Irregulars() {
		assert.Equal(t, irr.Plural, conv.ToPlural(irr.Singular), irr.Singular)
		assert.Equal(t, irr.Singular, conv.ToSingular(irr.Plural), irr.Plural)
	}
}

func TestRoundTrip(t *testing.T) {
	conv := Default()

	for _, word := range []string{"cat", "city", "bus", "potato", "day", "glass"} {
		t.Run(word, func(t *testing.T) {
			assert.Equal(t, word, conv.ToSingular(conv.ToPlural(word)))
		})
	}
}

func TestRoundTripKnownLosses(t *testing.T) {
	conv := Default()

	tests := []struct {
		input    string
		expected string
	}{
		{"leaf", "leavesf"},
		{"knife", "knivesf"},
		{"table", "tablesis"},
		{"house", "hous"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, conv.ToSingular(conv.ToPlural(tt.input)))
		})
	}
}

func TestPluralNotIdempotent(t *testing.T) {
	conv := Default()
	assert.Equal(t, "catses", conv.ToPlural(conv.ToPlural("cat")))
	assert.Equal(t, "mens", conv.ToPlural(conv.ToPlural("man")))
}

func TestExplain(t *testing.T) {
	conv := Default()

	tests := []struct {
		name     string
		result   Result
		expected Result
	}{
		{"irregular plural", conv.ExplainPlural("child"), Result{Plural, "child", "children", SourceIrregular}},
		{"rule plural", conv.ExplainPlural("axis"), Result{Plural, "axis", "axises", "sibilant"}},
		{"default plural", conv.ExplainPlural("cat"), Result{Plural, "cat", "cats", SourceDefault}},
		{"irregular singular", conv.ExplainSingular("feet"), Result{Singular, "feet", "foot", SourceIrregular}},
		{"rule singular", conv.ExplainSingular("tables"), Result{Singular, "tables", "tablesis", "es"}},
		{"default singular", conv.ExplainSingular("bass"), Result{Singular, "bass", "ba", SourceDefault}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result)
		})
	}
}

func TestConfiguredIrregulars(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := Config{
		Irregulars: map[string]string{
			"cactus": "cacti",
			"fish":   "fishes",
		},
	}
	conv := New(cfg, logger)

	assert.Equal(t, "cacti", conv.ToPlural("cactus"))
	assert.Equal(t, "cactus", conv.ToSingular("cacti"))
	assert.Equal(t, "fishes", conv.ToPlural("fish"))
	assert.Equal(t, "fish", conv.ToSingular("fishes"))
	assert.Equal(t, "cats", conv.ToPlural("cat")) // Falls back to rules
	assert.Contains(t, buf.String(), "configured irregular noun replaces built-in")
	assert.Contains(t, buf.String(), "singular=fish")

	// Built-in table is untouched
	assert.Equal(t, "fish", Default().ToPlural("fish"))

	entries := conv.Irregulars()
	require.Len(t, entries, len(Irregulars())+1)
	assert.Equal(t, Irregular{"cactus", "cacti"}, entries[len(entries)-1])
}

func TestAmbiguousPluralFirstDeclaredWins(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := Config{
		Irregulars: map[string]string{
			"cow":  "kine",
			"bull": "kine",
			"deer": "sheep",
		},
	}

	for i := 0; i < 20; i++ {
		conv := New(cfg, logger)
		assert.Equal(t, "bull", conv.ToSingular("kine"))
		assert.Equal(t, "sheep", conv.ToSingular("sheep"))
		assert.Equal(t, "kine", conv.ToPlural("cow"))
		assert.Equal(t, "sheep", conv.ToPlural("deer"))
	}
	assert.Contains(t, buf.String(), "ambiguous irregular plural")
}

type recordingObserver struct {
	mu      sync.Mutex
	results []Result
}

func (r *recordingObserver) ObserveConversion(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

func TestObserver(t *testing.T) {
	obs := &recordingObserver{}
	conv := New(DefaultConfig(), nil, WithObserver(obs))

	conv.ToPlural("city")
	conv.ToSingular("men")

	require.Len(t, obs.results, 2)
	assert.Equal(t, Result{Plural, "city", "cities", "consonant-y"}, obs.results[0])
	assert.Equal(t, Result{Singular, "men", "man", SourceIrregular}, obs.results[1])
}

func TestConcurrentUse(t *testing.T) {
	obs := &recordingObserver{}
	conv := New(DefaultConfig(), nil, WithObserver(obs))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "children", conv.ToPlural("child"))
			assert.Equal(t, "city", conv.ToSingular("cities"))
		}()
	}
	wg.Wait()

	assert.Len(t, obs.results, 64)
}

func TestPackageLevelFunctions(t *testing.T) {
	assert.Equal(t, "geese", ToPlural("goose"))
	assert.Equal(t, "goose", ToSingular("geese"))
	assert.Equal(t, "cats", ToPlural("cat"))
	assert.Equal(t, "cat", ToSingular("cats"))
}
