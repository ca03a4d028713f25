package audit

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nounform/noun"
)

func TestCheckPlural(t *testing.T) {
	a := New(noun.Default(), nil)

	findings := a.CheckPlural([]string{"cat", "axis", "city", "child"})

	require.Len(t, findings, 1)
	assert.Equal(t, Finding{
		Direction: noun.Plural,
		Word:      "axis",
		Got:       "axises",
		Reference: "axes",
		Source:    "sibilant",
	}, findings[0])
}

func TestCheckSingular(t *testing.T) {
	a := New(noun.Default(), nil)

	findings := a.CheckSingular([]string{"cats", "tables", "dogs", "men"})

	require.Len(t, findings, 1)
	assert.Equal(t, "tables", findings[0].Word)
	assert.Equal(t, "tablesis", findings[0].Got)
	assert.Equal(t, "table", findings[0].Reference)
	assert.Equal(t, "es", findings[0].Source)
}

func TestCheckNoFindings(t *testing.T) {
	a := New(noun.Default(), nil)

	assert.Empty(t, a.CheckPlural([]string{"cat", "dog", "man"}))
	assert.Empty(t, a.CheckSingular([]string{"cats", "dogs", "people"}))
}

func TestCheckReport(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a := New(noun.Default(), logger)

	report := a.Check([]string{"axis", "cat"}, []string{"tables", "cats"})

	assert.Equal(t, 4, report.Checked)
	assert.Equal(t, 2, report.Total())
	assert.Equal(t, "axis", report.Plural[0].Word)
	assert.Equal(t, "tables", report.Singular[0].Word)
	assert.Contains(t, buf.String(), "noun conversion diverges from reference")
	assert.Contains(t, buf.String(), "word=tables")
}
