package noun

import (
	"log/slog"
	"sort"
)

// Irregular pairs a singular noun with a plural that no suffix rule produces.
type Irregular struct {
	Singular string
	Plural   string
}

var builtinIrregulars = []Irregular{
	{"man", "men"},
	{"woman", "women"},
	{"child", "children"},
	{"tooth", "teeth"},
	{"foot", "feet"},
	{"person", "people"},
	{"mouse", "mice"},
	{"goose", "geese"},
	{"datum", "data"},
	{"analysis", "analyses"},
	{"ox", "oxen"},
	{"sheep", "sheep"},
	{"fish", "fish"},
}

// Irregulars returns a copy of the built-in irregular table in declaration
// order.
func Irregulars() []Irregular {
	return append([]Irregular(nil), builtinIrregulars...)
}

// irregularTable is the forward and reverse index over one ordered list of
// irregular pairs.
type irregularTable struct {
	entries   []Irregular
	plurals   map[string]string // singular -> plural
	singulars map[string]string // plural -> singular, first declared wins
}

// newIrregularTable merges extra into the built-in list. Extra entries for
// an existing singular replace it in place; the rest are appended in key
// order.
func newIrregularTable(extra map[string]string, logger *slog.Logger) *irregularTable {
	entries := Irregulars()
	position := make(map[string]int, len(entries))
	for i, e := range entries {
		position[e.Singular] = i
	}

	keys := make([]string, 0, len(extra))
	for singular := range extra {
		keys = append(keys, singular)
	}
	sort.Strings(keys)

	for _, singular := range keys {
		plural := extra[singular]
		if i, ok := position[singular]; ok {
			logger.Warn("configured irregular noun replaces built-in",
				slog.String("singular", singular),
				slog.String("builtin_plural", entries[i].Plural),
				slog.String("plural", plural),
			)
			entries[i].Plural = plural
			continue
		}
		position[singular] = len(entries)
		entries = append(entries, Irregular{Singular: singular, Plural: plural})
	}

	t := &irregularTable{
		entries:   entries,
		plurals:   make(map[string]string, len(entries)),
		singulars: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		t.plurals[e.Singular] = e.Plural
		if first, seen := t.singulars[e.Plural]; seen {
			logger.Debug("ambiguous irregular plural, keeping first declaration",
				slog.String("plural", e.Plural),
				slog.String("kept", first),
				slog.String("ignored", e.Singular),
			)
			continue
		}
		t.singulars[e.Plural] = e.Singular
	}
	return t
}

func (t *irregularTable) plural(singular string) (string, bool) {
	p, ok := t.plurals[singular]
	return p, ok
}

func (t *irregularTable) singular(plural string) (string, bool) {
	s, ok := t.singulars[plural]
	return s, ok
}
