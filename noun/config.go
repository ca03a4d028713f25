// Package noun converts English nouns between singular and plural forms
// using an irregular-noun table and ordered suffix-rewrite rules.
package noun

// Config holds converter customization options
type Config struct {
	// Irregulars maps singular -> plural and extends the built-in table.
	// An entry for a built-in singular replaces the built-in plural.
	// Example: {"cactus": "cacti", "fish": "fishes"}
	Irregulars map[string]string `mapstructure:"irregulars"`
}

// DefaultConfig returns a config that uses the built-in tables only
func DefaultConfig() Config {
	return Config{
		Irregulars: make(map[string]string),
	}
}
