package config

import (
	"fmt"
	"sort"
	"strings"

	"nounform/internal/logging"
	"nounform/noun"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	Field   string
	Message string
	Hint    string
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (hint: %s)", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Field   string
	Message string
	Hint    string
}

// ValidationResult contains the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error returns a combined error message if there are validation errors.
func (r *ValidationResult) Error() string {
	if !r.HasErrors() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for errors and returns validation results.
// It returns both errors (fatal) and warnings (non-fatal issues).
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}

	validateNounConfig(result, c.Noun)
	c.Logging.validate(result)
	c.Observability.validate(result, c.Logging.ExportsEnabled)

	return result
}

func validateNounConfig(result *ValidationResult, cfg noun.Config) {
	builtin := make(map[string]string)
	pluralOwner := make(map[string]string)
	for _, irr := range noun.Irregulars() {
		builtin[irr.Singular] = irr.Plural
		if _, ok := pluralOwner[irr.Plural]; !ok {
			pluralOwner[irr.Plural] = irr.Singular
		}
	}

	// Same order the converter appends entries in
	singulars := make([]string, 0, len(cfg.Irregulars))
	for singular := range cfg.Irregulars {
		singulars = append(singulars, singular)
	}
	sort.Strings(singulars)

	for _, singular := range singulars {
		plural := cfg.Irregulars[singular]
		if strings.TrimSpace(singular) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "noun.irregulars",
				Message: "singular noun cannot be empty",
			})
			continue
		}
		if strings.TrimSpace(plural) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "noun.irregulars",
				Message: fmt.Sprintf("plural for %q cannot be empty", singular),
			})
			continue
		}
		if existing, ok := builtin[singular]; ok && existing != plural {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Field:   "noun.irregulars",
				Message: fmt.Sprintf("%q overrides built-in plural %q with %q", singular, existing, plural),
			})
		}
		if owner, ok := pluralOwner[plural]; ok && owner != singular {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Field:   "noun.irregulars",
				Message: fmt.Sprintf("plural %q of %q is already the plural of %q", plural, singular, owner),
				Hint:    fmt.Sprintf("singularizing %q yields %q", plural, owner),
			})
			continue
		}
		pluralOwner[plural] = singular
	}
}

func (l *LoggingConfig) validate(result *ValidationResult) {
	if _, ok := logging.ParseLevel(l.Level); !ok {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown log level %q", l.Level),
			Hint:    "use debug, info, warn, or error",
		})
	}
	if !logging.ValidFormat(l.Format) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("unknown log format %q", l.Format),
			Hint:    "use text or json",
		})
	}
}

func (o *ObservabilityConfig) validate(result *ValidationResult, exportsEnabled bool) {
	if (o.MetricsEnabled || exportsEnabled) && strings.TrimSpace(o.ServiceName) == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "observability.service_name",
			Message: "service name is required when metrics or log export is enabled",
		})
	}
	if !exportsEnabled {
		return
	}
	if strings.TrimSpace(o.OTLP.Endpoint) == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "observability.otlp.endpoint",
			Message: "endpoint is required when log export is enabled",
		})
	}
	switch strings.ToLower(strings.TrimSpace(o.OTLP.Protocol)) {
	case "", "grpc", "http", "http/protobuf":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "observability.otlp.protocol",
			Message: fmt.Sprintf("unsupported OTLP protocol %q", o.OTLP.Protocol),
			Hint:    "use grpc or http/protobuf",
		})
	}
	switch o.OTLP.Compression {
	case "", "none", "gzip":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "observability.otlp.compression",
			Message: fmt.Sprintf("unsupported OTLP compression %q", o.OTLP.Compression),
			Hint:    "use none or gzip",
		})
	}
	if o.OTLP.Insecure && (o.OTLP.TLSCertFile != "" || o.OTLP.TLSClientCertFile != "") {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "observability.otlp.insecure",
			Message: "TLS files are ignored when insecure is set",
		})
	}
}
