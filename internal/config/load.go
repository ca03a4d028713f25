package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "NOUNFORM"

// Load loads configuration from multiple sources with the following precedence:
// 1. Command line flags (only those explicitly set)
// 2. Environment variables (NOUNFORM_LOGGING_LEVEL, NOUNFORM_NOUN_IRREGULARS, ...)
// 3. Config file (--config, or nounform.yaml in /etc/nounform, $HOME/.nounform, .)
// 4. Default values
//
// fs may be nil. When fs lacks the config flags they are defined on it, and
// args are parsed unless fs has already been parsed. Map keys read from a
// config file are lower-cased by viper.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	v := viper.New()

	// Defaults (lowest priority)
	setDefaults(v)

	// --- Flags ---
	if fs == nil {
		fs = pflag.NewFlagSet("nounform", pflag.ContinueOnError)
	}
	if fs.Lookup("config") == nil {
		DefineFlags(fs)
	}
	if !fs.Parsed() {
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("failed to parse flags: %w", err)
		}
	}

	// --- Config file ---
	cfgPath, _ := fs.GetString("config")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.SetConfigName("nounform")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/nounform/")
		v.AddConfigPath("$HOME/.nounform")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgPath != "" {
			return nil, fmt.Errorf("failed to read config file %q: %w", cfgPath, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// --- Environment variables ---
	// Canonical keys: dot + snake_case
	// Env vars: NOUNFORM_OBSERVABILITY_OTLP_ENDPOINT
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// Map-valued keys have no default, so they must be bound explicitly.
	if err := v.BindEnv("noun.irregulars", envPrefix+"_NOUN_IRREGULARS"); err != nil {
		return nil, fmt.Errorf("failed to bind irregulars env var: %w", err)
	}

	// --- Flags binding (highest priority) ---
	bindChangedFlagsToViper(fs, v)

	// --- Unmarshal (strict) ---
	var cfg Config
	if err := v.UnmarshalExact(
		&cfg,
		viper.DecodeHook(
			mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				stringToStringMapHookFunc(",", "="),
			),
		),
	); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// DefineFlags defines the configuration flags on fs using canonical
// snake_case keys.
func DefineFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to config file")

	// Converter flags
	fs.StringToString("noun.irregulars", nil, "Additional irregular nouns (singular=plural, comma-separated)")

	// Logging flags
	fs.String("logging.level", "", "Log level (debug, info, warn, error)")
	fs.String("logging.format", "", "Log format (json, text)")
	fs.Bool("logging.exports_enabled", false, "Enable OTLP log export")

	// Observability flags
	fs.String("observability.service_name", "", "Service name for observability")
	fs.String("observability.service_version", "", "Service version for observability")
	fs.String("observability.environment", "", "Environment name (dev, staging, prod)")
	fs.Bool("observability.metrics_enabled", false, "Enable conversion metrics")
	fs.String("observability.otlp.endpoint", "", "OTLP endpoint for log export (e.g., localhost:4317)")
	fs.String("observability.otlp.protocol", "", "OTLP protocol (grpc, http/protobuf)")
	fs.Bool("observability.otlp.insecure", false, "Use insecure connection (no TLS)")
	fs.String("observability.otlp.tls_cert_file", "", "Path to TLS certificate file for server verification")
	fs.String("observability.otlp.tls_client_cert_file", "", "Path to client certificate file for mTLS")
	fs.String("observability.otlp.tls_client_key_file", "", "Path to client key file for mTLS")
	fs.Duration("observability.otlp.timeout", 0, "OTLP export timeout")
	fs.String("observability.otlp.compression", "", "OTLP compression (none, gzip)")
}

// bindChangedFlagsToViper copies only explicitly-set flags into Viper,
// preserving precedence: flags > env > file > defaults.
func bindChangedFlagsToViper(fs *pflag.FlagSet, v *viper.Viper) {
	fs.Visit(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}

		switch f.Value.Type() {
		case "string":
			val, _ := fs.GetString(f.Name)
			v.Set(f.Name, val)
		case "bool":
			val, _ := fs.GetBool(f.Name)
			v.Set(f.Name, val)
		case "duration":
			val, _ := fs.GetDuration(f.Name)
			v.Set(f.Name, val)
		case "stringToString":
			val, _ := fs.GetStringToString(f.Name)
			v.Set(f.Name, val)
		default:
			v.Set(f.Name, f.Value.String())
		}
	})
}

func setDefaults(v *viper.Viper) {
	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.exports_enabled", false)

	// Observability defaults
	v.SetDefault("observability.service_name", "nounform")
	v.SetDefault("observability.service_version", "")
	v.SetDefault("observability.environment", "")
	v.SetDefault("observability.metrics_enabled", false)

	// OTLP defaults
	v.SetDefault("observability.otlp.endpoint", "localhost:4317")
	v.SetDefault("observability.otlp.protocol", "grpc")
	v.SetDefault("observability.otlp.insecure", false)
	v.SetDefault("observability.otlp.tls_cert_file", "")
	v.SetDefault("observability.otlp.tls_client_cert_file", "")
	v.SetDefault("observability.otlp.tls_client_key_file", "")
	v.SetDefault("observability.otlp.timeout", 10*time.Second)
	v.SetDefault("observability.otlp.compression", "none")
}

// stringToStringMapHookFunc decodes "k1=v1,k2=v2" into map[string]string,
// so map-valued settings can come from a single env var.
func stringToStringMapHookFunc(sep, kvSep string) mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(map[string]string{}) {
			return data, nil
		}

		raw := strings.TrimSpace(data.(string))
		out := map[string]string{}
		if raw == "" {
			return out, nil
		}

		for _, pair := range strings.Split(raw, sep) {
			key, value, ok := strings.Cut(pair, kvSep)
			key = strings.TrimSpace(key)
			if !ok || key == "" {
				return nil, fmt.Errorf("invalid key%svalue pair %q", kvSep, strings.TrimSpace(pair))
			}
			out[key] = strings.TrimSpace(value)
		}
		return out, nil
	}
}
