// Package config loads converter configuration from files, env vars, and flags,
// and validates it.
package config

import (
	"time"

	"nounform/internal/logging"
	"nounform/internal/observability"
	"nounform/noun"
)

// Config holds the application configuration.
type Config struct {
	Noun          noun.Config         `mapstructure:"noun"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// LoggingConfig holds logging parameters.
type LoggingConfig struct {
	Level          string `mapstructure:"level"`           // debug, info, warn, error
	Format         string `mapstructure:"format"`          // json, text
	ExportsEnabled bool   `mapstructure:"exports_enabled"` // Enable OTLP log export
}

// ObservabilityConfig holds observability parameters.
type ObservabilityConfig struct {
	ServiceName    string     `mapstructure:"service_name"`
	ServiceVersion string     `mapstructure:"service_version"`
	Environment    string     `mapstructure:"environment"`
	MetricsEnabled bool       `mapstructure:"metrics_enabled"`
	OTLP           OTLPConfig `mapstructure:"otlp"`
}

// OTLPConfig holds OTLP exporter configuration
type OTLPConfig struct {
	Endpoint          string            `mapstructure:"endpoint"`
	Protocol          string            `mapstructure:"protocol"` // "grpc", "http/protobuf"
	Insecure          bool              `mapstructure:"insecure"`
	TLSCertFile       string            `mapstructure:"tls_cert_file"`
	TLSClientCertFile string            `mapstructure:"tls_client_cert_file"`
	TLSClientKeyFile  string            `mapstructure:"tls_client_key_file"`
	Headers           map[string]string `mapstructure:"headers"`
	Timeout           time.Duration     `mapstructure:"timeout"`
	Compression       string            `mapstructure:"compression"` // "none", "gzip"
}

// LoggerConfig converts the logging section into a logging.Config.
func (c *Config) LoggerConfig() logging.Config {
	return logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
	}
}

// TelemetryConfig converts the observability section into an
// observability.Config.
func (c *Config) TelemetryConfig() observability.Config {
	o := c.Observability
	return observability.Config{
		ServiceName:    o.ServiceName,
		ServiceVersion: o.ServiceVersion,
		Environment:    o.Environment,
		OTLPConfig: observability.OTLPExporterConfig{
			Endpoint:          o.OTLP.Endpoint,
			Protocol:          o.OTLP.Protocol,
			Insecure:          o.OTLP.Insecure,
			TLSCertFile:       o.OTLP.TLSCertFile,
			TLSClientCertFile: o.OTLP.TLSClientCertFile,
			TLSClientKeyFile:  o.OTLP.TLSClientKeyFile,
			Headers:           o.OTLP.Headers,
			Timeout:           o.OTLP.Timeout,
			Compression:       o.OTLP.Compression,
		},
	}
}
