// Package app wires configuration, logging, metrics, and the noun converter
// together for programs that embed the converter.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	promclient "github.com/prometheus/client_golang/prometheus"

	"nounform/internal/audit"
	"nounform/internal/config"
	"nounform/internal/logging"
	"nounform/internal/observability"
	"nounform/noun"
)

// Options carries process-level collaborators that do not belong in config.
type Options struct {
	// LogOutput receives log records; defaults to os.Stdout.
	LogOutput io.Writer
	// Registerer receives the metrics collector when metrics are enabled;
	// defaults to the Prometheus default registerer.
	Registerer promclient.Registerer
}

// App owns the converter and the resources it reports through.
type App struct {
	cfg    *config.Config
	logger *logging.Logger

	loggerProvider    *observability.LoggerProvider
	meterProvider     *observability.MeterProvider
	conversionMetrics *observability.ConversionMetrics

	converter *noun.Converter
	auditor   *audit.Auditor

	cleanup      cleanupStack
	shutdownOnce sync.Once
}

// New validates cfg and builds every component it enables. Validation
// warnings are logged; validation errors abort construction.
func New(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	result := cfg.Validate()
	if result.HasErrors() {
		return nil, fmt.Errorf("invalid configuration: %s", result.Error())
	}

	a := &App{cfg: cfg}

	logCfg := cfg.LoggerConfig()
	logCfg.Output = opts.LogOutput
	if cfg.Logging.ExportsEnabled {
		lp, err := observability.InitLoggerProvider(ctx, cfg.TelemetryConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize log export: %w", err)
		}
		a.loggerProvider = lp
		logCfg.LoggerProvider = lp.Provider()
	}
	a.logger = logging.NewLogger(logCfg)
	if a.loggerProvider != nil {
		a.cleanup.push("logger provider", func(ctx context.Context) error {
			return a.loggerProvider.Shutdown(ctx, a.logger.Logger)
		})
	}

	for _, w := range result.Warnings {
		a.logger.Warn("configuration warning",
			slog.String("field", w.Field),
			slog.String("message", w.Message),
			slog.String("hint", w.Hint),
		)
	}

	var convOpts []noun.Option
	if cfg.Observability.MetricsEnabled {
		mp, err := observability.InitMeterProvider(cfg.TelemetryConfig(), opts.Registerer)
		if err != nil {
			a.cleanup.run(ctx, a.logger)
			return nil, fmt.Errorf("failed to initialize metrics: %w", err)
		}
		a.meterProvider = mp
		a.cleanup.push("meter provider", func(ctx context.Context) error {
			return mp.Shutdown(ctx, a.logger.Logger)
		})

		metrics, err := observability.InitConversionMetrics(mp.Meter())
		if err != nil {
			a.cleanup.run(ctx, a.logger)
			return nil, err
		}
		a.conversionMetrics = metrics
		convOpts = append(convOpts, noun.WithObserver(metrics))
	}

	nounLogger := a.logger.WithFields(slog.String("component", "noun"))
	a.converter = noun.New(cfg.Noun, nounLogger.Logger, convOpts...)
	a.auditor = audit.New(a.converter, a.logger.WithFields(slog.String("component", "audit")).Logger)

	a.logger.Debug("noun converter ready",
		slog.Int("irregulars", len(a.converter.Irregulars())),
		slog.Bool("metrics_enabled", a.meterProvider != nil),
		slog.Bool("log_export_enabled", a.loggerProvider != nil),
	)

	return a, nil
}

// Converter returns the configured noun converter.
func (a *App) Converter() *noun.Converter {
	return a.converter
}

// Auditor returns an auditor bound to the configured converter.
func (a *App) Auditor() *audit.Auditor {
	return a.auditor
}

// Logger returns the application logger.
func (a *App) Logger() *logging.Logger {
	return a.logger
}
