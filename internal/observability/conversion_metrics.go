package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"nounform/noun"
)

// ConversionMetrics counts noun conversions by direction and deciding
// source. It implements noun.Observer.
type ConversionMetrics struct {
	conversions metric.Int64Counter
}

// InitConversionMetrics creates the conversion counter on meter.
func InitConversionMetrics(meter metric.Meter) (*ConversionMetrics, error) {
	conversions, err := meter.Int64Counter(
		"noun.conversions",
		metric.WithDescription("Number of noun conversions by direction and source"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create noun conversion counter: %w", err)
	}
	return &ConversionMetrics{conversions: conversions}, nil
}

// ObserveConversion records one conversion.
func (m *ConversionMetrics) ObserveConversion(res noun.Result) {
	m.conversions.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("direction", string(res.Direction)),
		attribute.String("source", res.Source),
	))
}

var _ noun.Observer = (*ConversionMetrics)(nil)
