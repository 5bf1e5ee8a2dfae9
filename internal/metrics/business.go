package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics records identifier operations for observability.
type BusinessMetrics interface {
	// RecordOperation records an operation with its status.
	// Operation examples: "generate", "validate". Status examples: "success", "error".
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records the duration of an operation in seconds as a histogram.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordGenerated adds count identifiers of the given length to the generated total.
	RecordGenerated(ctx context.Context, length, count int)

	// RecordValidation counts a validation outcome.
	RecordValidation(ctx context.Context, valid bool)
}

type businessMetrics struct {
	operationCounter  metric.Int64Counter
	durationHisto     metric.Float64Histogram
	generatedCounter  metric.Int64Counter
	validationCounter metric.Int64Counter
}

// NewBusinessMetrics creates BusinessMetrics on the given meter provider. Metric names are
// prefixed with namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of identifier operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of identifier operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	generatedCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_identifiers_generated_total", namespace),
		metric.WithDescription("Total number of identifiers generated"),
		metric.WithUnit("{identifier}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generated counter: %w", err)
	}

	validationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_validations_total", namespace),
		metric.WithDescription("Total number of validated candidates by result"),
		metric.WithUnit("{validation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create validation counter: %w", err)
	}

	return &businessMetrics{
		operationCounter:  operationCounter,
		durationHisto:     durationHisto,
		generatedCounter:  generatedCounter,
		validationCounter: validationCounter,
	}, nil
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("domain", domain),
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durationHisto.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("domain", domain),
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

func (b *businessMetrics) RecordGenerated(ctx context.Context, length, count int) {
	b.generatedCounter.Add(ctx, int64(count),
		metric.WithAttributes(attribute.Int("length", length)),
	)
}

func (b *businessMetrics) RecordValidation(ctx context.Context, valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	b.validationCounter.Add(ctx, 1,
		metric.WithAttributes(attribute.String("result", result)),
	)
}

// NoOpBusinessMetrics is used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
}

func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}

func (n *NoOpBusinessMetrics) RecordGenerated(ctx context.Context, length, count int) {}

func (n *NoOpBusinessMetrics) RecordValidation(ctx context.Context, valid bool) {}
