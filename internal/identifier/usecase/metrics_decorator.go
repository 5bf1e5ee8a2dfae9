package usecase

import (
	"context"
	"time"

	"github.com/allisson/cuid2/internal/identifier/domain"
	"github.com/allisson/cuid2/internal/metrics"
)

const metricsDomain = "identifier"

// identifierUseCaseWithMetrics decorates IdentifierUseCase with metrics instrumentation.
type identifierUseCaseWithMetrics struct {
	next    IdentifierUseCase
	metrics metrics.BusinessMetrics
}

// NewIdentifierUseCaseWithMetrics wraps an IdentifierUseCase with metrics recording.
func NewIdentifierUseCaseWithMetrics(useCase IdentifierUseCase, m metrics.BusinessMetrics) IdentifierUseCase {
	return &identifierUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Generate records operation, duration and generated-count metrics.
func (d *identifierUseCaseWithMetrics) Generate(
	ctx context.Context,
	input *domain.GenerateInput,
) ([]*domain.Identifier, error) {
	start := time.Now()
	identifiers, err := d.next.Generate(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, metricsDomain, "generate", status)
	d.metrics.RecordDuration(ctx, metricsDomain, "generate", time.Since(start), status)
	if err == nil && len(identifiers) > 0 {
		d.metrics.RecordGenerated(ctx, identifiers[0].Length, len(identifiers))
	}

	return identifiers, err
}

// Validate records operation, duration and validation-result metrics.
func (d *identifierUseCaseWithMetrics) Validate(
	ctx context.Context,
	input *domain.ValidateInput,
) (*domain.ValidationResult, error) {
	start := time.Now()
	result, err := d.next.Validate(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, metricsDomain, "validate", status)
	d.metrics.RecordDuration(ctx, metricsDomain, "validate", time.Since(start), status)
	if err == nil {
		d.metrics.RecordValidation(ctx, result.Valid)
	}

	return result, err
}
