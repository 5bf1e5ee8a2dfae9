// Package usecase implements identifier generation and validation business logic.
package usecase

import (
	"context"

	"github.com/allisson/cuid2/internal/identifier/domain"
	"github.com/allisson/cuid2/internal/identifier/service"
)

// GeneratorProvider returns a generator for a requested identifier length. Zero selects the
// provider default.
type GeneratorProvider interface {
	Get(length int) (service.IdentifierGenerator, error)
}

// IdentifierUseCase defines the operations exposed to transports.
type IdentifierUseCase interface {
	// Generate produces input.Count identifiers of input.Length characters.
	Generate(ctx context.Context, input *domain.GenerateInput) ([]*domain.Identifier, error)

	// Validate reports whether input.Candidate is a well-formed identifier within the bounds.
	Validate(ctx context.Context, input *domain.ValidateInput) (*domain.ValidationResult, error)
}
