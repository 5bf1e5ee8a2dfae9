// Package mocks provides mock implementations of the identifier use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/cuid2/internal/identifier/domain"
)

// MockIdentifierUseCase is a mock implementation of IdentifierUseCase.
type MockIdentifierUseCase struct {
	mock.Mock
}

// Generate mocks the Generate method of IdentifierUseCase.
func (m *MockIdentifierUseCase) Generate(
	ctx context.Context,
	input *domain.GenerateInput,
) ([]*domain.Identifier, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Identifier), args.Error(1)
}

// Validate mocks the Validate method of IdentifierUseCase.
func (m *MockIdentifierUseCase) Validate(
	ctx context.Context,
	input *domain.ValidateInput,
) (*domain.ValidationResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidationResult), args.Error(1)
}
