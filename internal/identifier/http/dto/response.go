package dto

import (
	"time"

	"github.com/allisson/cuid2/internal/identifier/domain"
)

// IdentifierResponse represents a single identifier in API responses.
type IdentifierResponse struct {
	ID        string    `json:"id"`
	Length    int       `json:"length"`
	CreatedAt time.Time `json:"created_at"`
}

// MapIdentifierToResponse converts a domain identifier to an API response.
func MapIdentifierToResponse(identifier *domain.Identifier) IdentifierResponse {
	return IdentifierResponse{
		ID:        identifier.Value,
		Length:    identifier.Length,
		CreatedAt: identifier.CreatedAt,
	}
}

// GenerateResponse represents a generated batch.
type GenerateResponse struct {
	Identifiers []string `json:"identifiers"`
	Length      int      `json:"length"`
	Count       int      `json:"count"`
}

// MapIdentifiersToGenerateResponse converts a generated batch to an API response.
func MapIdentifiersToGenerateResponse(identifiers []*domain.Identifier) GenerateResponse {
	response := GenerateResponse{
		Identifiers: make([]string, 0, len(identifiers)),
		Count:       len(identifiers),
	}
	for _, identifier := range identifiers {
		response.Identifiers = append(response.Identifiers, identifier.Value)
	}
	if len(identifiers) > 0 {
		response.Length = identifiers[0].Length
	}
	return response
}

// ValidateResponse represents the outcome of validating a candidate.
type ValidateResponse struct {
	Candidate any  `json:"candidate"`
	Valid     bool `json:"valid"`
	MinLength int  `json:"min_length"`
	MaxLength int  `json:"max_length"`
}

// MapValidationResultToResponse converts a domain validation result to an API response.
func MapValidationResultToResponse(result *domain.ValidationResult) ValidateResponse {
	return ValidateResponse{
		Candidate: result.Candidate,
		Valid:     result.Valid,
		MinLength: result.MinLength,
		MaxLength: result.MaxLength,
	}
}
