package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cuid2/internal/identifier/domain"
)

func TestMapIdentifierToResponse(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	identifier := &domain.Identifier{Value: "k0xpkry4lx8tl3qh8vry0f6m", Length: 24, CreatedAt: createdAt}

	response := MapIdentifierToResponse(identifier)

	assert.Equal(t, "k0xpkry4lx8tl3qh8vry0f6m", response.ID)
	assert.Equal(t, 24, response.Length)
	assert.Equal(t, createdAt, response.CreatedAt)
}

func TestMapIdentifiersToGenerateResponse(t *testing.T) {
	t.Run("Success_Batch", func(t *testing.T) {
		identifiers := []*domain.Identifier{
			{Value: "abcdefghij", Length: 10},
			{Value: "klmnopqrst", Length: 10},
		}

		response := MapIdentifiersToGenerateResponse(identifiers)

		assert.Equal(t, []string{"abcdefghij", "klmnopqrst"}, response.Identifiers)
		assert.Equal(t, 10, response.Length)
		assert.Equal(t, 2, response.Count)
	})

	t.Run("Success_EmptyBatchEncodesEmptyArray", func(t *testing.T) {
		response := MapIdentifiersToGenerateResponse(nil)

		body, err := json.Marshal(response)
		require.NoError(t, err)
		assert.JSONEq(t, `{"identifiers":[],"length":0,"count":0}`, string(body))
	})
}

func TestMapValidationResultToResponse(t *testing.T) {
	result := &domain.ValidationResult{Candidate: float64(123), Valid: false, MinLength: 2, MaxLength: 32}

	response := MapValidationResultToResponse(result)

	body, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"candidate":123,"valid":false,"min_length":2,"max_length":32}`, string(body))
}
