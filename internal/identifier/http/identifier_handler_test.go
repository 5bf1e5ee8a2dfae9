package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cuid2/internal/httputil"
	"github.com/allisson/cuid2/internal/identifier/domain"
	"github.com/allisson/cuid2/internal/identifier/http/dto"
	"github.com/allisson/cuid2/internal/identifier/usecase/mocks"
)

// setupTestIdentifierHandler creates a test handler with mocked dependencies.
func setupTestIdentifierHandler(t *testing.T) (*IdentifierHandler, *mocks.MockIdentifierUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &mocks.MockIdentifierUseCase{}
	t.Cleanup(func() { mockUseCase.AssertExpectations(t) })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewIdentifierHandler(mockUseCase, logger), mockUseCase
}

func TestIdentifierHandler_CreateHandler(t *testing.T) {
	createdAt := time.Now().UTC()

	t.Run("Success_EmptyBody", func(t *testing.T) {
		handler, mockUseCase := setupTestIdentifierHandler(t)

		mockUseCase.On("Generate", mock.Anything, &domain.GenerateInput{}).
			Return([]*domain.Identifier{{Value: "k0xpkry4lx8tl3qh8vry0f6m", Length: 24, CreatedAt: createdAt}}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/identifiers", nil)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var response dto.GenerateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, []string{"k0xpkry4lx8tl3qh8vry0f6m"}, response.Identifiers)
		assert.Equal(t, 24, response.Length)
		assert.Equal(t, 1, response.Count)
	})

	t.Run("Success_Batch", func(t *testing.T) {
		handler, mockUseCase := setupTestIdentifierHandler(t)

		mockUseCase.On("Generate", mock.Anything, &domain.GenerateInput{Length: 10, Count: 2}).
			Return([]*domain.Identifier{
				{Value: "abcdefghij", Length: 10, CreatedAt: createdAt},
				{Value: "klmnopqrst", Length: 10, CreatedAt: createdAt},
			}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/identifiers", dto.GenerateRequest{Length: 10, Count: 2})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"identifiers":["abcdefghij","klmnopqrst"],"length":10,"count":2}`, w.Body.String())
	})

	t.Run("Error_MalformedJSON", func(t *testing.T) {
		handler, _ := setupTestIdentifierHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/identifiers", `{"count":`)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_ValidationFailed", func(t *testing.T) {
		handler, _ := setupTestIdentifierHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/identifiers", dto.GenerateRequest{Length: 40})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var response httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "validation_error", response.Error)
	})

	t.Run("Error_BatchTooLarge", func(t *testing.T) {
		handler, mockUseCase := setupTestIdentifierHandler(t)

		mockUseCase.On("Generate", mock.Anything, &domain.GenerateInput{Count: 5000}).
			Return(nil, domain.ErrInvalidBatchSize).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/identifiers", dto.GenerateRequest{Count: 5000})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var response httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "invalid_input", response.Error)
	})

	t.Run("Error_Canceled", func(t *testing.T) {
		handler, mockUseCase := setupTestIdentifierHandler(t)

		mockUseCase.On("Generate", mock.Anything, &domain.GenerateInput{Count: 500}).
			Return(nil, domain.ErrGenerationCanceled).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/identifiers", dto.GenerateRequest{Count: 500})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestIdentifierHandler_GetHandler(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("Success_DefaultLength", func(t *testing.T) {
		handler, mockUseCase := setupTestIdentifierHandler(t)

		mockUseCase.On("Generate", mock.Anything, &domain.GenerateInput{Count: 1}).
			Return([]*domain.Identifier{{Value: "k0xpkry4lx8tl3qh8vry0f6m", Length: 24, CreatedAt: createdAt}}, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/identifiers", nil)

		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(
			t,
			`{"id":"k0xpkry4lx8tl3qh8vry0f6m","length":24,"created_at":"2026-01-02T03:04:05Z"}`,
			w.Body.String(),
		)
	})

	t.Run("Success_CustomLength", func(t *testing.T) {
		handler, mockUseCase := setupTestIdentifierHandler(t)

		mockUseCase.On("Generate", mock.Anything, &domain.GenerateInput{Length: 8, Count: 1}).
			Return([]*domain.Identifier{{Value: "abcd1234", Length: 8, CreatedAt: createdAt}}, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/identifiers?length=8", nil)

		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.IdentifierResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "abcd1234", response.ID)
		assert.Equal(t, 8, response.Length)
	})

	t.Run("Error_InvalidLength", func(t *testing.T) {
		handler, _ := setupTestIdentifierHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/identifiers?length=99", nil)

		handler.GetHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_UseCaseFailure", func(t *testing.T) {
		handler, mockUseCase := setupTestIdentifierHandler(t)

		mockUseCase.On("Generate", mock.Anything, &domain.GenerateInput{Count: 1}).
			Return(nil, errors.New("boom")).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/identifiers", nil)

		handler.GetHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var response httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "internal_error", response.Error)
	})
}

func TestIdentifierHandler_ValidateHandler(t *testing.T) {
	t.Run("Success_ValidCandidate", func(t *testing.T) {
		handler, mockUseCase := setupTestIdentifierHandler(t)

		mockUseCase.On("Validate", mock.Anything, &domain.ValidateInput{Candidate: "abc123"}).
			Return(&domain.ValidationResult{Candidate: "abc123", Valid: true, MinLength: 2, MaxLength: 32}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/identifiers/validate", `{"candidate":"abc123"}`)

		handler.ValidateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"candidate":"abc123","valid":true,"min_length":2,"max_length":32}`, w.Body.String())
	})

	t.Run("Success_NonStringCandidate", func(t *testing.T) {
		handler, mockUseCase := setupTestIdentifierHandler(t)

		mockUseCase.On("Validate", mock.Anything, &domain.ValidateInput{Candidate: float64(123)}).
			Return(&domain.ValidationResult{Candidate: float64(123), Valid: false, MinLength: 2, MaxLength: 32}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/identifiers/validate", `{"candidate":123}`)

		handler.ValidateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"candidate":123,"valid":false,"min_length":2,"max_length":32}`, w.Body.String())
	})

	t.Run("Error_EmptyBody", func(t *testing.T) {
		handler, _ := setupTestIdentifierHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/identifiers/validate", nil)

		handler.ValidateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_ValidationFailed", func(t *testing.T) {
		handler, _ := setupTestIdentifierHandler(t)

		c, w := createTestContext(
			http.MethodPost,
			"/v1/identifiers/validate",
			`{"candidate":"abc","min_length":10,"max_length":4}`,
		)

		handler.ValidateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
