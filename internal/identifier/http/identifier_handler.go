// Package http provides HTTP handlers for identifier generation and validation.
package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cuid2/internal/httputil"
	"github.com/allisson/cuid2/internal/identifier/domain"
	"github.com/allisson/cuid2/internal/identifier/http/dto"
	identifierUseCase "github.com/allisson/cuid2/internal/identifier/usecase"
	customValidation "github.com/allisson/cuid2/internal/validation"
	"github.com/allisson/cuid2/pkg/cuid2"
)

// IdentifierHandler handles HTTP requests for identifier operations.
type IdentifierHandler struct {
	identifierUseCase identifierUseCase.IdentifierUseCase
	logger            *slog.Logger
}

// NewIdentifierHandler creates a new identifier handler with required dependencies.
func NewIdentifierHandler(
	identifierUseCase identifierUseCase.IdentifierUseCase,
	logger *slog.Logger,
) *IdentifierHandler {
	return &IdentifierHandler{
		identifierUseCase: identifierUseCase,
		logger:            logger,
	}
}

// CreateHandler generates a batch of identifiers.
// POST /v1/identifiers - An empty body generates one identifier of the default length.
// Returns 201 Created with the identifiers.
func (h *IdentifierHandler) CreateHandler(c *gin.Context) {
	var req dto.GenerateRequest

	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	identifiers, err := h.identifierUseCase.Generate(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapIdentifiersToGenerateResponse(identifiers))
}

// GetHandler generates a single identifier.
// GET /v1/identifiers?length=N - length is optional.
// Returns 200 OK with the identifier.
func (h *IdentifierHandler) GetHandler(c *gin.Context) {
	length, err := httputil.ParseIntQuery(c, "length", 0, cuid2.MinLength, cuid2.MaxLength)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	identifiers, err := h.identifierUseCase.Generate(
		c.Request.Context(),
		&domain.GenerateInput{Length: length, Count: 1},
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapIdentifierToResponse(identifiers[0]))
}

// ValidateHandler reports whether a candidate is a well-formed identifier.
// POST /v1/identifiers/validate
// Returns 200 OK with the validation result; an invalid candidate is not an error.
func (h *IdentifierHandler) ValidateHandler(c *gin.Context) {
	var req dto.ValidateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.identifierUseCase.Validate(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapValidationResultToResponse(result))
}
