package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/cuid2/internal/identifier/domain"
	identifierUseCase "github.com/allisson/cuid2/internal/identifier/usecase"
)

// RunGenerate prints count identifiers of the given length, one per line in text format or
// as a single JSON document. Zero length selects the configured default.
func RunGenerate(
	ctx context.Context,
	useCase identifierUseCase.IdentifierUseCase,
	logger *slog.Logger,
	writer io.Writer,
	length int,
	count int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("count must be a positive number, got: %d", count)
	}

	identifiers, err := useCase.Generate(ctx, &domain.GenerateInput{Length: length, Count: count})
	if err != nil {
		return fmt.Errorf("failed to generate identifiers: %w", err)
	}

	logger.Debug("identifiers generated",
		slog.Int("count", len(identifiers)),
		slog.Int("length", identifiers[0].Length),
	)

	if format == "json" {
		return outputGenerateJSON(writer, identifiers)
	}
	return outputGenerateText(writer, identifiers)
}

// outputGenerateText writes one identifier per line.
func outputGenerateText(w io.Writer, identifiers []*domain.Identifier) error {
	for _, identifier := range identifiers {
		if _, err := fmt.Fprintln(w, identifier.Value); err != nil {
			return err
		}
	}
	return nil
}

// outputGenerateJSON writes the batch in JSON format for machine consumption.
func outputGenerateJSON(w io.Writer, identifiers []*domain.Identifier) error {
	values := make([]string, 0, len(identifiers))
	for _, identifier := range identifiers {
		values = append(values, identifier.Value)
	}

	return writeJSON(w, map[string]interface{}{
		"identifiers": values,
		"length":      identifiers[0].Length,
		"count":       len(values),
	})
}
