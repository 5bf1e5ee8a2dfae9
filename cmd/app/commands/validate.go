package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/cuid2/internal/identifier/domain"
	identifierUseCase "github.com/allisson/cuid2/internal/identifier/usecase"
	customValidation "github.com/allisson/cuid2/internal/validation"
)

// validationReport is the per-candidate outcome printed by RunValidate.
type validationReport struct {
	Candidate string `json:"candidate"`
	Valid     bool   `json:"valid"`
	Reason    string `json:"reason,omitempty"`
}

// RunValidate checks each candidate and prints one report per candidate. Returns an error
// when at least one candidate is invalid so scripts can rely on the exit status.
func RunValidate(
	ctx context.Context,
	useCase identifierUseCase.IdentifierUseCase,
	logger *slog.Logger,
	writer io.Writer,
	candidates []string,
	minLength int,
	maxLength int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf("at least one candidate is required")
	}

	reports := make([]validationReport, 0, len(candidates))
	invalid := 0
	for _, candidate := range candidates {
		result, err := useCase.Validate(ctx, &domain.ValidateInput{
			Candidate: candidate,
			MinLength: minLength,
			MaxLength: maxLength,
		})
		if err != nil {
			return fmt.Errorf("failed to validate candidate: %w", err)
		}

		report := validationReport{Candidate: candidate, Valid: result.Valid}
		if !result.Valid {
			invalid++
			rule := customValidation.Identifier{MinLength: result.MinLength, MaxLength: result.MaxLength}
			if err := rule.Validate(candidate); err != nil {
				report.Reason = err.Error()
			} else {
				report.Reason = "identifier must not be empty"
			}
		}
		reports = append(reports, report)
	}

	logger.Debug("candidates validated",
		slog.Int("total", len(candidates)),
		slog.Int("invalid", invalid),
	)

	var err error
	if format == "json" {
		err = writeJSON(writer, map[string]interface{}{"results": reports})
	} else {
		err = outputValidateText(writer, reports)
	}
	if err != nil {
		return err
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d candidate(s) are invalid", invalid, len(candidates))
	}
	return nil
}

// outputValidateText writes one line per candidate.
func outputValidateText(w io.Writer, reports []validationReport) error {
	for _, report := range reports {
		var err error
		if report.Valid {
			_, err = fmt.Fprintf(w, "%s: valid\n", report.Candidate)
		} else {
			_, err = fmt.Fprintf(w, "%s: invalid (%s)\n", report.Candidate, report.Reason)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
