// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/cuid2/internal/errors"
	"github.com/allisson/cuid2/pkg/cuid2"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Identifier validates that a value is a CUID2 string within the configured length bounds.
// Zero bounds select cuid2.MinLength and cuid2.MaxLength.
type Identifier struct {
	MinLength int
	MaxLength int
}

// Validate checks the value against the identifier alphabet and length bounds.
func (r Identifier) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_identifier_type", "identifier must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}

	minLength, maxLength := r.MinLength, r.MaxLength
	if minLength == 0 {
		minLength = cuid2.MinLength
	}
	if maxLength == 0 {
		maxLength = cuid2.MaxLength
	}

	if len(s) < minLength || len(s) > maxLength {
		return validation.NewError(
			"validation_identifier_length",
			fmt.Sprintf("identifier must be between %d and %d characters", minLength, maxLength),
		)
	}
	if !cuid2.IsValid(s, cuid2.WithMinLength(minLength), cuid2.WithMaxLength(maxLength)) {
		return validation.NewError(
			"validation_identifier_alphabet",
			"identifier must contain only lowercase letters and digits",
		)
	}
	return nil
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)
