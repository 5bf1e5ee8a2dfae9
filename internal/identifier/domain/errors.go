package domain

import (
	"github.com/allisson/cuid2/internal/errors"
)

var (
	// ErrInvalidLength indicates a requested identifier length outside [2, 32].
	ErrInvalidLength = errors.Wrap(errors.ErrInvalidInput, "identifier length must be between 2 and 32")

	// ErrInvalidBatchSize indicates a requested count below 1 or above the configured maximum.
	ErrInvalidBatchSize = errors.Wrap(errors.ErrInvalidInput, "invalid batch size")

	// ErrInvalidBounds indicates validation bounds that cannot match anything.
	ErrInvalidBounds = errors.Wrap(errors.ErrInvalidInput, "invalid validation bounds")

	// ErrCapacityExceeded indicates the service default length exceeds what a generator can supply.
	ErrCapacityExceeded = errors.Wrap(errors.ErrConfiguration, "requested length exceeds generator capacity")

	// ErrGenerationCanceled indicates a batch was abandoned before completion.
	ErrGenerationCanceled = errors.Wrap(errors.ErrUnavailable, "identifier generation canceled")
)
