// Package domain defines the identifier domain models shared by the service, use case and
// transport layers.
package domain

import "time"

const (
	// DefaultBatchSize is the number of identifiers generated when a request does not ask for a count.
	DefaultBatchSize = 1
)

// Identifier is a single generated CUID2.
type Identifier struct {
	Value     string
	Length    int
	CreatedAt time.Time
}

// GenerateInput describes a batch generation request. Zero values select the service defaults.
type GenerateInput struct {
	Length int
	Count  int
}

// ValidateInput describes a validation request. Candidate is intentionally untyped: anything
// other than a string is reported as invalid rather than rejected.
type ValidateInput struct {
	Candidate any
	MinLength int
	MaxLength int
}

// ValidationResult is the outcome of validating a candidate against length bounds.
type ValidationResult struct {
	Candidate any
	Valid     bool
	MinLength int
	MaxLength int
}
