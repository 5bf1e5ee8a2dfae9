// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/cuid2/internal/identifier/domain"
	"github.com/allisson/cuid2/pkg/cuid2"
)

// GenerateRequest contains the parameters for generating a batch of identifiers.
// Zero values select the service defaults.
type GenerateRequest struct {
	Length int `json:"length"`
	Count  int `json:"count"`
}

// Validate checks if the generate request is valid. The upper count bound is enforced by the
// use case, which owns the configured batch limit.
func (r *GenerateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Length,
			validation.When(r.Length != 0, validation.Min(cuid2.MinLength), validation.Max(cuid2.MaxLength)),
		),
		validation.Field(&r.Count, validation.Min(0)),
	)
}

// ToInput converts the request into a domain generate input.
func (r *GenerateRequest) ToInput() *domain.GenerateInput {
	return &domain.GenerateInput{
		Length: r.Length,
		Count:  r.Count,
	}
}

// ValidateRequest contains a candidate to check. The candidate may be any JSON value; anything
// other than a string is reported as invalid.
type ValidateRequest struct {
	Candidate any `json:"candidate"`
	MinLength int `json:"min_length"`
	MaxLength int `json:"max_length"`
}

// Validate checks if the validate request is valid.
func (r *ValidateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.MinLength, validation.Min(0)),
		validation.Field(&r.MaxLength,
			validation.Min(0),
			validation.When(r.MaxLength != 0 && r.MinLength != 0, validation.Min(r.MinLength)),
		),
	)
}

// ToInput converts the request into a domain validate input.
func (r *ValidateRequest) ToInput() *domain.ValidateInput {
	return &domain.ValidateInput{
		Candidate: r.Candidate,
		MinLength: r.MinLength,
		MaxLength: r.MaxLength,
	}
}
