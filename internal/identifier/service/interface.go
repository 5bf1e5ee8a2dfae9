// Package service provides identifier generators backed by the cuid2 algorithm.
package service

// IdentifierGenerator defines the interface for identifier generation.
type IdentifierGenerator interface {
	Generate() string
	Validate(token string) error
	Length() int
}
