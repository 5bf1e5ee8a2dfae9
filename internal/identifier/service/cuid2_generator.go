package service

import (
	"fmt"

	"github.com/allisson/cuid2/pkg/cuid2"
)

type cuid2Generator struct {
	generator *cuid2.Generator
}

// NewCUID2Generator creates an IdentifierGenerator from cuid2 options. Returns the cuid2
// length errors unchanged.
func NewCUID2Generator(opts ...cuid2.Option) (IdentifierGenerator, error) {
	g, err := cuid2.NewGenerator(opts...)
	if err != nil {
		return nil, err
	}
	return &cuid2Generator{generator: g}, nil
}

// Generate returns the next identifier.
func (g *cuid2Generator) Generate() string {
	return g.generator.Generate()
}

// Validate checks that token has exactly the generator length and only [0-9a-z] characters.
func (g *cuid2Generator) Validate(token string) error {
	length := g.generator.Length()
	if !cuid2.IsValid(token, cuid2.WithMinLength(length), cuid2.WithMaxLength(length)) {
		return fmt.Errorf("token must be %d characters of [0-9a-z]", length)
	}
	return nil
}

// Length returns the length of generated identifiers.
func (g *cuid2Generator) Length() int {
	return g.generator.Length()
}
