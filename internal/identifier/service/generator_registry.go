package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/allisson/cuid2/internal/identifier/domain"
	"github.com/allisson/cuid2/pkg/cuid2"
)

// GeneratorRegistry hands out one generator per identifier length. All generators share the
// registry fingerprint; each owns its own counter.
type GeneratorRegistry struct {
	fingerprint   string
	defaultLength int

	mu         sync.Mutex
	generators map[int]IdentifierGenerator
}

// NewGeneratorRegistry creates a registry whose zero-length requests use defaultLength. An
// empty fingerprint is replaced by a freshly computed one. Returns ErrCapacityExceeded when
// defaultLength cannot be served.
func NewGeneratorRegistry(defaultLength int, fingerprint string) (*GeneratorRegistry, error) {
	if fingerprint == "" {
		fingerprint = cuid2.CreateFingerprint(rand.Float64)
	}

	r := &GeneratorRegistry{
		fingerprint:   fingerprint,
		defaultLength: defaultLength,
		generators:    make(map[int]IdentifierGenerator),
	}

	if _, err := r.Get(defaultLength); err != nil {
		return nil, fmt.Errorf("%w: default length %d", domain.ErrCapacityExceeded, defaultLength)
	}
	return r, nil
}

// Get returns the generator for length, building it on first use. Zero selects the default length.
func (r *GeneratorRegistry) Get(length int) (IdentifierGenerator, error) {
	if length == 0 {
		length = r.defaultLength
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if g, ok := r.generators[length]; ok {
		return g, nil
	}

	g, err := NewCUID2Generator(cuid2.WithLength(length), cuid2.WithFingerprint(r.fingerprint))
	if err != nil {
		if errors.Is(err, cuid2.ErrInvalidLength) || errors.Is(err, cuid2.ErrCapacityExceeded) {
			return nil, domain.ErrInvalidLength
		}
		return nil, err
	}

	r.generators[length] = g
	return g, nil
}

// Fingerprint returns the fingerprint shared by every generator of the registry.
func (r *GeneratorRegistry) Fingerprint() string {
	return r.fingerprint
}

// DefaultLength returns the length used for zero-length requests.
func (r *GeneratorRegistry) DefaultLength() int {
	return r.defaultLength
}

// HealthCheck generates and validates one identifier of the default length.
func (r *GeneratorRegistry) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g, err := r.Get(r.defaultLength)
	if err != nil {
		return err
	}
	return g.Validate(g.Generate())
}
