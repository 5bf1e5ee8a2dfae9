package cuid2

import (
	"fmt"
	"strconv"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// Generator produces ids from a fixed configuration. The fingerprint, random source, clock
// and length never change after construction; only the counter advances.
type Generator struct {
	length      int
	random      RandomFunc
	counter     CounterFunc
	fingerprint string
	clock       ClockFunc
}

// NewGenerator resolves the options and builds a Generator. It returns ErrInvalidLength or
// ErrCapacityExceeded when the configured length is outside [MinLength, MaxLength].
func NewGenerator(opts ...Option) (*Generator, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}

	return &Generator{
		length:      cfg.length,
		random:      cfg.random,
		counter:     cfg.counter,
		fingerprint: cfg.fingerprint,
		clock:       cfg.clock,
	}, nil
}

// Length returns the length of the ids this generator produces.
func (g *Generator) Length() int {
	return g.length
}

// Fingerprint returns the generator fingerprint.
func (g *Generator) Fingerprint() string {
	return g.fingerprint
}

// Generate returns the next id. It panics with ErrCapacityExceeded if the digest cannot
// supply the configured length, which does not happen for lengths up to MaxLength.
func (g *Generator) Generate() string {
	firstLetter := letters[int(g.random()*float64(len(letters)))]
	timestamp := strconv.FormatInt(g.clock().Unix(), 36)
	count := strconv.FormatInt(g.counter(), 36)
	salt := CreateEntropy(g.length, g.random)

	digest := Hash(timestamp + salt + count + g.fingerprint)

	// The letter is prepended and sliced back off so the result is always taken at offset 1.
	prefixed := string(firstLetter) + digest
	if len(prefixed) < g.length+1 {
		panic(fmt.Errorf("%w: digest has %d characters, need %d", ErrCapacityExceeded, len(digest), g.length))
	}
	return prefixed[1 : g.length+1]
}
