package cuid2

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"
)

const (
	// DefaultLength is the length of generated ids when none is configured.
	DefaultLength = 24
	// MinLength is the shortest id a generator may be configured for.
	MinLength = 2
	// MaxLength is the longest id a generator may be configured for.
	MaxLength = 32
	// BigLength is the amount of entropy used to build a fingerprint, and the fingerprint length.
	BigLength = 32
	// DefaultEntropyLength is the entropy length used when CreateEntropy is given no positive length.
	DefaultEntropyLength = 4
	// InitialCountMax bounds the random seed of a generator counter.
	InitialCountMax = 476782367
)

var (
	// ErrInvalidLength indicates a configured length below MinLength.
	ErrInvalidLength = errors.New("cuid2: length must be at least 2")

	// ErrCapacityExceeded indicates the requested length exceeds what the generator can supply.
	ErrCapacityExceeded = errors.New("cuid2: requested length exceeds generator capacity")
)

// RandomFunc returns a uniformly distributed float in [0,1).
type RandomFunc func() float64

// CounterFunc returns the next value of a monotonically increasing counter.
type CounterFunc func() int64

// ClockFunc returns the current wall-clock time.
type ClockFunc func() time.Time

var defaultRandom RandomFunc = rand.Float64

type config struct {
	length      int
	random      RandomFunc
	counter     CounterFunc
	fingerprint string
	clock       ClockFunc
}

// Option configures a Generator.
type Option func(*config)

// WithLength sets the length of generated ids. Zero keeps DefaultLength.
func WithLength(length int) Option {
	return func(c *config) {
		c.length = length
	}
}

// WithRandom sets the random source used for entropy, the first letter, and the defaults
// derived from it (counter seed and fingerprint).
func WithRandom(random RandomFunc) Option {
	return func(c *config) {
		c.random = random
	}
}

// WithCounter replaces the generator counter.
func WithCounter(counter CounterFunc) Option {
	return func(c *config) {
		c.counter = counter
	}
}

// WithFingerprint pins the generator fingerprint instead of computing one.
func WithFingerprint(fingerprint string) Option {
	return func(c *config) {
		c.fingerprint = fingerprint
	}
}

// WithClock replaces the wall clock. Mostly useful for deterministic tests.
func WithClock(clock ClockFunc) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// resolve fills in defaults and checks the configured length.
func (c *config) resolve() error {
	if c.length == 0 {
		c.length = DefaultLength
	}
	if c.length < MinLength {
		return ErrInvalidLength
	}
	if c.length > MaxLength {
		return ErrCapacityExceeded
	}
	if c.random == nil {
		c.random = defaultRandom
	}
	if c.counter == nil {
		c.counter = CreateCounter(int64(c.random() * InitialCountMax))
	}
	if c.fingerprint == "" {
		c.fingerprint = CreateFingerprint(c.random)
	}
	if c.clock == nil {
		c.clock = time.Now
	}
	return nil
}

// Create builds a generator and returns a single id from it.
func Create(opts ...Option) (string, error) {
	g, err := NewGenerator(opts...)
	if err != nil {
		return "", err
	}
	return g.Generate(), nil
}

// Init builds a generator and returns its Generate method. Prefer it over Create when
// producing many ids.
func Init(opts ...Option) (func() string, error) {
	g, err := NewGenerator(opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate, nil
}

var defaultGenerator = sync.OnceValue(func() *Generator {
	g, err := NewGenerator()
	if err != nil {
		panic(err)
	}
	return g
})

// Generate returns an id of DefaultLength from a process-wide generator built on first use.
func Generate() string {
	return defaultGenerator().Generate()
}
