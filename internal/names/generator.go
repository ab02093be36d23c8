package names

import (
	"errors"
	"math/rand/v2"
)

var (
	// ErrInvalidInput is returned for empty names.
	ErrInvalidInput = errors.New("name required")
	// ErrSynthesis is returned when the detailed report cannot be composed.
	ErrSynthesis = errors.New("report synthesis failed")
)

// Random is the only non-deterministic input of a report: it decides the
// popularity fun fact.
type Random interface {
	Float64() float64
}

type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }

// FixedRandom always returns the same value. Tests use it to make the
// popularity fact reproducible.
type FixedRandom float64

func (f FixedRandom) Float64() float64 { return float64(f) }

// Generator composes reports. The zero value is not usable; use NewGenerator.
type Generator struct {
	rng Random
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandom replaces the randomness source.
func WithRandom(r Random) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{rng: globalRandom{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// Report composes the detailed report with the default generator.
func Report(name string) (string, error) {
	return defaultGenerator.Report(name)
}

// Fallback composes the short report with the default generator.
func Fallback(name string) (string, error) {
	return defaultGenerator.Fallback(name)
}

// Describe returns the detailed report, or the fallback if composing it failed.
func Describe(name string) (string, bool, error) {
	return defaultGenerator.Describe(name)
}
