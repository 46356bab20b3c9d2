/*package rand supplies seedable uniform random number generators. The
pre-damage pass takes a *Generator as an explicit dependency so that tests
can inject a fixed seed while production runs seed from the clock.*/
package rand

import (
	grand "math/rand"
	"time"
)

// GeneratorType selects the backing algorithm of a Generator.
type GeneratorType int

const (
	// Xorshift is an xorshift* generator with 64 bits of state. Fast and
	// more than random enough for Bernoulli trials.
	Xorshift GeneratorType = iota
	// Golang wraps the standard library's generator.
	Golang

	// Default is the generator used when the caller has no preference.
	Default = Xorshift
)

type backend interface {
	next() float64 // uniform in [0, 1)
	seed(s uint64)
}

// Generator produces sequences of uniform random numbers.
type Generator struct {
	backend backend
}

// New creates a seeded Generator of the given type. Identical seeds give
// identical sequences.
func New(gt GeneratorType, seed uint64) *Generator {
	gen := &Generator{}
	switch gt {
	case Xorshift:
		gen.backend = &xorshiftBackend{}
	case Golang:
		gen.backend = &golangBackend{}
	default:
		panic("Unrecognized GeneratorType")
	}
	gen.backend.seed(seed)
	return gen
}

// NewTimeSeed creates a Generator seeded from the wall clock.
func NewTimeSeed(gt GeneratorType) *Generator {
	return New(gt, uint64(time.Now().UnixNano()))
}

// Uniform returns a random float64 in [low, high).
func (gen *Generator) Uniform(low, high float64) float64 {
	return low + (high-low)*gen.backend.next()
}

// UniformInt returns a random int in [low, high).
func (gen *Generator) UniformInt(low, high int) int {
	return low + int(float64(high-low)*gen.backend.next())
}

// UniformAt fills target with random float64s in [low, high).
func (gen *Generator) UniformAt(low, high float64, target []float64) {
	for i := range target {
		target[i] = gen.Uniform(low, high)
	}
}

type xorshiftBackend struct {
	state uint64
}

func (b *xorshiftBackend) seed(s uint64) {
	// The all-zero state is a fixed point of the transition function.
	if s == 0 {
		s = 0x9E3779B97F4A7C15
	}
	b.state = s
}

func (b *xorshiftBackend) next() float64 {
	x := b.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	b.state = x
	x *= 0x2545F4914F6CDD1D
	// The top 53 bits are the best-mixed ones.
	return float64(x>>11) / (1 << 53)
}

type golangBackend struct {
	gen *grand.Rand
}

func (b *golangBackend) seed(s uint64) {
	b.gen = grand.New(grand.NewSource(int64(s)))
}

func (b *golangBackend) next() float64 {
	return b.gen.Float64()
}
