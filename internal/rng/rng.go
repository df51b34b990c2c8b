// Package rng abstracts the pseudo-random stream the tick kernel
// consumes behind a small interface, so a deterministic seed can be
// injected for tests while production code seeds from the wall clock.
package rng

import (
	"math/rand/v2"
	"time"
)

// Source is the PRNG surface the tick kernel depends on.
type Source interface {
	// NextU32 returns a uniform random value in [0, 1<<32).
	NextU32() uint32
	// NextF64 returns a uniform random value in [0, 1).
	NextF64() float64
	// NextInRange returns a uniform random integer in [0, n).
	NextInRange(n int) int
}

// rander wraps math/rand/v2's Rand to satisfy Source.
type rander struct {
	r *rand.Rand
}

// New returns a Source seeded from the wall clock at the time of the call.
func New() Source {
	now := uint64(time.Now().UnixNano())
	return NewSeeded(now, now^0x9E3779B97F4A7C15)
}

// NewSeeded constructs a deterministic Source for tests.
func NewSeeded(seed1, seed2 uint64) Source {
	return &rander{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (s *rander) NextU32() uint32 {
	return uint32(s.r.Uint64())
}

func (s *rander) NextF64() float64 {
	return s.r.Float64()
}

func (s *rander) NextInRange(n int) int {
	return s.r.IntN(n)
}
