// Package procedural synthesizes usage records from a seeded pseudo-random stream
// and degrades them according to a difficulty level.
//
// Every generator draws a fixed number of values from the Stream it is handed, so
// the records produced for a given seed never change, and changing how one field
// is derived does not shift the draws seen by the fields after it.
package procedural

import (
	"math/bits"
	"math/rand/v2"
)

// pcgIncrement selects the PCG stream; the seed alone selects the state.
const pcgIncrement = 0x9e3779b97f4a7c15

// Stream is a reproducible source of random draws. Each method consumes exactly
// one 64-bit draw, except Shuffle which consumes n-1.
// A Stream is not safe for concurrent use.
type Stream struct {
	src *rand.PCG
}

// NewStream returns a Stream seeded with seed.
func NewStream(seed uint64) *Stream {
	return &Stream{src: rand.NewPCG(seed, pcgIncrement)}
}

// Uint64 returns the next raw draw.
func (s *Stream) Uint64() uint64 {
	return s.src.Uint64()
}

// IntN returns a value in [0, n). It panics if n <= 0.
func (s *Stream) IntN(n int) int {
	if n <= 0 {
		panic("procedural: IntN with non-positive n")
	}
	hi, _ := bits.Mul64(s.src.Uint64(), uint64(n))
	return int(hi)
}

// Int64Range returns a value in [lo, hi). It panics if hi <= lo.
func (s *Stream) Int64Range(lo, hi int64) int64 {
	if hi <= lo {
		panic("procedural: empty Int64Range")
	}
	span, _ := bits.Mul64(s.src.Uint64(), uint64(hi-lo))
	return lo + int64(span)
}

// Float64 returns a value in [0, 1).
func (s *Stream) Float64() float64 {
	return float64(s.src.Uint64()>>11) * 0x1p-53
}

// Chance returns true with probability p.
func (s *Stream) Chance(p float64) bool {
	return s.Float64() < p
}

// Shuffle permutes n elements with Fisher-Yates using swap.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, s.IntN(i+1))
	}
}
