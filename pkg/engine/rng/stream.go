// Package rng provides seeded random streams and cyclic shuffled cursors.
// Each generation step owns its own stream so that two runs with the same
// seeds produce identical output.
package rng

import (
	"math/rand"

	"cavegen/pkg/engine/world"
)

// Stream is a deterministic random source bound to one seed.
type Stream struct {
	r    *rand.Rand
	seed int64
}

// New creates a stream seeded with seed. Equal seeds yield equal sequences.
func New(seed int64) *Stream {
	return &Stream{
		r:    rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the stream was created with
func (s *Stream) Seed() int64 {
	return s.seed
}

// NextInt returns a uniform integer in [low, high). Panics if high <= low.
func (s *Stream) NextInt(low, high int) int {
	if high <= low {
		panic("rng: NextInt with empty range")
	}
	return low + s.r.Intn(high-low)
}

// NextUnit returns a uniform float in [0, 1).
func (s *Stream) NextUnit() float64 {
	return s.r.Float64()
}

// Shuffle returns a cursor over a Fisher-Yates permutation of points.
// The input slice is left untouched.
func (s *Stream) Shuffle(points []world.Point) *Cursor {
	shuffled := make([]world.Point, len(points))
	copy(shuffled, points)

	for i := 0; i < len(shuffled)-1; i++ {
		j := s.NextInt(i, len(shuffled))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return NewCursor(shuffled)
}
