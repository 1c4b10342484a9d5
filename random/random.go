// Package random provides seedable Mersenne Twister streams and the derived
// helpers used by particle placement. Streams are independent: every Source
// owns its generator state, and equal seeds replay equal sequences.
package random

import (
	"github.com/seehuhn/mt19937"
)

// Source is a deterministic uniform generator
// Not safe for concurrent use; give each goroutine its own Source
type Source struct {
	mt    *mt19937.MT19937
	seed  uint64
	draws uint64
}

// New creates a Source seeded with seed
func New(seed uint64) *Source {
	mt := mt19937.New()
	mt.Seed(int64(seed))
	return &Source{mt: mt, seed: seed}
}

// Seed returns the seed the stream started from
func (s *Source) Seed() uint64 {
	return s.seed
}

// Draws returns how many uniform values have been consumed
func (s *Source) Draws() uint64 {
	return s.draws
}

// Uniform returns a value in [0, 1) with 53 bits of precision
func (s *Source) Uniform() float64 {
	s.draws++
	return float64(s.mt.Uint64()>>11) / (1 << 53)
}

// Signed returns a value in [-1, 1)
func (s *Source) Signed() float64 {
	return s.Uniform()*2 - 1
}

// MinMagnitude returns a value in [-1, -0.25] or [0.25, 1)
// Guarantees a visible minimum displacement when used as a jitter factor
func (s *Source) MinMagnitude() float64 {
	v := s.Signed() * 0.75
	if v >= 0 {
		v += 0.25
	} else {
		v -= 0.25
	}
	return v
}

// Clamped returns max(Signed(), floor)
func (s *Source) Clamped(floor float64) float64 {
	v := s.Signed()
	if v < floor {
		return floor
	}
	return v
}

// Intn returns a value in [0, n), 0 when n <= 0
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Uniform() * float64(n))
}

// SubSeed derives an independent stream seed for index under a base seed
// splitmix64 finalizer over the combined words
func SubSeed(seed uint64, index uint64) uint64 {
	z := seed + (index+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
