// Package rng provides the single seeded random stream used by the game.
// Every random decision in a run (spawn timing, position, speed, color flag,
// word choice, power-up targets) draws from one Source so a fixed seed
// replays the same game.
package rng

import "math/rand"

// Source is the random source the simulation consumes.
type Source interface {
	// Float64Range returns a uniform value in [lo, hi). Returns lo if hi <= lo.
	Float64Range(lo, hi float64) float64

	// IntN returns a uniform integer in [0, n). Returns 0 if n <= 0.
	IntN(n int) int

	// Sample returns k distinct indices drawn uniformly from [0, n), in no
	// particular order. If k >= n every index is returned.
	Sample(n, k int) []int
}

// Rand is a Source backed by math/rand with an explicit seed.
type Rand struct {
	r *rand.Rand
}

// New creates a Source seeded with seed.
func New(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Float64Range implements Source.
func (s *Rand) Float64Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Float64()*(hi-lo)
}

// IntN implements Source.
func (s *Rand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.Intn(n)
}

// Sample implements Source using a partial Fisher-Yates shuffle.
func (s *Rand) Sample(n, k int) []int {
	if n <= 0 || k <= 0 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if k >= n {
		return idx
	}
	for i := 0; i < k; i++ {
		j := i + s.r.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

var _ Source = (*Rand)(nil)
