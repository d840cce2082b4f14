package rng

import (
	"math/rand"
	"time"
)

// Source is the randomness boundary for the whole game. Generation,
// auction draws, and event rolls all go through it so tests can script
// outcomes deterministically.
type Source interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// Intn returns a uniform int in [0,n). n must be > 0.
	Intn(n int) int
}

type seeded struct {
	r *rand.Rand
}

// Seeded returns a Source backed by math/rand with the given seed.
// A seed of 0 falls back to the current time.
func Seeded(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &seeded{r: rand.New(rand.NewSource(seed))}
}

func (s *seeded) Float64() float64 { return s.r.Float64() }
func (s *seeded) Intn(n int) int   { return s.r.Intn(n) }

// Between returns a uniform int in [lo,hi] inclusive. A degenerate
// range collapses to lo.
func Between(s Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.Intn(hi-lo+1)
}

// Chance rolls a single event with probability p.
func Chance(s Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.Float64() < p
}

// Variance returns a multiplier 1 ± U(0,v). v is clamped at 0, so a
// zero variance always yields exactly 1.
func Variance(s Source, v float64) float64 {
	if v <= 0 {
		return 1
	}
	spread := s.Float64() * v
	if s.Intn(2) == 0 {
		return 1 - spread
	}
	return 1 + spread
}
