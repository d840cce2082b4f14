package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeeded_SameSeedSameSequence(t *testing.T) {
	a, b := Seeded(7), Seeded(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSeeded_ZeroSeedStillProduces(t *testing.T) {
	src := Seeded(0)
	v := src.Float64()
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 1.0)
}

func TestBetween(t *testing.T) {
	src := Seeded(3)
	for i := 0; i < 1000; i++ {
		v := Between(src, 5, 9)
		assert.GreaterOrEqual(t, v, 5)
		assert.LessOrEqual(t, v, 9)
	}

	assert.Equal(t, 5, Between(src, 5, 5), "degenerate range collapses to lo")
	assert.Equal(t, 5, Between(src, 5, 2), "inverted range collapses to lo")
}

func TestBetween_CoversBothEndpoints(t *testing.T) {
	src := Seeded(9)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		seen[Between(src, 1, 3)] = true
	}
	assert.True(t, seen[1])
	assert.True(t, seen[3])
}

func TestChance(t *testing.T) {
	assert.False(t, Chance(&Stub{}, 0))
	assert.False(t, Chance(&Stub{}, -0.5))
	assert.True(t, Chance(&Stub{}, 1))
	assert.True(t, Chance(&Stub{}, 1.5))

	assert.True(t, Chance(&Stub{Floats: []float64{0.29}}, 0.3))
	assert.False(t, Chance(&Stub{Floats: []float64{0.3}}, 0.3))
}

func TestVariance(t *testing.T) {
	assert.Equal(t, 1.0, Variance(&Stub{}, 0))
	assert.Equal(t, 1.0, Variance(&Stub{}, -0.2))

	src := Seeded(11)
	for i := 0; i < 1000; i++ {
		v := Variance(src, 0.15)
		assert.GreaterOrEqual(t, v, 0.85)
		assert.LessOrEqual(t, v, 1.15)
	}
}

func TestVariance_SignFromIntDraw(t *testing.T) {
	down := Variance(&Stub{Floats: []float64{0.5}, Ints: []int{0}}, 0.2)
	assert.InDelta(t, 0.9, down, 1e-9)

	up := Variance(&Stub{Floats: []float64{0.5}, Ints: []int{1}}, 0.2)
	assert.InDelta(t, 1.1, up, 1e-9)
}

func TestStub_PopsThenRepeatsLast(t *testing.T) {
	s := &Stub{Floats: []float64{0.1, 0.2}, Ints: []int{4, 7}}

	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 0.2, s.Float64())
	assert.Equal(t, 0.2, s.Float64(), "dry queue repeats the last value")

	assert.Equal(t, 4, s.Intn(10))
	assert.Equal(t, 7, s.Intn(10))
	assert.Equal(t, 7, s.Intn(10))
	assert.Equal(t, 2, s.Intn(3), "values clamp into [0,n)")
}

func TestStub_NeutralDefaults(t *testing.T) {
	s := &Stub{}
	assert.Equal(t, 0.5, s.Float64())
	assert.Equal(t, 0, s.Intn(10))
}
