package auction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildhall/internal/rng"
)

var testWeights = Weights{Price: 4.0, Feas: 1.2, Rep: 0.8}

func entries() []Entry {
	return []Entry{
		{Bidder: PlayerBidder, Price: 100, Feasibility: 0.9, Reputation: 0.3},
		{Bidder: "rival_a", Price: 110, Feasibility: 0.75, Reputation: 0.5},
		{Bidder: "rival_b", Price: 95, Feasibility: 0.75, Reputation: 0.6},
	}
}

func TestResolve_ProbabilitiesFormDistribution(t *testing.T) {
	res := Resolve(120, entries(), testWeights, rng.Seeded(1))

	require.Len(t, res.Probabilities, 3)
	sum := 0.0
	for _, p := range res.Probabilities {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
	assert.Contains(t, res.Probabilities, res.Winner)
}

func TestResolve_LowerPriceStrictlyIncreasesWinProbability(t *testing.T) {
	cheap := entries()
	cheap[0].Price = 80

	expensive := entries()
	expensive[0].Price = 120

	pCheap := Resolve(120, cheap, testWeights, rng.Seeded(1)).Probabilities[PlayerBidder]
	pExpensive := Resolve(120, expensive, testWeights, rng.Seeded(1)).Probabilities[PlayerBidder]

	assert.Greater(t, pCheap, pExpensive)
}

func TestResolve_WinnerFollowsCategoricalDraw(t *testing.T) {
	es := entries()

	// A draw of ~0 picks the first entry; a draw of ~1 exercises the
	// last-entry fallback.
	first := Resolve(120, es, testWeights, &rng.Stub{Floats: []float64{0.0}})
	assert.Equal(t, es[0].Bidder, first.Winner)

	last := Resolve(120, es, testWeights, &rng.Stub{Floats: []float64{0.999999999}})
	assert.Equal(t, es[len(es)-1].Bidder, last.Winner)
}

func TestResolve_EmptyInput(t *testing.T) {
	res := Resolve(100, nil, testWeights, rng.Seeded(1))
	assert.Empty(t, res.Winner)
	assert.Empty(t, res.Probabilities)
}

func TestResolve_DegenerateSignalsFallBackToFiniteScores(t *testing.T) {
	es := []Entry{
		{Bidder: "a", Price: 0, Feasibility: math.NaN(), Reputation: math.Inf(1)},
		{Bidder: "b", Price: 9999, Feasibility: -5, Reputation: 2},
	}
	res := Resolve(0, es, testWeights, rng.Seeded(1))

	sum := 0.0
	for _, p := range res.Probabilities {
		require.False(t, math.IsNaN(p))
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestResolve_SingleBidderAlwaysWins(t *testing.T) {
	es := []Entry{{Bidder: PlayerBidder, Price: 50, Feasibility: 0.5, Reputation: 0.5}}
	res := Resolve(100, es, testWeights, rng.Seeded(1))
	assert.Equal(t, PlayerBidder, res.Winner)
	assert.InDelta(t, 1.0, res.Probabilities[PlayerBidder], 1e-9)
}

func TestRivalBidAmount_SpreadAndClamp(t *testing.T) {
	src := rng.Seeded(4)
	for i := 0; i < 500; i++ {
		amount := RivalBidAmount(100, 0.15, 1, 9999, src)
		assert.GreaterOrEqual(t, amount, 85)
		assert.LessOrEqual(t, amount, 115)
	}

	// Clamps hold at the extremes of the bid domain.
	assert.Equal(t, 1, RivalBidAmount(0, 0.15, 1, 9999, src))
	assert.Equal(t, 9999, RivalBidAmount(100000, 0.15, 1, 9999, src))
}
