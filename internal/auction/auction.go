package auction

import (
	"math"

	"guildhall/internal/rng"
)

// PlayerBidder is the reserved bidder id for the player's guild.
const PlayerBidder = "player"

// epsilon keeps ln() away from zero for degenerate price ratios.
const epsilon = 1e-9

// Entry is one sealed bid. Feasibility and Reputation are normalized
// signals in [0,1].
type Entry struct {
	Bidder      string  `json:"bidder"`
	Price       int     `json:"price"`
	Feasibility float64 `json:"feasibility"`
	Reputation  float64 `json:"reputation"`
}

// Weights are the tuned scoring coefficients.
type Weights struct {
	Price float64
	Feas  float64
	Rep   float64
}

// Result is a resolved auction: the winning bidder and the full win
// distribution that produced the draw.
type Result struct {
	Winner        string             `json:"winner"`
	Probabilities map[string]float64 `json:"probabilities"`
}

// Resolve scores every entry against the quest reward, converts the
// scores to a probability distribution via a stable softmax, and
// performs a single categorical draw. The returned probabilities are
// what gets persisted on the quest.
func Resolve(reward int, entries []Entry, w Weights, src rng.Source) Result {
	if len(entries) == 0 {
		return Result{Probabilities: map[string]float64{}}
	}

	scores := make([]float64, len(entries))
	for i, e := range entries {
		scores[i] = score(reward, e, w)
	}

	probs := softmax(scores)

	out := make(map[string]float64, len(entries))
	for i, e := range entries {
		out[e.Bidder] = probs[i]
	}

	// Categorical draw by cumulative comparison. If floating error
	// leaves the draw unreached, the last entry wins.
	draw := src.Float64()
	cum := 0.0
	winner := entries[len(entries)-1].Bidder
	for i, p := range probs {
		cum += p
		if draw < cum {
			winner = entries[i].Bidder
			break
		}
	}

	return Result{Winner: winner, Probabilities: out}
}

func score(reward int, e Entry, w Weights) float64 {
	price := e.Price
	if price < 1 {
		price = 1
	}
	ratio := float64(reward) / float64(price)
	if ratio < 0.1 {
		ratio = 0.1
	}
	s := math.Log(math.Pow(ratio, w.Price)+epsilon) + w.Feas*clamp01(e.Feasibility) + w.Rep*clamp01(e.Reputation)
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0
	}
	return s
}

// softmax subtracts the max score before exponentiating for numeric
// stability.
func softmax(scores []float64) []float64 {
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}

	exps := make([]float64, len(scores))
	sum := 0.0
	for i, s := range scores {
		exps[i] = math.Exp(s - max)
		sum += exps[i]
	}
	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		// Degenerate input set: fall back to uniform.
		uniform := 1.0 / float64(len(scores))
		for i := range exps {
			exps[i] = uniform
		}
		return exps
	}
	for i := range exps {
		exps[i] /= sum
	}
	return exps
}

// RivalBidAmount draws one rival's bid: reward scaled by a uniform
// spread around 1, clamped to the valid bid range.
func RivalBidAmount(reward int, spread float64, bidMin, bidMax int, src rng.Source) int {
	factor := 1 - spread + src.Float64()*2*spread
	amount := int(math.Round(float64(reward) * factor))
	if amount < bidMin {
		amount = bidMin
	}
	if amount > bidMax {
		amount = bidMax
	}
	return amount
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
