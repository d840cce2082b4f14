package band

// The reputation domain is [0,1000], split into five contiguous bands.
// Each band selects one spawn-distribution table per pool.

const (
	RepMin = 0
	RepMax = 1000
)

// Key identifies a reputation band.
type Key string

const (
	Unknown   Key = "unknown"
	Fledgling Key = "fledgling"
	Trusted   Key = "trusted"
	Renowned  Key = "renowned"
	Legendary Key = "legendary"
)

// Band is a contiguous reputation range mapped to spawn tables.
type Band struct {
	Key Key `json:"key"`
	Min int `json:"min"`
	Max int `json:"max"`
}

// Pool selects which distribution table family applies.
type Pool string

const (
	PoolQuest Pool = "quest"
	PoolMerc  Pool = "merc"
)

var bands = [5]Band{
	{Key: Unknown, Min: 0, Max: 199},
	{Key: Fledgling, Min: 200, Max: 399},
	{Key: Trusted, Min: 400, Max: 599},
	{Key: Renowned, Min: 600, Max: 799},
	{Key: Legendary, Min: 800, Max: 1000},
}

// Weighted grade tables indexed lowest grade to highest (D..S). The
// sampler renormalizes, so rows need not sum to exactly 1.
var questTables = [5][5]float64{
	{0.50, 0.30, 0.15, 0.05, 0.00},
	{0.35, 0.35, 0.20, 0.08, 0.02},
	{0.20, 0.35, 0.28, 0.12, 0.05},
	{0.10, 0.25, 0.35, 0.20, 0.10},
	{0.05, 0.15, 0.30, 0.30, 0.20},
}

var mercTables = [5][5]float64{
	{0.55, 0.30, 0.12, 0.03, 0.00},
	{0.40, 0.32, 0.18, 0.08, 0.02},
	{0.25, 0.32, 0.25, 0.13, 0.05},
	{0.12, 0.25, 0.33, 0.20, 0.10},
	{0.06, 0.16, 0.28, 0.30, 0.20},
}

// Clamp bounds a reputation score into the valid domain.
func Clamp(rep int) int {
	if rep < RepMin {
		return RepMin
	}
	if rep > RepMax {
		return RepMax
	}
	return rep
}

// Of resolves a reputation score to its band. Total over all ints:
// out-of-range input is clamped before lookup.
func Of(rep int) Band {
	rep = Clamp(rep)
	for _, b := range bands {
		if rep >= b.Min && rep <= b.Max {
			return b
		}
	}
	// Unreachable after clamping, but never return a zero Band.
	return bands[len(bands)-1]
}

// All returns the five ordered bands.
func All() [5]Band {
	return bands
}

// DistributionFor returns the weighted grade distribution for the
// given pool at the given reputation.
func DistributionFor(pool Pool, rep int) [5]float64 {
	b := Of(rep)
	idx := 0
	for i, cand := range bands {
		if cand.Key == b.Key {
			idx = i
			break
		}
	}
	if pool == PoolMerc {
		return mercTables[idx]
	}
	return questTables[idx]
}
