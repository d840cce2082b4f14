package gen

import (
	"math"

	"github.com/google/uuid"

	"guildhall/internal/auction"
	"guildhall/internal/band"
	"guildhall/internal/config"
	"guildhall/internal/grade"
	"guildhall/internal/merc"
	"guildhall/internal/quest"
	"guildhall/internal/rival"
	"guildhall/internal/rng"
)

// Generator produces quests and mercenaries banded by the guild's
// current reputation.
type Generator struct {
	Balance config.Balance
	RNG     rng.Source
}

// Per-grade tuning tables, indexed lowest grade to highest (D..S).
var (
	statBonus  = [5]int{0, 4, 8, 12, 16}
	turnRange  = [5][2]int{{2, 4}, {3, 5}, {4, 7}, {6, 9}, {8, 12}}
	tierCoef   = [5]float64{1.0, 1.6, 2.5, 4.0, 6.5}
	importance = [5][]quest.Importance{
		{quest.ImportanceGold},
		{quest.ImportanceGold, quest.ImportanceStats},
		{quest.ImportanceGold, quest.ImportanceReputation, quest.ImportanceStats},
		{quest.ImportanceReputation, quest.ImportanceStats, quest.ImportanceGold},
		{quest.ImportanceReputation, quest.ImportanceStats},
	}
)

// Chances for flavor-special recruit kinds.
const (
	namedChance  = 0.12
	townieChance = 0.08
)

// SampleGrade draws a grade from a weighted distribution by
// inverse-CDF sampling: normalize, draw a uniform fraction, return the
// first grade whose cumulative weight reaches it. Negative weights are
// treated as zero and an all-zero vector degenerates to the lowest
// grade.
func (g *Generator) SampleGrade(dist [5]float64) grade.Grade {
	sum := 0.0
	for i, w := range dist {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			dist[i] = 0
			continue
		}
		sum += w
	}
	if sum <= 0 {
		return grade.Order[0]
	}

	draw := g.RNG.Float64()
	cum := 0.0
	for i, w := range dist {
		cum += w / sum
		if draw <= cum {
			return grade.Order[i]
		}
	}
	return grade.Order[len(grade.Order)-1]
}

// Mercenary generates one recruit for the current reputation band.
// The name registry is threaded in from the owning state.
func (g *Generator) Mercenary(reputation int, reg *Registry) merc.Mercenary {
	bal := g.Balance
	gr := g.SampleGrade(band.DistributionFor(band.PoolMerc, reputation))
	idx := grade.Index(gr)

	rollStat := func() int {
		return rng.Between(g.RNG, bal.StatRollMin+statBonus[idx], bal.StatRollMax+statBonus[idx]) + bal.StatBaseline
	}

	m := merc.Mercenary{
		ID:      uuid.NewString(),
		Grade:   gr,
		Kind:    g.rollKind(),
		Attack:  rollStat(),
		Defense: rollStat(),
		Stamina: rollStat(),
	}
	m.Name = g.Name(reg)

	total := float64(m.StatTotal())
	m.SigningBonus = int(math.Round(total * bal.SigningCoef * rng.Variance(g.RNG, bal.EconomyVar)))
	m.Wage = int(math.Round(total * bal.WageCoef * rng.Variance(g.RNG, bal.EconomyVar)))

	m.Fatigue = rng.Between(g.RNG, 0, 10)
	m.Relationship = rng.Between(g.RNG, 40, 60)
	m.BenchTime = 0

	return m
}

func (g *Generator) rollKind() merc.Kind {
	roll := g.RNG.Float64()
	switch {
	case roll < namedChance:
		return merc.KindNamed
	case roll < namedChance+townieChance:
		return merc.KindTownie
	default:
		return merc.KindRegular
	}
}

// Quest generates one offered contract, including its initial rival
// bid set.
func (g *Generator) Quest(reputation int, rivals []rival.Rival) quest.Quest {
	bal := g.Balance
	gr := g.SampleGrade(band.DistributionFor(band.PoolQuest, reputation))
	idx := grade.Index(gr)

	turnCost := rng.Between(g.RNG, turnRange[idx][0], turnRange[idx][1])

	raw := float64(bal.BaseReward) * tierCoef[idx] * turnCoefficient(turnCost) * rng.Variance(g.RNG, bal.RewardVar)
	reward := int(math.Round(raw))
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		reward = bal.RewardMin
	}
	if reward < bal.RewardMin {
		reward = bal.RewardMin
	}
	if reward > bal.RewardMax {
		reward = bal.RewardMax
	}

	difficulty := turnCost * 4
	rollRec := func() int {
		v := rng.Between(g.RNG, difficulty-2, difficulty+2)
		if v < 1 {
			v = 1
		}
		return v
	}

	tags := importance[idx]
	q := quest.Quest{
		ID:         uuid.NewString(),
		Grade:      gr,
		Importance: tags[g.RNG.Intn(len(tags))],
		Reward:     reward,
		TurnCost:   turnCost,
		Recommended: quest.StatVector{
			Attack:  rollRec(),
			Defense: rollRec(),
			Stamina: rollRec(),
		},
		Status:       quest.StatusReady,
		VisibleTurns: rng.Between(g.RNG, bal.VisibleTurnMin, bal.VisibleTurnMax),
	}

	q.Bids = &quest.BidRecord{RivalBids: g.rivalBids(reward, rivals)}
	return q
}

// rivalBids draws sealed bids from a random subset of rival guilds.
func (g *Generator) rivalBids(reward int, rivals []rival.Rival) []quest.RivalBid {
	bal := g.Balance
	n := bal.RivalBidsPerOffer
	if n > len(rivals) {
		n = len(rivals)
	}
	if n <= 0 {
		return nil
	}

	// Partial Fisher-Yates for a random distinct subset.
	idxs := make([]int, len(rivals))
	for i := range idxs {
		idxs[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + g.RNG.Intn(len(idxs)-i)
		idxs[i], idxs[j] = idxs[j], idxs[i]
	}

	bids := make([]quest.RivalBid, 0, n)
	for _, i := range idxs[:n] {
		bids = append(bids, quest.RivalBid{
			RivalID: rivals[i].ID,
			Amount:  auction.RivalBidAmount(reward, bal.RivalBidSpread, bal.BidMin, bal.BidMax, g.RNG),
		})
	}
	return bids
}

// turnCoefficient scales reward with quest length.
func turnCoefficient(turnCost int) float64 {
	return 0.75 + 0.12*float64(turnCost)
}
