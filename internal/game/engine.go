package game

import (
	"fmt"
	"math"

	"guildhall/internal/config"
	"guildhall/internal/gen"
	"guildhall/internal/grade"
	"guildhall/internal/journal"
	"guildhall/internal/loot"
	"guildhall/internal/quest"
	"guildhall/internal/rng"
)

// Engine owns the quest lifecycle state machine and the command
// surface. It is single-threaded by design: commands never interleave.
type Engine struct {
	Balance config.Balance
	RNG     rng.Source
	Gen     *gen.Generator
	State   *State

	// pending holds staged (uncommitted) party selections per quest,
	// isolating incremental UI selection from committed state.
	pending map[string][]string
}

// Per-tier base reputation gain, lowest grade to highest.
var tierRep = [5]int{4, 7, 12, 20, 32}

// NewEngine wires an engine over an existing state.
func NewEngine(bal config.Balance, src rng.Source, state *State) *Engine {
	return &Engine{
		Balance: bal,
		RNG:     src,
		Gen:     &gen.Generator{Balance: bal, RNG: src},
		State:   state,
		pending: map[string][]string{},
	}
}

// TurnResult summarizes one turn advance.
type TurnResult struct {
	Turn      int `json:"turn"`
	Spawned   int `json:"spawned"`
	Expired   int `json:"expired"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Overdue   int `json:"overdue"`

	Gold       int `json:"gold"`
	Reputation int `json:"reputation"`
}

// AdvanceTurn runs the per-slot lifecycle step for every quest slot,
// then the roster mood upkeep.
func (e *Engine) AdvanceTurn() (TurnResult, error) {
	s := e.State
	s.Turn++

	res := TurnResult{Turn: s.Turn}
	for i := range s.Quests {
		e.tickSlot(i, &res)
	}
	e.tickMoods()

	s.Record(journal.Event{
		Turn: s.Turn,
		Type: journal.EventTurnAdvanced,
		Text: fmt.Sprintf("turn %d", s.Turn),
	}, e.Balance.JournalFeed)

	res.Gold = s.Gold
	res.Reputation = s.Reputation
	return res, nil
}

func (e *Engine) tickSlot(i int, res *TurnResult) {
	s := e.State
	q := &s.Quests[i]

	switch q.Status {
	case quest.StatusEmpty:
		if rng.Chance(e.RNG, e.Balance.SpawnRate) {
			e.spawnSlot(i)
			res.Spawned++
		}

	case quest.StatusReady:
		q.VisibleTurns--
		if q.VisibleTurns <= 0 {
			s.Record(journal.Event{Turn: s.Turn, Type: journal.EventQuestExpired, Text: q.ID}, e.Balance.JournalFeed)
			e.spawnSlot(i)
			res.Expired++
			res.Spawned++
		}

	case quest.StatusAwarded:
		// Held until the party is confirmed.

	case quest.StatusInProgress:
		e.tickInProgress(i, res)

	case quest.StatusBidFailed:
		e.spawnSlot(i)
		res.Spawned++
	}
}

// spawnSlot replaces slot i with a freshly generated quest and clears
// any staged formation for the old occupant.
func (e *Engine) spawnSlot(i int) {
	s := e.State
	if old := s.Quests[i].ID; old != "" {
		delete(e.pending, old)
	}
	s.Quests[i] = e.Gen.Quest(s.Reputation, s.Rivals)
	s.Record(journal.Event{Turn: s.Turn, Type: journal.EventQuestSpawned, Text: s.Quests[i].ID}, e.Balance.JournalFeed)
}

func (e *Engine) tickInProgress(i int, res *TurnResult) {
	s := e.State
	q := &s.Quests[i]
	st := e.Balance.StanceOrDefault(q.Stance)

	q.Progress.Completed++
	if q.Progress.Remaining > 0 {
		q.Progress.Remaining--
	}

	if rng.Chance(e.RNG, st.BonusLootChance) {
		amount := rng.Between(e.RNG, st.BonusLootMin, st.BonusLootMax)
		q.BonusGold += amount
		q.Record(journal.Event{Turn: s.Turn, Type: journal.EventBonusLoot, Text: fmt.Sprintf("+%d gold", amount)}, e.Balance.JournalPerEntity)
	}

	if rng.Chance(e.RNG, st.InjuryChance) {
		// Flavor only; no mechanical effect beyond the record.
		q.Record(journal.Event{Turn: s.Turn, Type: journal.EventMinorInjury}, e.Balance.JournalPerEntity)
	}

	if !q.CampPlaced && q.TurnCost >= 2 && q.Progress.Completed >= q.TurnCost/2 {
		q.CampPlaced = true
		q.Record(journal.Event{Turn: s.Turn, Type: journal.EventCamp}, e.Balance.JournalPerEntity)
	}

	ratio := e.overUnderRatio(q)
	pos := math.Max(0, ratio)
	neg := math.Max(0, -ratio)

	if pos > 0 && q.Progress.Remaining > 0 && rng.Chance(e.RNG, pos*e.Balance.ExpediteCoef) {
		q.Progress.Remaining--
		q.Record(journal.Event{Turn: s.Turn, Type: journal.EventExpedited}, e.Balance.JournalPerEntity)
	}

	if q.Progress.Remaining > 0 {
		return
	}

	// Delay is rolled at most once: an already-overdue quest resolves.
	if !q.Overdue && rng.Chance(e.RNG, st.BaseOverdueProb+neg*e.Balance.DelayCoef) {
		q.Progress.Remaining = 1
		q.Overdue = true
		res.Overdue++
		q.Record(journal.Event{Turn: s.Turn, Type: journal.EventOverdue}, e.Balance.JournalPerEntity)
		return
	}

	e.resolveQuest(i, pos, neg, st, res)
}

// overUnderRatio compares the assembled party against the recommended
// stats, clamped to the configured band. A zero recommended total is a
// neutral ratio rather than a division by zero.
func (e *Engine) overUnderRatio(q *quest.Quest) float64 {
	rec := q.Recommended.Total()
	if rec <= 0 {
		return 0
	}
	ratio := float64(e.State.PartyStatTotal(q.AssignedMercIDs)-rec) / float64(rec)
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0
	}
	if ratio < e.Balance.RatioFloor {
		ratio = e.Balance.RatioFloor
	}
	if ratio > e.Balance.RatioCeil {
		ratio = e.Balance.RatioCeil
	}
	return ratio
}

func (e *Engine) resolveQuest(i int, pos, neg float64, st config.Stance, res *TurnResult) {
	s := e.State
	q := &s.Quests[i]
	idx := grade.Index(q.Grade)

	wages := 0
	for _, id := range q.AssignedMercIDs {
		if m := s.RosterByID(id); m != nil {
			wages += m.Wage
		}
	}

	successChance := e.Balance.SuccessBase + pos*e.Balance.SuccessBonusCoef - neg*(e.Balance.DelayCoef*0.5)
	if math.IsNaN(successChance) {
		successChance = 0
	}
	if successChance < 0 {
		successChance = 0
	}
	if successChance > 1 {
		successChance = 1
	}

	if rng.Chance(e.RNG, successChance) {
		bid := 0
		if q.Bids != nil {
			bid = q.Bids.PlayerBid
		}
		s.Gold += bid + q.BonusGold - wages
		if s.Gold < 0 {
			s.Gold = 0
		}

		// Overdue completion forfeits the reputation gain entirely.
		if !q.Overdue {
			gain := int(math.Round(float64(tierRep[idx]) * st.RepMultiplier))
			s.Reputation += gain
			s.ClampReputation()
		}

		if rng.Chance(e.RNG, e.Balance.LootDropChance) {
			drop := loot.SuccessTable.Roll(e.RNG)
			s.Inventory.Add(drop)
			s.Record(journal.Event{Turn: s.Turn, Type: journal.EventLootDrop, Text: fmt.Sprintf("%s x%d", drop.Type, drop.Amount)}, e.Balance.JournalFeed)
		}

		s.Record(journal.Event{Turn: s.Turn, Type: journal.EventQuestSuccess, Text: q.ID}, e.Balance.JournalFeed)
		res.Completed++
	} else {
		s.Gold -= wages
		if s.Gold < 0 {
			s.Gold = 0
		}

		// Penalty scales with the shortfall and the quest's tier.
		penalty := int(math.Round(float64(tierRep[idx]) * (1 + neg*2)))
		s.Reputation -= penalty
		s.ClampReputation()

		s.Record(journal.Event{Turn: s.Turn, Type: journal.EventQuestFailed, Text: q.ID}, e.Balance.JournalFeed)
		res.Failed++
	}

	e.freeParty(q.AssignedMercIDs)
	e.spawnSlot(i)
	res.Spawned++
}

func (e *Engine) freeParty(ids []string) {
	s := e.State
	for _, id := range ids {
		if m := s.RosterByID(id); m != nil {
			m.Busy = false
			m.Record(journal.Event{Turn: s.Turn, Type: journal.EventMercReturned}, e.Balance.JournalPerEntity)
		}
	}
}

// tickMoods applies per-turn mood upkeep: assigned mercenaries tire
// and bond, idle ones recover and accumulate bench time.
func (e *Engine) tickMoods() {
	s := e.State
	for i := range s.Roster {
		m := &s.Roster[i]
		if m.Busy {
			m.AddFatigue(e.Balance.FatiguePerTurn)
			m.AddRelationship(1)
			m.BenchTime = 0
		} else {
			m.AddFatigue(-e.Balance.FatigueRecovery)
			m.AddBenchTime(1)
		}
	}
}
