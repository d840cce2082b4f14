package game

import (
	"fmt"
	"sort"

	"guildhall/internal/auction"
	"guildhall/internal/band"
	"guildhall/internal/journal"
	"guildhall/internal/merc"
	"guildhall/internal/quest"
	"guildhall/internal/rng"
)

// BidResult reports a resolved auction from the player's side.
type BidResult struct {
	QuestID       string             `json:"quest_id"`
	Won           bool               `json:"won"`
	Winner        string             `json:"winner"`
	Probabilities map[string]float64 `json:"probabilities"`
}

// SubmitBid enters the player into the sealed-bid auction for a ready
// quest. The preview party only feeds the feasibility signal; nothing
// is assigned yet.
func (e *Engine) SubmitBid(questID string, amount int, previewPartyIDs []string, stance string) (BidResult, error) {
	s := e.State

	if amount < e.Balance.BidMin || amount > e.Balance.BidMax {
		return BidResult{}, ErrBidOutOfRange
	}
	if _, ok := e.Balance.Stances[stance]; !ok {
		return BidResult{}, ErrUnknownStance
	}

	_, q := s.QuestByID(questID)
	if q == nil {
		return BidResult{}, ErrQuestNotFound
	}
	if q.Status != quest.StatusReady {
		return BidResult{}, ErrQuestNotReady
	}
	for _, id := range previewPartyIDs {
		m := s.RosterByID(id)
		if m == nil {
			return BidResult{}, fmt.Errorf("%w: %s", ErrMercNotFound, id)
		}
		if m.Busy {
			return BidResult{}, fmt.Errorf("%w: %s", ErrMercBusy, id)
		}
	}

	entries := []auction.Entry{{
		Bidder:      auction.PlayerBidder,
		Price:       amount,
		Feasibility: e.feasibility(q, previewPartyIDs),
		Reputation:  float64(s.Reputation) / float64(band.RepMax),
	}}
	if q.Bids != nil {
		for _, rb := range q.Bids.RivalBids {
			rep := 0
			if r := s.RivalByID(rb.RivalID); r != nil {
				rep = r.Reputation
			}
			entries = append(entries, auction.Entry{
				Bidder:      rb.RivalID,
				Price:       rb.Amount,
				Feasibility: rivalFeasibility,
				Reputation:  float64(rep) / float64(band.RepMax),
			})
		}
	}

	result := auction.Resolve(q.Reward, entries, auction.Weights{
		Price: e.Balance.PriceWeight,
		Feas:  e.Balance.FeasWeight,
		Rep:   e.Balance.RepWeight,
	}, e.RNG)

	if q.Bids == nil {
		q.Bids = &quest.BidRecord{}
	}
	q.Bids.PlayerBid = amount
	q.Bids.Winner = result.Winner
	q.ContractProb = result.Probabilities

	won := result.Winner == auction.PlayerBidder
	if won {
		q.Status = quest.StatusAwarded
		q.Stance = stance
		if len(previewPartyIDs) > 0 {
			e.pending[q.ID] = append([]string(nil), previewPartyIDs...)
		}
		q.Record(journal.Event{Turn: s.Turn, Type: journal.EventBidWon, Text: fmt.Sprintf("bid %d", amount)}, e.Balance.JournalPerEntity)
	} else {
		q.Status = quest.StatusBidFailed
		q.Record(journal.Event{Turn: s.Turn, Type: journal.EventBidLost, Text: result.Winner}, e.Balance.JournalPerEntity)
	}

	return BidResult{
		QuestID:       q.ID,
		Won:           won,
		Winner:        result.Winner,
		Probabilities: result.Probabilities,
	}, nil
}

// rivalFeasibility is the flat signal assumed for rival parties; their
// rosters are not simulated.
const rivalFeasibility = 0.75

// feasibility is the assembled-to-recommended stat ratio, clamped to
// [0,1]. A zero recommended total degrades to zero.
func (e *Engine) feasibility(q *quest.Quest, partyIDs []string) float64 {
	rec := q.Recommended.Total()
	if rec <= 0 {
		return 0
	}
	f := float64(e.State.PartyStatTotal(partyIDs)) / float64(rec)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// StageFormation records an uncommitted party selection for an awarded
// quest without touching the quest itself.
func (e *Engine) StageFormation(questID string, partyIDs []string) error {
	s := e.State
	_, q := s.QuestByID(questID)
	if q == nil {
		return ErrQuestNotFound
	}
	if q.Status != quest.StatusAwarded {
		return ErrQuestNotAwarded
	}
	for _, id := range partyIDs {
		m := s.RosterByID(id)
		if m == nil {
			return fmt.Errorf("%w: %s", ErrMercNotFound, id)
		}
		if m.Busy {
			return fmt.Errorf("%w: %s", ErrMercBusy, id)
		}
	}
	e.pending[questID] = append([]string(nil), partyIDs...)
	return nil
}

// FormationResult reports a confirmed party assignment.
type FormationResult struct {
	QuestID      string   `json:"quest_id"`
	PartyIDs     []string `json:"party_ids"`
	DeadlineTurn int      `json:"deadline_turn"`
}

// ConfirmFormation commits a party to an awarded quest and starts it.
// An empty partyIDs falls back to the staged selection.
func (e *Engine) ConfirmFormation(questID string, partyIDs []string) (FormationResult, error) {
	s := e.State

	_, q := s.QuestByID(questID)
	if q == nil {
		return FormationResult{}, ErrQuestNotFound
	}
	if q.Status != quest.StatusAwarded {
		return FormationResult{}, ErrQuestNotAwarded
	}

	ids := partyIDs
	if len(ids) == 0 {
		ids = e.pending[questID]
	}
	if len(ids) == 0 {
		return FormationResult{}, ErrEmptyParty
	}
	for _, id := range ids {
		m := s.RosterByID(id)
		if m == nil {
			return FormationResult{}, fmt.Errorf("%w: %s", ErrMercNotFound, id)
		}
		if m.Busy {
			return FormationResult{}, fmt.Errorf("%w: %s", ErrMercBusy, id)
		}
	}

	q.AssignedMercIDs = append([]string(nil), ids...)
	q.Status = quest.StatusInProgress
	q.Progress = quest.Progress{Completed: 0, Remaining: q.TurnCost}
	q.DeadlineTurn = s.Turn + q.TurnCost
	q.Overdue = false
	delete(e.pending, questID)

	for _, id := range ids {
		m := s.RosterByID(id)
		m.Busy = true
		m.BenchTime = 0
	}

	q.Record(journal.Event{Turn: s.Turn, Type: journal.EventPartyConfirmed, Text: fmt.Sprintf("%d members", len(ids))}, e.Balance.JournalPerEntity)

	return FormationResult{QuestID: q.ID, PartyIDs: ids, DeadlineTurn: q.DeadlineTurn}, nil
}

// HireResult reports a completed hire.
type HireResult struct {
	Mercenary merc.Mercenary `json:"mercenary"`
	GoldSpent int            `json:"gold_spent"`
	GoldLeft  int            `json:"gold_left"`
}

// Hire moves a candidate from the recruit pool onto the roster,
// spending the signing bonus.
func (e *Engine) Hire(candidateID string) (HireResult, error) {
	s := e.State

	idx := -1
	for i := range s.Candidates {
		if s.Candidates[i].ID == candidateID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return HireResult{}, ErrCandidateNotFound
	}
	if s.HiredIDs[candidateID] {
		return HireResult{}, ErrAlreadyHired
	}

	c := s.Candidates[idx]
	if s.Gold < c.SigningBonus {
		return HireResult{}, ErrInsufficientGold
	}

	s.Gold -= c.SigningBonus
	s.HiredIDs[candidateID] = true
	s.Candidates = append(s.Candidates[:idx], s.Candidates[idx+1:]...)
	delete(s.NamedArchive, candidateID)

	c.Busy = false
	c.Record(journal.Event{Turn: s.Turn, Type: journal.EventMercHired}, e.Balance.JournalPerEntity)
	s.Roster = append(s.Roster, c)
	s.Record(journal.Event{Turn: s.Turn, Type: journal.EventMercHired, Text: c.Name}, e.Balance.JournalFeed)

	return HireResult{Mercenary: c, GoldSpent: c.SigningBonus, GoldLeft: s.Gold}, nil
}

// RecruitPool rebuilds the candidate pool. Non-hired named/townie
// candidates are archived with a cooldown; archived candidates whose
// cooldown elapsed are re-offered ahead of fresh generation.
func (e *Engine) RecruitPool() []merc.Mercenary {
	s := e.State
	bal := e.Balance

	for _, c := range s.Candidates {
		if c.Special() && !s.HiredIDs[c.ID] {
			c.CooldownUntil = s.Turn + rng.Between(e.RNG, bal.NamedCooldownMin, bal.NamedCooldownMax)
			s.NamedArchive[c.ID] = c
		}
	}

	pool := make([]merc.Mercenary, 0, bal.RecruitPoolSize)
	for _, id := range sortedArchiveIDs(s.NamedArchive) {
		if len(pool) >= bal.RecruitPoolSize {
			break
		}
		m := s.NamedArchive[id]
		if m.CooldownUntil > s.Turn {
			continue
		}
		m.RevisitCount++
		m.RevisitTurns = append(m.RevisitTurns, s.Turn)
		delete(s.NamedArchive, id)
		pool = append(pool, m)
	}

	for len(pool) < bal.RecruitPoolSize {
		pool = append(pool, e.Gen.Mercenary(s.Reputation, s.Names))
	}

	s.Candidates = pool
	return e.Candidates()
}

func sortedArchiveIDs(archive map[string]merc.Mercenary) []string {
	ids := make([]string, 0, len(archive))
	for id := range archive {
		ids = append(ids, id)
	}
	// Stable order so re-offers are deterministic under a seeded RNG.
	sort.Strings(ids)
	return ids
}
