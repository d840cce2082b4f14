package game

import (
	"guildhall/internal/band"
	"guildhall/internal/grade"
	"guildhall/internal/journal"
	"guildhall/internal/loot"
	"guildhall/internal/merc"
	"guildhall/internal/quest"
	"guildhall/internal/rival"
)

// QuestView is the read-only projection of one quest slot. Maps and
// slices are copied, so consecutive calls without an intervening
// command yield identical, independent values.
type QuestView struct {
	ID         string           `json:"id"`
	Grade      grade.Grade      `json:"grade,omitempty"`
	Importance quest.Importance `json:"importance,omitempty"`
	Status     quest.Status     `json:"status"`

	Reward      int              `json:"reward"`
	TurnCost    int              `json:"turn_cost"`
	Recommended quest.StatVector `json:"recommended"`

	VisibleTurns int  `json:"visible_turns"`
	DeadlineTurn int  `json:"deadline_turn,omitempty"`
	Overdue      bool `json:"overdue"`
	BonusGold    int  `json:"bonus_gold"`

	ProgressCompleted int `json:"progress_completed"`
	ProgressRemaining int `json:"progress_remaining"`
	ProgressPct       int `json:"progress_pct"`

	Stance          string             `json:"stance,omitempty"`
	AssignedMercIDs []string           `json:"assigned_merc_ids,omitempty"`
	ContractProb    map[string]float64 `json:"contract_prob,omitempty"`
	PlayerBid       int                `json:"player_bid,omitempty"`

	Journal []journal.Event `json:"journal,omitempty"`
}

// Quests projects the quest board.
func (e *Engine) Quests() []QuestView {
	s := e.State
	out := make([]QuestView, len(s.Quests))
	for i := range s.Quests {
		out[i] = questView(&s.Quests[i])
	}
	return out
}

func questView(q *quest.Quest) QuestView {
	v := QuestView{
		ID:                q.ID,
		Grade:             q.Grade,
		Importance:        q.Importance,
		Status:            q.Status,
		Reward:            q.Reward,
		TurnCost:          q.TurnCost,
		Recommended:       q.Recommended,
		VisibleTurns:      q.VisibleTurns,
		DeadlineTurn:      q.DeadlineTurn,
		Overdue:           q.Overdue,
		BonusGold:         q.BonusGold,
		ProgressCompleted: q.Progress.Completed,
		ProgressRemaining: q.Progress.Remaining,
		ProgressPct:       q.ProgressPct(),
		Stance:            q.Stance,
		AssignedMercIDs:   append([]string(nil), q.AssignedMercIDs...),
		Journal:           append([]journal.Event(nil), q.Journal...),
	}
	if q.ContractProb != nil {
		v.ContractProb = make(map[string]float64, len(q.ContractProb))
		for k, p := range q.ContractProb {
			v.ContractProb[k] = p
		}
	}
	if q.Bids != nil {
		v.PlayerBid = q.Bids.PlayerBid
	}
	return v
}

// Roster projects the hired mercenaries.
func (e *Engine) Roster() []merc.Mercenary {
	return copyMercs(e.State.Roster)
}

// Candidates projects the current recruit pool.
func (e *Engine) Candidates() []merc.Mercenary {
	return copyMercs(e.State.Candidates)
}

func copyMercs(in []merc.Mercenary) []merc.Mercenary {
	out := make([]merc.Mercenary, len(in))
	for i, m := range in {
		m.Journal = append([]journal.Event(nil), m.Journal...)
		m.RevisitTurns = append([]int(nil), m.RevisitTurns...)
		out[i] = m
	}
	return out
}

// StateView is the top-level read-only projection.
type StateView struct {
	Gold       int              `json:"gold"`
	Turn       int              `json:"turn"`
	Reputation int              `json:"reputation"`
	Band       string           `json:"band"`
	Inventory  loot.Inventory   `json:"inventory"`
	Rivals     []rival.Rival    `json:"rivals"`
	Quests     []QuestView      `json:"quests"`
	Roster     []merc.Mercenary `json:"mercenaries"`
}

// View projects the whole game state.
func (e *Engine) View() StateView {
	s := e.State
	return StateView{
		Gold:       s.Gold,
		Turn:       s.Turn,
		Reputation: s.Reputation,
		Band:       string(bandKeyOf(s.Reputation)),
		Inventory:  s.Inventory,
		Rivals:     append([]rival.Rival(nil), s.Rivals...),
		Quests:     e.Quests(),
		Roster:     e.Roster(),
	}
}

// Feed projects the global journal feed.
func (e *Engine) Feed() []journal.Event {
	return append([]journal.Event(nil), e.State.Feed...)
}

func bandKeyOf(rep int) band.Key {
	return band.Of(rep).Key
}
