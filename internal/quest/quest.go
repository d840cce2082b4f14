package quest

import (
	"guildhall/internal/grade"
	"guildhall/internal/journal"
)

// Status tracks the state of a quest slot. Exactly one status holds at
// any time; transitions are owned by the game engine.
type Status string

const (
	StatusEmpty      Status = "empty"
	StatusReady      Status = "ready"
	StatusAwarded    Status = "awarded"
	StatusInProgress Status = "in_progress"
	StatusBidFailed  Status = "bid_failed"
)

// Importance biases what a quest pays out in.
type Importance string

const (
	ImportanceGold       Importance = "gold"
	ImportanceReputation Importance = "reputation"
	ImportanceStats      Importance = "stats"
)

// StatVector is the recommended party profile for a quest.
type StatVector struct {
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Stamina int `json:"stamina"`
}

// Total is the recommended stat sum, the denominator of the
// feasibility signal.
func (v StatVector) Total() int {
	return v.Attack + v.Defense + v.Stamina
}

// RivalBid is one rival's sealed bid on a quest.
type RivalBid struct {
	RivalID string `json:"rival_id"`
	Amount  int    `json:"amount"`
}

// BidRecord captures the resolved auction on a quest.
type BidRecord struct {
	PlayerBid int        `json:"player_bid"`
	RivalBids []RivalBid `json:"rival_bids"`
	Winner    string     `json:"winner,omitempty"`
}

// Progress tracks in_progress advancement. Completed is monotonically
// non-decreasing; Remaining never goes below zero.
type Progress struct {
	Completed int `json:"completed"`
	Remaining int `json:"remaining"`
}

// Quest is one offered or running contract.
type Quest struct {
	ID         string      `json:"id"`
	Grade      grade.Grade `json:"grade"`
	Importance Importance  `json:"importance"`

	Reward      int        `json:"reward"`
	TurnCost    int        `json:"turn_cost"`
	Recommended StatVector `json:"recommended"`

	Status          Status   `json:"status"`
	AssignedMercIDs []string `json:"assigned_merc_ids,omitempty"`
	Stance          string   `json:"stance,omitempty"`

	Bids         *BidRecord         `json:"bids,omitempty"`
	ContractProb map[string]float64 `json:"contract_prob,omitempty"`

	Progress     Progress `json:"progress"`
	VisibleTurns int      `json:"visible_turns"`
	DeadlineTurn int      `json:"deadline_turn,omitempty"`
	Overdue      bool     `json:"overdue"`
	BonusGold    int      `json:"bonus_gold"`
	CampPlaced   bool     `json:"camp_placed"`

	Journal []journal.Event `json:"journal,omitempty"`
}

// Record appends a bounded journal entry.
func (q *Quest) Record(e journal.Event, max int) {
	q.Journal = journal.Append(q.Journal, e, max)
}

// ProgressPct returns completion as a percentage. A zero turn cost
// reads as fully complete rather than dividing by zero.
func (q *Quest) ProgressPct() int {
	if q.TurnCost <= 0 {
		return 100
	}
	pct := q.Progress.Completed * 100 / q.TurnCost
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Normalize repairs out-of-range fields loaded from a snapshot.
func (q *Quest) Normalize(rewardMin, rewardMax int) {
	switch q.Status {
	case StatusEmpty, StatusReady, StatusAwarded, StatusInProgress, StatusBidFailed:
	default:
		q.Status = StatusEmpty
	}
	if q.Status == StatusEmpty {
		*q = Quest{Status: StatusEmpty}
		return
	}
	if !grade.Valid(q.Grade) {
		q.Grade = grade.D
	}
	switch q.Importance {
	case ImportanceGold, ImportanceReputation, ImportanceStats:
	default:
		q.Importance = ImportanceGold
	}
	if q.Reward < rewardMin {
		q.Reward = rewardMin
	}
	if q.Reward > rewardMax {
		q.Reward = rewardMax
	}
	if q.TurnCost < 1 {
		q.TurnCost = 1
	}
	if q.Progress.Completed < 0 {
		q.Progress.Completed = 0
	}
	if q.Progress.Remaining < 0 {
		q.Progress.Remaining = 0
	}
	if q.VisibleTurns < 0 {
		q.VisibleTurns = 0
	}
	if q.BonusGold < 0 {
		q.BonusGold = 0
	}
	// Assigned mercenaries only make sense while in progress.
	if q.Status != StatusInProgress {
		q.AssignedMercIDs = nil
	}
	if q.Status == StatusInProgress && q.Stance == "" {
		q.Stance = "on_time"
	}
}

// Empty returns a placeholder for an unoccupied slot.
func Empty() Quest {
	return Quest{Status: StatusEmpty}
}
