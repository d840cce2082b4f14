package merc

import (
	"guildhall/internal/grade"
	"guildhall/internal/journal"
)

// Kind distinguishes ordinary recruits from flavor-special candidates
// that can reappear after a cooldown if they are not hired.
type Kind string

const (
	KindRegular Kind = "regular"
	KindNamed   Kind = "named"
	KindTownie  Kind = "townie"
)

// Mercenary is a hireable agent. Stats are non-negative; the mood
// counters are clamped to [0,100].
type Mercenary struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Grade grade.Grade `json:"grade"`
	Kind  Kind        `json:"kind"`

	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Stamina int `json:"stamina"`

	SigningBonus int `json:"signing_bonus"`
	Wage         int `json:"wage"`

	Busy bool `json:"busy"`

	Fatigue      int `json:"fatigue"`
	Relationship int `json:"relationship"`
	BenchTime    int `json:"bench_time"`

	Journal []journal.Event `json:"journal,omitempty"`

	// Reappearance metadata, only meaningful for named/townie kinds.
	CooldownUntil int   `json:"cooldown_until,omitempty"`
	RevisitCount  int   `json:"revisit_count,omitempty"`
	RevisitTurns  []int `json:"revisit_turns,omitempty"`
}

// StatTotal is the sum of the three stats; it drives the economy
// formulas and the feasibility signal.
func (m *Mercenary) StatTotal() int {
	return m.Attack + m.Defense + m.Stamina
}

// Special reports whether the mercenary is archived instead of
// discarded when a recruit pool is rebuilt.
func (m *Mercenary) Special() bool {
	return m.Kind == KindNamed || m.Kind == KindTownie
}

// AddFatigue shifts fatigue by delta, clamped to [0,100].
func (m *Mercenary) AddFatigue(delta int) {
	m.Fatigue = clampMood(m.Fatigue + delta)
}

// AddRelationship shifts relationship by delta, clamped to [0,100].
func (m *Mercenary) AddRelationship(delta int) {
	m.Relationship = clampMood(m.Relationship + delta)
}

// AddBenchTime shifts bench time by delta, clamped to [0,100].
func (m *Mercenary) AddBenchTime(delta int) {
	m.BenchTime = clampMood(m.BenchTime + delta)
}

// Record appends a bounded journal entry.
func (m *Mercenary) Record(e journal.Event, max int) {
	m.Journal = journal.Append(m.Journal, e, max)
}

// Normalize repairs out-of-range fields loaded from a snapshot.
func (m *Mercenary) Normalize() {
	if !grade.Valid(m.Grade) {
		m.Grade = grade.D
	}
	switch m.Kind {
	case KindRegular, KindNamed, KindTownie:
	default:
		m.Kind = KindRegular
	}
	if m.Attack < 0 {
		m.Attack = 0
	}
	if m.Defense < 0 {
		m.Defense = 0
	}
	if m.Stamina < 0 {
		m.Stamina = 0
	}
	if m.SigningBonus < 0 {
		m.SigningBonus = 0
	}
	if m.Wage < 0 {
		m.Wage = 0
	}
	m.Fatigue = clampMood(m.Fatigue)
	m.Relationship = clampMood(m.Relationship)
	m.BenchTime = clampMood(m.BenchTime)
	if m.CooldownUntil < 0 {
		m.CooldownUntil = 0
	}
	if m.RevisitCount < 0 {
		m.RevisitCount = 0
	}
}

func clampMood(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
