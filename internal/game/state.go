package game

import (
	"guildhall/internal/band"
	"guildhall/internal/gen"
	"guildhall/internal/journal"
	"guildhall/internal/loot"
	"guildhall/internal/merc"
	"guildhall/internal/quest"
	"guildhall/internal/rival"
)

// State is the full game-state snapshot. Every command runs to
// completion against it before the next one is accepted, so no lock
// discipline is needed here.
type State struct {
	Gold       int `json:"gold"`
	Turn       int `json:"turn"`
	Reputation int `json:"reputation"`

	Quests     []quest.Quest    `json:"quests"`
	Roster     []merc.Mercenary `json:"mercenaries"`
	Candidates []merc.Mercenary `json:"candidates"`
	Rivals     []rival.Rival    `json:"rivals"`

	// NamedArchive holds non-hired named/townie candidates waiting out
	// their reappearance cooldown.
	NamedArchive map[string]merc.Mercenary `json:"named_archive"`

	// HiredIDs is the hire-history set, kept explicit so the
	// no-duplicate-hire invariant survives a save/load cycle.
	HiredIDs map[string]bool `json:"hired_ids"`

	Inventory loot.Inventory  `json:"inventory"`
	Feed      []journal.Event `json:"feed,omitempty"`

	// Names is the process-wide used-name registry, rebuilt from the
	// snapshot's flat name list on load.
	Names *gen.Registry `json:"-"`
}

const (
	startingGold       = 500
	startingReputation = 150
	startingRoster     = 2
)

// NewState builds a fresh game: starting treasury, a seeded rival set,
// a fully backfilled quest board, a small roster, and an initial
// recruit pool.
func NewState(g *gen.Generator) *State {
	s := &State{
		Gold:         startingGold,
		Turn:         0,
		Reputation:   startingReputation,
		Rivals:       rival.Defaults(),
		NamedArchive: map[string]merc.Mercenary{},
		HiredIDs:     map[string]bool{},
		Names:        gen.NewRegistry(nil),
	}

	s.Quests = make([]quest.Quest, g.Balance.QuestSlots)
	for i := range s.Quests {
		s.Quests[i] = g.Quest(s.Reputation, s.Rivals)
	}

	for i := 0; i < startingRoster; i++ {
		m := g.Mercenary(s.Reputation, s.Names)
		m.Kind = merc.KindRegular
		s.Roster = append(s.Roster, m)
	}

	s.Candidates = make([]merc.Mercenary, 0, g.Balance.RecruitPoolSize)
	for i := 0; i < g.Balance.RecruitPoolSize; i++ {
		s.Candidates = append(s.Candidates, g.Mercenary(s.Reputation, s.Names))
	}

	return s
}

// Record appends to the global event feed.
func (s *State) Record(e journal.Event, max int) {
	s.Feed = journal.Append(s.Feed, e, max)
}

// RosterByID returns a pointer into the roster, or nil.
func (s *State) RosterByID(id string) *merc.Mercenary {
	for i := range s.Roster {
		if s.Roster[i].ID == id {
			return &s.Roster[i]
		}
	}
	return nil
}

// QuestByID returns the slot index and a pointer into the board, or
// (-1, nil).
func (s *State) QuestByID(id string) (int, *quest.Quest) {
	for i := range s.Quests {
		if s.Quests[i].Status != quest.StatusEmpty && s.Quests[i].ID == id {
			return i, &s.Quests[i]
		}
	}
	return -1, nil
}

// RivalByID returns the rival, or nil.
func (s *State) RivalByID(id string) *rival.Rival {
	for i := range s.Rivals {
		if s.Rivals[i].ID == id {
			return &s.Rivals[i]
		}
	}
	return nil
}

// PartyStatTotal sums the stat totals of the given roster members.
// Unknown ids contribute nothing.
func (s *State) PartyStatTotal(ids []string) int {
	total := 0
	for _, id := range ids {
		if m := s.RosterByID(id); m != nil {
			total += m.StatTotal()
		}
	}
	return total
}

// ClampReputation bounds the score into the shared domain.
func (s *State) ClampReputation() {
	s.Reputation = band.Clamp(s.Reputation)
}
