package save

import (
	"guildhall/internal/band"
	"guildhall/internal/config"
	"guildhall/internal/game"
	"guildhall/internal/gen"
	"guildhall/internal/journal"
	"guildhall/internal/loot"
	"guildhall/internal/merc"
	"guildhall/internal/quest"
	"guildhall/internal/rival"
)

// Snapshot is the flat persisted shape of the whole game state.
type Snapshot struct {
	Gold         int                       `json:"gold"`
	Turn         int                       `json:"turn"`
	Reputation   int                       `json:"reputation"`
	Mercenaries  []merc.Mercenary          `json:"mercenaries"`
	Quests       []quest.Quest             `json:"quests"`
	Rivals       []rival.Rival             `json:"rivals"`
	NamedArchive map[string]merc.Mercenary `json:"named_archive"`
	UsedNames    []string                  `json:"used_names"`

	Candidates []merc.Mercenary `json:"candidates"`
	HiredIDs   []string         `json:"hired_ids"`
	Inventory  loot.Inventory   `json:"inventory"`
	Feed       []journal.Event  `json:"feed,omitempty"`
}

// Capture flattens the live state into its persisted shape.
func Capture(s *game.State) Snapshot {
	snap := Snapshot{
		Gold:         s.Gold,
		Turn:         s.Turn,
		Reputation:   s.Reputation,
		Mercenaries:  s.Roster,
		Quests:       s.Quests,
		Rivals:       s.Rivals,
		NamedArchive: s.NamedArchive,
		Candidates:   s.Candidates,
		Inventory:    s.Inventory,
		Feed:         s.Feed,
	}
	if s.Names != nil {
		snap.UsedNames = s.Names.Names()
	}
	snap.HiredIDs = make([]string, 0, len(s.HiredIDs))
	for id := range s.HiredIDs {
		snap.HiredIDs = append(snap.HiredIDs, id)
	}
	return snap
}

// Restore normalizes a loaded snapshot into live state. Missing or
// out-of-range fields are repaired to safe defaults rather than
// rejected; this is the one self-healing pass between disk and core.
func Restore(snap Snapshot, bal config.Balance) *game.State {
	s := &game.State{
		Gold:         snap.Gold,
		Turn:         snap.Turn,
		Reputation:   band.Clamp(snap.Reputation),
		Roster:       snap.Mercenaries,
		Quests:       snap.Quests,
		Candidates:   snap.Candidates,
		Rivals:       snap.Rivals,
		NamedArchive: snap.NamedArchive,
		Inventory:    snap.Inventory,
		Feed:         snap.Feed,
		HiredIDs:     map[string]bool{},
	}

	if s.Gold < 0 {
		s.Gold = 0
	}
	if s.Turn < 0 {
		s.Turn = 0
	}

	for i := range s.Roster {
		s.Roster[i].Normalize()
	}
	for i := range s.Candidates {
		s.Candidates[i].Normalize()
	}
	if s.NamedArchive == nil {
		s.NamedArchive = map[string]merc.Mercenary{}
	}
	for id, m := range s.NamedArchive {
		m.Normalize()
		s.NamedArchive[id] = m
	}

	if len(s.Rivals) == 0 {
		s.Rivals = rival.Defaults()
	}
	for i := range s.Rivals {
		s.Rivals[i].Normalize()
	}

	// The quest board keeps a fixed slot count: truncate extras, pad
	// missing slots empty so the spawn roll backfills them.
	if len(s.Quests) > bal.QuestSlots {
		s.Quests = s.Quests[:bal.QuestSlots]
	}
	for len(s.Quests) < bal.QuestSlots {
		s.Quests = append(s.Quests, quest.Empty())
	}
	for i := range s.Quests {
		q := &s.Quests[i]
		q.Normalize(bal.RewardMin, bal.RewardMax)
		// A running quest with no surviving party cannot advance;
		// demote it to a fresh offer.
		if q.Status == quest.StatusInProgress && !partyAlive(s, q.AssignedMercIDs) {
			q.Status = quest.StatusReady
			q.AssignedMercIDs = nil
			q.Progress = quest.Progress{}
			q.Overdue = false
			if q.VisibleTurns <= 0 {
				q.VisibleTurns = bal.VisibleTurnMin
			}
		}
	}

	// Busy is derived state: only membership in a running party makes a
	// mercenary busy. Rebuild it from the surviving in_progress quests
	// so a merc stranded by a demoted or dropped quest frees up.
	assigned := map[string]bool{}
	for i := range s.Quests {
		if s.Quests[i].Status != quest.StatusInProgress {
			continue
		}
		for _, id := range s.Quests[i].AssignedMercIDs {
			assigned[id] = true
		}
	}
	for i := range s.Roster {
		s.Roster[i].Busy = assigned[s.Roster[i].ID]
	}

	s.Inventory.Normalize()

	for _, id := range snap.HiredIDs {
		s.HiredIDs[id] = true
	}

	// Rebuild the name registry including names the list may have
	// dropped.
	names := append([]string(nil), snap.UsedNames...)
	for _, m := range s.Roster {
		names = append(names, m.Name)
	}
	for _, m := range s.Candidates {
		names = append(names, m.Name)
	}
	for _, m := range s.NamedArchive {
		names = append(names, m.Name)
	}
	s.Names = gen.NewRegistry(names)

	return s
}

func partyAlive(s *game.State, ids []string) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if s.RosterByID(id) == nil {
			return false
		}
	}
	return true
}
