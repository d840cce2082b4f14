package save

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildhall/internal/config"
	"guildhall/internal/game"
	"guildhall/internal/gen"
	"guildhall/internal/grade"
	"guildhall/internal/loot"
	"guildhall/internal/merc"
	"guildhall/internal/quest"
	"guildhall/internal/rng"
)

func freshState(t *testing.T) *game.State {
	t.Helper()
	g := &gen.Generator{Balance: config.Default(), RNG: rng.Seeded(11)}
	return game.NewState(g)
}

func TestCaptureRestore_RoundTrip(t *testing.T) {
	bal := config.Default()
	st := freshState(t)
	st.Gold = 742
	st.Turn = 9
	st.Reputation = 333
	st.Inventory.Gem = 2
	st.HiredIDs["m_x"] = true

	data, err := json.Marshal(Capture(st))
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	got := Restore(snap, bal)

	assert.Equal(t, st.Gold, got.Gold)
	assert.Equal(t, st.Turn, got.Turn)
	assert.Equal(t, st.Reputation, got.Reputation)
	assert.Equal(t, st.Inventory, got.Inventory)
	assert.Equal(t, st.HiredIDs, got.HiredIDs)

	require.Len(t, got.Roster, len(st.Roster))
	for i := range st.Roster {
		assert.Equal(t, st.Roster[i].ID, got.Roster[i].ID)
		assert.Equal(t, st.Roster[i].Grade, got.Roster[i].Grade)
		assert.Equal(t, st.Roster[i].StatTotal(), got.Roster[i].StatTotal())
	}
	require.Len(t, got.Quests, len(st.Quests))
	for i := range st.Quests {
		assert.Equal(t, st.Quests[i].ID, got.Quests[i].ID)
		assert.Equal(t, st.Quests[i].Status, got.Quests[i].Status)
		assert.Equal(t, st.Quests[i].Reward, got.Quests[i].Reward)
	}
	assert.Equal(t, st.Rivals, got.Rivals)
	require.NotNil(t, got.Names)
}

func TestRestore_RepairsOutOfRangeScalars(t *testing.T) {
	bal := config.Default()
	snap := Snapshot{
		Gold:       -50,
		Turn:       -3,
		Reputation: 5000,
		Inventory:  loot.Inventory{Coin: -7},
	}

	got := Restore(snap, bal)

	assert.Zero(t, got.Gold)
	assert.Zero(t, got.Turn)
	assert.Equal(t, 1000, got.Reputation)
	assert.Zero(t, got.Inventory.Coin)
	assert.Len(t, got.Rivals, 4, "empty rival set falls back to the defaults")
	assert.NotNil(t, got.NamedArchive)
	assert.NotNil(t, got.HiredIDs)
}

func TestRestore_ResizesQuestBoard(t *testing.T) {
	bal := config.Default()

	short := Restore(Snapshot{Quests: []quest.Quest{{ID: "q1", Status: quest.StatusReady, Reward: 100, TurnCost: 2, Grade: grade.C, Importance: quest.ImportanceGold}}}, bal)
	require.Len(t, short.Quests, bal.QuestSlots)
	assert.Equal(t, "q1", short.Quests[0].ID)
	for _, q := range short.Quests[1:] {
		assert.Equal(t, quest.StatusEmpty, q.Status)
	}

	over := make([]quest.Quest, bal.QuestSlots+3)
	for i := range over {
		over[i] = quest.Empty()
	}
	long := Restore(Snapshot{Quests: over}, bal)
	assert.Len(t, long.Quests, bal.QuestSlots)
}

func TestRestore_HealsCorruptQuest(t *testing.T) {
	bal := config.Default()
	snap := Snapshot{Quests: []quest.Quest{
		{ID: "q_bad", Status: "warp_speed", Reward: 10_000_000},
		{ID: "q_cheap", Status: quest.StatusReady, Grade: "Z", Reward: 1, TurnCost: 0, Progress: quest.Progress{Completed: -4, Remaining: -2}},
	}}

	got := Restore(snap, bal)

	assert.Equal(t, quest.StatusEmpty, got.Quests[0].Status)
	assert.Empty(t, got.Quests[0].ID, "an invalid status resets the whole slot")

	healed := got.Quests[1]
	assert.Equal(t, grade.D, healed.Grade)
	assert.Equal(t, bal.RewardMin, healed.Reward)
	assert.Equal(t, 1, healed.TurnCost)
	assert.Equal(t, quest.Progress{}, healed.Progress)
}

func TestRestore_DemotesRunningQuestWithDeadParty(t *testing.T) {
	bal := config.Default()
	snap := Snapshot{
		Mercenaries: []merc.Mercenary{{ID: "m1", Name: "Survivor", Grade: grade.C, Kind: merc.KindRegular, Attack: 10, Defense: 10, Stamina: 10}},
		Quests: []quest.Quest{
			{ID: "q_alive", Status: quest.StatusInProgress, Grade: grade.C, Importance: quest.ImportanceGold, Reward: 100, TurnCost: 3, AssignedMercIDs: []string{"m1"}, Stance: config.StanceOnTime, Progress: quest.Progress{Completed: 1, Remaining: 2}},
			{ID: "q_orphan", Status: quest.StatusInProgress, Grade: grade.C, Importance: quest.ImportanceGold, Reward: 100, TurnCost: 3, AssignedMercIDs: []string{"m_gone"}, Stance: config.StanceOnTime, Progress: quest.Progress{Completed: 1, Remaining: 2}},
		},
	}

	got := Restore(snap, bal)

	alive := got.Quests[0]
	assert.Equal(t, quest.StatusInProgress, alive.Status)
	assert.Equal(t, []string{"m1"}, alive.AssignedMercIDs)

	orphan := got.Quests[1]
	assert.Equal(t, quest.StatusReady, orphan.Status)
	assert.Empty(t, orphan.AssignedMercIDs)
	assert.Equal(t, quest.Progress{}, orphan.Progress)
	assert.GreaterOrEqual(t, orphan.VisibleTurns, bal.VisibleTurnMin)
}

func TestRestore_FreesMercsOutsideRunningParties(t *testing.T) {
	bal := config.Default()
	snap := Snapshot{
		Mercenaries: []merc.Mercenary{{ID: "m1", Name: "Stranded", Grade: grade.C, Kind: merc.KindRegular, Busy: true}},
	}

	got := Restore(snap, bal)

	require.NotNil(t, got.RosterByID("m1"))
	assert.False(t, got.RosterByID("m1").Busy, "no running quest references m1")
}

func TestRestore_BusyDerivesFromPartyMembership(t *testing.T) {
	bal := config.Default()
	snap := Snapshot{
		Mercenaries: []merc.Mercenary{
			{ID: "m_on", Name: "On Contract", Grade: grade.C, Kind: merc.KindRegular, Busy: false},
			{ID: "m_off", Name: "Off Duty", Grade: grade.C, Kind: merc.KindRegular, Busy: true},
		},
		Quests: []quest.Quest{{ID: "q1", Status: quest.StatusInProgress, Grade: grade.C, Importance: quest.ImportanceGold, Reward: 100, TurnCost: 3, AssignedMercIDs: []string{"m_on"}, Stance: config.StanceOnTime, Progress: quest.Progress{Completed: 1, Remaining: 2}}},
	}

	got := Restore(snap, bal)

	assert.True(t, got.RosterByID("m_on").Busy, "assigned to a surviving running quest")
	assert.False(t, got.RosterByID("m_off").Busy)
}

func TestRestore_DemotionFreesSurvivingPartyMembers(t *testing.T) {
	// A running quest with one dead member gets demoted to ready; its
	// still-alive member must come back to the bench with it.
	bal := config.Default()
	snap := Snapshot{
		Mercenaries: []merc.Mercenary{{ID: "m1", Name: "Survivor", Grade: grade.C, Kind: merc.KindRegular, Busy: true}},
		Quests:      []quest.Quest{{ID: "q_orphan", Status: quest.StatusInProgress, Grade: grade.C, Importance: quest.ImportanceGold, Reward: 100, TurnCost: 3, AssignedMercIDs: []string{"m1", "m_gone"}, Stance: config.StanceOnTime, Progress: quest.Progress{Completed: 1, Remaining: 2}}},
	}

	got := Restore(snap, bal)

	assert.Equal(t, quest.StatusReady, got.Quests[0].Status)
	assert.False(t, got.RosterByID("m1").Busy)
}

func TestRestore_DefaultsMissingStance(t *testing.T) {
	bal := config.Default()
	snap := Snapshot{
		Mercenaries: []merc.Mercenary{{ID: "m1", Name: "Survivor", Grade: grade.C, Kind: merc.KindRegular}},
		Quests:      []quest.Quest{{ID: "q1", Status: quest.StatusInProgress, Grade: grade.C, Importance: quest.ImportanceGold, Reward: 100, TurnCost: 3, AssignedMercIDs: []string{"m1"}}},
	}

	got := Restore(snap, bal)
	assert.Equal(t, config.StanceOnTime, got.Quests[0].Stance)
}

func TestRestore_RebuildsNameRegistry(t *testing.T) {
	bal := config.Default()
	snap := Snapshot{
		UsedNames:   []string{"Garrick Thornevale"},
		Mercenaries: []merc.Mercenary{{ID: "m1", Name: "Garrick Ashmoor", Grade: grade.C, Kind: merc.KindRegular}},
	}

	got := Restore(snap, bal)
	require.NotNil(t, got.Names)

	names := got.Names.Names()
	assert.Contains(t, names, "Garrick Thornevale")
	assert.Contains(t, names, "Garrick Ashmoor")
}
