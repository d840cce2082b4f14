package journal

// Event is a structured journal record. The core emits these; any
// prose rendering happens outside the core.
type Event struct {
	Turn int       `json:"turn"`
	Type EventType `json:"type"`
	Text string    `json:"text"`
}

type EventType string

const (
	EventQuestSpawned   EventType = "quest_spawned"
	EventQuestExpired   EventType = "quest_expired"
	EventBidWon         EventType = "bid_won"
	EventBidLost        EventType = "bid_lost"
	EventPartyConfirmed EventType = "party_confirmed"
	EventBonusLoot      EventType = "bonus_loot"
	EventMinorInjury    EventType = "minor_injury"
	EventCamp           EventType = "camp"
	EventExpedited      EventType = "expedited"
	EventOverdue        EventType = "overdue"
	EventQuestSuccess   EventType = "quest_success"
	EventQuestFailed    EventType = "quest_failed"
	EventLootDrop       EventType = "loot_drop"
	EventMercHired      EventType = "merc_hired"
	EventMercReturned   EventType = "merc_returned"
	EventTurnAdvanced   EventType = "turn_advanced"
)

// Append adds an event to a bounded log, dropping the oldest entries
// beyond max. max <= 0 means unbounded.
func Append(log []Event, e Event, max int) []Event {
	log = append(log, e)
	if max > 0 && len(log) > max {
		log = log[len(log)-max:]
	}
	return log
}
