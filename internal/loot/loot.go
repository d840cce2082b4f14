package loot

import "guildhall/internal/rng"

// Type represents the currencies a successful contract can drop.
type Type string

const (
	Coin     Type = "coin"
	Gem      Type = "gem"
	Relic    Type = "relic"
	Trophy   Type = "trophy"
	Contract Type = "contract_seal"
)

// Drop represents a single loot item.
type Drop struct {
	Type   Type `json:"type"`
	Amount int  `json:"amount"`
}

// TableEntry is a weighted loot entry.
type TableEntry struct {
	Type   Type
	Weight int
	Min    int
	Max    int
}

// Table is a weighted loot table.
type Table []TableEntry

// SuccessTable is rolled on quest completion when the drop chance
// fires.
var SuccessTable = Table{
	{Type: Coin, Weight: 50, Min: 5, Max: 25},
	{Type: Gem, Weight: 25, Min: 1, Max: 3},
	{Type: Trophy, Weight: 15, Min: 1, Max: 1},
	{Type: Relic, Weight: 7, Min: 1, Max: 1},
	{Type: Contract, Weight: 3, Min: 1, Max: 1},
}

// Roll draws one entry from the table. An empty table degrades to a
// single coin.
func (t Table) Roll(src rng.Source) Drop {
	if len(t) == 0 {
		return Drop{Type: Coin, Amount: 1}
	}

	total := 0
	for _, entry := range t {
		total += entry.Weight
	}
	if total <= 0 {
		return Drop{Type: t[0].Type, Amount: 1}
	}

	roll := src.Intn(total)
	current := 0
	for _, entry := range t {
		current += entry.Weight
		if roll < current {
			return Drop{Type: entry.Type, Amount: rng.Between(src, entry.Min, entry.Max)}
		}
	}
	last := t[len(t)-1]
	return Drop{Type: last.Type, Amount: rng.Between(src, last.Min, last.Max)}
}
