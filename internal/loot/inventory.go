package loot

// Inventory tracks accumulated loot.
type Inventory struct {
	Coin     int `json:"coin"`
	Gem      int `json:"gem"`
	Relic    int `json:"relic"`
	Trophy   int `json:"trophy"`
	Contract int `json:"contract_seal"`
}

// Add adds a drop to the inventory.
func (inv *Inventory) Add(d Drop) {
	switch d.Type {
	case Coin:
		inv.Coin += d.Amount
	case Gem:
		inv.Gem += d.Amount
	case Relic:
		inv.Relic += d.Amount
	case Trophy:
		inv.Trophy += d.Amount
	case Contract:
		inv.Contract += d.Amount
	}
}

// Has checks if the inventory contains at least the given amount.
func (inv *Inventory) Has(t Type, amount int) bool {
	switch t {
	case Coin:
		return inv.Coin >= amount
	case Gem:
		return inv.Gem >= amount
	case Relic:
		return inv.Relic >= amount
	case Trophy:
		return inv.Trophy >= amount
	case Contract:
		return inv.Contract >= amount
	}
	return false
}

// Spend removes items from the inventory, refusing to go negative.
func (inv *Inventory) Spend(t Type, amount int) bool {
	if amount <= 0 {
		return true
	}
	if !inv.Has(t, amount) {
		return false
	}
	inv.Add(Drop{Type: t, Amount: -amount})
	return true
}

// Normalize clamps all counters at zero. Used by the snapshot
// self-heal pass.
func (inv *Inventory) Normalize() {
	if inv.Coin < 0 {
		inv.Coin = 0
	}
	if inv.Gem < 0 {
		inv.Gem = 0
	}
	if inv.Relic < 0 {
		inv.Relic = 0
	}
	if inv.Trophy < 0 {
		inv.Trophy = 0
	}
	if inv.Contract < 0 {
		inv.Contract = 0
	}
}
