package loot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildhall/internal/rng"
)

func TestRoll_WeightBoundaries(t *testing.T) {
	// SuccessTable weights: coin 50, gem 25, trophy 15, relic 7, seal 3.
	cases := []struct {
		roll int
		want Type
	}{
		{0, Coin},
		{49, Coin},
		{50, Gem},
		{74, Gem},
		{75, Trophy},
		{89, Trophy},
		{90, Relic},
		{96, Relic},
		{97, Contract},
		{99, Contract},
	}
	for _, tc := range cases {
		src := &rng.Stub{Ints: []int{tc.roll, 0}}
		got := SuccessTable.Roll(src)
		assert.Equal(t, tc.want, got.Type, "roll %d", tc.roll)
		assert.GreaterOrEqual(t, got.Amount, 1)
	}
}

func TestRoll_AmountStaysInEntryRange(t *testing.T) {
	src := rng.Seeded(5)
	for i := 0; i < 500; i++ {
		got := SuccessTable.Roll(src)
		switch got.Type {
		case Coin:
			assert.GreaterOrEqual(t, got.Amount, 5)
			assert.LessOrEqual(t, got.Amount, 25)
		case Gem:
			assert.GreaterOrEqual(t, got.Amount, 1)
			assert.LessOrEqual(t, got.Amount, 3)
		default:
			assert.Equal(t, 1, got.Amount)
		}
	}
}

func TestRoll_EmptyTableDegradesToCoin(t *testing.T) {
	got := Table{}.Roll(&rng.Stub{})
	assert.Equal(t, Drop{Type: Coin, Amount: 1}, got)
}

func TestRoll_ZeroWeightTable(t *testing.T) {
	tbl := Table{{Type: Gem, Weight: 0, Min: 1, Max: 3}}
	got := tbl.Roll(&rng.Stub{})
	assert.Equal(t, Drop{Type: Gem, Amount: 1}, got)
}

func TestInventory_AddAndSpend(t *testing.T) {
	var inv Inventory
	inv.Add(Drop{Type: Coin, Amount: 10})
	inv.Add(Drop{Type: Gem, Amount: 2})

	assert.True(t, inv.Has(Coin, 10))
	assert.False(t, inv.Has(Coin, 11))

	require.True(t, inv.Spend(Coin, 4))
	assert.Equal(t, 6, inv.Coin)

	assert.False(t, inv.Spend(Gem, 3), "cannot go negative")
	assert.Equal(t, 2, inv.Gem)

	assert.True(t, inv.Spend(Relic, 0), "zero spend always succeeds")
}

func TestInventory_NormalizeClampsNegatives(t *testing.T) {
	inv := Inventory{Coin: -1, Gem: 2, Relic: -5}
	inv.Normalize()
	assert.Equal(t, Inventory{Coin: 0, Gem: 2, Relic: 0}, inv)
}
