package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildhall/internal/rng"
)

func TestName_DeDupEscalation(t *testing.T) {
	// Force the same first/clan draw every time.
	g := newGenerator(&rng.Stub{Ints: []int{0}})
	reg := NewRegistry(nil)

	base := firstNames[0] + " " + clanNames[0]

	assert.Equal(t, base, g.Name(reg))
	assert.Equal(t, base+raritySuffix, g.Name(reg))
	for _, sup := range superscripts {
		assert.Equal(t, base+sup, g.Name(reg))
	}

	// Exhausted variants fall back to numbered placeholders that
	// still never collide.
	seen := map[string]bool{}
	for _, n := range reg.Names() {
		seen[n] = true
	}
	next := g.Name(reg)
	assert.False(t, seen[next])
	assert.Contains(t, next, "Sellsword #")
}

func TestNewRegistry_SeededNamesAreReserved(t *testing.T) {
	base := firstNames[0] + " " + clanNames[0]
	reg := NewRegistry([]string{base})

	g := newGenerator(&rng.Stub{Ints: []int{0}})
	require.Equal(t, base+raritySuffix, g.Name(reg))
}

func TestName_NoDuplicatesOverManyDraws(t *testing.T) {
	g := newGenerator(rng.Seeded(5))
	reg := NewRegistry(nil)

	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		n := g.Name(reg)
		require.False(t, seen[n], "duplicate name issued: %s", n)
		seen[n] = true
	}
}
