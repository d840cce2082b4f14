package gen

import (
	"fmt"
	"sync"
)

var firstNames = []string{
	"Garrick", "Maren", "Teodric", "Ilsa", "Corvin", "Brenna", "Aldous",
	"Sable", "Rodek", "Yvaine", "Castor", "Lioba", "Merek", "Odessa",
	"Fenwick", "Runa", "Halvar", "Petra", "Joruk", "Sylvaine",
}

var clanNames = []string{
	"Thornevale", "Ashgrip", "Duskmere", "Varga", "Coldbrook", "Ironridge",
	"Hallowell", "Straka", "Mirefold", "Oakhart", "Venn", "Greywater",
	"Stormholt", "Bracken", "Rooke",
}

var superscripts = []string{"²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

// raritySuffix marks the first duplicate of an already-issued name.
const raritySuffix = " ✦"

// Registry tracks every name ever issued so no two mercenaries share
// one. It is owned by the game state and serialized as a flat list;
// issuing a name consults and updates it under one lock.
type Registry struct {
	mu   sync.Mutex
	used map[string]bool
}

// NewRegistry builds a registry pre-seeded with already-used names.
func NewRegistry(used []string) *Registry {
	r := &Registry{used: make(map[string]bool, len(used))}
	for _, n := range used {
		r.used[n] = true
	}
	return r
}

// Names returns the issued names in no particular order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.used))
	for n := range r.used {
		out = append(out, n)
	}
	return out
}

// issue claims base or an escalating variant of it: the rarity suffix
// first, then numeric superscripts, then a numbered placeholder that
// cannot collide.
func (r *Registry) issue(base string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.used[base] {
		r.used[base] = true
		return base
	}

	rare := base + raritySuffix
	if !r.used[rare] {
		r.used[rare] = true
		return rare
	}

	for _, sup := range superscripts {
		cand := base + sup
		if !r.used[cand] {
			r.used[cand] = true
			return cand
		}
	}

	for i := 1; ; i++ {
		cand := fmt.Sprintf("Sellsword #%d", len(r.used)+i)
		if !r.used[cand] {
			r.used[cand] = true
			return cand
		}
	}
}

// Name draws a first × clan combination and de-duplicates it against
// the registry.
func (g *Generator) Name(reg *Registry) string {
	first := firstNames[g.RNG.Intn(len(firstNames))]
	clan := clanNames[g.RNG.Intn(len(clanNames))]
	return reg.issue(first + " " + clan)
}
