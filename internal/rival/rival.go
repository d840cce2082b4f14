package rival

import "guildhall/internal/band"

// Rival is a competing guild. The core reads its reputation as an
// auction signal and never mutates it.
type Rival struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Reputation int    `json:"reputation"`
}

// Normalize clamps the reputation into the shared domain.
func (r *Rival) Normalize() {
	r.Reputation = band.Clamp(r.Reputation)
}

// Defaults seeds the rival guilds for a fresh game.
func Defaults() []Rival {
	return []Rival{
		{ID: "rival_ironpact", Name: "Ironpact Company", Reputation: 520},
		{ID: "rival_gloamveil", Name: "Gloamveil Syndicate", Reputation: 430},
		{ID: "rival_sunspire", Name: "Sunspire Banner", Reputation: 610},
		{ID: "rival_mirefang", Name: "Mirefang Irregulars", Reputation: 280},
	}
}
