// Factions: the populations that request settlement tiles.
package social

import "github.com/talgya/immersive-worldgen/internal/placement"

// FactionID is a unique identifier for a faction.
type FactionID uint64

// Race is a species with a comfortable temperature band.
// It implements placement.Creature.
type Race struct {
	Name       string  `json:"name"`
	ComfortMin float64 `json:"comfort_min"` // °C
	ComfortMax float64 `json:"comfort_max"` // °C
}

func (r *Race) ComfortTempMin() float64 { return r.ComfortMin }
func (r *Race) ComfortTempMax() float64 { return r.ComfortMax }

// PawnKind is one kind of member a faction fields.
type PawnKind struct {
	Name string `json:"name"`
	Race *Race  `json:"race,omitempty"`
}

// PawnOption is a weighted pawn kind inside a group.
type PawnOption struct {
	Kind   *PawnKind `json:"kind,omitempty"`
	Weight float64   `json:"weight"`
}

// PawnGroup is a band of members spawned together (traders, raiders, settlers).
type PawnGroup struct {
	Name    string       `json:"name"`
	Options []PawnOption `json:"options"`
}

// FactionDef is the static template a faction is built from.
type FactionDef struct {
	Name       string      `json:"name"`
	PawnGroups []PawnGroup `json:"pawn_groups"`
}

// Faction represents a population that founds settlements.
// It implements placement.Population.
type Faction struct {
	ID     FactionID   `json:"id"`
	Name   string      `json:"name"`
	Player bool        `json:"player"`
	Def    *FactionDef `json:"def,omitempty"`
}

// IsPlayer reports whether the faction is controlled by the player.
func (f *Faction) IsPlayer() bool {
	return f != nil && f.Player
}

// Representative returns the race of the first option of the first pawn
// group. Faction leaders may not exist yet when the first settlement is
// placed, so the pawn groups are the only reliable route to a race. This is
// a heuristic; ok is false whenever any link in the chain is missing.
func (f *Faction) Representative() (placement.Creature, bool) {
	if f == nil || f.Def == nil || len(f.Def.PawnGroups) == 0 {
		return nil, false
	}
	options := f.Def.PawnGroups[0].Options
	if len(options) == 0 || options[0].Kind == nil || options[0].Kind.Race == nil {
		return nil, false
	}
	return options[0].Kind.Race, true
}

// String returns the faction name, or "null" for a nil faction.
func (f *Faction) String() string {
	if f == nil {
		return "null"
	}
	return f.Name
}

// NewFaction builds a faction whose single pawn group is made of race.
// A nil race yields a faction without a representative.
func NewFaction(id FactionID, name string, player bool, race *Race) *Faction {
	f := &Faction{ID: id, Name: name, Player: player}
	if race == nil {
		return f
	}
	f.Def = &FactionDef{
		Name: name,
		PawnGroups: []PawnGroup{{
			Name: "settlers",
			Options: []PawnOption{{
				Kind:   &PawnKind{Name: race.Name + " colonist", Race: race},
				Weight: 1,
			}},
		}},
	}
	return f
}
