package game

import (
	"fmt"

	"war/meta"
)

// MissionKind identifies one of the fixed victory conditions.
type MissionKind int

const (
	ConquerInARow MissionKind = iota
	EliminateFaction
	ConquerTotal
	FortifyTerritories
	DominateMap
)

func (k MissionKind) String() string {
	switch k {
	case ConquerInARow:
		return "conquer-in-a-row"
	case EliminateFaction:
		return "eliminate-faction"
	case ConquerTotal:
		return "conquer-total"
	case FortifyTerritories:
		return "fortify-territories"
	case DominateMap:
		return "dominate-map"
	default:
		return fmt.Sprintf("MissionKind(%d)", int(k))
	}
}

// Mission is a victory condition assigned once per session. Each kind reads
// only the fields it needs.
type Mission struct {
	Kind        MissionKind
	Description string
	Faction     string // Faction to wipe out (EliminateFaction)
	Territories int    // Territories the player must hold
	MinTroops   int    // Troops a territory must exceed to count (FortifyTerritories)
}

// Catalog returns the five missions a session can be assigned.
func Catalog() []Mission {
	return []Mission{
		{
			Kind:        ConquerInARow,
			Description: "Conquer 4 territories in a row.",
			Territories: 4, // Only the count is tracked, not adjacency
		},
		{
			Kind:        EliminateFaction,
			Description: fmt.Sprintf("Eliminate every troop of the %s army.", meta.ELIMINATE_FACTION),
			Faction:     meta.ELIMINATE_FACTION,
		},
		{
			Kind:        ConquerTotal,
			Description: "Conquer a total of 3 territories on the map.",
			Territories: 3,
		},
		{
			Kind:        FortifyTerritories,
			Description: "Hold at least 3 territories with more than 5 troops each.",
			Territories: 3,
			MinTroops:   5,
		},
		{
			Kind:        DominateMap,
			Description: "Dominate the entire map (every territory).",
		},
	}
}

// AssignMission draws one mission from catalog uniformly at random.
func AssignMission(picker Picker, catalog []Mission) (Mission, error) {
	if len(catalog) == 0 {
		return Mission{}, ErrEmptyCatalog
	}
	return catalog[picker.Intn(len(catalog))], nil
}

// Evaluate reports whether the mission is satisfied by the registry for the
// player's faction. Unknown kinds are never satisfied.
func (m Mission) Evaluate(r *Registry, playerFaction string) bool {
	owned := r.Count(func(t Territory) bool {
		return t.Faction == playerFaction
	})

	switch m.Kind {
	case ConquerInARow, ConquerTotal:
		return owned >= m.Territories
	case EliminateFaction:
		return r.Count(func(t Territory) bool { return t.Faction == m.Faction }) == 0
	case FortifyTerritories:
		fortified := r.Count(func(t Territory) bool {
			return t.Faction == playerFaction && t.Troops > m.MinTroops
		})
		return fortified >= m.Territories
	case DominateMap:
		return owned == r.Len()
	default:
		return false
	}
}
