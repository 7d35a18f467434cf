package game

import (
	"fmt"
	"unicode/utf8"

	"war/meta"
)

// Territory is a named unit of the map. Its identity is its index in the Registry.
type Territory struct {
	Name    string // Display name, 1 to 50 characters
	Faction string // Controlling army, always stored in canonical form
	Troops  int    // Troops stationed in the territory
}

// Registry holds the ordered, fixed-length collection of territories. It is
// the only owner of territory state; battles reach territories by index.
type Registry struct {
	territories []Territory
}

// newRegistry allocates size blank territories. Setup fills every one of them
// before the registry is handed out.
func newRegistry(size int) (*Registry, error) {
	if size <= 0 || size > meta.MAX_TERRITORIES {
		return nil, fmt.Errorf("%w: got %d, limit %d", ErrInvalidSize, size, meta.MAX_TERRITORIES)
	}
	return &Registry{
		territories: make([]Territory, size),
	}, nil
}

// Setup builds a registry of the given size from exactly size entries, in
// order. Factions are normalized on the way in. Any invalid entry fails the
// whole construction.
func Setup(size int, entries ...Territory) (*Registry, error) {
	r, err := newRegistry(size)
	if err != nil {
		return nil, err
	}
	if len(entries) != size {
		return nil, fmt.Errorf("%w: %d entries for %d territories", ErrEntryCount, len(entries), size)
	}
	for i, entry := range entries {
		if err := r.set(i, entry); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// set validates a territory and stores it at index i.
func (r *Registry) set(i int, t Territory) error {
	if !r.Valid(i) {
		return fmt.Errorf("set territory %d: %w", i, ErrOutOfRange)
	}
	t.Faction = NormalizeFaction(t.Faction)
	if err := validateTerritory(t); err != nil {
		return fmt.Errorf("set territory %d: %w", i, err)
	}
	r.territories[i] = t
	return nil
}

func validateTerritory(t Territory) error {
	if n := utf8.RuneCountInString(t.Name); n == 0 || n > meta.MAX_NAME_LEN {
		return ErrInvalidName
	}
	if n := utf8.RuneCountInString(t.Faction); n == 0 || n > meta.MAX_FACTION_LEN {
		return ErrInvalidFaction
	}
	if t.Troops < 0 {
		return ErrInvalidTroops
	}
	return nil
}

// Len returns the number of territories.
func (r *Registry) Len() int {
	return len(r.territories)
}

// Valid reports whether i is a position in the registry.
func (r *Registry) Valid(i int) bool {
	return i >= 0 && i < len(r.territories)
}

// Snapshot returns the territories in order for rendering. Mutating the result
// does not affect the registry.
func (r *Registry) Snapshot() []Territory {
	snapshot := make([]Territory, len(r.territories))
	copy(snapshot, r.territories)
	return snapshot
}

// Count returns how many territories satisfy match.
func (r *Registry) Count(match func(Territory) bool) int {
	count := 0
	for _, t := range r.territories {
		if match(t) {
			count++
		}
	}
	return count
}

// capture hands territory i over to faction. Conquest is the only other path,
// besides Set, through which a faction enters the registry.
func (r *Registry) capture(i int, faction string) {
	r.territories[i].Faction = NormalizeFaction(faction)
}
