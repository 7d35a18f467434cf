// meta/meta.go
package meta

// MAX_NAME_LEN defines the longest territory name accepted by the registry.
const MAX_NAME_LEN = 50

// MAX_FACTION_LEN defines the longest faction accepted by the registry.
const MAX_FACTION_LEN = 10

// DICE_FACES defines the number of faces on a battle die.
const DICE_FACES = 6

// MIN_TERRITORIES defines the smallest map for the basic variant.
const MIN_TERRITORIES = 1

// MAX_TERRITORIES caps the map size so a typo cannot allocate without bound.
const MAX_TERRITORIES = 1000

// MIN_MISSION_TERRITORIES defines the smallest map when missions are tracked.
const MIN_MISSION_TERRITORIES = 5

// PLAYER_FACTION is the player's army in the mission variant (canonical form).
const PLAYER_FACTION = "AZUL"

// ELIMINATE_FACTION is the army targeted by the elimination mission.
const ELIMINATE_FACTION = "VERDE"

// DEFAULT_TROOPS replaces invalid troop entries typed at setup.
const DEFAULT_TROOPS = 1
