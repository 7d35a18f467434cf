package engine

import (
	"fmt"

	"war/game"
	"war/metrics"
)

// Variant selects which rules of engagement a session follows.
type Variant string

const (
	// Basic lets any faction attack any other; there is no mission.
	Basic Variant = "basic"
	// Mission restricts attacks to the player's faction and tracks a mission.
	Mission Variant = "mission"
)

// ParseVariant maps a configuration value to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case Basic, Mission:
		return Variant(s), nil
	default:
		return "", fmt.Errorf("unknown variant %q", s)
	}
}

// Engine is what a front end needs to drive a session.
type Engine interface {
	Attack(attacker, defender int) (game.BattleOutcome, error)
	CheckVictory() bool
	Snapshot() []game.Territory
	Mission() (game.Mission, bool)
	PlayerFaction() string
	Over() bool
	Metrics() metrics.SessionMetric
}
