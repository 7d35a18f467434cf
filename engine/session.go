package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"war/game"
	"war/meta"
	"war/metrics"
)

var (
	ErrGameOver = errors.New("game is over - no attacks allowed")
)

type Option func(s *Session)

// Session owns the map, the mission and the random source for one game. It is
// driven by a single actor; nothing in it is safe for concurrent use.
type Session struct {
	variant  Variant
	registry *game.Registry
	mission  *game.Mission
	player   string
	roller   game.Roller
	picker   game.Picker
	rules    game.Rules
	metrics  metrics.Collector
	won      bool
}

// WithSeed makes dice rolls and mission assignment reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		dice := game.NewDice(seed)
		s.roller = dice
		s.picker = dice
	}
}

func WithRoller(roller game.Roller) Option {
	return func(s *Session) {
		if roller != nil {
			s.roller = roller
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(s *Session) {
		if rules != nil {
			s.rules = rules
		}
	}
}

// WithMission fixes the mission instead of drawing one from the catalog.
func WithMission(mission game.Mission) Option {
	return func(s *Session) {
		s.mission = &mission
	}
}

func WithPlayerFaction(faction string) Option {
	return func(s *Session) {
		if faction != "" {
			s.player = game.NormalizeFaction(faction)
		}
	}
}

func WithMetrics() Option {
	return func(s *Session) {
		s.metrics = metrics.NewCollector()
	}
}

// NewSession starts a game over a populated registry. In the Mission variant
// the registry needs at least meta.MIN_MISSION_TERRITORIES territories and a
// mission is drawn unless one was given.
func NewSession(variant Variant, registry *game.Registry, options ...Option) (*Session, error) {
	if registry == nil {
		return nil, game.ErrInvalidSize
	}
	dice := game.NewTimeSeededDice()
	s := &Session{ // Default values
		variant:  variant,
		registry: registry,
		player:   meta.PLAYER_FACTION,
		roller:   dice,
		picker:   dice,
		rules:    game.NewStandardRules(),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}

	switch variant {
	case Basic:
		s.mission = nil
		s.player = ""
	case Mission:
		if registry.Len() < meta.MIN_MISSION_TERRITORIES {
			return nil, fmt.Errorf("%w: mission variant needs %d, got %d",
				game.ErrTooFewTerritories, meta.MIN_MISSION_TERRITORIES, registry.Len())
		}
		if s.mission == nil {
			mission, err := game.AssignMission(s.picker, game.Catalog())
			if err != nil {
				return nil, fmt.Errorf("assign mission: %w", err)
			}
			s.mission = &mission
		}
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}

	s.metrics.Start()
	log.Info().Msgf("session started: variant=%s territories=%d", variant, registry.Len())
	if s.mission != nil {
		log.Debug().Msgf("mission assigned: %s", s.mission.Kind)
	}
	return s, nil
}

// Attack validates and resolves one round from attacker to defender (0-based
// indices). In the Mission variant the mission is checked after every round and
// the session ends once it is accomplished.
func (s *Session) Attack(attacker, defender int) (game.BattleOutcome, error) {
	if s.won {
		return game.BattleOutcome{}, ErrGameOver
	}

	outcome, err := s.registry.Attack(attacker, defender, s.player, s.roller, s.rules)
	if err != nil {
		s.metrics.AddRejection()
		log.Debug().Err(err).Msg("attack rejected")
		return game.BattleOutcome{}, err
	}
	s.metrics.AddBattle(outcome.AttackerWon, outcome.Conquered)

	log.Info().Msg(outcome.Summary())

	if s.variant == Mission {
		s.CheckVictory()
	}
	return outcome, nil
}

// CheckVictory evaluates the mission against the current map. The Basic
// variant has no mission and never reports victory.
func (s *Session) CheckVictory() bool {
	if s.mission == nil {
		return false
	}
	if !s.won && s.mission.Evaluate(s.registry, s.player) {
		s.won = true
		s.metrics.SetCompleted(true)
		log.Info().Msgf("mission accomplished: %s", s.mission.Kind)
	}
	return s.won
}

// Snapshot returns the map in order for rendering.
func (s *Session) Snapshot() []game.Territory {
	return s.registry.Snapshot()
}

// Mission returns the assigned mission, if the variant has one.
func (s *Session) Mission() (game.Mission, bool) {
	if s.mission == nil {
		return game.Mission{}, false
	}
	return *s.mission, true
}

// PlayerFaction is "" in the Basic variant.
func (s *Session) PlayerFaction() string {
	return s.player
}

// Over reports whether the mission has been accomplished.
func (s *Session) Over() bool {
	return s.won
}

func (s *Session) Metrics() metrics.SessionMetric {
	return s.metrics.Complete()
}
