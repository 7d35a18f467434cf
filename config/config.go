// Package config loads session settings from defaults, an optional YAML file
// and WAR_* environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"war/engine"
	"war/game"
	"war/meta"
)

const EnvPrefix = "WAR_"

type Config struct {
	Variant             string `yaml:"variant" env:"VARIANT"`
	Seed                uint64 `yaml:"seed" env:"SEED"` // 0 seeds from the clock
	PlayerFaction       string `yaml:"player_faction" env:"PLAYER_FACTION"`
	ClampAttackerTroops bool   `yaml:"clamp_attacker_troops" env:"CLAMP_ATTACKER_TROOPS"`
	LogLevel            string `yaml:"log_level" env:"LOG_LEVEL"`
}

func Default() Config {
	return Config{
		Variant:       string(engine.Mission),
		PlayerFaction: meta.PLAYER_FACTION,
		LogLevel:      zerolog.LevelWarnValue,
	}
}

// Load returns the defaults overridden by the YAML file at path (skipped when
// path is empty) and then by the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

func (c Config) Validate() error {
	if _, err := engine.ParseVariant(c.Variant); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: log level: %w", err)
	}
	return nil
}

// Level returns the configured log level.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

// SessionOptions translates the settings into engine options.
func (c Config) SessionOptions() []engine.Option {
	options := []engine.Option{
		engine.WithPlayerFaction(c.PlayerFaction),
		engine.WithMetrics(),
	}
	if c.Seed != 0 {
		options = append(options, engine.WithSeed(c.Seed))
	}
	if c.ClampAttackerTroops {
		options = append(options, engine.WithRules(&game.StandardRules{ClampAttackerTroops: true}))
	}
	return options
}
