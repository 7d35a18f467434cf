package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"war/config"
	"war/engine"
	"war/game"
	"war/shell"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "war",
		Short:        "Turn-based territory conquest simulation",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, &cfg); err != nil {
				return err
			}

			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(cfg.Level()).
				With().Timestamp().Logger()

			return play(cfg, in, out)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	flags.String("variant", "", "game variant: basic or mission")
	flags.Uint64("seed", 0, "dice seed (0 seeds from the clock)")
	flags.Bool("clamp", false, "never let an attacker's troops drop below zero")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	return cmd
}

// applyFlags overrides file and environment settings with flags set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("variant") {
		cfg.Variant, _ = flags.GetString("variant")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("clamp") {
		cfg.ClampAttackerTroops, _ = flags.GetBool("clamp")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	return cfg.Validate()
}

// play runs one session from map setup to exit.
func play(cfg config.Config, in io.Reader, out io.Writer) error {
	variant, err := engine.ParseVariant(cfg.Variant)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "=======================================================")
	fmt.Fprintln(out, "         WAR - TERRITORY CONQUEST SIMULATION")
	fmt.Fprintln(out, "=======================================================")

	sh := shell.New(in, out)
	n, err := sh.ReadTerritoryCount(variant)
	if err != nil {
		return err
	}
	entries, err := sh.ReadTerritories(n)
	if err != nil {
		return err
	}
	registry, err := game.Setup(n, entries...)
	if err != nil {
		return fmt.Errorf("setup map: %w", err)
	}

	session, err := engine.NewSession(variant, registry, cfg.SessionOptions()...)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	if err := sh.Run(session); err != nil {
		return err
	}

	shell.RenderMetrics(out, session.Metrics())
	fmt.Fprintln(out, "Game finished.")
	return nil
}
