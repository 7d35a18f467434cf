package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"war/config"
	"war/shell"
)

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestPlay(t *testing.T) {
	t.Run("basic game from setup to exit", func(t *testing.T) {
		cfg := config.Default()
		cfg.Variant = "basic"
		cfg.Seed = 3
		var out bytes.Buffer

		err := play(cfg, script(
			"2",
			"Brasil", "azul", "4",
			"Peru", "verde", "-3",
			"1", "1", "2",
			"0",
		), &out)

		require.NoError(t, err)
		text := out.String()
		require.Contains(t, text, "| 2   | Peru                 | VERDE      | 1          |")
		require.Contains(t, text, "BATTLE RESULT")
		require.Contains(t, text, "Battles: 1")
		require.Contains(t, text, "Game finished.")
	})

	t.Run("basic game refuses an empty map", func(t *testing.T) {
		cfg := config.Default()
		cfg.Variant = "basic"

		err := play(cfg, script("0"), &bytes.Buffer{})

		require.ErrorIs(t, err, shell.ErrInvalidCount)
	})

	t.Run("mission game shows the mission", func(t *testing.T) {
		cfg := config.Default()
		cfg.Seed = 8
		lines := []string{"5"}
		for _, name := range []string{"Brasil", "Argentina", "Chile", "Peru", "Bolivia"} {
			lines = append(lines, name, "azul", "2")
		}
		lines = append(lines, "0")
		var out bytes.Buffer

		err := play(cfg, script(lines...), &out)

		require.NoError(t, err)
		require.Contains(t, out.String(), "[SECRET MISSION]")
		require.Contains(t, out.String(), "Your army is: AZUL")
	})
}

func TestRootCommandFlags(t *testing.T) {
	t.Run("invalid variant flag", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newRootCmd(script(), &out)
		cmd.SetArgs([]string{"--variant", "campaign"})
		cmd.SetOut(&out)
		cmd.SetErr(&out)

		require.Error(t, cmd.Execute())
	})

	t.Run("flags drive a basic game", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newRootCmd(script("1", "Brasil", "azul", "2", "0"), &out)
		cmd.SetArgs([]string{"--variant", "basic", "--seed", "4", "--clamp", "--log-level", "error"})

		require.NoError(t, cmd.Execute())
		require.Contains(t, out.String(), "Brasil")
	})
}
