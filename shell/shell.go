// Package shell is the terminal front end: it prompts for the map, renders it
// and forwards attack commands to an engine. It holds no game rules.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"war/engine"
	"war/game"
	"war/meta"
)

var ErrInvalidCount = errors.New("invalid number of territories")

type Shell struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Shell {
	return &Shell{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// readLine prompts and returns the next line without its newline. ok is false
// once input is exhausted.
func (s *Shell) readLine(prompt string) (line string, ok bool) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimRight(s.in.Text(), "\r"), true
}

// readInt prompts for an integer. valid is false for non-numeric input.
func (s *Shell) readInt(prompt string) (value int, valid, ok bool) {
	line, ok := s.readLine(prompt)
	if !ok {
		return 0, false, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false, true
	}
	return value, true, true
}

// ReadTerritoryCount asks for the size of the map. The Mission variant raises
// anything below its minimum to that minimum; the Basic variant refuses it.
// Both refuse maps above meta.MAX_TERRITORIES.
func (s *Shell) ReadTerritoryCount(variant engine.Variant) (int, error) {
	if variant == engine.Mission {
		n, valid, ok := s.readInt(fmt.Sprintf("Number of territories (min. %d): ", meta.MIN_MISSION_TERRITORIES))
		if !ok {
			return 0, io.ErrUnexpectedEOF
		}
		if valid && n > meta.MAX_TERRITORIES {
			return 0, fmt.Errorf("%w: must be at most %d", ErrInvalidCount, meta.MAX_TERRITORIES)
		}
		if !valid || n < meta.MIN_MISSION_TERRITORIES {
			s.printf("Number of territories adjusted to %d.\n", meta.MIN_MISSION_TERRITORIES)
			n = meta.MIN_MISSION_TERRITORIES
		}
		return n, nil
	}

	n, valid, ok := s.readInt("Number of territories: ")
	if !ok {
		return 0, io.ErrUnexpectedEOF
	}
	if !valid || n < meta.MIN_TERRITORIES || n > meta.MAX_TERRITORIES {
		return 0, fmt.Errorf("%w: must be between %d and %d", ErrInvalidCount, meta.MIN_TERRITORIES, meta.MAX_TERRITORIES)
	}
	return n, nil
}

// ReadTerritories prompts for n territories. Blank names and factions are asked
// again, long ones are cut to fit, and invalid troop counts become 1.
func (s *Shell) ReadTerritories(n int) ([]game.Territory, error) {
	territories := make([]game.Territory, 0, n)
	for i := 0; i < n; i++ {
		s.printf("\n--- Territory %d of %d ---\n", i+1, n)

		name, err := s.readRequired("Name: ")
		if err != nil {
			return nil, err
		}
		faction, err := s.readRequired("Army color: ")
		if err != nil {
			return nil, err
		}
		// Upper-casing can lengthen text (ß becomes SS), so cut afterwards.
		faction = truncate(game.NormalizeFaction(faction), meta.MAX_FACTION_LEN)
		troops, valid, ok := s.readInt("Troops: ")
		if !ok {
			return nil, io.ErrUnexpectedEOF
		}
		if !valid || troops <= 0 {
			s.printf("Invalid troops. Setting to %d.\n", meta.DEFAULT_TROOPS)
			troops = meta.DEFAULT_TROOPS
		}

		territories = append(territories, game.Territory{
			Name:    truncate(name, meta.MAX_NAME_LEN),
			Faction: faction,
			Troops:  troops,
		})
	}
	return territories, nil
}

func (s *Shell) readRequired(prompt string) (string, error) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return "", io.ErrUnexpectedEOF
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return line, nil
	}
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

// Run shows the map and menu until the player exits, input ends or the
// mission is accomplished.
func (s *Shell) Run(e engine.Engine) error {
	mission, hasMission := e.Mission()
	if hasMission {
		s.printf("\n[SECRET MISSION]: %s\n", mission.Description)
		s.printf("[ATTENTION] Your army is: %s\n", e.PlayerFaction())
	}

	for {
		RenderMap(s.out, e.Snapshot())
		s.printf("\n--- Actions ---\n1. Attack\n")
		if hasMission {
			s.printf("2. Check mission\n")
		}
		s.printf("0. Quit\n")

		choice, valid, ok := s.readInt("Your choice: ")
		if !ok {
			return nil
		}
		if !valid {
			choice = -1
		}

		switch {
		case choice == 0:
			return nil
		case choice == 1:
			s.attackPhase(e)
			if hasMission && e.CheckVictory() {
				s.announceVictory()
				return nil
			}
		case choice == 2 && hasMission:
			if e.CheckVictory() {
				s.announceVictory()
				return nil
			}
			s.printf("\nMission '%s' is not accomplished yet. Keep fighting.\n", mission.Description)
		default:
			s.printf("\nInvalid option. Try again.\n")
		}
	}
}

func (s *Shell) attackPhase(e engine.Engine) {
	n := len(e.Snapshot())
	s.printf("\n--- ATTACK PHASE ---\n")

	attacker, valid, ok := s.readInt(fmt.Sprintf("Attacking territory ID (1 to %d): ", n))
	if !ok || !valid || attacker < 1 || attacker > n {
		s.printf("Error: invalid attacker ID.\n")
		return
	}
	defender, valid, ok := s.readInt(fmt.Sprintf("Defending territory ID (1 to %d): ", n))
	if !ok || !valid || defender < 1 || defender > n {
		s.printf("Error: invalid defender ID.\n")
		return
	}

	outcome, err := e.Attack(attacker-1, defender-1)
	if err != nil {
		s.printf("Attack cancelled: %s.\n", rejectionMessage(err, e.PlayerFaction()))
		return
	}
	RenderBattle(s.out, outcome)
}

func (s *Shell) announceVictory() {
	s.printf("\n=======================================================\n")
	s.printf("!!! MISSION ACCOMPLISHED: YOU WON THE GAME !!!\n")
	s.printf("=======================================================\n")
}

func rejectionMessage(err error, player string) string {
	var rejection *game.Rejection
	if !errors.As(err, &rejection) {
		return err.Error()
	}
	switch rejection.Reason {
	case game.SelfAttack:
		return "a territory cannot attack itself"
	case game.NotPlayerTerritory:
		return fmt.Sprintf("you can only attack from your own territories (%s)", player)
	case game.InsufficientTroops:
		return "the attacker needs at least 2 troops"
	case game.SameFaction:
		return "cannot attack a territory of the same army"
	default:
		return err.Error()
	}
}
