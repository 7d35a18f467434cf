package shell

import (
	"fmt"
	"io"
	"time"

	"war/game"
	"war/metrics"
)

const rule = "======================================================="

// RenderMap prints the map as a table with 1-based IDs.
func RenderMap(w io.Writer, territories []game.Territory) {
	fmt.Fprintf(w, "\n\n%s\n               CURRENT MAP\n%s\n", rule, rule)
	fmt.Fprintf(w, "| %-3s | %-20s | %-10s | %-10s |\n", "ID", "Territory", "Army", "Troops")
	fmt.Fprintln(w, "|-----|----------------------|------------|------------|")
	for i, t := range territories {
		fmt.Fprintf(w, "| %-3d | %-20s | %-10s | %-10d |\n", i+1, t.Name, t.Faction, t.Troops)
	}
	fmt.Fprintln(w, "|-----|----------------------|------------|------------|")
}

// RenderBattle prints the report of one round.
func RenderBattle(w io.Writer, o game.BattleOutcome) {
	fmt.Fprintf(w, "\n--- BATTLE RESULT ---\n")
	fmt.Fprintf(w, "Battle: %s (%s) vs %s (%s)\n", o.AttackerName, o.AttackerFaction, o.DefenderName, o.DefenderFaction)
	fmt.Fprintf(w, "Dice: attacker (%d) against defender (%d)\n", o.AttackerRoll, o.DefenderRoll)

	if !o.AttackerWon {
		fmt.Fprintf(w, "Defender %s HELD. Attacker loses %d troops.\n", o.DefenderName, o.AttackerLosses)
		fmt.Fprintf(w, "Troops left in %s: %d\n", o.AttackerName, o.AttackerTroops)
		return
	}

	fmt.Fprintf(w, "Attacker %s WON the round.\n", o.AttackerName)
	fmt.Fprintf(w, "Defender loses %d troops.\n", o.DefenderLosses)
	if o.Conquered {
		fmt.Fprintf(w, "\nTERRITORY CONQUERED! %s now belongs to the %s army.\n", o.DefenderName, o.NewFaction)
		fmt.Fprintf(w, "%d troops from %s move into %s.\n", o.AttackerLosses, o.AttackerName, o.DefenderName)
		return
	}
	fmt.Fprintf(w, "Troops left in %s: %d\n", o.DefenderName, o.DefenderTroops)
}

// RenderMetrics prints the session statistics.
func RenderMetrics(w io.Writer, m metrics.SessionMetric) {
	fmt.Fprintf(w, "\nBattles: %d (won %d), conquests: %d, cancelled attacks: %d, time played: %s\n",
		m.Battles, m.RoundsWon, m.Conquests, m.Rejections, m.Duration.Round(time.Second))
}
