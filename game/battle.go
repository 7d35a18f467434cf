package game

import "fmt"

// BattleOutcome describes one resolved round between two territories.
type BattleOutcome struct {
	Attacker        int    // Index of the attacking territory
	Defender        int    // Index of the defending territory
	AttackerName    string
	DefenderName    string
	AttackerFaction string // Faction of the attacker
	DefenderFaction string // Faction of the defender before the round
	AttackerRoll    int
	DefenderRoll    int
	AttackerWon     bool // Attacker rolled strictly higher
	DefenderLosses  int  // Troops the defender lost, 0 unless AttackerWon
	AttackerLosses  int  // Troops the attacker lost or moved into the conquered territory
	Conquered       bool // Defender changed hands
	NewFaction      string
	AttackerTroops  int // Attacker troops after the round
	DefenderTroops  int // Defender troops after the round
}

// Resolve rolls one die for each side and applies the result to both
// territories. It does not check attack preconditions (see Validate); it only
// refuses indices outside the registry and a territory fighting itself.
func (r *Registry) Resolve(attacker, defender int, roller Roller, rules Rules) (BattleOutcome, error) {
	if !r.Valid(attacker) || !r.Valid(defender) {
		return BattleOutcome{}, reject(OutOfRange, attacker, defender)
	}
	if attacker == defender {
		return BattleOutcome{}, reject(SelfAttack, attacker, defender)
	}

	att := &r.territories[attacker]
	def := &r.territories[defender]
	before := att.Troops

	outcome := BattleOutcome{
		Attacker:        attacker,
		Defender:        defender,
		AttackerName:    att.Name,
		DefenderName:    def.Name,
		AttackerFaction: att.Faction,
		DefenderFaction: def.Faction,
		AttackerRoll:    roller.Roll(),
		DefenderRoll:    roller.Roll(),
	}

	if rules.IsAttackSuccessful(outcome.AttackerRoll, outcome.DefenderRoll) {
		outcome.AttackerWon = true
		outcome.DefenderLosses = rules.DefenderLosses(def.Troops)
		def.Troops -= outcome.DefenderLosses

		if def.Troops <= 0 {
			// Capture the territory with a single occupying troop
			r.capture(defender, att.Faction)
			att.Troops = rules.AttackerTroopsAfterLoss(att.Troops)
			def.Troops = rules.OccupyingTroops()
			outcome.Conquered = true
			outcome.NewFaction = def.Faction
		}
	} else {
		att.Troops = rules.AttackerTroopsAfterLoss(att.Troops)
	}

	outcome.AttackerLosses = before - att.Troops
	outcome.AttackerTroops = att.Troops
	outcome.DefenderTroops = def.Troops
	return outcome, nil
}

// Summary is a one-line description of the round.
func (o BattleOutcome) Summary() string {
	switch {
	case o.Conquered:
		return fmt.Sprintf("%s (%d) beat %s (%d) and conquered it for %s, moving %d troops",
			o.AttackerName, o.AttackerRoll, o.DefenderName, o.DefenderRoll, o.NewFaction, o.AttackerLosses)
	case o.AttackerWon:
		return fmt.Sprintf("%s (%d) beat %s (%d), defender lost %d troops",
			o.AttackerName, o.AttackerRoll, o.DefenderName, o.DefenderRoll, o.DefenderLosses)
	default:
		return fmt.Sprintf("%s (%d) held against %s (%d), attacker lost %d troops",
			o.DefenderName, o.DefenderRoll, o.AttackerName, o.AttackerRoll, o.AttackerLosses)
	}
}
