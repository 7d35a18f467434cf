package game

type StandardRules struct {
	// ClampAttackerTroops floors the attacker at 0 troops after a loss.
	// Off by default: a lost round simply subtracts one troop.
	ClampAttackerTroops bool
}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

// IsAttackSuccessful requires a strictly higher roll; ties go to the defender.
func (sr *StandardRules) IsAttackSuccessful(attackerRoll, defenderRoll int) bool {
	return attackerRoll > defenderRoll
}

// DefenderLosses is half the defender's troops, rounded up.
func (sr *StandardRules) DefenderLosses(defenderTroops int) int {
	return (defenderTroops + 1) / 2
}

func (sr *StandardRules) AttackerTroopsAfterLoss(attackerTroops int) int {
	attackerTroops--
	if sr.ClampAttackerTroops && attackerTroops < 0 {
		return 0
	}
	return attackerTroops
}

// OccupyingTroops is the number of troops left in a conquered territory.
func (sr *StandardRules) OccupyingTroops() int {
	return 1
}
