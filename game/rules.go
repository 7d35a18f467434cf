package game

// Rules decides the arithmetic of a battle round.
type Rules interface {
	IsAttackSuccessful(attackerRoll, defenderRoll int) bool
	DefenderLosses(defenderTroops int) int
	AttackerTroopsAfterLoss(attackerTroops int) int
	OccupyingTroops() int
}
