package game

// Validate checks whether attacker may attack defender. The first failing
// precondition wins:
//   - both indices exist
//   - attacker and defender differ
//   - attacker belongs to playerFaction (skipped when playerFaction is "")
//   - attacker has more than one troop
//   - the territories belong to different factions
//
// playerFaction must already be in canonical form. Validate never mutates the
// registry; a failure is a *Rejection.
func (r *Registry) Validate(attacker, defender int, playerFaction string) error {
	if !r.Valid(attacker) || !r.Valid(defender) {
		return reject(OutOfRange, attacker, defender)
	}
	if attacker == defender {
		return reject(SelfAttack, attacker, defender)
	}
	att := r.territories[attacker]
	def := r.territories[defender]
	if playerFaction != "" && att.Faction != playerFaction {
		return reject(NotPlayerTerritory, attacker, defender)
	}
	if att.Troops <= 1 {
		return reject(InsufficientTroops, attacker, defender)
	}
	if att.Faction == def.Faction {
		return reject(SameFaction, attacker, defender)
	}
	return nil
}

// Attack validates the attack and, if it is allowed, resolves one round.
func (r *Registry) Attack(attacker, defender int, playerFaction string, roller Roller, rules Rules) (BattleOutcome, error) {
	if err := r.Validate(attacker, defender, playerFaction); err != nil {
		return BattleOutcome{}, err
	}
	return r.Resolve(attacker, defender, roller, rules)
}
