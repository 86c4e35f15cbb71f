package tactics

// AttackOutcome describes the result of one unit attacking another.
type AttackOutcome struct {
	Modifier    int
	AttackPower int
	Defense     int
	Eliminated  bool
}

// AttackPower returns max(0, attack + elemental modifier).
func AttackPower(attacker, defender UnitDefinition) int {
	return max(0, attacker.Attack+AttackModifier(attacker.Element, defender.Element))
}

// PreviewAttack computes the outcome of attacker striking defender without
// changing any state. Defense is never modified.
func PreviewAttack(attacker, defender UnitDefinition) AttackOutcome {
	power := AttackPower(attacker, defender)
	return AttackOutcome{
		Modifier:    AttackModifier(attacker.Element, defender.Element),
		AttackPower: power,
		Defense:     defender.Defense,
		Eliminated:  power >= defender.Defense,
	}
}

// CanAttack reports whether the unit is eligible to attack this turn.
func (u *Unit) CanAttack() bool {
	return u.CanActThisTurn && !u.HasAttacked
}

// ValidAttacks returns the positions of orthogonally adjacent enemy units the
// unit may attack. It returns nil if the unit does not exist or cannot attack.
func ValidAttacks(gs *GameState, unitID string) []Position {
	u := gs.Board.UnitByID(unitID)
	if u == nil || !u.CanAttack() {
		return nil
	}
	var targets []Position
	for _, n := range u.Position.Neighbors() {
		if t := gs.Board.UnitAt(n); t != nil && t.Owner != u.Owner {
			targets = append(targets, n)
		}
	}
	return targets
}

// CanAttackAt reports whether the unit can attack the unit at target.
func CanAttackAt(gs *GameState, unitID string, target Position) bool {
	u := gs.Board.UnitByID(unitID)
	if u == nil || !u.CanAttack() || !u.Position.Adjacent(target) {
		return false
	}
	t := gs.Board.UnitAt(target)
	return t != nil && t.Owner != u.Owner
}

// resolveAttack flags the attacker and removes the defender on elimination.
func resolveAttack(gs *GameState, attackerID string, target Position) AttackOutcome {
	attacker := gs.Board.UnitByID(attackerID)
	defender := gs.Board.UnitAt(target)
	out := PreviewAttack(attacker.Definition(), defender.Definition())
	attacker.HasAttacked = true
	if out.Eliminated {
		if gs.SelectedUnitID == defender.ID {
			gs.SelectedUnitID = ""
		}
		gs.Board.removeUnit(defender.ID)
	}
	return out
}
