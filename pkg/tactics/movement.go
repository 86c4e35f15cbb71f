package tactics

// CanMove reports whether the unit is eligible to move this turn.
func (u *Unit) CanMove() bool {
	return u.CanActThisTurn && !u.HasMoved
}

// ValidMoves returns the empty cells the unit can reach this turn, bounded by
// its speed. It returns nil if the unit does not exist or cannot move.
func ValidMoves(gs *GameState, unitID string) []Position {
	u := gs.Board.UnitByID(unitID)
	if u == nil || !u.CanMove() {
		return nil
	}
	return Reachable(&gs.Board, u.Position, u.Definition().Speed)
}

// CanMoveTo reports whether the unit can legally move to dest.
func CanMoveTo(gs *GameState, unitID string, dest Position) bool {
	for _, p := range ValidMoves(gs, unitID) {
		if p == dest {
			return true
		}
	}
	return false
}

func moveUnit(gs *GameState, unitID string, dest Position) {
	u := gs.Board.UnitByID(unitID)
	u.Position = dest
	u.HasMoved = true
}
