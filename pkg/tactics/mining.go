package tactics

// MiningYield returns how many layers a unit with the given mining power
// extracts from c. The mining stat is the deepest layer the unit can reach:
// the next unclaimed layer sits at MinedDepth+1, and if that is deeper than
// the unit's reach the cell is dry for it.
func MiningYield(c Cell, miningPower int) int {
	top := c.MinedDepth + 1
	if top > miningPower {
		return 0
	}
	return min(miningPower-c.MinedDepth, c.ResourceLayers)
}

// MineYieldFor returns what the unit would extract from its current cell,
// ignoring turn eligibility.
func MineYieldFor(gs *GameState, unitID string) int {
	u := gs.Board.UnitByID(unitID)
	if u == nil {
		return 0
	}
	return MiningYield(*gs.Board.CellAt(u.Position), u.Definition().Mining)
}

// CanMine reports whether the unit may mine its cell this turn: it can act,
// has not mined yet, and the cell is not dry for it.
func CanMine(gs *GameState, unitID string) bool {
	u := gs.Board.UnitByID(unitID)
	if u == nil || !u.CanActThisTurn || u.HasMined {
		return false
	}
	return MineYieldFor(gs, unitID) > 0
}

// mine extracts from the unit's cell and credits the owner.
func mine(gs *GameState, unitID string) int {
	u := gs.Board.UnitByID(unitID)
	cell := gs.Board.CellAt(u.Position)
	yield := MiningYield(*cell, u.Definition().Mining)
	cell.MinedDepth += yield
	cell.ResourceLayers -= yield
	u.HasMined = true
	if p := gs.Player(u.Owner); p != nil {
		p.Resources += yield
	}
	return yield
}
