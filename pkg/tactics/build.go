package tactics

// CanAfford reports whether the player holds at least cost resources.
func CanAfford(gs *GameState, player PlayerID, cost int) bool {
	ps := gs.Player(player)
	return ps != nil && ps.Resources >= cost
}

// MeetsTechRequirement reports whether the player may produce def. Tier 1 is
// always available; tier N requires a deployed unit of the same element at
// tier N-1 or higher. Progression is tracked per element.
func MeetsTechRequirement(gs *GameState, player PlayerID, def UnitDefinition) bool {
	if def.Tier <= 1 {
		return true
	}
	for _, u := range gs.Board.Units {
		if u.Owner != player {
			continue
		}
		ud := u.Definition()
		if ud.Element == def.Element && ud.Tier >= def.Tier-1 {
			return true
		}
	}
	return false
}

// CanQueue reports whether the player may queue the definition: it exists,
// is affordable, and its tech requirement is met.
func CanQueue(gs *GameState, player PlayerID, definitionID string) bool {
	def, ok := Definition(definitionID)
	if !ok {
		return false
	}
	return CanAfford(gs, player, def.Cost) && MeetsTechRequirement(gs, player, def)
}

// QueueableDefinitions returns every definition the player could queue now.
func QueueableDefinitions(gs *GameState, player PlayerID) []UnitDefinition {
	var out []UnitDefinition
	for _, def := range AllDefinitions() {
		if CanAfford(gs, player, def.Cost) && MeetsTechRequirement(gs, player, def) {
			out = append(out, def)
		}
	}
	return out
}

// ReadyUnits returns the player's queue entries awaiting placement.
func ReadyUnits(gs *GameState, player PlayerID) []QueuedUnit {
	ps := gs.Player(player)
	if ps == nil {
		return nil
	}
	var ready []QueuedUnit
	for _, q := range ps.BuildQueue {
		if q.Ready() {
			ready = append(ready, q)
		}
	}
	return ready
}

// PromotionCost returns the cost to promote a unit of def to the next tier,
// which equals the destination tier's number. It is independent of the
// catalog's build cost.
func PromotionCost(def UnitDefinition) (int, bool) {
	if def.Tier >= MaxTier {
		return 0, false
	}
	return def.Tier + 1, true
}

// CanPromote reports whether the unit can be promoted now: it is deployed,
// below the top tier, affordable for its owner, and has not been placed or
// promoted this turn.
func CanPromote(gs *GameState, unitID string) bool {
	u := gs.Board.UnitByID(unitID)
	if u == nil || !u.CanActThisTurn {
		return false
	}
	cost, ok := PromotionCost(u.Definition())
	if !ok {
		return false
	}
	return CanAfford(gs, u.Owner, cost)
}

// PromotableUnits returns the player's units that CanPromote accepts.
func PromotableUnits(gs *GameState, player PlayerID) []Unit {
	var out []Unit
	for _, u := range gs.Board.Units {
		if u.Owner == player && CanPromote(gs, u.ID) {
			out = append(out, u)
		}
	}
	return out
}

// HasPlacementWork reports whether the player has anything to do in the place
// phase: a ready unit with somewhere to go, or a promotable unit.
func HasPlacementWork(gs *GameState, player PlayerID) bool {
	if len(ReadyUnits(gs, player)) > 0 && len(SpawnPositions(gs, player)) > 0 {
		return true
	}
	return len(PromotableUnits(gs, player)) > 0
}

func queueUnit(gs *GameState, player PlayerID, definitionID string) {
	def := MustDefinition(definitionID)
	ps := gs.Player(player)
	ps.Resources -= def.Cost
	ps.BuildQueue = append(ps.BuildQueue, QueuedUnit{
		ID:             gs.newID("q"),
		DefinitionID:   def.ID,
		TurnsRemaining: def.BuildTime,
		Owner:          player,
	})
}

// tickBuildQueue advances every entry by one owner turn.
func tickBuildQueue(ps *PlayerState) {
	for i := range ps.BuildQueue {
		if ps.BuildQueue[i].TurnsRemaining > 0 {
			ps.BuildQueue[i].TurnsRemaining--
		}
	}
}

func findQueued(ps *PlayerState, queueID string) (int, bool) {
	for i, q := range ps.BuildQueue {
		if q.ID == queueID {
			return i, true
		}
	}
	return -1, false
}

// placeUnit consumes a ready entry and deploys it. The new unit cannot act
// until its owner's next turn.
func placeUnit(gs *GameState, player PlayerID, queueID string, at Position) {
	ps := gs.Player(player)
	i, _ := findQueued(ps, queueID)
	q := ps.BuildQueue[i]
	ps.BuildQueue = append(ps.BuildQueue[:i], ps.BuildQueue[i+1:]...)
	gs.Board.Units = append(gs.Board.Units, Unit{
		ID:           gs.newID("u"),
		DefinitionID: q.DefinitionID,
		Owner:        player,
		Position:     at,
	})
}

// promoteUnit upgrades the unit in place, keeping its id and position.
func promoteUnit(gs *GameState, unitID string) {
	u := gs.Board.UnitByID(unitID)
	def := u.Definition()
	next, _ := NextTier(def)
	cost, _ := PromotionCost(def)
	gs.Player(u.Owner).Resources -= cost
	u.DefinitionID = next.ID
	u.CanActThisTurn = false
}
