package tactics

// Apply returns the state that results from applying a to gs. It never
// mutates gs. Illegal actions are no-ops: gs itself is returned unchanged, so
// callers can detect rejection with a pointer comparison. Live play and AI
// lookahead both go through Apply, so they always see the same rules.
func Apply(gs *GameState, a Action) *GameState {
	if Validate(gs, a) != nil {
		return gs
	}
	next := gs.Clone()
	player := next.Turn.CurrentPlayer

	switch a.Kind {
	case ActionSelectUnit:
		next.SelectedUnitID = a.UnitID
	case ActionDeselect:
		next.SelectedUnitID = ""
	case ActionMove:
		moveUnit(next, a.UnitID, a.Target)
		spendAction(next)
	case ActionAttack:
		resolveAttack(next, a.UnitID, a.Target)
		checkVictory(next)
		if !next.IsOver() {
			spendAction(next)
		}
	case ActionMine:
		mine(next, a.UnitID)
		spendAction(next)
	case ActionEndPlacePhase:
		endPlacePhase(next)
	case ActionEndActionPhase:
		endActionPhase(next)
	case ActionQueueUnit:
		queueUnit(next, player, a.DefinitionID)
	case ActionPromoteUnit:
		promoteUnit(next, a.UnitID)
		skipEmptyPlacePhase(next)
	case ActionPlaceUnit:
		placeUnit(next, player, a.QueueID, a.Target)
		skipEmptyPlacePhase(next)
	case ActionEndTurn:
		endTurn(next)
	case ActionResign:
		who := a.Player
		if who == NoPlayer {
			who = player
		}
		resign(next, who)
	}
	return next
}

// ApplyAll applies actions in order and returns the final state.
func ApplyAll(gs *GameState, actions ...Action) *GameState {
	for _, a := range actions {
		gs = Apply(gs, a)
	}
	return gs
}
