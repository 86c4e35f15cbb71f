package tactics

import "fmt"

// ValidationError describes why an action is illegal in a given state.
type ValidationError struct {
	Action  Action
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid action %s: %s", e.Action.Describe(), e.Message)
}

// Validate checks whether an action is legal for the player on turn.
// Returns nil if legal, or a ValidationError describing the problem.
func Validate(gs *GameState, a Action) error {
	if gs.Phase != PhasePlaying {
		return &ValidationError{a, fmt.Sprintf("game is in %s phase", gs.Phase)}
	}

	switch a.Kind {
	case ActionSelectUnit:
		if gs.Board.UnitByID(a.UnitID) == nil {
			return &ValidationError{a, "no unit " + a.UnitID}
		}
		return nil
	case ActionDeselect, ActionEndTurn:
		return nil
	case ActionResign:
		if a.Player != NoPlayer && gs.Player(a.Player) == nil {
			return &ValidationError{a, "unknown player " + string(a.Player)}
		}
		return nil
	case ActionMove, ActionAttack, ActionMine:
		return validateUnitAction(gs, a)
	case ActionEndPlacePhase:
		return requireTurnPhase(gs, a, TurnPlace)
	case ActionEndActionPhase:
		return requireTurnPhase(gs, a, TurnAction)
	case ActionQueueUnit:
		return validateQueue(gs, a)
	case ActionPromoteUnit:
		return validatePromote(gs, a)
	case ActionPlaceUnit:
		return validatePlace(gs, a)
	default:
		return &ValidationError{a, "unknown action kind"}
	}
}

func requireTurnPhase(gs *GameState, a Action, phase TurnPhase) error {
	if gs.Turn.Phase != phase {
		return &ValidationError{a, fmt.Sprintf("not allowed in %s phase", gs.Turn.Phase)}
	}
	return nil
}

// ownUnit returns the acting unit if it belongs to the player on turn.
func ownUnit(gs *GameState, a Action) (*Unit, error) {
	u := gs.Board.UnitByID(a.UnitID)
	if u == nil {
		return nil, &ValidationError{a, "no unit " + a.UnitID}
	}
	if u.Owner != gs.Turn.CurrentPlayer {
		return nil, &ValidationError{a, fmt.Sprintf("unit belongs to %s, not %s", u.Owner, gs.Turn.CurrentPlayer)}
	}
	return u, nil
}

func validateUnitAction(gs *GameState, a Action) error {
	if err := requireTurnPhase(gs, a, TurnAction); err != nil {
		return err
	}
	if gs.Turn.ActionsRemaining <= 0 {
		return &ValidationError{a, "no actions remaining"}
	}
	u, err := ownUnit(gs, a)
	if err != nil {
		return err
	}
	if !u.CanActThisTurn {
		return &ValidationError{a, "unit cannot act this turn"}
	}

	switch a.Kind {
	case ActionMove:
		if u.HasMoved {
			return &ValidationError{a, "unit already moved"}
		}
		if !CanMoveTo(gs, u.ID, a.Target) {
			return &ValidationError{a, "destination " + a.Target.String() + " is not reachable"}
		}
	case ActionAttack:
		if u.HasAttacked {
			return &ValidationError{a, "unit already attacked"}
		}
		if !CanAttackAt(gs, u.ID, a.Target) {
			return &ValidationError{a, "no adjacent enemy at " + a.Target.String()}
		}
	case ActionMine:
		if u.HasMined {
			return &ValidationError{a, "unit already mined"}
		}
		if !CanMine(gs, u.ID) {
			return &ValidationError{a, "cell is dry for this unit"}
		}
	}
	return nil
}

func validateQueue(gs *GameState, a Action) error {
	if err := requireTurnPhase(gs, a, TurnQueue); err != nil {
		return err
	}
	def, ok := Definition(a.DefinitionID)
	if !ok {
		return &ValidationError{a, "unknown unit definition " + a.DefinitionID}
	}
	player := gs.Turn.CurrentPlayer
	if !CanAfford(gs, player, def.Cost) {
		return &ValidationError{a, fmt.Sprintf("costs %d, have %d", def.Cost, gs.Player(player).Resources)}
	}
	if !MeetsTechRequirement(gs, player, def) {
		return &ValidationError{a, fmt.Sprintf("requires a deployed %s unit of tier %d", def.Element, def.Tier-1)}
	}
	return nil
}

func validatePromote(gs *GameState, a Action) error {
	if err := requireTurnPhase(gs, a, TurnPlace); err != nil {
		return err
	}
	u, err := ownUnit(gs, a)
	if err != nil {
		return err
	}
	cost, ok := PromotionCost(u.Definition())
	if !ok {
		return &ValidationError{a, "unit is already at max tier"}
	}
	if !u.CanActThisTurn {
		return &ValidationError{a, "unit was placed or promoted this turn"}
	}
	if !CanAfford(gs, u.Owner, cost) {
		return &ValidationError{a, fmt.Sprintf("promotion costs %d", cost)}
	}
	return nil
}

func validatePlace(gs *GameState, a Action) error {
	if err := requireTurnPhase(gs, a, TurnPlace); err != nil {
		return err
	}
	ps := gs.CurrentPlayerState()
	i, ok := findQueued(ps, a.QueueID)
	if !ok {
		return &ValidationError{a, "no queue entry " + a.QueueID}
	}
	if !ps.BuildQueue[i].Ready() {
		return &ValidationError{a, fmt.Sprintf("entry needs %d more turns", ps.BuildQueue[i].TurnsRemaining)}
	}
	if !IsSpawnPosition(gs, ps.ID, a.Target) {
		return &ValidationError{a, a.Target.String() + " is not a spawn position"}
	}
	return nil
}
