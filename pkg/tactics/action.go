package tactics

import "fmt"

// ActionKind discriminates the Action variants.
type ActionKind int

const (
	ActionSelectUnit ActionKind = iota
	ActionDeselect
	ActionMove
	ActionAttack
	ActionMine
	ActionEndPlacePhase
	ActionEndActionPhase
	ActionQueueUnit
	ActionPromoteUnit
	ActionPlaceUnit
	ActionEndTurn
	ActionResign
)

func (k ActionKind) String() string {
	switch k {
	case ActionSelectUnit:
		return "SELECT_UNIT"
	case ActionDeselect:
		return "DESELECT"
	case ActionMove:
		return "MOVE"
	case ActionAttack:
		return "ATTACK"
	case ActionMine:
		return "MINE"
	case ActionEndPlacePhase:
		return "END_PLACE_PHASE"
	case ActionEndActionPhase:
		return "END_ACTION_PHASE"
	case ActionQueueUnit:
		return "QUEUE_UNIT"
	case ActionPromoteUnit:
		return "PROMOTE_UNIT"
	case ActionPlaceUnit:
		return "PLACE_UNIT"
	case ActionEndTurn:
		return "END_TURN"
	case ActionResign:
		return "RESIGN"
	default:
		return "UNKNOWN"
	}
}

// EndsTurn reports whether applying a legal action of this kind hands
// control away from the acting player (to the opponent, or to nobody
// because the game ended). All other kinds keep the same player on turn
// unless they end the game.
func (k ActionKind) EndsTurn() bool {
	return k == ActionEndTurn || k == ActionResign
}

// Action is a single player command. Which payload fields are meaningful
// depends on Kind:
//
//	SELECT_UNIT, MINE, PROMOTE_UNIT: UnitID
//	MOVE, ATTACK:                    UnitID, Target
//	QUEUE_UNIT:                      DefinitionID
//	PLACE_UNIT:                      QueueID, Target
//	RESIGN:                          Player (NoPlayer means the current player)
type Action struct {
	Kind         ActionKind
	UnitID       string
	Target       Position
	DefinitionID string
	QueueID      string
	Player       PlayerID
}

// SelectUnit marks a unit as the UI selection.
func SelectUnit(unitID string) Action { return Action{Kind: ActionSelectUnit, UnitID: unitID} }

// Deselect clears the UI selection.
func Deselect() Action { return Action{Kind: ActionDeselect} }

// Move moves a unit to an empty reachable cell.
func Move(unitID string, to Position) Action {
	return Action{Kind: ActionMove, UnitID: unitID, Target: to}
}

// Attack strikes the enemy unit at target.
func Attack(unitID string, target Position) Action {
	return Action{Kind: ActionAttack, UnitID: unitID, Target: target}
}

// Mine extracts resources from the unit's cell.
func Mine(unitID string) Action { return Action{Kind: ActionMine, UnitID: unitID} }

// EndPlacePhase moves on to the action phase.
func EndPlacePhase() Action { return Action{Kind: ActionEndPlacePhase} }

// EndActionPhase moves on to the queue phase.
func EndActionPhase() Action { return Action{Kind: ActionEndActionPhase} }

// QueueUnit starts production of a definition.
func QueueUnit(definitionID string) Action {
	return Action{Kind: ActionQueueUnit, DefinitionID: definitionID}
}

// PromoteUnit upgrades a deployed unit to the next tier.
func PromoteUnit(unitID string) Action { return Action{Kind: ActionPromoteUnit, UnitID: unitID} }

// PlaceUnit deploys a ready queue entry at a spawn position.
func PlaceUnit(queueID string, at Position) Action {
	return Action{Kind: ActionPlaceUnit, QueueID: queueID, Target: at}
}

// EndTurn passes control to the opponent.
func EndTurn() Action { return Action{Kind: ActionEndTurn} }

// Resign concedes the game on behalf of player.
func Resign(player PlayerID) Action { return Action{Kind: ActionResign, Player: player} }

// Describe returns a human-readable description of the action.
func (a Action) Describe() string {
	switch a.Kind {
	case ActionSelectUnit:
		return fmt.Sprintf("select %s", a.UnitID)
	case ActionMove:
		return fmt.Sprintf("%s -> %s", a.UnitID, a.Target)
	case ActionAttack:
		return fmt.Sprintf("%s attacks %s", a.UnitID, a.Target)
	case ActionMine:
		return fmt.Sprintf("%s mines", a.UnitID)
	case ActionQueueUnit:
		return fmt.Sprintf("queue %s", a.DefinitionID)
	case ActionPromoteUnit:
		return fmt.Sprintf("promote %s", a.UnitID)
	case ActionPlaceUnit:
		return fmt.Sprintf("place %s at %s", a.QueueID, a.Target)
	case ActionResign:
		if a.Player != NoPlayer {
			return fmt.Sprintf("%s resigns", a.Player)
		}
		return "resign"
	default:
		return a.Kind.String()
	}
}
