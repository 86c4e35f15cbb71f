package bot

import (
	"testing"

	"github.com/ethancd/deevgames/pkg/tactics"
)

// unit builds a unit that is free to act this turn.
func unit(id, def string, owner tactics.PlayerID, x, y int) tactics.Unit {
	return tactics.Unit{ID: id, DefinitionID: def, Owner: owner, Position: tactics.Pos(x, y), CanActThisTurn: true}
}

// playing returns a state with PlayerOne in the action phase, a full action
// pool and no resources for either side.
func playing(units ...tactics.Unit) *tactics.GameState {
	gs := tactics.NewGame(tactics.GameConfig{})
	gs.Phase = tactics.PhasePlaying
	gs.Turn = tactics.TurnState{
		CurrentPlayer:    tactics.PlayerOne,
		Phase:            tactics.TurnAction,
		ActionsRemaining: tactics.ActionsPerTurn,
		TurnNumber:       1,
	}
	gs.Board.Units = units
	gs.NextID = 100
	return gs
}

// finishingBlow is a position where PlayerOne's fire unit can eliminate
// PlayerTwo's only unit.
func finishingBlow() *tactics.GameState {
	return playing(
		unit("a", "fire_1", tactics.PlayerOne, 3, 3),
		unit("e", "plant_1", tactics.PlayerTwo, 4, 3),
	)
}

func assertLegal(t *testing.T, gs *tactics.GameState, a tactics.Action) {
	t.Helper()
	if err := tactics.Validate(gs, a); err != nil {
		t.Fatalf("expected %s to be legal: %v", a.Describe(), err)
	}
}
