package bot

import (
	"testing"

	"github.com/ethancd/deevgames/pkg/tactics"
)

func TestLegalActions_ActionPhaseOrdering(t *testing.T) {
	gs := playing(
		unit("a", "fire_1", tactics.PlayerOne, 3, 3),
		unit("e", "water_1", tactics.PlayerTwo, 4, 3),
	)

	actions := LegalActions(gs)
	if len(actions) == 0 {
		t.Fatal("expected actions")
	}
	if actions[0].Kind != tactics.ActionAttack {
		t.Errorf("expected ATTACK first, got %s", actions[0].Kind)
	}
	if last := actions[len(actions)-1]; last.Kind != tactics.ActionEndActionPhase {
		t.Errorf("expected END_ACTION_PHASE last, got %s", last.Kind)
	}
	for i := 1; i < len(actions); i++ {
		if priorityOf(actions[i-1].Kind) > priorityOf(actions[i].Kind) {
			t.Fatalf("actions out of order at %d: %s before %s", i, actions[i-1].Kind, actions[i].Kind)
		}
	}
	for _, a := range actions {
		assertLegal(t, gs, a)
	}

	var moves, mines int
	for _, a := range actions {
		switch a.Kind {
		case tactics.ActionMove:
			moves++
		case tactics.ActionMine:
			mines++
		}
	}
	if want := len(tactics.ValidMoves(gs, "a")); moves != want {
		t.Errorf("expected %d moves, got %d", want, moves)
	}
	if mines != 1 {
		t.Errorf("expected 1 mine action, got %d", mines)
	}
}

func TestLegalActions_SkipsSpentUnits(t *testing.T) {
	a := unit("a", "fire_1", tactics.PlayerOne, 3, 3)
	a.HasMoved, a.HasAttacked, a.HasMined = true, true, true
	gs := playing(a, unit("e", "water_1", tactics.PlayerTwo, 8, 8))

	actions := LegalActions(gs)
	if len(actions) != 1 || actions[0].Kind != tactics.ActionEndActionPhase {
		t.Errorf("expected only END_ACTION_PHASE, got %v", actions)
	}
}

func TestLegalActions_QueuePhase(t *testing.T) {
	gs := playing(
		unit("a", "fire_1", tactics.PlayerOne, 0, 0),
		unit("e", "water_1", tactics.PlayerTwo, 9, 9),
	)
	gs.Turn.Phase = tactics.TurnQueue
	gs.Player(tactics.PlayerOne).Resources = 4

	actions := LegalActions(gs)
	queueable := tactics.QueueableDefinitions(gs, tactics.PlayerOne)
	if len(actions) != len(queueable)+1 {
		t.Fatalf("expected %d actions, got %d", len(queueable)+1, len(actions))
	}
	if last := actions[len(actions)-1]; last.Kind != tactics.ActionEndTurn {
		t.Errorf("expected END_TURN last, got %s", last.Kind)
	}
	for _, a := range actions {
		assertLegal(t, gs, a)
	}
}

func TestLegalActions_PlacePhase(t *testing.T) {
	gs := playing(
		unit("a", "fire_1", tactics.PlayerOne, 0, 0),
		unit("e", "water_1", tactics.PlayerTwo, 9, 9),
	)
	gs.Turn.Phase = tactics.TurnPlace
	ps := gs.Player(tactics.PlayerOne)
	ps.BuildQueue = []tactics.QueuedUnit{
		{ID: "q1", DefinitionID: "plant_1", Owner: tactics.PlayerOne},
		{ID: "q2", DefinitionID: "plant_1", Owner: tactics.PlayerOne},
	}

	actions := LegalActions(gs)
	spawns := tactics.SpawnPositions(gs, tactics.PlayerOne)

	var places int
	for _, a := range actions {
		if a.Kind == tactics.ActionPlaceUnit {
			places++
			if a.QueueID != "q1" {
				t.Errorf("identical ready entries should collapse to the first, got %s", a.QueueID)
			}
		}
		assertLegal(t, gs, a)
	}
	if places != len(spawns) {
		t.Errorf("expected %d placements, got %d", len(spawns), places)
	}
	if last := actions[len(actions)-1]; last.Kind != tactics.ActionEndPlacePhase {
		t.Errorf("expected END_PLACE_PHASE last, got %s", last.Kind)
	}
}

func TestLegalActions_GameOver(t *testing.T) {
	gs := tactics.Apply(finishingBlow(), tactics.Attack("a", tactics.Pos(4, 3)))
	if !gs.IsOver() {
		t.Fatal("setup: expected game over")
	}
	if actions := LegalActions(gs); actions != nil {
		t.Errorf("expected nil actions after game over, got %v", actions)
	}
}

func TestOrderActions_Stable(t *testing.T) {
	actions := []tactics.Action{
		tactics.EndTurn(),
		tactics.Move("b", tactics.Pos(1, 1)),
		tactics.Attack("a", tactics.Pos(2, 2)),
		tactics.Move("a", tactics.Pos(0, 1)),
	}
	OrderActions(actions)

	want := []tactics.Action{
		tactics.Attack("a", tactics.Pos(2, 2)),
		tactics.Move("b", tactics.Pos(1, 1)),
		tactics.Move("a", tactics.Pos(0, 1)),
		tactics.EndTurn(),
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i].Describe(), actions[i].Describe())
		}
	}
}
