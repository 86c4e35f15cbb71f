package tactics

import "testing"

func TestPlacePhase_AutoSkipWhenNothingToDo(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.StartingResources = 0
	gs := StartGame(NewGame(cfg))
	if gs.Turn.Phase != TurnAction {
		t.Errorf("with no resources and no queue the place phase should be skipped, got %s", gs.Turn.Phase)
	}
}

func TestActionPool_ExhaustionEndsPhase(t *testing.T) {
	gs := stateWith(0,
		unitAt("a", "wind_4", PlayerOne, 0, 0),
		unitAt("b", "wind_4", PlayerOne, 0, 2),
		unitAt("e", "water_1", PlayerTwo, 9, 9),
	)
	gs = ApplyAll(gs,
		Move("a", Pos(1, 0)),
		Mine("a"),
		Move("b", Pos(1, 2)),
	)
	if gs.Turn.Phase != TurnAction || gs.Turn.ActionsRemaining != 1 {
		t.Fatalf("expected action phase with 1 left, got %s/%d", gs.Turn.Phase, gs.Turn.ActionsRemaining)
	}
	gs = Apply(gs, Mine("b"))
	if gs.Turn.Phase != TurnQueue || gs.Turn.ActionsRemaining != 0 {
		t.Errorf("exhausted pool should move to queue, got %s/%d", gs.Turn.Phase, gs.Turn.ActionsRemaining)
	}
	if next := Apply(gs, Move("b", Pos(2, 2))); next != gs {
		t.Error("unit actions in the queue phase should be a no-op")
	}
}

func TestOneUnitMayMoveAttackAndMine(t *testing.T) {
	gs := stateWith(0,
		unitAt("a", "fire_1", PlayerOne, 3, 3),
		unitAt("e", "water_1", PlayerTwo, 5, 4),
		unitAt("e2", "water_1", PlayerTwo, 9, 9),
	)
	gs = ApplyAll(gs, Mine("a"), Move("a", Pos(4, 4)), Attack("a", Pos(5, 4)))
	u := gs.Board.UnitByID("a")
	if !u.HasMined || !u.HasMoved || !u.HasAttacked {
		t.Errorf("expected all three flags set, got %+v", u)
	}
	if gs.Turn.ActionsRemaining != 1 {
		t.Errorf("expected 1 action left, got %d", gs.Turn.ActionsRemaining)
	}
}

func TestEndTurn_SwitchesPlayerAndCountsRounds(t *testing.T) {
	gs := NewStandardGame()
	if gs.Turn.TurnNumber != 1 {
		t.Fatalf("expected turn 1, got %d", gs.Turn.TurnNumber)
	}
	gs = Apply(gs, EndTurn())
	if gs.Turn.CurrentPlayer != PlayerTwo || gs.Turn.TurnNumber != 1 {
		t.Errorf("expected player2 turn 1, got %s turn %d", gs.Turn.CurrentPlayer, gs.Turn.TurnNumber)
	}
	gs = Apply(gs, EndTurn())
	if gs.Turn.CurrentPlayer != PlayerOne || gs.Turn.TurnNumber != 2 {
		t.Errorf("expected player1 turn 2, got %s turn %d", gs.Turn.CurrentPlayer, gs.Turn.TurnNumber)
	}
}

func TestEndTurn_ResetsOwnerUnits(t *testing.T) {
	gs := stateWith(0, unitAt("a", "fire_1", PlayerOne, 0, 0), unitAt("e", "water_1", PlayerTwo, 9, 9))
	gs = Apply(gs, Move("a", Pos(1, 0)))
	gs = ApplyAll(gs, EndTurn(), EndTurn())
	u := gs.Board.UnitByID("a")
	if u.HasMoved || !u.CanActThisTurn {
		t.Errorf("owner's units should be refreshed at turn start, got %+v", u)
	}
	if gs.Turn.ActionsRemaining != ActionsPerTurn {
		t.Errorf("action pool should refill, got %d", gs.Turn.ActionsRemaining)
	}
}

func TestPhaseTransitions(t *testing.T) {
	gs := NewStandardGame()
	if gs.Turn.Phase != TurnPlace {
		t.Fatalf("expected place, got %s", gs.Turn.Phase)
	}
	if next := Apply(gs, EndActionPhase()); next != gs {
		t.Error("END_ACTION_PHASE during place should be a no-op")
	}
	gs = Apply(gs, EndPlacePhase())
	if gs.Turn.Phase != TurnAction {
		t.Fatalf("expected action, got %s", gs.Turn.Phase)
	}
	gs = Apply(gs, EndActionPhase())
	if gs.Turn.Phase != TurnQueue {
		t.Fatalf("expected queue, got %s", gs.Turn.Phase)
	}
	if next := Apply(gs, EndPlacePhase()); next != gs {
		t.Error("END_PLACE_PHASE during queue should be a no-op")
	}
}

func TestVictory_LastUnitEliminated(t *testing.T) {
	// Player two, on turn, wipes out player one's last unit.
	gs := stateWith(0,
		unitAt("p1", "plant_1", PlayerOne, 4, 4),
		unitAt("p2", "fire_1", PlayerTwo, 4, 5),
	)
	gs.Turn.CurrentPlayer = PlayerTwo
	next := Apply(gs, Attack("p2", Pos(4, 4)))

	if next.Phase != PhaseVictory {
		t.Fatalf("expected victory, got %s", next.Phase)
	}
	if next.Winner != PlayerTwo {
		t.Errorf("expected player2 to win, got %q", next.Winner)
	}
	if after := Apply(next, EndTurn()); after != next {
		t.Error("no action should be legal after victory")
	}
}

func TestCheckVictory(t *testing.T) {
	cases := []struct {
		name   string
		units  []Unit
		over   bool
		winner PlayerID
	}{
		{"both alive", []Unit{unitAt("a", "fire_1", PlayerOne, 0, 0), unitAt("b", "fire_1", PlayerTwo, 9, 9)}, false, NoPlayer},
		{"player one empty", []Unit{unitAt("b", "fire_1", PlayerTwo, 9, 9)}, true, PlayerTwo},
		{"player two empty", []Unit{unitAt("a", "fire_1", PlayerOne, 0, 0)}, true, PlayerOne},
		{"both empty", nil, true, NoPlayer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			over, winner := CheckVictory(stateWith(0, tc.units...))
			if over != tc.over || winner != tc.winner {
				t.Errorf("expected (%v, %q), got (%v, %q)", tc.over, tc.winner, over, winner)
			}
		})
	}
}

func TestResign(t *testing.T) {
	gs := NewStandardGame()
	next := Apply(gs, Resign(NoPlayer))
	if !next.IsOver() || next.Winner != PlayerTwo {
		t.Errorf("current player resigning should hand player2 the win, got %s/%q", next.Phase, next.Winner)
	}
	next = Apply(gs, Resign(PlayerTwo))
	if next.Winner != PlayerOne {
		t.Errorf("expected player1 to win, got %q", next.Winner)
	}
}

func TestTurnLimitAndDraw(t *testing.T) {
	gs := NewStandardGame()
	if TurnLimitReached(gs, 0) {
		t.Error("limit 0 disables the check")
	}
	gs.Turn.TurnNumber = 31
	if !TurnLimitReached(gs, 30) {
		t.Error("turn 31 is past a 30 turn limit")
	}
	d := DeclareDraw(gs)
	if !d.IsDraw() || gs.IsOver() {
		t.Error("DeclareDraw should end the copy without touching the input")
	}
}
