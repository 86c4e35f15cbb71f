package tactics

// beginTurn opens the given player's turn: the build queue ticks, the player's
// units are refreshed, the action pool refills and the place phase starts
// (skipped straight to action when there is nothing to place or promote).
func beginTurn(gs *GameState, player PlayerID) {
	gs.Turn.CurrentPlayer = player
	gs.Turn.Phase = TurnPlace
	gs.Turn.ActionsRemaining = ActionsPerTurn
	gs.SelectedUnitID = ""
	if ps := gs.Player(player); ps != nil {
		tickBuildQueue(ps)
	}
	for i := range gs.Board.Units {
		if gs.Board.Units[i].Owner == player {
			gs.Board.Units[i].resetForTurn()
		}
	}
	skipEmptyPlacePhase(gs)
}

// skipEmptyPlacePhase advances to the action phase when the place phase has
// nothing left to offer.
func skipEmptyPlacePhase(gs *GameState) {
	if gs.Turn.Phase == TurnPlace && !HasPlacementWork(gs, gs.Turn.CurrentPlayer) {
		gs.Turn.Phase = TurnAction
	}
}

func endPlacePhase(gs *GameState) {
	gs.Turn.Phase = TurnAction
}

func endActionPhase(gs *GameState) {
	gs.Turn.Phase = TurnQueue
	gs.SelectedUnitID = ""
}

// spendAction consumes one action from the shared pool and closes the action
// phase when the pool runs dry.
func spendAction(gs *GameState) {
	gs.Turn.ActionsRemaining--
	if gs.Turn.ActionsRemaining <= 0 {
		gs.Turn.ActionsRemaining = 0
		endActionPhase(gs)
	}
}

// endTurn hands control to the opponent. The turn number advances only when
// control returns to the first player, i.e. once per full round.
func endTurn(gs *GameState) {
	next := gs.Turn.CurrentPlayer.Opponent()
	if next == AllPlayers()[0] {
		gs.Turn.TurnNumber++
	}
	beginTurn(gs, next)
}

// CheckVictory reports whether either side has no units left. When exactly
// one side is empty the other wins; when both are empty it is a draw and
// winner is NoPlayer.
func CheckVictory(gs *GameState) (over bool, winner PlayerID) {
	one := gs.Board.UnitCount(PlayerOne)
	two := gs.Board.UnitCount(PlayerTwo)
	switch {
	case one == 0 && two == 0:
		return true, NoPlayer
	case one == 0:
		return true, PlayerTwo
	case two == 0:
		return true, PlayerOne
	}
	return false, NoPlayer
}

func checkVictory(gs *GameState) {
	if over, winner := CheckVictory(gs); over {
		gs.Phase = PhaseVictory
		gs.Winner = winner
	}
}

func resign(gs *GameState, player PlayerID) {
	gs.Phase = PhaseVictory
	gs.Winner = player.Opponent()
}

// TurnLimitReached reports whether the game has played past limit full rounds.
// A limit of zero or less disables the check.
func TurnLimitReached(gs *GameState, limit int) bool {
	return limit > 0 && gs.Turn.TurnNumber > limit
}

// DeclareDraw ends the game without a winner. Used by drivers that cap game length.
func DeclareDraw(gs *GameState) *GameState {
	if gs.IsOver() {
		return gs
	}
	next := gs.Clone()
	next.Phase = PhaseVictory
	next.Winner = NoPlayer
	return next
}
