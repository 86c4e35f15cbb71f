package bot

import (
	"context"

	"github.com/ethancd/deevgames/internal/logger"
	"github.com/ethancd/deevgames/pkg/tactics"
)

// MaxActionsPerTurn caps how many actions PlayTurn asks a strategy for before
// ending the turn on its behalf.
const MaxActionsPerTurn = 20

// TurnResult is what one bot turn produced.
type TurnResult struct {
	State   *tactics.GameState
	Actions []tactics.Action
	// Forced is set when the turn was ended by PlayTurn rather than by the
	// strategy, either because the cap was hit or the strategy proposed an
	// illegal action.
	Forced bool
}

// PlayTurn lets s act for the player on turn until it ends the turn, the game
// ends, or MaxActionsPerTurn actions have been taken. gs is not modified.
func PlayTurn(ctx context.Context, gs *tactics.GameState, s Strategy) (TurnResult, error) {
	res := TurnResult{State: gs}
	if gs.IsOver() {
		return res, nil
	}
	player := gs.Turn.CurrentPlayer
	l := logger.FromContext(ctx)

	for i := 0; i < MaxActionsPerTurn; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		a := chooseAction(ctx, s, res.State)
		next := tactics.Apply(res.State, a)
		if next == res.State {
			l.Warn().
				Str("strategy", s.Name()).
				Str("action", a.Describe()).
				Err(tactics.Validate(res.State, a)).
				Msg("Strategy proposed an illegal action")
			break
		}
		res.State = next
		res.Actions = append(res.Actions, a)
		if a.Kind.EndsTurn() || next.IsOver() {
			return res, nil
		}
	}

	if !res.State.IsOver() && res.State.Turn.CurrentPlayer == player {
		end := tactics.EndTurn()
		res.State = tactics.Apply(res.State, end)
		res.Actions = append(res.Actions, end)
		res.Forced = true
	}
	return res, nil
}
