package bot

import (
	"time"

	"github.com/ethancd/deevgames/pkg/tactics"
)

// GreedyStrategy simulates every legal action one ply ahead and keeps the one
// whose resulting position scores best for the mover. Ties go to the earliest
// action in priority order.
type GreedyStrategy struct {
	TimeLimit time.Duration
	Evaluator Evaluator
}

func (GreedyStrategy) Name() string { return DifficultyMedium }

func (s GreedyStrategy) ChooseAction(gs *tactics.GameState) tactics.Action {
	actions := LegalActions(gs)
	if len(actions) == 0 {
		return fallbackAction()
	}

	var deadline time.Time
	if s.TimeLimit > 0 {
		deadline = time.Now().Add(s.TimeLimit)
	}

	player := gs.Turn.CurrentPlayer
	best := actions[0]
	bestScore := s.Evaluator.Evaluate(tactics.Apply(gs, best), player)
	for _, a := range actions[1:] {
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		score := s.Evaluator.Evaluate(tactics.Apply(gs, a), player)
		if score > bestScore {
			best, bestScore = a, score
		}
	}
	return best
}
