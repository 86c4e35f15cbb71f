package bot

import (
	"context"
	"math/rand"
	"time"

	"github.com/ethancd/deevgames/pkg/tactics"
)

// Strategy picks the next action for the player on turn. Implementations
// must return an action that is legal in gs whenever the game is still in
// progress.
type Strategy interface {
	Name() string
	ChooseAction(gs *tactics.GameState) tactics.Action
}

// ContextStrategy is implemented by strategies that log or otherwise use the
// caller's context while choosing. PlayTurn prefers it when available.
type ContextStrategy interface {
	Strategy
	ChooseActionContext(ctx context.Context, gs *tactics.GameState) tactics.Action
}

func chooseAction(ctx context.Context, s Strategy, gs *tactics.GameState) tactics.Action {
	if cs, ok := s.(ContextStrategy); ok {
		return cs.ChooseActionContext(ctx, gs)
	}
	return s.ChooseAction(gs)
}

// Difficulty levels accepted by StrategyForDifficulty.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Budget bounds how much work a strategy may spend on one decision.
// A zero TimeLimit means unbounded.
type Budget struct {
	Depth     int
	TimeLimit time.Duration
}

// DefaultBudget returns the built-in budget for a difficulty level.
func DefaultBudget(difficulty string) Budget {
	switch difficulty {
	case DifficultyHard:
		return Budget{Depth: 3, TimeLimit: 2 * time.Second}
	case DifficultyMedium:
		return Budget{Depth: 1, TimeLimit: 500 * time.Millisecond}
	default:
		return Budget{}
	}
}

// StrategyForDifficulty returns the strategy for a bot difficulty level using
// its default budget. Unknown levels fall back to easy.
func StrategyForDifficulty(difficulty string) Strategy {
	return NewStrategy(difficulty, DefaultBudget(difficulty), nil)
}

// NewStrategy builds a strategy for the difficulty with an explicit budget.
// rng is only used by the easy strategy; nil selects the package source.
func NewStrategy(difficulty string, budget Budget, rng *rand.Rand) Strategy {
	switch difficulty {
	case DifficultyHard:
		return &MinimaxStrategy{
			Depth:     budget.Depth,
			TimeLimit: budget.TimeLimit,
			Evaluator: DefaultEvaluator(),
		}
	case DifficultyMedium:
		return &GreedyStrategy{
			TimeLimit: budget.TimeLimit,
			Evaluator: DefaultEvaluator(),
		}
	default:
		return &RandomStrategy{Rng: rng}
	}
}

// ValidDifficulty reports whether d names a known difficulty level.
func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// fallbackAction is returned when no legal action exists, which only happens
// once the game is over. Applying it is a no-op.
func fallbackAction() tactics.Action {
	return tactics.EndTurn()
}
