package bot

import (
	"math/rand"

	"github.com/ethancd/deevgames/pkg/tactics"
)

// RandomStrategy picks uniformly among the legal actions.
type RandomStrategy struct {
	Rng *rand.Rand
}

func (RandomStrategy) Name() string { return DifficultyEasy }

func (s RandomStrategy) ChooseAction(gs *tactics.GameState) tactics.Action {
	actions := LegalActions(gs)
	if len(actions) == 0 {
		return fallbackAction()
	}
	return actions[intn(s.Rng, len(actions))]
}
