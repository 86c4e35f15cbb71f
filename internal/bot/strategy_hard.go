package bot

import (
	"context"
	"math"
	"time"

	"github.com/ethancd/deevgames/internal/logger"
	"github.com/ethancd/deevgames/pkg/tactics"
)

// deadlineCheckInterval is how many deadline polls pass between clock reads.
const deadlineCheckInterval = 64

// MinimaxStrategy runs an iteratively deepened alpha-beta search over single
// actions. A ply is one action, not one full turn, so the maximizing side is
// decided per node from the player on turn. When the time budget runs out,
// unexpanded nodes are scored with MaterialEval and the best root action found
// so far is returned.
type MinimaxStrategy struct {
	Depth     int
	TimeLimit time.Duration
	Evaluator Evaluator

	// DisablePruning turns off alpha-beta cutoffs. The chosen action is the
	// same either way; only the number of nodes visited changes.
	DisablePruning bool
}

// SearchStats summarizes one search.
type SearchStats struct {
	Nodes     int
	Leaves    int
	Cutoffs   int
	Depth     int // deepest pass started
	Truncated bool
	Elapsed   time.Duration
}

// SearchResult is the outcome of MinimaxStrategy.Search.
type SearchResult struct {
	Action tactics.Action
	Score  float64
	Stats  SearchStats
}

func (MinimaxStrategy) Name() string { return DifficultyHard }

func (s MinimaxStrategy) ChooseAction(gs *tactics.GameState) tactics.Action {
	return s.ChooseActionContext(context.Background(), gs)
}

// ChooseActionContext searches gs and logs the search stats through the
// logger carried by ctx.
func (s MinimaxStrategy) ChooseActionContext(ctx context.Context, gs *tactics.GameState) tactics.Action {
	res := s.Search(gs)
	l := logger.FromContext(ctx)
	l.Debug().
		Str("player", string(gs.Turn.CurrentPlayer)).
		Str("action", res.Action.Describe()).
		Float64("score", res.Score).
		Int("nodes", res.Stats.Nodes).
		Int("cutoffs", res.Stats.Cutoffs).
		Int("depth", res.Stats.Depth).
		Bool("truncated", res.Stats.Truncated).
		Dur("elapsed", res.Stats.Elapsed).
		Msg("Search complete")
	return res.Action
}

// Search deepens iteratively from depth 1 to the configured depth and returns
// the best action for the player on turn. Depth 1 always scores every root
// action. Each deeper pass searches the previous best first; if the deadline
// passes mid-pass, the best action among those scored so far is kept, with
// unexpanded nodes scored by MaterialEval. Ties keep the earliest action in
// search order.
func (s MinimaxStrategy) Search(gs *tactics.GameState) SearchResult {
	start := time.Now()
	actions := LegalActions(gs)
	if len(actions) == 0 {
		return SearchResult{Action: fallbackAction()}
	}

	depth := max(s.Depth, 1)
	sr := &searcher{
		eval:  s.Evaluator,
		root:  gs.Turn.CurrentPlayer,
		prune: !s.DisablePruning,
	}
	if s.TimeLimit > 0 {
		sr.deadline = start.Add(s.TimeLimit)
	}

	best, bestScore := sr.searchRoot(gs, actions, 1)
	sr.stats.Depth = 1
	for d := 2; d <= depth; d++ {
		if sr.expired() {
			break
		}
		best, bestScore = sr.searchRoot(gs, bestFirst(actions, best), d)
		sr.stats.Depth = d
		if sr.stats.Truncated {
			break
		}
	}

	sr.stats.Elapsed = time.Since(start)
	return SearchResult{Action: best, Score: bestScore, Stats: sr.stats}
}

// searchRoot scores root actions in order at the given depth. Once the
// deadline passes it stops after the current action, so the first action is
// always scored.
func (sr *searcher) searchRoot(gs *tactics.GameState, actions []tactics.Action, depth int) (tactics.Action, float64) {
	best := actions[0]
	bestScore := math.Inf(-1)
	alpha, beta := math.Inf(-1), math.Inf(1)
	for i, a := range actions {
		if i > 0 && depth > 1 && sr.expired() {
			break
		}
		score := sr.alphaBeta(tactics.Apply(gs, a), depth-1, alpha, beta)
		if score > bestScore {
			best, bestScore = a, score
		}
		if sr.prune {
			alpha = math.Max(alpha, bestScore)
		}
	}
	return best, bestScore
}

// bestFirst returns actions with first moved to the front.
func bestFirst(actions []tactics.Action, first tactics.Action) []tactics.Action {
	out := make([]tactics.Action, 0, len(actions))
	out = append(out, first)
	for _, a := range actions {
		if a != first {
			out = append(out, a)
		}
	}
	return out
}

type searcher struct {
	eval     Evaluator
	root     tactics.PlayerID
	prune    bool
	deadline time.Time
	polls    int
	stats    SearchStats
}

// expired reads the clock on the first poll and every deadlineCheckInterval
// polls after that. Once the deadline has passed it stays expired.
func (sr *searcher) expired() bool {
	if sr.stats.Truncated {
		return true
	}
	if sr.deadline.IsZero() {
		return false
	}
	sr.polls++
	if (sr.polls-1)%deadlineCheckInterval != 0 {
		return false
	}
	if time.Now().After(sr.deadline) {
		sr.stats.Truncated = true
	}
	return sr.stats.Truncated
}

func (sr *searcher) alphaBeta(gs *tactics.GameState, depth int, alpha, beta float64) float64 {
	sr.stats.Nodes++
	if gs.IsOver() || depth <= 0 {
		sr.stats.Leaves++
		return sr.eval.Evaluate(gs, sr.root)
	}
	if sr.expired() {
		sr.stats.Leaves++
		return MaterialEval(gs, sr.root)
	}

	actions := LegalActions(gs)
	maximizing := gs.Turn.CurrentPlayer == sr.root
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, a := range actions {
		v := sr.alphaBeta(tactics.Apply(gs, a), depth-1, alpha, beta)
		if maximizing {
			best = math.Max(best, v)
			alpha = math.Max(alpha, v)
		} else {
			best = math.Min(best, v)
			beta = math.Min(beta, v)
		}
		if sr.prune && alpha >= beta {
			sr.stats.Cutoffs++
			break
		}
	}
	return best
}
