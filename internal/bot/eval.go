package bot

import (
	"math"

	"github.com/ethancd/deevgames/pkg/tactics"
)

// WinScore is the magnitude assigned to decided games. It dominates every
// heuristic feature combination.
const WinScore = 100000.0

// Weights scales each positional feature. Every feature is computed for both
// sides and scored as own minus opponent.
type Weights struct {
	Material        float64 // total cost of units on the board
	Pending         float64 // total cost of units in the build queue
	Resources       float64 // unspent resources
	Territory       float64 // size of the spawn zone
	MiningPotential float64 // best yield each unit can reach this turn
	Threat          float64 // cost of enemy units an adjacent own unit could eliminate
	Mobility        float64 // cells reachable by all units
	Centrality      float64 // closeness of units to the board center
	Health          float64 // total defense on the board
}

// DefaultWeights favors material first. Queued units count for less than
// fielded ones but for more than the resources that bought them, so spending
// is never scored as a loss.
func DefaultWeights() Weights {
	return Weights{
		Material:        1.0,
		Pending:         0.8,
		Resources:       0.5,
		Territory:       0.05,
		MiningPotential: 0.3,
		Threat:          0.6,
		Mobility:        0.02,
		Centrality:      0.3,
		Health:          0.2,
	}
}

// Evaluator scores positions from one player's perspective.
type Evaluator struct {
	Weights Weights
}

// DefaultEvaluator returns an Evaluator using DefaultWeights.
func DefaultEvaluator() Evaluator {
	return Evaluator{Weights: DefaultWeights()}
}

// Evaluate returns the score of gs for player: +WinScore for a win,
// -WinScore for a loss, 0 for a draw, and a weighted feature difference
// otherwise.
func (e Evaluator) Evaluate(gs *tactics.GameState, player tactics.PlayerID) float64 {
	if score, done := terminalScore(gs, player); done {
		return score
	}
	return e.side(gs, player) - e.side(gs, player.Opponent())
}

// MaterialEval is the cheap fallback used when a search runs out of time:
// board material plus resources, own minus opponent.
func MaterialEval(gs *tactics.GameState, player tactics.PlayerID) float64 {
	if score, done := terminalScore(gs, player); done {
		return score
	}
	return materialOf(gs, player) - materialOf(gs, player.Opponent())
}

func terminalScore(gs *tactics.GameState, player tactics.PlayerID) (float64, bool) {
	if !gs.IsOver() {
		return 0, false
	}
	switch gs.Winner {
	case player:
		return WinScore, true
	case tactics.NoPlayer:
		return 0, true
	default:
		return -WinScore, true
	}
}

func materialOf(gs *tactics.GameState, player tactics.PlayerID) float64 {
	var total float64
	for _, u := range gs.Board.Units {
		if u.Owner == player {
			total += float64(u.Definition().Cost)
		}
	}
	if ps := gs.Player(player); ps != nil {
		total += float64(ps.Resources)
	}
	return total
}

func (e Evaluator) side(gs *tactics.GameState, player tactics.PlayerID) float64 {
	w := e.Weights
	var material, health, mining, mobility, centrality float64
	for _, u := range gs.Board.Units {
		if u.Owner != player {
			continue
		}
		def := u.Definition()
		material += float64(def.Cost)
		health += float64(def.Defense)
		reach := tactics.Reachable(&gs.Board, u.Position, def.Speed)
		mining += float64(miningPotential(&gs.Board, u.Position, reach, def.Mining))
		mobility += float64(len(reach))
		centrality += centralityOf(u.Position)
	}

	var pending, resources float64
	if ps := gs.Player(player); ps != nil {
		resources = float64(ps.Resources)
		for _, q := range ps.BuildQueue {
			pending += float64(tactics.MustDefinition(q.DefinitionID).Cost)
		}
	}

	territory := float64(len(tactics.SpawnPositions(gs, player)))

	return w.Material*material +
		w.Pending*pending +
		w.Resources*resources +
		w.Territory*territory +
		w.MiningPotential*mining +
		w.Threat*threatOf(gs, player) +
		w.Mobility*mobility +
		w.Centrality*centrality +
		w.Health*health
}

// miningPotential is the best yield a unit with the given mining power could
// take from its own cell or any cell in reach.
func miningPotential(b *tactics.Board, at tactics.Position, reach []tactics.Position, power int) int {
	best := tactics.MiningYield(*b.CellAt(at), power)
	for _, p := range reach {
		best = max(best, tactics.MiningYield(*b.CellAt(p), power))
	}
	return best
}

// threatOf sums the cost of enemy units that at least one adjacent unit of
// player could eliminate with a single attack. Each enemy is counted once and
// action flags are ignored, so this measures standing pressure.
func threatOf(gs *tactics.GameState, player tactics.PlayerID) float64 {
	var total float64
	for _, enemy := range gs.Board.Units {
		if enemy.Owner == player {
			continue
		}
		enemyDef := enemy.Definition()
		for _, p := range enemy.Position.Neighbors() {
			u := gs.Board.UnitAt(p)
			if u == nil || u.Owner != player {
				continue
			}
			if tactics.PreviewAttack(u.Definition(), enemyDef).Eliminated {
				total += float64(enemyDef.Cost)
				break
			}
		}
	}
	return total
}

// centralityOf is 1 at the center of the board and falls off linearly with
// Manhattan distance to 0 at the corners.
func centralityOf(p tactics.Position) float64 {
	const mid = float64(tactics.BoardSize-1) / 2
	d := math.Abs(float64(p.X)-mid) + math.Abs(float64(p.Y)-mid)
	return 1 - d/(2*mid)
}
