package bot

import (
	"testing"

	"github.com/ethancd/deevgames/pkg/tactics"
)

// midgame returns a crowded action-phase position for benchmarks.
func midgame() *tactics.GameState {
	gs := playing(
		unit("a", "fire_2", tactics.PlayerOne, 2, 2),
		unit("b", "water_1", tactics.PlayerOne, 1, 3),
		unit("c", "wind_1", tactics.PlayerOne, 3, 0),
		unit("d", "plant_2", tactics.PlayerTwo, 5, 5),
		unit("e", "metal_1", tactics.PlayerTwo, 6, 4),
		unit("f", "lightning_1", tactics.PlayerTwo, 7, 7),
	)
	for i := range gs.Players {
		gs.Players[i].Resources = 4
	}
	return gs
}

func BenchmarkLegalActions(b *testing.B) {
	gs := midgame()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		LegalActions(gs)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	gs := midgame()
	e := DefaultEvaluator()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Evaluate(gs, tactics.PlayerOne)
	}
}

func BenchmarkApplyMove(b *testing.B) {
	gs := midgame()
	a := tactics.Move("a", tactics.Pos(3, 3))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tactics.Apply(gs, a)
	}
}

func BenchmarkMinimaxDepth2(b *testing.B) {
	gs := midgame()
	s := MinimaxStrategy{Depth: 2, Evaluator: DefaultEvaluator()}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Search(gs)
	}
}

func BenchmarkMinimaxDepth2NoPruning(b *testing.B) {
	gs := midgame()
	s := MinimaxStrategy{Depth: 2, Evaluator: DefaultEvaluator(), DisablePruning: true}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Search(gs)
	}
}
