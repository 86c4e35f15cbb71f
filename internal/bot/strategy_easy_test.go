package bot

import (
	"math/rand"
	"testing"

	"github.com/ethancd/deevgames/pkg/tactics"
)

func TestRandomStrategy_Name(t *testing.T) {
	if got := (RandomStrategy{}).Name(); got != "easy" {
		t.Errorf("expected 'easy', got %s", got)
	}
}

// playout drives a game with s for both sides and returns every action taken.
func playout(s Strategy, steps int) []tactics.Action {
	gs := tactics.NewStandardGame()
	var taken []tactics.Action
	for i := 0; i < steps; i++ {
		if gs.IsOver() {
			break
		}
		a := s.ChooseAction(gs)
		taken = append(taken, a)
		gs = tactics.Apply(gs, a)
	}
	return taken
}

func TestRandomStrategy_AlwaysLegal(t *testing.T) {
	s := RandomStrategy{Rng: rand.New(rand.NewSource(7))}
	gs := tactics.NewStandardGame()
	for i := 0; i < 300 && !gs.IsOver(); i++ {
		a := s.ChooseAction(gs)
		assertLegal(t, gs, a)
		gs = tactics.Apply(gs, a)
	}
}

func TestRandomStrategy_SeededIsReproducible(t *testing.T) {
	a := playout(RandomStrategy{Rng: rand.New(rand.NewSource(42))}, 150)
	b := playout(RandomStrategy{Rng: rand.New(rand.NewSource(42))}, 150)
	if len(a) != len(b) {
		t.Fatalf("expected equal-length playouts, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("playouts diverge at %d: %s vs %s", i, a[i].Describe(), b[i].Describe())
		}
	}
}

func TestRandomStrategy_PackageSeed(t *testing.T) {
	defer ResetBotRng()

	SeedBotRng(9)
	a := playout(RandomStrategy{}, 60)
	SeedBotRng(9)
	b := playout(RandomStrategy{}, 60)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("package-seeded playouts diverge at %d", i)
		}
	}
}
