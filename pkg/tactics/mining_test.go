package tactics

import "testing"

func TestMiningYield_FreshCell(t *testing.T) {
	for power := 0; power <= 7; power++ {
		c := Cell{ResourceLayers: CellDepth}
		if got, want := MiningYield(c, power), min(power, CellDepth); got != want {
			t.Errorf("power %d: expected %d, got %d", power, want, got)
		}
	}
}

func TestMiningYield_WellModel(t *testing.T) {
	cases := []struct {
		name  string
		depth int
		power int
		want  int
	}{
		{"shallow unit blocked by claimed top layer", 1, 1, 0},
		{"one layer deeper", 1, 2, 1},
		{"reaches several layers", 1, 4, 3},
		{"too deep", 3, 3, 0},
		{"capped by remaining", 4, 5, 1},
		{"depleted", 5, 5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Cell{MinedDepth: tc.depth, ResourceLayers: CellDepth - tc.depth}
			if got := MiningYield(c, tc.power); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestApplyMine_HasMinedBlocksSecondMine(t *testing.T) {
	gs := stateWith(0, unitAt("m", "fire_1", PlayerOne, 3, 3), unitAt("e", "water_1", PlayerTwo, 9, 9))
	next := Apply(gs, Mine("m"))
	if next == gs {
		t.Fatal("mining a fresh cell was rejected")
	}
	c := next.Board.CellAt(Pos(3, 3))
	if c.ResourceLayers != 4 || c.MinedDepth != 1 {
		t.Errorf("expected layers 4 depth 1, got %d/%d", c.ResourceLayers, c.MinedDepth)
	}
	if next.Player(PlayerOne).Resources != 1 {
		t.Errorf("expected 1 resource, got %d", next.Player(PlayerOne).Resources)
	}
	if again := Apply(next, Mine("m")); again != next {
		t.Error("second mine in the same turn should be a no-op")
	}
	assertCellInvariant(t, next)
}

func TestApplyMine_SequentialUnitsNeverReclaim(t *testing.T) {
	// mining 1 then mining 2 on the same cell yields 1 then 1, not 2.
	gs := stateWith(0,
		unitAt("shallow", "fire_1", PlayerOne, 3, 3),
		unitAt("deep", "water_1", PlayerOne, 3, 5),
		unitAt("e", "water_1", PlayerTwo, 9, 9),
	)
	gs = Apply(gs, Mine("shallow"))
	gs = Apply(gs, Move("shallow", Pos(2, 3)))
	gs = Apply(gs, Move("deep", Pos(3, 3)))
	before := gs.Player(PlayerOne).Resources
	gs = Apply(gs, Mine("deep"))

	if got := gs.Player(PlayerOne).Resources - before; got != 1 {
		t.Errorf("second miner should yield 1, got %d", got)
	}
	c := gs.Board.CellAt(Pos(3, 3))
	if c.MinedDepth != 2 || c.ResourceLayers != 3 {
		t.Errorf("expected depth 2 layers 3, got %d/%d", c.MinedDepth, c.ResourceLayers)
	}
	assertCellInvariant(t, gs)
}

func TestCanMine_DryCell(t *testing.T) {
	gs := stateWith(0, unitAt("m", "fire_1", PlayerOne, 3, 3))
	gs.Board.CellAt(Pos(3, 3)).MinedDepth = 1
	gs.Board.CellAt(Pos(3, 3)).ResourceLayers = 4
	if CanMine(gs, "m") {
		t.Error("mining-1 unit cannot reach layer 2")
	}
	if next := Apply(gs, Mine("m")); next != gs {
		t.Error("mining a dry cell should be a no-op")
	}
}

func TestMining_DepletesAcrossTurns(t *testing.T) {
	// plant_4 (mining 5) empties a fresh cell in one go.
	gs := stateWith(0, unitAt("p", "plant_4", PlayerOne, 3, 3), unitAt("e", "water_1", PlayerTwo, 9, 9))
	gs = Apply(gs, Mine("p"))
	c := gs.Board.CellAt(Pos(3, 3))
	if !c.Depleted() {
		t.Errorf("expected depleted cell, got %+v", c)
	}
	if gs.Player(PlayerOne).Resources != CellDepth {
		t.Errorf("expected %d resources, got %d", CellDepth, gs.Player(PlayerOne).Resources)
	}
	assertCellInvariant(t, gs)
}
