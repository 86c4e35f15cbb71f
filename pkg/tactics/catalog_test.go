package tactics

import "testing"

func TestCatalogSize(t *testing.T) {
	if n := len(AllDefinitions()); n != 24 {
		t.Fatalf("expected 24 definitions, got %d", n)
	}
	for _, e := range AllElements() {
		for tier := 1; tier <= MaxTier; tier++ {
			def, ok := DefinitionFor(e, tier)
			if !ok {
				t.Errorf("missing %s tier %d", e, tier)
				continue
			}
			if def.Element != e || def.Tier != tier {
				t.Errorf("%s: element/tier mismatch: %s %d", def.ID, def.Element, def.Tier)
			}
			if def.Cost <= 0 || def.BuildTime <= 0 || def.Speed <= 0 || def.Mining <= 0 {
				t.Errorf("%s: stats must be positive: %+v", def.ID, def)
			}
		}
	}
}

func TestCatalogTiersGrow(t *testing.T) {
	for _, e := range AllElements() {
		for tier := 2; tier <= MaxTier; tier++ {
			lo, _ := DefinitionFor(e, tier-1)
			hi, _ := DefinitionFor(e, tier)
			if hi.Cost <= lo.Cost {
				t.Errorf("%s should cost more than %s", hi.ID, lo.ID)
			}
			if hi.Attack < lo.Attack || hi.Defense < lo.Defense {
				t.Errorf("%s should not be weaker than %s", hi.ID, lo.ID)
			}
		}
	}
}

func TestCatalogArchetypes(t *testing.T) {
	cases := map[string]Archetype{
		"fire_1": Rush, "lightning_3": Rush,
		"water_2": Balanced, "metal_4": Balanced,
		"plant_1": Expand, "wind_2": Expand,
	}
	for id, want := range cases {
		if got := MustDefinition(id).Archetype; got != want {
			t.Errorf("%s: expected %s, got %s", id, want, got)
		}
	}
}

func TestMustDefinitionPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown definition id")
		}
	}()
	MustDefinition("dragon_9")
}

func TestDefinitionUnknown(t *testing.T) {
	if _, ok := Definition("dragon_9"); ok {
		t.Error("unknown id should not be found")
	}
}

func TestNextTier(t *testing.T) {
	next, ok := NextTier(MustDefinition("water_1"))
	if !ok || next.ID != "water_2" {
		t.Errorf("water_1 -> expected water_2, got %q (%v)", next.ID, ok)
	}
	if _, ok := NextTier(MustDefinition("wind_4")); ok {
		t.Error("tier 4 has no next tier")
	}
}
