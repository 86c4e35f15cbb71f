package tactics

import "fmt"

// Archetype is a flavor classification that only shapes stats.
type Archetype string

const (
	Rush     Archetype = "rush"
	Balanced Archetype = "balanced"
	Expand   Archetype = "expand"
)

// MaxTier is the highest tier a unit can reach.
const MaxTier = 4

// UnitDefinition is an immutable catalog entry.
type UnitDefinition struct {
	ID        string
	Element   Element
	Tier      int
	Archetype Archetype
	Attack    int
	Defense   int
	Speed     int
	Mining    int
	Cost      int
	BuildTime int
}

// stats is one row of the catalog table: attack, defense, speed, mining, cost, build time.
type stats [6]int

var archetypes = map[Element]Archetype{
	Fire:      Rush,
	Lightning: Rush,
	Water:     Balanced,
	Metal:     Balanced,
	Plant:     Expand,
	Wind:      Expand,
}

// catalogTable lists tiers 1 through 4 for each element.
var catalogTable = map[Element][MaxTier]stats{
	Fire: {
		{2, 1, 3, 1, 2, 1},
		{3, 2, 3, 1, 4, 1},
		{5, 3, 3, 2, 7, 2},
		{6, 4, 4, 2, 10, 3},
	},
	Water: {
		{2, 2, 2, 2, 2, 1},
		{3, 3, 2, 2, 4, 2},
		{4, 4, 3, 3, 6, 2},
		{5, 5, 3, 4, 9, 3},
	},
	Plant: {
		{1, 3, 2, 2, 2, 1},
		{2, 4, 2, 3, 4, 2},
		{3, 5, 2, 4, 6, 2},
		{4, 6, 3, 5, 9, 3},
	},
	Lightning: {
		{2, 1, 3, 1, 2, 1},
		{4, 2, 3, 1, 4, 1},
		{5, 2, 4, 2, 7, 2},
		{6, 3, 4, 2, 10, 3},
	},
	Metal: {
		{1, 3, 1, 2, 2, 1},
		{2, 4, 2, 3, 4, 2},
		{3, 5, 2, 3, 6, 2},
		{4, 6, 2, 4, 9, 3},
	},
	Wind: {
		{1, 2, 3, 1, 2, 1},
		{2, 2, 4, 2, 4, 1},
		{3, 3, 4, 3, 6, 2},
		{4, 4, 5, 4, 9, 3},
	},
}

// catalog is the process-wide registry, built once at init and never mutated.
var (
	catalog     map[string]UnitDefinition
	catalogList []UnitDefinition
)

func init() {
	catalog = make(map[string]UnitDefinition, len(catalogTable)*MaxTier)
	for _, e := range AllElements() {
		for i, s := range catalogTable[e] {
			def := UnitDefinition{
				ID:        DefinitionID(e, i+1),
				Element:   e,
				Tier:      i + 1,
				Archetype: archetypes[e],
				Attack:    s[0],
				Defense:   s[1],
				Speed:     s[2],
				Mining:    s[3],
				Cost:      s[4],
				BuildTime: s[5],
			}
			catalog[def.ID] = def
			catalogList = append(catalogList, def)
		}
	}
}

// DefinitionID returns the catalog id for an element and tier, e.g. "fire_2".
func DefinitionID(e Element, tier int) string {
	return fmt.Sprintf("%s_%d", e, tier)
}

// Definition looks up a unit definition by id.
func Definition(id string) (UnitDefinition, bool) {
	def, ok := catalog[id]
	return def, ok
}

// MustDefinition looks up a unit definition and panics if the id is unknown.
// Every unit and queue entry references a catalog id, so a miss here is a
// programming error rather than a gameplay situation.
func MustDefinition(id string) UnitDefinition {
	def, ok := catalog[id]
	if !ok {
		panic(fmt.Sprintf("tactics: unknown unit definition %q", id))
	}
	return def
}

// DefinitionFor returns the definition of the given element and tier.
func DefinitionFor(e Element, tier int) (UnitDefinition, bool) {
	return Definition(DefinitionID(e, tier))
}

// AllDefinitions returns every catalog entry ordered by element then tier.
// The returned slice must not be modified.
func AllDefinitions() []UnitDefinition {
	return catalogList
}

// NextTier returns the definition one tier above def within the same element.
func NextTier(def UnitDefinition) (UnitDefinition, bool) {
	if def.Tier >= MaxTier {
		return UnitDefinition{}, false
	}
	return DefinitionFor(def.Element, def.Tier+1)
}
