package tactics

// Element is one of the six unit elements. Elements form two independent
// advantage triangles; pairings across triangles are neutral.
type Element string

const (
	Fire      Element = "fire"
	Water     Element = "water"
	Plant     Element = "plant"
	Lightning Element = "lightning"
	Metal     Element = "metal"
	Wind      Element = "wind"
)

// AllElements returns the six elements in catalog order.
func AllElements() []Element {
	return []Element{Fire, Water, Plant, Lightning, Metal, Wind}
}

// beats maps each element to the single element it has advantage over:
// fire→plant→water→fire and lightning→metal→wind→lightning.
var beats = map[Element]Element{
	Fire:      Plant,
	Plant:     Water,
	Water:     Fire,
	Lightning: Metal,
	Metal:     Wind,
	Wind:      Lightning,
}

// Beats reports whether attacker has elemental advantage over defender.
// The relationship is directional.
func Beats(attacker, defender Element) bool {
	return beats[attacker] == defender
}

// AttackModifier returns +1 when the attacker's element beats the defender's,
// -1 when the defender's element beats the attacker's, and 0 otherwise.
func AttackModifier(attacker, defender Element) int {
	switch {
	case Beats(attacker, defender):
		return 1
	case Beats(defender, attacker):
		return -1
	default:
		return 0
	}
}
