package tactics

import "fmt"

const (
	// BoardSize is the width and height of the square grid.
	BoardSize = 10
	// CellDepth is the number of resource layers in a fresh cell.
	CellDepth = 5
)

// Position is a grid coordinate, 0..BoardSize-1 on each axis.
type Position struct {
	X int
	Y int
}

// Pos is shorthand for Position{x, y}.
func Pos(x, y int) Position { return Position{X: x, Y: y} }

// InBounds reports whether p lies on the board.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// Neighbors returns the in-bounds orthogonal neighbors of p.
func (p Position) Neighbors() []Position {
	out := make([]Position, 0, 4)
	for _, d := range [4]Position{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		n := Position{p.X + d.X, p.Y + d.Y}
		if n.InBounds() {
			out = append(out, n)
		}
	}
	return out
}

// Adjacent reports whether q is orthogonally adjacent to p.
func (p Position) Adjacent(q Position) bool {
	return p.Manhattan(q) == 1
}

// Manhattan returns the taxicab distance between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell is one grid square. ResourceLayers + MinedDepth always equals CellDepth.
type Cell struct {
	Position       Position
	ResourceLayers int
	MinedDepth     int
}

// Depleted reports whether every layer of the cell has been extracted.
func (c Cell) Depleted() bool { return c.ResourceLayers == 0 }

// Board holds the cell grid (indexed [y][x]) and every deployed unit.
type Board struct {
	Cells [BoardSize][BoardSize]Cell
	Units []Unit
}

// NewBoard returns a board of fresh cells with no units.
func NewBoard() Board {
	var b Board
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			b.Cells[y][x] = Cell{Position: Pos(x, y), ResourceLayers: CellDepth}
		}
	}
	return b
}

// CellAt returns a pointer to the cell at p, or nil if p is off the board.
func (b *Board) CellAt(p Position) *Cell {
	if !p.InBounds() {
		return nil
	}
	return &b.Cells[p.Y][p.X]
}

// UnitAt returns the unit at p, or nil if the cell is empty.
func (b *Board) UnitAt(p Position) *Unit {
	for i := range b.Units {
		if b.Units[i].Position == p {
			return &b.Units[i]
		}
	}
	return nil
}

// UnitByID returns the unit with the given id, or nil.
func (b *Board) UnitByID(id string) *Unit {
	for i := range b.Units {
		if b.Units[i].ID == id {
			return &b.Units[i]
		}
	}
	return nil
}

// IsOccupied reports whether any unit stands on p.
func (b *Board) IsOccupied(p Position) bool {
	return b.UnitAt(p) != nil
}

// UnitsOf returns copies of all units owned by the player.
func (b *Board) UnitsOf(owner PlayerID) []Unit {
	var units []Unit
	for _, u := range b.Units {
		if u.Owner == owner {
			units = append(units, u)
		}
	}
	return units
}

// UnitCount returns the number of deployed units owned by the player.
func (b *Board) UnitCount(owner PlayerID) int {
	count := 0
	for _, u := range b.Units {
		if u.Owner == owner {
			count++
		}
	}
	return count
}

// occupancy returns a grid marking occupied cells.
func (b *Board) occupancy() [BoardSize][BoardSize]bool {
	var occ [BoardSize][BoardSize]bool
	for _, u := range b.Units {
		occ[u.Position.Y][u.Position.X] = true
	}
	return occ
}

func (b *Board) removeUnit(id string) {
	for i := range b.Units {
		if b.Units[i].ID == id {
			b.Units = append(b.Units[:i], b.Units[i+1:]...)
			return
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
