package tactics

// Rect is an inclusive, axis-aligned rectangle of cells.
type Rect struct {
	Min Position
	Max Position
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// SpawnRect returns the bounding box of corner and anchor, clipped to the board.
func SpawnRect(corner, anchor Position) Rect {
	r := Rect{
		Min: Pos(min(corner.X, anchor.X), min(corner.Y, anchor.Y)),
		Max: Pos(max(corner.X, anchor.X), max(corner.Y, anchor.Y)),
	}
	r.Min.X, r.Min.Y = max(r.Min.X, 0), max(r.Min.Y, 0)
	r.Max.X, r.Max.Y = min(r.Max.X, BoardSize-1), min(r.Max.Y, BoardSize-1)
	return r
}

// SpawnZone returns the empty cells in the rectangle spanned by the player's
// home corner and anchor, or nil if any enemy unit stands inside it.
func SpawnZone(gs *GameState, player PlayerID, anchor Position) []Position {
	ps := gs.Player(player)
	if ps == nil {
		return nil
	}
	r := SpawnRect(ps.StartCorner, anchor)
	for _, u := range gs.Board.Units {
		if u.Owner != player && r.Contains(u.Position) {
			return nil
		}
	}
	occ := gs.Board.occupancy()
	var zone []Position
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			if !occ[y][x] {
				zone = append(zone, Pos(x, y))
			}
		}
	}
	return zone
}

// SpawnPositions returns the deduplicated union of every unblocked anchor's
// zone, in row-major order.
func SpawnPositions(gs *GameState, player PlayerID) []Position {
	var mask [BoardSize][BoardSize]bool
	for _, u := range gs.Board.Units {
		if u.Owner != player {
			continue
		}
		for _, p := range SpawnZone(gs, player, u.Position) {
			mask[p.Y][p.X] = true
		}
	}
	var out []Position
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if mask[y][x] {
				out = append(out, Pos(x, y))
			}
		}
	}
	return out
}

// IsSpawnPosition reports whether the player may place a unit at p.
func IsSpawnPosition(gs *GameState, player PlayerID, p Position) bool {
	for _, s := range SpawnPositions(gs, player) {
		if s == p {
			return true
		}
	}
	return false
}
