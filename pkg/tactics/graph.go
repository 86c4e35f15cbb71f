package tactics

// Reachable returns every empty cell reachable from start in at most maxSteps
// orthogonal steps without passing through an occupied cell. The start cell
// itself is never included. Order follows BFS discovery.
//
// This is the single traversal shared by movement and the AI's mobility
// feature, so both always agree on what "reachable" means.
func Reachable(b *Board, start Position, maxSteps int) []Position {
	if maxSteps <= 0 || !start.InBounds() {
		return nil
	}
	occ := b.occupancy()

	var dist [BoardSize][BoardSize]int
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			dist[y][x] = -1
		}
	}
	dist[start.Y][start.X] = 0

	var out []Position
	queue := []Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[cur.Y][cur.X]
		if d == maxSteps {
			continue
		}
		for _, n := range cur.Neighbors() {
			if dist[n.Y][n.X] != -1 || occ[n.Y][n.X] {
				continue
			}
			dist[n.Y][n.X] = d + 1
			out = append(out, n)
			queue = append(queue, n)
		}
	}
	return out
}
