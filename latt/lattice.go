package latt

// offsets6 is the precomputed 6-connectivity neighbour table (+-x, +-y,
// +-z), the 3-D analogue of gridgraph's Conn4/Conn8 offset tables.
var offsets6 = [6]Coord{
	{X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0}, {X: 0, Y: -1, Z: 0},
	{X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: -1},
}

// Neighbours returns the up-to-6 lattice-adjacent cells of c that lie
// within b. Order is fixed (+x,-x,+y,-y,+z,-z) so that callers relying
// on deterministic iteration (e.g. bounded BFS tie-breaking) see stable
// results across runs.
func Neighbours(c Coord, b Bounds) []Coord {
	out := make([]Coord, 0, 6)
	for _, d := range offsets6 {
		n := Coord{X: c.X + d.X, Y: c.Y + d.Y, Z: c.Z + d.Z}
		if b.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}
