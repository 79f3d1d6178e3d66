// Package search implements the path-search primitives shared by every
// sequencer and the A* optimizer: bounded BFS, exact-length BFS, and A*.
// All three operate over a chip's occupancy map and obey the same
// collision/gate-avoidance rules unless explicitly told to allow short
// circuits.
package search

import (
	"github.com/katalvlaran/latticewire/chip"
	"github.com/katalvlaran/latticewire/latt"
)

// BoundedBFS searches for a path from start to end whose length is at
// most minDistance(start,end)+offset, using breadth-first exploration so
// the first path found is shortest-possible within that bound. Cells
// occupied by a gate other than end are never entered; an edge that
// collides with another wire's actual traversal is forbidden
// regardless of allowShortCircuit, which only governs whether a cell
// merely occupied (but not collided into) by another wire may be
// entered. It returns the interior path (gate endpoints excluded), or
// nil if no path within the offset exists.
func BoundedBFS(c *chip.Chip, start, end latt.Coord, offset int, allowShortCircuit bool) []latt.Coord {
	limit := start.Manhattan(end) + offset

	type item struct {
		coord latt.Coord
		path  []latt.Coord
	}

	queue := []item{{coord: start, path: []latt.Coord{start}}}
	visited := map[latt.Coord]struct{}{start: {}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.coord == end {
			return interior(cur.path)
		}
		if len(cur.path)-1 >= limit {
			continue
		}

		for _, n := range latt.Neighbours(cur.coord, c.Bounds) {
			if _, seen := visited[n]; seen {
				continue
			}
			if c.Occupancy.HasGate(n) && n != end {
				continue
			}
			if occCausesCollision(c, cur.coord, n) {
				continue
			}
			occupied := c.Occupancy.WireCountAt(n) > 0
			if !allowShortCircuit && occupied && !c.Occupancy.HasGate(n) {
				continue
			}
			visited[n] = struct{}{}
			next := make([]latt.Coord, len(cur.path)+1)
			copy(next, cur.path)
			next[len(cur.path)] = n
			queue = append(queue, item{coord: n, path: next})
		}
	}
	return nil
}

// interior strips the first and last element of path (the gate
// endpoints), returning nil (not empty-but-non-nil) for adjacent gates.
func interior(path []latt.Coord) []latt.Coord {
	if len(path) <= 2 {
		return nil
	}
	out := make([]latt.Coord, len(path)-2)
	copy(out, path[1:len(path)-1])
	return out
}
