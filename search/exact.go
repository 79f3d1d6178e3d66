package search

import (
	"github.com/katalvlaran/latticewire/chip"
	"github.com/katalvlaran/latticewire/latt"
)

// ExactLengthBFS searches for a path from start to end of exactly
// exactLength edges, exploring breadth-first but pruning only on depth
// (not on shortest-so-far), since a longer, deliberately detouring path
// is exactly the point of the pseudo-random sequencer strategies that
// call this primitive. Visited state is keyed on (cell, distance), not
// just cell, so the same cell may be reached again at a different depth
// -- this is what lets routes longer than the direct distance be found
// at all, since a cell-only visited set would reach every cell only at
// its shortest distance. (On the lattice every start-to-end path has
// the same parity as the direct distance, so an exactLength of the
// other parity finds nothing.) A foreign gate cell and a genuine edge collision
// are forbidden unconditionally; allowShortCircuit governs only
// whether a cell merely occupied by another wire (without colliding)
// may still be entered. Returns the interior path, or nil if none
// exists.
func ExactLengthBFS(c *chip.Chip, start, end latt.Coord, exactLength int, allowShortCircuit bool) []latt.Coord {
	type item struct {
		coord latt.Coord
		path  []latt.Coord
	}
	type visitKey struct {
		coord latt.Coord
		dist  int
	}

	queue := []item{{coord: start, path: []latt.Coord{start}}}
	visited := map[visitKey]struct{}{{coord: start, dist: 0}: {}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		dist := len(cur.path) - 1

		if cur.coord == end && dist == exactLength {
			return interior(cur.path)
		}
		if cur.coord == end || dist >= exactLength {
			continue
		}

		inPath := make(map[latt.Coord]struct{}, len(cur.path))
		for _, p := range cur.path {
			inPath[p] = struct{}{}
		}

		for _, n := range latt.Neighbours(cur.coord, c.Bounds) {
			if _, inOwn := inPath[n]; inOwn {
				continue
			}
			if c.Occupancy.HasGate(n) && n != end {
				continue
			}
			if occCausesCollision(c, cur.coord, n) {
				continue
			}
			if !allowShortCircuit && c.Occupancy.WireCountAt(n) > 0 && !c.Occupancy.HasGate(n) {
				continue
			}

			key := visitKey{coord: n, dist: dist + 1}
			if _, seen := visited[key]; seen {
				continue
			}
			visited[key] = struct{}{}

			next := make([]latt.Coord, len(cur.path)+1)
			copy(next, cur.path)
			next[len(cur.path)] = n
			queue = append(queue, item{coord: n, path: next})
		}
	}
	return nil
}

func occCausesCollision(c *chip.Chip, from, to latt.Coord) bool {
	return c.Occupancy.EdgeCausesCollision(from, to, nil)
}
