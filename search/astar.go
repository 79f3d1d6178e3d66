package search

import (
	"container/heap"

	"github.com/katalvlaran/latticewire/chip"
	"github.com/katalvlaran/latticewire/latt"
)

// astarNode is one entry in the A* frontier heap: a path prefix along
// with its f-score (g + h + extra). Storing the whole path prefix
// (rather than a parent-pointer arena with backtracking) matches the
// originating algorithm's shortest_cable implementation and keeps the
// heap self-contained.
type astarNode struct {
	coord latt.Coord
	path  []latt.Coord
	cost  int
}

type astarHeap []*astarNode

func (h astarHeap) Len() int            { return len(h) }
func (h astarHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h astarHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *astarHeap) Push(x interface{}) { *h = append(*h, x.(*astarNode)) }
func (h *astarHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// extraCost returns the inadmissible penalty term the heuristic adds
// for routing through an already-occupied, non-gate cell: IntersectionCost
// if any other wire already claims the cell, plus CollisionCost again if
// the specific edge into it collides with an existing wire segment
// (AStar never expands a colliding edge, so within AStar that second
// term is never added). The goal cell itself never incurs a penalty,
// since every wire's own endpoint is allowed to be shared.
func extraCost(c *chip.Chip, parent, cur, goal latt.Coord) int {
	if cur == goal {
		return 0
	}
	extra := 0
	if c.Occupancy.WireCountAt(cur) > 0 {
		extra += chip.IntersectionCost
		if c.Occupancy.EdgeCausesCollision(parent, cur, nil) {
			extra += chip.CollisionCost
		}
	}
	return extra
}

func heuristic(c *chip.Chip, path []latt.Coord, goal latt.Coord) int {
	g := len(path) - 1
	h := path[len(path)-1].Manhattan(goal)
	extra := 0
	if len(path) >= 2 {
		extra = extraCost(c, path[len(path)-2], path[len(path)-1], goal)
	}
	return g + h + extra
}

// DefaultFrontierCap bounds the number of A* pops before giving up,
// per spec.md's optional frontier-cap work bound. A* has no length
// limit otherwise, so the cap is what bounds the work on a large chip.
const DefaultFrontierCap = 100_000

// AStar searches for a low-cost path from start to end using an
// intentionally inadmissible heuristic (f = g + manhattan(h) + extra,
// where extra penalizes -- but does not forbid -- intersections). This
// biases the search away from already-occupied cells without making
// them impassable. An edge that another wire already traverses (a
// collision) is never expanded, so when every route needs such an
// edge, AStar returns nil rather than a colliding path. If
// allowShortCircuit is true, occupied non-gate cells may still be
// entered; AStarSeq, IRRA and the optimizer all call it that way. The
// search gives up and returns nil after DefaultFrontierCap pops.
// Returns the interior path, or nil.
func AStar(c *chip.Chip, start, end latt.Coord, allowShortCircuit bool) []latt.Coord {
	h := &astarHeap{}
	heap.Init(h)

	startPath := []latt.Coord{start}
	heap.Push(h, &astarNode{coord: start, path: startPath, cost: heuristic(c, startPath, end)})

	visited := map[latt.Coord]struct{}{start: {}}

	pops := 0
	for h.Len() > 0 {
		if pops >= DefaultFrontierCap {
			return nil
		}
		pops++
		cur := heap.Pop(h).(*astarNode)

		if cur.coord == end {
			return interior(cur.path)
		}

		inPath := make(map[latt.Coord]struct{}, len(cur.path))
		for _, p := range cur.path {
			inPath[p] = struct{}{}
		}

		for _, n := range latt.Neighbours(cur.coord, c.Bounds) {
			if _, seen := visited[n]; seen {
				continue
			}
			if _, inOwn := inPath[n]; inOwn {
				continue
			}
			if c.Occupancy.HasGate(n) && n != end {
				continue
			}
			if occCausesCollision(c, cur.coord, n) {
				continue
			}
			occupied := c.Occupancy.WireCountAt(n) > 0 && !c.Occupancy.HasGate(n)
			if !allowShortCircuit && occupied {
				continue
			}

			nextPath := make([]latt.Coord, len(cur.path)+1)
			copy(nextPath, cur.path)
			nextPath[len(cur.path)] = n

			visited[n] = struct{}{}
			heap.Push(h, &astarNode{coord: n, path: nextPath, cost: heuristic(c, nextPath, end)})
		}
	}
	return nil
}
