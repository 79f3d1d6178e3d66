package sequencer

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/latticewire/chip"
	"github.com/katalvlaran/latticewire/latt"
	"github.com/katalvlaran/latticewire/rng"
	"github.com/katalvlaran/latticewire/search"
	"github.com/katalvlaran/latticewire/wire"
)

// InputMode selects how IRRA produces its starting solution.
type InputMode int

const (
	// InputPseudoRandom seeds IRRA with a PseudoRandom run.
	InputPseudoRandom InputMode = iota
	// InputAStar seeds IRRA with an AStarSeq run.
	InputAStar
)

// RoutingMode selects how IRRA reroutes a wire during its improvement
// loop.
type RoutingMode int

const (
	// RoutingBFS reroutes via collision-avoiding BoundedBFS and commits
	// any route found, even one that raises total cost.
	RoutingBFS RoutingMode = iota
	// RoutingAStar reroutes via AStar, accepting only strict
	// improvements.
	RoutingAStar
	// RoutingSimulatedAnnealing reroutes via BoundedBFS and accepts a
	// worse resulting cost with the standard SA probability, letting the
	// search escape local minima across iterations.
	RoutingSimulatedAnnealing
)

// IRRAOptions extends Options with the parameters specific to Iterative
// Random Rerouting: input seeding mode, reroute mode, iteration count,
// and the simulated-annealing cooling schedule (spec.md §5: accept iff
// c' < c, else with probability 2^((c-c')/T); T_{k+1} = T0 * alpha^k).
type IRRAOptions struct {
	Options
	Input      InputMode
	Routing    RoutingMode
	Iterations int
	T0         float64
	Alpha      float64
}

// DefaultIRRAOptions returns IRRA's baseline configuration.
func DefaultIRRAOptions() IRRAOptions {
	return IRRAOptions{
		Options:    DefaultOptions(),
		Input:      InputPseudoRandom,
		Routing:    RoutingSimulatedAnnealing,
		Iterations: 50,
		T0:         5,
		Alpha:      0.99,
	}
}

// wireSnapshot is a deep copy of one wire's routed segment chain, used
// to save and restore candidate solutions during IRRA's improvement
// loop. The optimizer package keeps its own copy of this type.
type wireSnapshot struct {
	segments []latt.Coord
}

func snapshotSegments(c *chip.Chip) []wireSnapshot {
	out := make([]wireSnapshot, len(c.Wires))
	for i, w := range c.Wires {
		segs := make([]latt.Coord, len(w.Segments))
		copy(segs, w.Segments)
		out[i] = wireSnapshot{segments: segs}
	}
	return out
}

// restoreSegments rewrites every wire's occupancy claims and segment
// chain to match a prior snapshot taken by snapshotSegments.
func restoreSegments(c *chip.Chip, snap []wireSnapshot) {
	for i, w := range c.Wires {
		c.ResetWire(w)
		target := snap[i].segments
		w.Segments = append([]latt.Coord(nil), target...)
		for _, seg := range target {
			if seg == w.Gates[0] || seg == w.Gates[1] {
				continue
			}
			c.Occupancy.AddWireSegment(seg, w)
		}
	}
}

// acceptanceProbability implements spec.md §5's simulated-annealing
// acceptance rule: 2^((old-new)/T).
func acceptanceProbability(oldCost, newCost int, temperature float64) float64 {
	if temperature <= 0 {
		return 0
	}
	return math.Pow(2, float64(oldCost-newCost)/temperature)
}

// IRRA runs the Iterative Random Rerouting Algorithm: it builds an
// initial solution, then repeatedly tries to fix intersecting wires by
// ripping and rerouting them one at a time, accepting or rejecting each
// reroute attempt per the configured RoutingMode, and keeps the
// best-cost solution seen across Iterations rounds. On return, c holds
// the best solution found.
func IRRA(c *chip.Chip, opts IRRAOptions) {
	r := rng.FromSeed(opts.Seed)

	switch opts.Input {
	case InputAStar:
		AStarSeq(c)
	default:
		PseudoRandom(c, WithMaxOffset(opts.MaxOffset), WithShortCircuit(true), WithSeed(opts.Seed))
	}

	best := snapshotSegments(c)
	bestCost := c.TotalCost()

	temperature := opts.T0
	for k := 0; k < opts.Iterations; k++ {
		intersecting := intersectingWireSet(c)
		if len(intersecting) == 0 {
			break
		}

		for _, w := range intersecting {
			rerouteWire(c, w, opts, r, temperature)
		}

		cost := c.TotalCost()
		if cost < bestCost {
			bestCost = cost
			best = snapshotSegments(c)
		}

		temperature = opts.T0 * math.Pow(opts.Alpha, float64(k+1))
	}

	restoreSegments(c, best)
}

// intersectingWireSet returns every wire that currently occupies at
// least one cell also claimed by another wire.
func intersectingWireSet(c *chip.Chip) []*wire.Wire {
	bad := make(map[*wire.Wire]struct{})
	for _, cell := range c.IntersectionCoords() {
		for _, w := range c.Occupancy.WiresAt(cell) {
			if ww, ok := w.(*wire.Wire); ok {
				bad[ww] = struct{}{}
			}
		}
	}
	out := make([]*wire.Wire, 0, len(bad))
	for _, w := range c.Wires {
		if _, ok := bad[w]; ok {
			out = append(out, w)
		}
	}
	return out
}

// rerouteWire rips w out of the chip and attempts a fresh route per
// opts.Routing, restoring the original route on rejection or failure.
// RoutingAStar (step 3(d)) attempts A* once and accepts iff it
// strictly reduces intersections, or ties intersections and strictly
// reduces cost. RoutingBFS and RoutingSimulatedAnnealing (step 3(c))
// share a two-phase bounded-BFS attempt: when SA is active and the
// current temperature is positive, a short-circuit-allowed attempt is
// tried first and committed if the SA acceptance rule accepts it;
// otherwise (or when that attempt fails or is rejected) a plain,
// collision-avoiding attempt is tried and committed unconditionally if
// found. Returns whether the reroute was accepted.
func rerouteWire(c *chip.Chip, w *wire.Wire, opts IRRAOptions, r *rand.Rand, temperature float64) bool {
	originalSegments := append([]latt.Coord(nil), w.Segments...)
	start, end := w.Gates[0], w.Gates[1]

	if opts.Routing == RoutingAStar {
		beforeIntersections := c.WireIntersectCount()
		before := c.TotalCost()

		c.ResetWire(w)
		path := search.AStar(c, start, end, true)
		if path == nil {
			restoreWireSegments(c, w, originalSegments)
			return false
		}
		commitPath(c, w, path)

		afterIntersections := c.WireIntersectCount()
		after := c.TotalCost()
		accept := afterIntersections < beforeIntersections ||
			(afterIntersections == beforeIntersections && after < before)
		if accept {
			return true
		}
		c.ResetWire(w)
		restoreWireSegments(c, w, originalSegments)
		return false
	}

	before := c.TotalCost()
	c.ResetWire(w)

	if opts.Routing == RoutingSimulatedAnnealing && temperature > 0 {
		if path := search.BoundedBFS(c, start, end, opts.MaxOffset, true); path != nil {
			commitPath(c, w, path)
			after := c.TotalCost()
			if r.Float64() < acceptanceProbability(before, after, temperature) {
				return true
			}
			c.ResetWire(w)
		}
	}

	path := search.BoundedBFS(c, start, end, opts.MaxOffset, false)
	if path == nil {
		restoreWireSegments(c, w, originalSegments)
		return false
	}
	commitPath(c, w, path)
	return true
}

func commitPath(c *chip.Chip, w *wire.Wire, path []latt.Coord) {
	for _, seg := range path {
		c.Occupancy.AddWireSegment(seg, w)
	}
	w.AppendSegmentList(path)
}

func restoreWireSegments(c *chip.Chip, w *wire.Wire, segments []latt.Coord) {
	w.Segments = append([]latt.Coord(nil), segments...)
	for _, seg := range segments {
		if seg == w.Gates[0] || seg == w.Gates[1] {
			continue
		}
		c.Occupancy.AddWireSegment(seg, w)
	}
}
