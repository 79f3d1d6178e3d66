// Package optimizer implements the A*-based post-optimizer of spec.md
// §4.6: given an already-routed chip, it rips out small tuples of wires
// (size 1..K) and reroutes them with search.AStar, keeping the result
// only if it improves (or, under simulated annealing, probabilistically
// accepts) total cost.
package optimizer

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/latticewire/chip"
	"github.com/katalvlaran/latticewire/latt"
	"github.com/katalvlaran/latticewire/rng"
	"github.com/katalvlaran/latticewire/search"
	"github.com/katalvlaran/latticewire/wire"
)

// Options configures an optimizer run.
type Options struct {
	// K is the maximum rip-and-reroute tuple size (1..K wires ripped
	// together per attempt).
	K int
	// PermutationLimit is the P(N,k) threshold above which chooseTuple
	// draws RandomIters permutations per round instead of one. Each
	// round still tries exactly one random k-tuple; k-tuples are never
	// enumerated exhaustively.
	PermutationLimit int
	// RandomIters is how many permutations chooseTuple draws per round
	// once PermutationLimit is exceeded; only the last draw is used.
	RandomIters int
	// T0 and Alpha configure the simulated-annealing acceptance schedule
	// (spec.md §5); set T0<=0 to disable SA and accept strict
	// improvements only.
	T0    float64
	Alpha float64
	// Seed seeds the optimizer's deterministic RNG.
	Seed int64
}

// DefaultOptions returns the optimizer's baseline configuration.
func DefaultOptions() Options {
	return Options{
		K:                2,
		PermutationLimit: 50,
		RandomIters:      25,
		T0:               5,
		Alpha:            0.99,
		Seed:             rng.DefaultSeed,
	}
}

// wireSnapshot mirrors sequencer's transactional snapshot shape: a
// saved copy of one wire's routed segment chain.
type wireSnapshot struct {
	segments []latt.Coord
}

func snapshotAll(c *chip.Chip) []wireSnapshot {
	out := make([]wireSnapshot, len(c.Wires))
	for i, w := range c.Wires {
		segs := make([]latt.Coord, len(w.Segments))
		copy(segs, w.Segments)
		out[i] = wireSnapshot{segments: segs}
	}
	return out
}

func restoreAll(c *chip.Chip, snap []wireSnapshot) {
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

// Optimize runs the A*-based post-optimizer for rounds rounds. Each
// round it picks a random k in 1..Options.K, samples one random k-tuple
// of wires, rips the tuple out, reroutes every wire in it with
// search.AStar, and accepts the result per the SA acceptance rule if it
// improves or plausibly doesn't worsen cost too much. A rejected
// attempt, or one in which AStar finds no route for some wire of the
// tuple, is transactionally reverted. c is mutated in place to the best
// solution found across the whole run.
func Optimize(c *chip.Chip, rounds int, opts ...func(*Options)) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	r := rng.FromSeed(o.Seed)

	best := snapshotAll(c)
	bestCost := c.TotalCost()
	temperature := o.T0

	for round := 0; round < rounds; round++ {
		k := 1 + r.Intn(o.K)
		if k > len(c.Wires) {
			k = len(c.Wires)
		}
		tuple := chooseTuple(len(c.Wires), k, o.PermutationLimit, o.RandomIters, r)

		before := snapshotAll(c)
		beforeCost := c.TotalCost()

		routed := ripAndReroute(c, tuple, o)

		afterCost := c.TotalCost()
		accept := routed && afterCost < beforeCost
		if routed && !accept && o.T0 > 0 {
			accept = r.Float64() < math.Pow(2, float64(beforeCost-afterCost)/temperature)
		}

		if !accept {
			restoreAll(c, before)
		} else if afterCost < bestCost {
			bestCost = afterCost
			best = snapshotAll(c)
		}

		temperature = o.T0 * math.Pow(o.Alpha, float64(round+1))
	}

	restoreAll(c, best)
}

// chooseTuple returns k distinct wire indices out of n, drawn uniformly
// via a random permutation prefix. When P(n,k) is at most
// permutationLimit it draws one permutation; above it, it draws
// randomIters permutations and returns the prefix of the last one, so
// either way a single random tuple comes back.
func chooseTuple(n, k, permutationLimit, randomIters int, r *rand.Rand) []int {
	draws := 1
	if fallingFactorial(n, k) > permutationLimit {
		draws = randomIters
	}
	var tuple []int
	for i := 0; i < draws; i++ {
		tuple = rng.Perm(n, r)[:k]
	}
	return tuple
}

func fallingFactorial(n, k int) int {
	if k > n {
		return 0
	}
	result := 1
	for i := 0; i < k; i++ {
		result *= n - i
	}
	return result
}

// ripAndReroute resets every wire in tuple and reroutes each in turn
// with search.AStar. It reports whether every wire got a route; it
// stops at the first wire AStar cannot route.
func ripAndReroute(c *chip.Chip, tuple []int, o Options) bool {
	wires := make([]*wire.Wire, len(tuple))
	for i, idx := range tuple {
		wires[i] = c.Wires[idx]
		c.ResetWire(wires[i])
	}
	for _, w := range wires {
		start, end := w.Gates[0], w.Gates[1]
		path := search.AStar(c, start, end, true)
		if path == nil && start.Manhattan(end) > 1 {
			return false
		}
		for _, seg := range path {
			c.Occupancy.AddWireSegment(seg, w)
		}
		w.AppendSegmentList(path)
	}
	return true
}
