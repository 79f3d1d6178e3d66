package sequencer

import (
	"math/rand"

	"github.com/katalvlaran/latticewire/chip"
	"github.com/katalvlaran/latticewire/rng"
	"github.com/katalvlaran/latticewire/search"
)

// GreedyRandom behaves like Greedy but reshuffles the wire processing
// order on every offset pass (it always sets Options.Shuffle), so the
// order in which wires claim cells differs across seeds while remaining
// bit-reproducible for a fixed seed. Neighbour expansion inside each
// BoundedBFS call is not randomized: it uses the fixed order of
// latt.Neighbours, as in Greedy.
func GreedyRandom(c *chip.Chip, opts ...Option) {
	o := newOptions(opts...)
	o.Shuffle = true
	r := rng.FromSeed(o.Seed)

	for offset := 0; offset < o.MaxOffset; offset += 2 {
		if c.IsFullyConnected() {
			return
		}
		order := wireOrder(c, r)
		routeOrderedPass(c, order, offset)
	}

	if o.AllowShortCircuit {
		forceConnectRemaining(c)
	}
}

func wireOrder(c *chip.Chip, r *rand.Rand) []int {
	perm := rng.Perm(len(c.Wires), r)
	return perm
}

func routeOrderedPass(c *chip.Chip, order []int, offset int) {
	for _, idx := range order {
		w := c.Wires[idx]
		if w.IsConnected() {
			continue
		}
		start, end := w.Gates[0], w.Gates[1]
		path := search.BoundedBFS(c, start, end, offset, false)
		if path == nil {
			continue
		}
		for _, seg := range path {
			c.Occupancy.AddWireSegment(seg, w)
		}
		w.AppendSegmentList(path)
	}
}
