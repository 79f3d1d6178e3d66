package sequencer

import (
	"github.com/katalvlaran/latticewire/chip"
	"github.com/katalvlaran/latticewire/rng"
	"github.com/katalvlaran/latticewire/search"
)

// PseudoRandom routes each wire, in a randomized wire order, by trying
// a shuffled list of candidate lengths between minDistance and
// minDistance+MaxOffset (stepping by 2, since an odd-length deviation
// from the direct distance can never reconnect two lattice-adjacent
// gates), taking the first length for which ExactLengthBFS finds a
// valid, collision/gate-avoiding path. Ported from the original
// algorithm's "generate and shuffle possible lengths" strategy.
func PseudoRandom(c *chip.Chip, opts ...Option) {
	o := newOptions(opts...)
	r := rng.FromSeed(o.Seed)

	order := wireOrder(c, r)
	for _, idx := range order {
		w := c.Wires[idx]
		if w.IsConnected() {
			continue
		}
		start, end := w.Gates[0], w.Gates[1]
		minLen := start.Manhattan(end)
		lengths := candidateLengths(minLen, o.MaxOffset)
		rng.ShuffleInts(lengths, r)

		for _, length := range lengths {
			path := search.ExactLengthBFS(c, start, end, length, false)
			if path == nil {
				continue
			}
			for _, seg := range path {
				c.Occupancy.AddWireSegment(seg, w)
			}
			w.AppendSegmentList(path)
			break
		}
	}

	if o.AllowShortCircuit {
		forceConnectRemaining(c)
	}
}

// candidateLengths returns [minLen, minLen+2, minLen+4, ...] up to
// minLen+maxOffset: every length with the same parity as minLen, the
// only lengths a lattice path between the two gates can have.
func candidateLengths(minLen, maxOffset int) []int {
	var lengths []int
	for l := minLen; l <= minLen+maxOffset; l += 2 {
		if l < 0 {
			continue
		}
		lengths = append(lengths, l)
	}
	return lengths
}
