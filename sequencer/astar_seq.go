package sequencer

import (
	"github.com/katalvlaran/latticewire/chip"
	"github.com/katalvlaran/latticewire/search"
)

// AStarSeq routes every wire, in netlist order, one shot each: A*'s
// heuristic already penalizes (rather than forbids) intersections and
// collisions, so unlike Greedy there is no offset sweep to escalate --
// a single A* run per wire with short circuits allowed either connects
// it or it doesn't. opts is accepted only to keep the same call shape
// as the other sequencers (e.g. IRRA's input-seeding stage); AStarSeq
// has no tunable parameters of its own.
func AStarSeq(c *chip.Chip, _ ...Option) {
	for _, w := range c.Wires {
		if w.IsConnected() {
			continue
		}
		start, end := w.Gates[0], w.Gates[1]
		path := search.AStar(c, start, end, true)
		if path == nil {
			continue
		}
		for _, seg := range path {
			c.Occupancy.AddWireSegment(seg, w)
		}
		w.AppendSegmentList(path)
	}
}
