package sequencer

import (
	"github.com/katalvlaran/latticewire/chip"
	"github.com/katalvlaran/latticewire/latt"
	"github.com/katalvlaran/latticewire/search"
)

// Greedy routes every unconnected wire, in netlist order, by repeatedly
// widening a shared offset: at each even offset from 0 up to
// Options.MaxOffset, every still-unconnected wire attempts BoundedBFS at
// that offset before the offset widens further. This mirrors the
// originating algorithm's offset-escalating sweep: cheap routes are
// attempted for every wire before any wire is allowed an expensive one.
// If AllowShortCircuit is set, any wire still unconnected after the
// sweep gets one final unbounded, occupied-cell-tolerant attempt.
func Greedy(c *chip.Chip, opts ...Option) {
	o := newOptions(opts...)

	for offset := 0; offset < o.MaxOffset; offset += 2 {
		if c.IsFullyConnected() {
			return
		}
		routeOnePass(c, search.BoundedBFS, offset, false)
	}

	if o.AllowShortCircuit {
		forceConnectRemaining(c)
	}
}

func routeOnePass(c *chip.Chip, router func(*chip.Chip, latt.Coord, latt.Coord, int, bool) []latt.Coord, offset int, allowShortCircuit bool) {
	for _, w := range c.Wires {
		if w.IsConnected() {
			continue
		}
		start, end := w.Gates[0], w.Gates[1]
		path := router(c, start, end, offset, allowShortCircuit)
		if path == nil {
			continue
		}
		for _, seg := range path {
			c.Occupancy.AddWireSegment(seg, w)
		}
		w.AppendSegmentList(path)
	}
}

func forceConnectRemaining(c *chip.Chip) {
	for _, w := range c.Wires {
		if w.IsConnected() {
			continue
		}
		start, end := w.Gates[0], w.Gates[1]
		path := search.BoundedBFS(c, start, end, 1000, true)
		if path == nil {
			continue
		}
		for _, seg := range path {
			c.Occupancy.AddWireSegment(seg, w)
		}
		w.AppendSegmentList(path)
	}
}
