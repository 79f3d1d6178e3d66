// Package chip aggregates gates, a netlist, wires, and an occupancy map
// into the routable unit spec.md calls a Chip: the top-level object
// sequencers and the optimizer mutate.
package chip

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/latticewire/latt"
	"github.com/katalvlaran/latticewire/wire"
)

// Cost constants from the spec's cost model: total_cost = sum(length) +
// IntersectionCost*intersections + CollisionCost*collisions.
const (
	IntersectionCost = 300
	CollisionCost    = 1_000_000
)

// Pair is an unordered pair of gate IDs forming one netlist entry.
type Pair struct {
	A, B int
}

// ErrUnknownGate is returned when a netlist entry references a gate ID
// absent from the chip's gate map.
var ErrUnknownGate = errors.New("chip: netlist references unknown gate")

// ErrDuplicateGate is returned by New when two gates share a coordinate.
var ErrDuplicateGate = errors.New("chip: duplicate gate coordinate")

// Chip is the routable aggregate: gates, their connecting netlist,
// one Wire per netlist pair, and the shared occupancy map those wires
// claim cells in.
type Chip struct {
	Gates     map[int]latt.Coord
	Netlist   []Pair
	Wires     []*wire.Wire
	Occupancy *latt.Occupancy
	Bounds    latt.Bounds
	// ChipID and NetID identify which print/netlist file pair this chip
	// was built from; they only affect SaveOutput's footer row. New sets
	// the same defaults as the source model (chip_id=0, net_id=1);
	// callers loading multiple chip/net files set these directly.
	ChipID int
	NetID  int
}

// New builds a Chip from a gate map and netlist. The netlist is sorted
// by ascending Manhattan distance between its two gates (stable, so
// equal-distance pairs keep their input order) per spec.md's netlist
// ordering rule. Gate cells and wire endpoints are registered in the
// returned chip's occupancy map.
func New(gates map[int]latt.Coord, netlist []Pair, padding int) (*Chip, error) {
	coords := make([]latt.Coord, 0, len(gates))
	seen := make(map[latt.Coord]int, len(gates))
	for id, c := range gates {
		if other, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: gate %d and %d both at %s", ErrDuplicateGate, other, id, c)
		}
		seen[c] = id
		coords = append(coords, c)
	}

	sorted := make([]Pair, len(netlist))
	copy(sorted, netlist)
	sort.SliceStable(sorted, func(i, j int) bool {
		return pairDistance(gates, sorted[i]) < pairDistance(gates, sorted[j])
	})

	c := &Chip{
		Gates:     gates,
		Netlist:   sorted,
		Occupancy: latt.NewOccupancy(),
		Bounds:    latt.NewBounds(coords, padding),
		ChipID:    0,
		NetID:     1,
	}

	for _, g := range coords {
		c.Occupancy.AddGate(g)
	}

	for i, p := range sorted {
		ga, ok := gates[p.A]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownGate, p.A)
		}
		gb, ok := gates[p.B]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownGate, p.B)
		}
		w := wire.New(i, ga, gb)
		c.Wires = append(c.Wires, w)
		c.Occupancy.AddWireSegment(ga, w)
		c.Occupancy.AddWireSegment(gb, w)
	}

	return c, nil
}

func pairDistance(gates map[int]latt.Coord, p Pair) int {
	return gates[p.A].Manhattan(gates[p.B])
}

// IsFullyConnected reports whether every wire in the chip currently
// forms a complete, unbroken path.
func (c *Chip) IsFullyConnected() bool {
	for _, w := range c.Wires {
		if !w.IsConnected() {
			return false
		}
	}
	return true
}

// ResetWire clears w's routed segments back to its two endpoints,
// removing the corresponding occupancy claims first.
func (c *Chip) ResetWire(w *wire.Wire) {
	for _, seg := range w.Segments {
		if seg != w.Gates[0] && seg != w.Gates[1] {
			c.Occupancy.RemoveWireSegment(seg, w)
		}
	}
	w.Reset()
}

// ResetAllWires resets every wire on the chip.
func (c *Chip) ResetAllWires() {
	for _, w := range c.Wires {
		c.ResetWire(w)
	}
}

// AddEntireWire replaces the wire whose endpoint set matches (a,b) with
// the fully routed segment list path (endpoints inclusive), registering
// every interior cell in occupancy. It is the bulk counterpart to
// repeatedly calling AppendSegment.
func (c *Chip) AddEntireWire(a, b latt.Coord, path []latt.Coord) error {
	for _, w := range c.Wires {
		if (w.Gates[0] == a && w.Gates[1] == b) || (w.Gates[0] == b && w.Gates[1] == a) {
			c.ResetWire(w)
			for _, seg := range path {
				if seg == w.Gates[0] || seg == w.Gates[1] {
					continue
				}
				c.Occupancy.AddWireSegment(seg, w)
			}
			w.Segments = append([]latt.Coord(nil), path...)
			return nil
		}
	}
	return fmt.Errorf("chip: no wire with endpoints %s/%s", a, b)
}

// IntersectionCoords returns every non-gate cell currently occupied by
// more than one wire.
func (c *Chip) IntersectionCoords() []latt.Coord {
	var out []latt.Coord
	seen := make(map[latt.Coord]struct{})
	for _, w := range c.Wires {
		for _, seg := range w.Segments {
			if _, done := seen[seg]; done {
				continue
			}
			seen[seg] = struct{}{}
			if c.Occupancy.HasGate(seg) {
				continue
			}
			if c.Occupancy.WireCountAt(seg) > 1 {
				out = append(out, seg)
			}
		}
	}
	return out
}

// WireIntersectCount returns Σ max(0, |occ_wires[c]|−1) over every
// intersection cell: three wires sharing one cell counts 2, not 1.
func (c *Chip) WireIntersectCount() int {
	total := 0
	for _, coord := range c.IntersectionCoords() {
		if n := c.Occupancy.WireCountAt(coord); n > 1 {
			total += n - 1
		}
	}
	return total
}

// GridCollisionCount returns the number of unordered wire pairs whose
// edge-sets share at least one edge (one per colliding pair, not one
// per colliding edge). Only wires passing through an intersection cell
// can possibly share an edge, so candidates are drawn from there
// rather than scanning every pair of wires on the chip.
func (c *Chip) GridCollisionCount() int {
	candidates := make(map[*wire.Wire]struct{})
	for _, coord := range c.IntersectionCoords() {
		for _, occ := range c.Occupancy.WiresAt(coord) {
			if w, ok := occ.(*wire.Wire); ok {
				candidates[w] = struct{}{}
			}
		}
	}
	wires := make([]*wire.Wire, 0, len(candidates))
	for w := range candidates {
		wires = append(wires, w)
	}

	collisions := 0
	for i := 0; i < len(wires); i++ {
		for j := i + 1; j < len(wires); j++ {
			if wiresShareEdge(wires[i], wires[j]) {
				collisions++
			}
		}
	}
	return collisions
}

func wiresShareEdge(a, b *wire.Wire) bool {
	for i := 1; i < len(a.Segments); i++ {
		if b.HasEdge(a.Segments[i-1], a.Segments[i]) {
			return true
		}
	}
	return false
}

// TotalCost computes the chip-wide cost per spec.md's cost model:
// sum(wire length) + IntersectionCost*intersections + CollisionCost*collisions.
func (c *Chip) TotalCost() int {
	length := 0
	for _, w := range c.Wires {
		length += w.Length()
	}
	return length + IntersectionCost*c.WireIntersectCount() + CollisionCost*c.GridCollisionCount()
}
