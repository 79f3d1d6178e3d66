// Package wire implements the Wire type: an ordered, 6-connected chain
// of lattice segments between two fixed gate endpoints.
package wire

import (
	"errors"

	"github.com/katalvlaran/latticewire/latt"
)

// ErrNotAdjacent describes a proposed segment that is not
// lattice-adjacent to either growing frontier of the wire. AppendSegment
// does not return it: such a segment is ignored without an error.
var ErrNotAdjacent = errors.New("wire: segment is not adjacent to either endpoint")

// Wire is an ordered chain of lattice coordinates connecting two gates.
// Segments[0] and Segments[len-1] are always the gate endpoints; no
// mutator in this file moves them, and AppendSegment only inserts a
// cell adjacent to a growing frontier. The chain is connected (every
// consecutive pair lattice-adjacent) only once routing has closed the
// gap between the gates; repeated cells are not rejected (see
// IntersectsItself).
type Wire struct {
	id       int
	Gates    [2]latt.Coord
	Segments []latt.Coord
}

// New returns a fresh, disconnected Wire between a and b: its segment
// list initially holds only the two gate endpoints.
func New(id int, a, b latt.Coord) *Wire {
	return &Wire{
		id:       id,
		Gates:    [2]latt.Coord{a, b},
		Segments: []latt.Coord{a, b},
	}
}

// WireID implements latt.WireOccupant so *Wire can be stored directly in
// an Occupancy map.
func (w *Wire) WireID() int { return w.id }

// HasEdge reports whether the unordered pair {a,b} appears as a
// consecutive pair of the wire's current segment chain, in either
// direction. It completes latt.WireOccupant, letting Occupancy verify
// a genuine edge collision (the wire actually traverses a,b) rather
// than merely occupying both cells.
func (w *Wire) HasEdge(a, b latt.Coord) bool {
	for i := 1; i < len(w.Segments); i++ {
		if (w.Segments[i-1] == a && w.Segments[i] == b) || (w.Segments[i-1] == b && w.Segments[i] == a) {
			return true
		}
	}
	return false
}

// IsConnected reports whether the wire's segment chain is currently a
// single unbroken path between its two gates, i.e. whether routing has
// produced (or still holds) a complete path. A freshly Reset wire with
// only its two endpoints is considered connected only if those
// endpoints are themselves lattice-adjacent; otherwise a path still
// needs routing between them.
func (w *Wire) IsConnected() bool {
	if len(w.Segments) < 2 {
		return false
	}
	for i := 1; i < len(w.Segments); i++ {
		if !adjacent(w.Segments[i-1], w.Segments[i]) {
			return false
		}
	}
	return true
}

// AppendSegment inserts c next to whichever growing frontier it
// touches: if c is a 6-neighbour of Segments[len-2] (the cell just
// inside the tail gate), it is inserted just before the last element;
// else if c is a 6-neighbour of Segments[1] (the cell just inside the
// head gate), inserted just after the first element. Checking the
// frontier rather than the fixed gate coordinates is what lets the
// chain keep growing inward from both ends as AppendSegmentList works
// through a routed path. A proposal equal to either gate endpoint is
// ignored, matching the source model's append_wire_segment; a segment
// adjacent to neither frontier cell is also ignored (no error, no
// mutation).
func (w *Wire) AppendSegment(c latt.Coord) {
	if c == w.Gates[0] || c == w.Gates[1] {
		return
	}
	n := len(w.Segments)
	if n < 2 {
		return
	}
	switch {
	case adjacent(c, w.Segments[n-2]):
		w.Segments = append(w.Segments[:n-1], append([]latt.Coord{c}, w.Segments[n-1:]...)...)
	case adjacent(c, w.Segments[1]):
		w.Segments = append(w.Segments[:1], append([]latt.Coord{c}, w.Segments[1:]...)...)
	default:
		// adjacent to neither growing frontier; ignored by design
	}
}

// AppendSegmentList appends each coordinate of path in order via
// AppendSegment. path is typically a routed interior path returned by a
// search primitive (gate endpoints excluded).
func (w *Wire) AppendSegmentList(path []latt.Coord) {
	for _, c := range path {
		w.AppendSegment(c)
	}
}

// Reset discards all routed interior segments, returning the wire to
// its freshly-constructed state of holding only its two gate endpoints.
func (w *Wire) Reset() {
	w.Segments = []latt.Coord{w.Gates[0], w.Gates[1]}
}

// Length returns the number of edges in the wire's current segment
// chain (len(Segments)-1), i.e. its contribution to total wire length.
func (w *Wire) Length() int {
	if len(w.Segments) == 0 {
		return 0
	}
	return len(w.Segments) - 1
}

// IntersectsItself reports whether the wire's own segment chain visits
// any cell more than once. Supplemented from the source model's
// intersects_itself, dropped by the distilled spec but useful as a
// sanity check after rip-and-reroute operations.
func (w *Wire) IntersectsItself() bool {
	seen := make(map[latt.Coord]struct{}, len(w.Segments))
	for _, c := range w.Segments {
		if _, ok := seen[c]; ok {
			return true
		}
		seen[c] = struct{}{}
	}
	return false
}

func adjacent(a, b latt.Coord) bool {
	return a.Manhattan(b) == 1
}
