package latt

// Occupant is any value that can claim a lattice cell: the Gate sentinel,
// or a *wire handle (see package wire). It replaces the "GATE" string
// sentinel used by the originating Python model with a typed marker, per
// the no-stringly-typed-sentinels design note this module follows. It is
// deliberately the empty interface (rather than one carrying an
// unexported marker method) so that types outside this package -- like
// package wire's *Wire -- can satisfy it without an import cycle or
// cross-package unexported-method trickery.
type Occupant interface{}

// Gate is the sentinel Occupant placed at gate cells. There is exactly
// one Gate value; it carries no data because every gate cell is
// indistinguishable from the occupancy model's point of view.
type Gate struct{}

// Occupancy tracks, for every claimed cell, the set of occupants there
// (occAll, used for gate/collision checks) and the set of wires there
// (occWires, used for collision bookkeeping and removal). Both maps are
// lazily populated; an absent key means the cell is empty.
type Occupancy struct {
	occAll   map[Coord]map[Occupant]struct{}
	occWires map[Coord]map[WireOccupant]struct{}
}

// WireOccupant is implemented by package wire's *Wire: any occupant
// that can report its own identity (used to distinguish distinct wires
// sharing a cell) and answer whether it actually traverses a given
// edge (used by EdgeCausesCollision to tell a genuine edge collision
// apart from two wires merely sharing both endpoint cells).
type WireOccupant interface {
	WireID() int
	HasEdge(a, b Coord) bool
}

// NewOccupancy returns an empty occupancy map.
func NewOccupancy() *Occupancy {
	return &Occupancy{
		occAll:   make(map[Coord]map[Occupant]struct{}),
		occWires: make(map[Coord]map[WireOccupant]struct{}),
	}
}

// AddGate registers the Gate sentinel at c.
func (o *Occupancy) AddGate(c Coord) {
	o.addAll(c, Gate{})
}

// AddWireSegment registers w as occupying c.
func (o *Occupancy) AddWireSegment(c Coord, w WireOccupant) {
	o.addAll(c, w)
	set, ok := o.occWires[c]
	if !ok {
		set = make(map[WireOccupant]struct{})
		o.occWires[c] = set
	}
	set[w] = struct{}{}
}

// RemoveWireSegment unregisters w from c. Removing a wire from a gate
// cell is a deliberate no-op: gate cells always keep their Gate
// occupant and are never fully vacated by wire removal, matching the
// original occupancy model's gate-cell semantics.
func (o *Occupancy) RemoveWireSegment(c Coord, w WireOccupant) {
	if o.HasGate(c) {
		return
	}
	if set, ok := o.occWires[c]; ok {
		delete(set, w)
		if len(set) == 0 {
			delete(o.occWires, c)
		}
	}
	if all, ok := o.occAll[c]; ok {
		delete(all, w)
		if len(all) == 0 {
			delete(o.occAll, c)
		}
	}
}

func (o *Occupancy) addAll(c Coord, occ Occupant) {
	set, ok := o.occAll[c]
	if !ok {
		set = make(map[Occupant]struct{})
		o.occAll[c] = set
	}
	set[occ] = struct{}{}
}

// OccupantsAt returns the occupants of c. The returned slice is a fresh
// copy; mutating it has no effect on the occupancy map.
func (o *Occupancy) OccupantsAt(c Coord) []Occupant {
	set, ok := o.occAll[c]
	if !ok {
		return nil
	}
	out := make([]Occupant, 0, len(set))
	for occ := range set {
		out = append(out, occ)
	}
	return out
}

// HasGate reports whether c is occupied by the Gate sentinel.
func (o *Occupancy) HasGate(c Coord) bool {
	set, ok := o.occAll[c]
	if !ok {
		return false
	}
	_, has := set[Gate{}]
	return has
}

// WiresAt returns the wires occupying c, excluding the Gate sentinel.
func (o *Occupancy) WiresAt(c Coord) []WireOccupant {
	set, ok := o.occWires[c]
	if !ok {
		return nil
	}
	out := make([]WireOccupant, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	return out
}

// WireCountAt returns the number of distinct wires occupying c,
// excluding the Gate sentinel. A count > 1 at a non-gate cell is an
// intersection.
func (o *Occupancy) WireCountAt(c Coord) int {
	return len(o.occWires[c])
}

// EdgeCausesCollision reports whether the edge (from,to) is already
// traversed by some other wire. Endpoint co-occupancy alone is not
// enough: two wires can both occupy cells from and to without either
// one actually stepping between them (e.g. two detours that merely
// pass through the same two cells non-consecutively), so this computes
// the intersection of occWires[from] and occWires[to] and, for each
// shared wire other than self, scans its real segment chain for
// {from,to} as a consecutive pair via HasEdge.
func (o *Occupancy) EdgeCausesCollision(from, to Coord, self WireOccupant) bool {
	fromWires := o.occWires[from]
	toWires := o.occWires[to]
	if len(fromWires) == 0 || len(toWires) == 0 {
		return false
	}
	for w := range fromWires {
		if w == self {
			continue
		}
		if _, ok := toWires[w]; !ok {
			continue
		}
		if w.HasEdge(from, to) {
			return true
		}
	}
	return false
}
