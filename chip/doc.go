// Package chip -- the routable aggregate of gates, netlist, wires, and
// occupancy.
//
// What:
//   Chip ties together a gate coordinate map, a Manhattan-distance-sorted
//   netlist, one Wire per netlist pair, and the shared Occupancy those
//   wires claim cells in. It also owns cost accounting (TotalCost,
//   WireIntersectCount, GridCollisionCount) and the CSV load/save
//   collaborators used by cmd/latticewire.
//
// Why:
//   Sequencers and the optimizer need a single object to mutate (route
//   a wire, rip one out, recompute cost) without re-deriving occupancy
//   or distance ordering themselves.
//
// Options:
//   New(gates, netlist, padding) takes a padding parameter controlling
//   how much slack the lattice bounds leave around the gates; sequencers
//   use this to give searches room to route around congestion.
//
// Errors:
//   New returns ErrDuplicateGate if two gate IDs share a coordinate, and
//   ErrUnknownGate if the netlist references a gate ID not present in
//   the gate map. CSV loaders wrap the underlying encoding/csv and
//   strconv errors with context via fmt.Errorf.
package chip
