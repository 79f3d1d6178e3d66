// Package latt -- lattice and occupancy primitives.
//
// What:
//   A bounded 3-D integer lattice (Coord, Bounds), 6-connected neighbour
//   enumeration, and an Occupancy map tracking which gates and wires
//   claim which cells.
//
// Why:
//   Every routing algorithm in this module -- bounded BFS, exact-length
//   BFS, A*, the sequencers, the optimizer -- needs the same answer to
//   "what is adjacent to this cell" and "is this cell free". Centralizing
//   both here keeps that answer consistent and keeps occupancy
//   bookkeeping (add/remove on reroute) in one auditable place.
//
// Complexity:
//   Neighbours is O(1) (fixed-size 6-offset table, bounds-checked).
//   Occupancy operations are O(1) amortized (map lookups).
//
// Errors:
//   This package has no fallible operations; malformed input (e.g.
//   empty gate lists to NewBounds) degrades to a minimal default bounds
//   rather than erroring. Bounds are still a hard limit on routing:
//   Neighbours never yields a cell outside them.
package latt
