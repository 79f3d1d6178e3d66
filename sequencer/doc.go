// Package sequencer -- netlist-wide routing strategies.
//
// What:
//   Greedy, GreedyRandom, PseudoRandom, TrueRandom, AStarSeq, and IRRA:
//   six policies for deciding, wire by wire, which search.* primitive to
//   call, in what order, and with what tolerance for occupied cells.
//
// Why:
//   A single chip can be routed by any of these strategies interchangeably
//   -- they all just mutate a *chip.Chip in place using the search
//   package's primitives. Keeping them as plain functions over
//   functional options (rather than a shared interface with per-strategy
//   structs) matches how the teacher library exposes its own algorithm
//   packages (bfs.Walk, one function per entrypoint).
//
// Options:
//   See Options (shared across Greedy/GreedyRandom/PseudoRandom/
//   TrueRandom/AStarSeq) and IRRAOptions (IRRA's superset, adding input
//   seeding mode, reroute mode, iteration count, and SA cooling schedule).
package sequencer
