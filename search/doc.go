// Package search -- path-search primitives shared by every sequencer.
//
// What:
//   BoundedBFS (shortest path within minDistance+offset), ExactLengthBFS
//   (a path of precisely a given length, used to synthesize deliberate
//   detours), and AStar (heap-based best-first search with an
//   intentionally inadmissible heuristic that penalizes but does not
//   forbid intersections; colliding edges are never taken).
//
// Why:
//   Every sequencer strategy is a different policy for calling these
//   three primitives in a different order, with different offsets and
//   different occupied-cell tolerances. Keeping the primitives here
//   means each sequencer file is just its own loop, not its own search.
//
// Complexity:
//   BoundedBFS and ExactLengthBFS are O(V) in the number of lattice
//   cells reachable within the relevant bound. AStar is
//   O(V log V) via container/heap.
package search
