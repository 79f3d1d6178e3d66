// Package wire -- the routable chain between two fixed gate endpoints.
//
// What:
//   Wire holds an ordered list of lattice coordinates. The first and
//   last elements are always the wire's two gate endpoints; interior
//   elements are the routed path between them.
//
// Why:
//   Sequencers build a wire's interior incrementally (AppendSegment) or
//   in bulk (AppendSegmentList) as search primitives return candidate
//   paths. Keeping the grow-inward-from-both-ends insertion rule in one
//   type means every caller gets the same invariant guarantees
//   (connectivity, no accidental endpoint movement) for free.
//
// Complexity:
//   AppendSegment is O(n) in the current segment count (slice insert).
//   IsConnected and IntersectsItself are O(n).
package wire
