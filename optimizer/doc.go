// Package optimizer -- A*-based post-optimizer.
//
// What:
//   Optimize repeatedly rips a random k-tuple of wires (k in 1..K) out
//   of an already-routed chip and reroutes them with search.AStar,
//   accepting the result via a simulated-annealing acceptance rule.
//
// Why:
//   A sequencer's first pass is greedy by construction; a post-pass that
//   is willing to temporarily make things worse (SA) or try several
//   wires together (k-tuples) finds improvements no single-wire greedy
//   pass can. spec.md §4.6 describes this pseudocode directly -- the
//   Python original this was distilled from did not retain a readable
//   A_star_optimize class body, so this package is built from the
//   specification's description rather than a line-by-line port.
//
// Options:
//   K, PermutationLimit, RandomIters, T0, Alpha, Seed; see DefaultOptions.
package optimizer
