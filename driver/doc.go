// Package driver -- the random-order driver of spec.md §4.7.
//
// What:
//   Run repeats a caller-supplied sequencer over Options.Iterations
//   independently-built chips, each seeded with the same netlist pairs
//   in a different random order, and returns the lowest-cost result.
//
// Why:
//   Because chip.New stable-sorts its netlist by ascending Manhattan
//   distance, permuting the input order before construction only
//   changes the relative order of equal-distance pairs -- exactly the
//   ties a sequencer's wire-by-wire loop would otherwise break in a
//   fixed way every run. Trying several tie-breaks and keeping the best
//   is strictly independent of which sequencer strategy is used, so
//   this driver is generic over any Sequencer rather than tied to one.
package driver
