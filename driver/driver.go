// Package driver implements the random-order driver of spec.md §4.7: it
// repeats a chosen sequencer strategy across random permutations of a
// chip's netlist, keeping the lowest-cost result. It is independent of
// which sequencer strategy is used, generalizing the originating
// model's run_random_netlist_orders (embedded directly in its Greed
// class) into a reusable driver over any strategy.
package driver

import (
	"github.com/katalvlaran/latticewire/chip"
	"github.com/katalvlaran/latticewire/rng"
)

// Sequencer is any routing strategy the driver can repeat: a function
// taking a chip and mutating it in place, matching the signature shared
// by sequencer.Greedy, sequencer.PseudoRandom, and friends.
type Sequencer func(c *chip.Chip)

// Options configures a driver run.
type Options struct {
	// Iterations is how many random netlist orders to try.
	Iterations int
	// Seed seeds the permutation RNG.
	Seed int64
}

// Option mutates an Options value during construction.
type Option func(*Options)

// DefaultOptions returns the driver's baseline configuration.
func DefaultOptions() Options {
	return Options{Iterations: 10, Seed: rng.DefaultSeed}
}

// WithIterations sets how many random netlist orders to try. Panics if
// n is not positive.
func WithIterations(n int) Option {
	if n <= 0 {
		panic("driver: iterations must be positive")
	}
	return func(o *Options) { o.Iterations = n }
}

// WithSeed sets the permutation RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// Run builds Options.Iterations independent chips from the same gates
// and a randomly permuted netlist order, runs seq over each, and returns
// the chip with the lowest TotalCost. build constructs a fresh chip
// given a netlist order (callers typically close over gates/padding).
func Run(build func(netlist []chip.Pair) (*chip.Chip, error), netlist []chip.Pair, seq Sequencer, opts ...Option) (*chip.Chip, error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	r := rng.FromSeed(o.Seed)

	var best *chip.Chip
	bestCost := -1

	for i := 0; i < o.Iterations; i++ {
		order := rng.Perm(len(netlist), r)
		shuffled := make([]chip.Pair, len(netlist))
		for j, idx := range order {
			shuffled[j] = netlist[idx]
		}

		c, err := build(shuffled)
		if err != nil {
			return nil, err
		}
		seq(c)

		cost := c.TotalCost()
		if best == nil || cost < bestCost {
			best = c
			bestCost = cost
		}
	}

	return best, nil
}
