// Package sequencer implements the netlist-wide routing strategies of
// spec.md §4.5: Greedy, GreedyRandom, PseudoRandom, TrueRandom, AStarSeq,
// and IRRA. Each strategy consumes a *chip.Chip and routes as many of
// its wires as it can, using the search package's primitives.
package sequencer

import "github.com/katalvlaran/latticewire/rng"

// Options configures a sequencer run. Not every field applies to every
// strategy; each constructor documents which it reads.
type Options struct {
	// MaxOffset bounds how far a search may stray above the direct
	// Manhattan distance between a wire's two gates before giving up.
	MaxOffset int
	// AllowShortCircuit permits a last-resort fallback pass that may
	// route through cells occupied by other wires, at the cost of
	// intersections. Colliding edges stay forbidden in that pass, so a
	// wire can still remain unconnected.
	AllowShortCircuit bool
	// Seed seeds the sequencer's deterministic RNG (GreedyRandom,
	// PseudoRandom, TrueRandom, IRRA). Seed==0 uses rng.DefaultSeed.
	Seed int64
	// Shuffle records whether the wire processing order is randomized.
	// GreedyRandom sets it to true itself; no strategy reads a value
	// passed in through WithShuffle.
	Shuffle bool
}

// Option mutates an Options value during construction.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: offset bound of 20,
// no short circuit, deterministic seed.
func DefaultOptions() Options {
	return Options{MaxOffset: 20, AllowShortCircuit: false, Seed: rng.DefaultSeed}
}

// WithMaxOffset sets the maximum extra length a search may explore
// beyond the direct distance. Panics if offset is negative.
func WithMaxOffset(offset int) Option {
	if offset < 0 {
		panic("sequencer: negative max offset")
	}
	return func(o *Options) { o.MaxOffset = offset }
}

// WithShortCircuit enables or disables the last-resort occupied-cell
// fallback pass.
func WithShortCircuit(allow bool) Option {
	return func(o *Options) { o.AllowShortCircuit = allow }
}

// WithSeed sets the deterministic RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithShuffle enables randomized wire processing order.
func WithShuffle(shuffle bool) Option {
	return func(o *Options) { o.Shuffle = shuffle }
}

func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
