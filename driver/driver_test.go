package driver

import (
	"testing"

	"github.com/katalvlaran/latticewire/chip"
	"github.com/katalvlaran/latticewire/latt"
	"github.com/katalvlaran/latticewire/sequencer"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsFullyConnectedBest(t *testing.T) {
	gates := map[int]latt.Coord{
		1: {0, 0, 0},
		2: {4, 0, 0},
		3: {0, 4, 0},
		4: {4, 4, 0},
	}
	netlist := []chip.Pair{{1, 2}, {3, 4}}

	build := func(order []chip.Pair) (*chip.Chip, error) {
		return chip.New(gates, order, 3)
	}
	seq := func(c *chip.Chip) {
		sequencer.Greedy(c, sequencer.WithMaxOffset(10), sequencer.WithShortCircuit(true))
	}

	best, err := Run(build, netlist, seq, WithIterations(5), WithSeed(11))
	require.NoError(t, err)
	require.True(t, best.IsFullyConnected())
}

func TestWithIterationsPanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { WithIterations(0) })
}
