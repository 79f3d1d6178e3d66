package optimizer

import (
	"testing"

	"github.com/katalvlaran/latticewire/chip"
	"github.com/katalvlaran/latticewire/latt"
	"github.com/katalvlaran/latticewire/sequencer"
	"github.com/stretchr/testify/require"
)

func routedChip(t *testing.T) *chip.Chip {
	t.Helper()
	gates := map[int]latt.Coord{
		1: {0, 0, 0},
		2: {4, 0, 0},
		3: {0, 4, 0},
		4: {4, 4, 0},
	}
	c, err := chip.New(gates, []chip.Pair{{1, 2}, {3, 4}}, 3)
	require.NoError(t, err)
	sequencer.Greedy(c, sequencer.WithMaxOffset(10), sequencer.WithShortCircuit(true))
	return c
}

func TestOptimizeNeverWorsensFinalCost(t *testing.T) {
	c := routedChip(t)
	before := c.TotalCost()

	Optimize(c, 10, func(o *Options) {
		o.K = 2
		o.Seed = 3
	})

	require.LessOrEqual(t, c.TotalCost(), before)
}

func TestOptimizeKeepsChipFullyConnected(t *testing.T) {
	c := routedChip(t)
	Optimize(c, 5, func(o *Options) { o.Seed = 9 })
	require.True(t, c.IsFullyConnected())
}
