package sequencer

import (
	"testing"

	"github.com/katalvlaran/latticewire/chip"
	"github.com/katalvlaran/latticewire/latt"
	"github.com/stretchr/testify/require"
)

func simpleChip(t *testing.T) *chip.Chip {
	t.Helper()
	gates := map[int]latt.Coord{
		1: {0, 0, 0},
		2: {4, 0, 0},
		3: {0, 4, 0},
		4: {4, 4, 0},
	}
	c, err := chip.New(gates, []chip.Pair{{1, 2}, {3, 4}}, 3)
	require.NoError(t, err)
	return c
}

func TestGreedyConnectsAllWires(t *testing.T) {
	c := simpleChip(t)
	Greedy(c, WithMaxOffset(10))
	require.True(t, c.IsFullyConnected())
}

func TestGreedyRandomIsDeterministicForFixedSeed(t *testing.T) {
	c1 := simpleChip(t)
	GreedyRandom(c1, WithMaxOffset(10), WithSeed(42))

	c2 := simpleChip(t)
	GreedyRandom(c2, WithMaxOffset(10), WithSeed(42))

	require.Equal(t, c1.TotalCost(), c2.TotalCost())
	for i := range c1.Wires {
		require.Equal(t, c1.Wires[i].Segments, c2.Wires[i].Segments)
	}
}

func TestPseudoRandomConnectsAllWires(t *testing.T) {
	c := simpleChip(t)
	PseudoRandom(c, WithMaxOffset(10), WithSeed(7), WithShortCircuit(true))
	require.True(t, c.IsFullyConnected())
}

func TestTrueRandomConnectsAllWires(t *testing.T) {
	c := simpleChip(t)
	TrueRandom(c, WithMaxOffset(10), WithSeed(7))
	require.True(t, c.IsFullyConnected())
}

func TestAStarSeqConnectsAllWires(t *testing.T) {
	c := simpleChip(t)
	AStarSeq(c)
	require.True(t, c.IsFullyConnected())
}

func TestIRRAReducesOrMaintainsCost(t *testing.T) {
	c := simpleChip(t)
	opts := DefaultIRRAOptions()
	opts.MaxOffset = 10
	opts.Iterations = 5

	baseline := simpleChip(t)
	PseudoRandom(baseline, WithMaxOffset(10), WithShortCircuit(true))
	baselineCost := baseline.TotalCost()

	IRRA(c, opts)
	require.True(t, c.TotalCost() <= baselineCost)
}
