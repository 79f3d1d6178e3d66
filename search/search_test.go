package search

import (
	"testing"

	"github.com/katalvlaran/latticewire/chip"
	"github.com/katalvlaran/latticewire/latt"
	"github.com/stretchr/testify/require"
)

func freshChip(t *testing.T) *chip.Chip {
	t.Helper()
	gates := map[int]latt.Coord{1: {0, 0, 0}, 2: {4, 0, 0}}
	c, err := chip.New(gates, []chip.Pair{{1, 2}}, 3)
	require.NoError(t, err)
	return c
}

func TestBoundedBFSFindsDirectPath(t *testing.T) {
	c := freshChip(t)
	path := BoundedBFS(c, latt.Coord{0, 0, 0}, latt.Coord{4, 0, 0}, 0, false)
	require.Len(t, path, 3)
}

func TestBoundedBFSReturnsNilForAdjacentGates(t *testing.T) {
	gates := map[int]latt.Coord{1: {0, 0, 0}, 2: {1, 0, 0}}
	c, err := chip.New(gates, []chip.Pair{{1, 2}}, 2)
	require.NoError(t, err)
	path := BoundedBFS(c, gates[1], gates[2], 0, false)
	require.Nil(t, path)
}

func TestExactLengthBFSRespectsLength(t *testing.T) {
	c := freshChip(t)
	path := ExactLengthBFS(c, latt.Coord{0, 0, 0}, latt.Coord{4, 0, 0}, 6, false)
	require.NotNil(t, path)
	require.Len(t, path, 5)
}

func TestAStarFindsShortestPath(t *testing.T) {
	c := freshChip(t)
	path := AStar(c, latt.Coord{0, 0, 0}, latt.Coord{4, 0, 0}, false)
	require.Len(t, path, 3)
}

func TestAStarAvoidsGateCells(t *testing.T) {
	gates := map[int]latt.Coord{
		1: {0, 0, 0},
		2: {2, 0, 0},
		3: {1, 0, 0},
		4: {1, 1, 0},
	}
	c, err := chip.New(gates, []chip.Pair{{1, 2}, {3, 4}}, 3)
	require.NoError(t, err)
	path := AStar(c, gates[1], gates[2], false)
	for _, p := range path {
		require.NotEqual(t, gates[3], p)
	}
}
