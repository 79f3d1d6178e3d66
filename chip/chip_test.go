package chip

import (
	"strings"
	"testing"

	"github.com/katalvlaran/latticewire/latt"
	"github.com/stretchr/testify/require"
)

func sampleGates() map[int]latt.Coord {
	return map[int]latt.Coord{
		1: {0, 0, 0},
		2: {5, 0, 0},
		3: {0, 6, 0},
	}
}

func TestNewSortsNetlistByManhattanDistance(t *testing.T) {
	gates := sampleGates()
	netlist := []Pair{{1, 3}, {1, 2}}
	c, err := New(gates, netlist, 2)
	require.NoError(t, err)
	require.Equal(t, Pair{1, 2}, c.Netlist[0])
	require.Equal(t, Pair{1, 3}, c.Netlist[1])
}

func TestNewRejectsDuplicateGateCoordinate(t *testing.T) {
	gates := map[int]latt.Coord{1: {0, 0, 0}, 2: {0, 0, 0}}
	_, err := New(gates, nil, 2)
	require.ErrorIs(t, err, ErrDuplicateGate)
}

func TestNewRejectsUnknownNetlistGate(t *testing.T) {
	gates := map[int]latt.Coord{1: {0, 0, 0}}
	_, err := New(gates, []Pair{{1, 99}}, 2)
	require.ErrorIs(t, err, ErrUnknownGate)
}

func TestTotalCostCountsLengthOnly(t *testing.T) {
	gates := map[int]latt.Coord{1: {0, 0, 0}, 2: {1, 0, 0}}
	c, err := New(gates, []Pair{{1, 2}}, 2)
	require.NoError(t, err)
	require.Equal(t, 1, c.TotalCost())
}

func TestAddEntireWireAndIntersectionCount(t *testing.T) {
	gates := map[int]latt.Coord{1: {0, 0, 0}, 2: {3, 0, 0}, 3: {0, 1, 0}, 4: {3, 1, 0}}
	c, err := New(gates, []Pair{{1, 2}, {3, 4}}, 2)
	require.NoError(t, err)

	path1 := []latt.Coord{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}
	require.NoError(t, c.AddEntireWire(gates[1], gates[2], path1))

	path2 := []latt.Coord{{0, 1, 0}, {1, 0, 0}, {2, 0, 0}, {3, 1, 0}}
	require.NoError(t, c.AddEntireWire(gates[3], gates[4], path2))

	require.Equal(t, 2, c.WireIntersectCount())
}

func TestSaveOutputFormat(t *testing.T) {
	gates := map[int]latt.Coord{1: {0, 0, 0}, 2: {1, 0, 0}}
	c, err := New(gates, []Pair{{1, 2}}, 2)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, c.SaveOutput(&sb))

	out := sb.String()
	require.Contains(t, out, "(1,2)")
	require.Contains(t, out, "[(0,0,0),(1,0,0)]")
	require.Contains(t, out, "chip_0_net_1,1")
}

func TestLoadFromCSVRoundTrip(t *testing.T) {
	gates := map[int]latt.Coord{1: {0, 0, 0}, 2: {2, 0, 0}}
	c, err := New(gates, []Pair{{1, 2}}, 2)
	require.NoError(t, err)
	require.NoError(t, c.AddEntireWire(gates[1], gates[2], []latt.Coord{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}))

	var sb strings.Builder
	require.NoError(t, c.SaveOutput(&sb))

	loaded, err := LoadFromCSV(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Len(t, loaded.Wires, 1)
	require.Equal(t, 2, loaded.TotalCost())
}
