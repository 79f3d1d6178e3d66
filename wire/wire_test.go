package wire

import (
	"testing"

	"github.com/katalvlaran/latticewire/latt"
	"github.com/stretchr/testify/require"
)

func TestNewWireInitiallyDisconnected(t *testing.T) {
	a := latt.Coord{0, 0, 0}
	b := latt.Coord{3, 0, 0}
	w := New(0, a, b)
	require.False(t, w.IsConnected())
	require.Equal(t, []latt.Coord{a, b}, w.Segments)
}

func TestAdjacentGatesAreConnected(t *testing.T) {
	a := latt.Coord{0, 0, 0}
	b := latt.Coord{1, 0, 0}
	w := New(0, a, b)
	require.True(t, w.IsConnected())
}

func TestAppendSegmentGrowsFromBothEnds(t *testing.T) {
	a := latt.Coord{0, 0, 0}
	b := latt.Coord{0, 3, 0}
	w := New(0, a, b)

	w.AppendSegment(latt.Coord{0, 1, 0})
	w.AppendSegment(latt.Coord{0, 2, 0})

	require.True(t, w.IsConnected())
	require.Equal(t, 3, w.Length())
}

func TestAppendSegmentIgnoresNonAdjacent(t *testing.T) {
	a := latt.Coord{0, 0, 0}
	b := latt.Coord{0, 5, 0}
	w := New(0, a, b)

	w.AppendSegment(latt.Coord{9, 9, 9})
	require.Equal(t, []latt.Coord{a, b}, w.Segments)
}

func TestResetReturnsToEndpointsOnly(t *testing.T) {
	a := latt.Coord{0, 0, 0}
	b := latt.Coord{0, 2, 0}
	w := New(0, a, b)
	w.AppendSegment(latt.Coord{0, 1, 0})
	w.Reset()
	require.Equal(t, []latt.Coord{a, b}, w.Segments)
}

func TestIntersectsItself(t *testing.T) {
	a := latt.Coord{0, 0, 0}
	w := New(0, a, a)
	w.Segments = []latt.Coord{a, {1, 0, 0}, a}
	require.True(t, w.IntersectsItself())
}

func TestWireIDMatchesConstructor(t *testing.T) {
	w := New(7, latt.Coord{}, latt.Coord{1, 0, 0})
	require.Equal(t, 7, w.WireID())
}
