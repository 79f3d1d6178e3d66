package latt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoordManhattan(t *testing.T) {
	a := Coord{X: 0, Y: 0, Z: 0}
	b := Coord{X: 1, Y: 2, Z: -3}
	require.Equal(t, 6, a.Manhattan(b))
}

func TestCoordString(t *testing.T) {
	require.Equal(t, "(1,2,3)", Coord{1, 2, 3}.String())
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{MinX: 0, MaxX: 2, MinY: 0, MaxY: 2, MinZ: 0, MaxZ: 2}
	require.True(t, b.Contains(Coord{1, 1, 1}))
	require.False(t, b.Contains(Coord{3, 1, 1}))
}

func TestNewBoundsPadding(t *testing.T) {
	gates := []Coord{{0, 0, 0}, {5, 5, 0}}
	b := NewBounds(gates, 2)
	require.Equal(t, -2, b.MinX)
	require.Equal(t, 7, b.MaxX)
	require.Equal(t, 0, b.MinZ)
	require.Equal(t, 7, b.MaxZ)
}

func TestNeighboursCount(t *testing.T) {
	b := Bounds{MinX: 0, MaxX: 5, MinY: 0, MaxY: 5, MinZ: 0, MaxZ: 5}
	ns := Neighbours(Coord{2, 2, 2}, b)
	require.Len(t, ns, 6)
}

func TestNeighboursClampedAtEdge(t *testing.T) {
	b := Bounds{MinX: 0, MaxX: 5, MinY: 0, MaxY: 5, MinZ: 0, MaxZ: 5}
	ns := Neighbours(Coord{0, 0, 0}, b)
	require.Len(t, ns, 3)
}

func TestOccupancyGateAndWire(t *testing.T) {
	o := NewOccupancy()
	g := Coord{0, 0, 0}
	o.AddGate(g)
	require.True(t, o.HasGate(g))
	require.Equal(t, 0, o.WireCountAt(g))
}

func TestOccupancyEdgeCausesCollision(t *testing.T) {
	o := NewOccupancy()
	a, b := Coord{0, 0, 0}, Coord{1, 0, 0}

	w1 := fakeWire(1, [2]Coord{a, b})
	w2 := fakeWire(2, [2]Coord{a, b})

	o.AddWireSegment(a, w1)
	o.AddWireSegment(b, w1)
	require.False(t, o.EdgeCausesCollision(a, b, w1))

	o.AddWireSegment(a, w2)
	o.AddWireSegment(b, w2)
	require.True(t, o.EdgeCausesCollision(a, b, nil))
}

// Two wires can occupy both endpoints of an edge without either one
// actually stepping between them; EdgeCausesCollision must not treat
// that as a collision.
func TestOccupancyEdgeCausesCollisionIgnoresNonConsecutiveSharedEndpoints(t *testing.T) {
	o := NewOccupancy()
	a, b, mid := Coord{0, 0, 0}, Coord{1, 0, 0}, Coord{0, 1, 0}

	w1 := fakeWire(1, [2]Coord{a, b})
	w2 := fakeWire(2, [2]Coord{a, mid}, [2]Coord{mid, b})

	o.AddWireSegment(a, w1)
	o.AddWireSegment(b, w1)
	o.AddWireSegment(a, w2)
	o.AddWireSegment(mid, w2)
	o.AddWireSegment(b, w2)

	require.False(t, o.EdgeCausesCollision(a, b, w1))
}

type fakeWireOccupant struct {
	id    int
	edges [][2]Coord
}

func (f fakeWireOccupant) WireID() int { return f.id }

func (f fakeWireOccupant) HasEdge(a, b Coord) bool {
	for _, e := range f.edges {
		if (e[0] == a && e[1] == b) || (e[0] == b && e[1] == a) {
			return true
		}
	}
	return false
}

func fakeWire(id int, edges ...[2]Coord) WireOccupant {
	return &fakeWireOccupant{id: id, edges: edges}
}
