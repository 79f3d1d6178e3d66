// Package latt implements the 3-D lattice and occupancy model that
// underlies every wire routing operation in latticewire: coordinates,
// bounds, 6-connected neighbour enumeration, and the dual occupancy maps
// that track which gates and wires claim which cells.
package latt

import "fmt"

// Coord identifies a single lattice cell.
type Coord struct {
	X, Y, Z int
}

// String renders a Coord the way chip CSV output expects: "(x,y,z)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Manhattan returns the Manhattan (L1) distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	return absInt(c.X-o.X) + absInt(c.Y-o.Y) + absInt(c.Z-o.Z)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Bounds describes the inclusive lattice extent along each axis.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
	MinZ, MaxZ int
}

// Contains reports whether c lies within b (inclusive on every axis).
func (b Bounds) Contains(c Coord) bool {
	return c.X >= b.MinX && c.X <= b.MaxX &&
		c.Y >= b.MinY && c.Y <= b.MaxY &&
		c.Z >= b.MinZ && c.Z <= b.MaxZ
}

// NewBounds computes a padded bounding box around a set of gate
// coordinates. The x/y extent is padded by padding cells on every side;
// z is fixed to [0,7], matching the eight-layer lattice spec.md assumes
// for chip-scale routing.
func NewBounds(gates []Coord, padding int) Bounds {
	if len(gates) == 0 {
		return Bounds{0, padding, 0, padding, 0, 7}
	}
	b := Bounds{
		MinX: gates[0].X, MaxX: gates[0].X,
		MinY: gates[0].Y, MaxY: gates[0].Y,
		MinZ: 0, MaxZ: 7,
	}
	for _, g := range gates[1:] {
		if g.X < b.MinX {
			b.MinX = g.X
		}
		if g.X > b.MaxX {
			b.MaxX = g.X
		}
		if g.Y < b.MinY {
			b.MinY = g.Y
		}
		if g.Y > b.MaxY {
			b.MaxY = g.Y
		}
	}
	b.MinX -= padding
	b.MaxX += padding
	b.MinY -= padding
	b.MaxY += padding
	return b
}
