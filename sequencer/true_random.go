package sequencer

import (
	"github.com/katalvlaran/latticewire/chip"
	"github.com/katalvlaran/latticewire/latt"
	"github.com/katalvlaran/latticewire/rng"
)

// TrueRandom routes every wire the same way PseudoRandom does but
// ignores occupancy entirely: gate cells and wires already in place are
// no obstacle, only the wire's own in-progress path is avoided (to keep
// the search finite). Supplemented from the original model's
// True_random class, dropped by the distilled spec's §4.5 prose but
// named in its §6 constructor list; it exists as an uncongested-routing
// baseline to compare the occupancy-aware strategies against.
func TrueRandom(c *chip.Chip, opts ...Option) {
	o := newOptions(opts...)
	r := rng.FromSeed(o.Seed)

	order := wireOrder(c, r)
	for _, idx := range order {
		w := c.Wires[idx]
		if w.IsConnected() {
			continue
		}
		start, end := w.Gates[0], w.Gates[1]
		minLen := start.Manhattan(end)
		lengths := candidateLengths(minLen, o.MaxOffset)
		rng.ShuffleInts(lengths, r)

		for _, length := range lengths {
			path := unconstrainedExactLengthBFS(c, start, end, length)
			if path == nil {
				continue
			}
			for _, seg := range path {
				c.Occupancy.AddWireSegment(seg, w)
			}
			w.AppendSegmentList(path)
			break
		}
	}
}

func unconstrainedExactLengthBFS(c *chip.Chip, start, end latt.Coord, exactLength int) []latt.Coord {
	type item struct {
		coord latt.Coord
		path  []latt.Coord
	}

	queue := []item{{coord: start, path: []latt.Coord{start}}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		dist := len(cur.path) - 1

		if cur.coord == end && dist == exactLength {
			if len(cur.path) <= 2 {
				return nil
			}
			out := make([]latt.Coord, len(cur.path)-2)
			copy(out, cur.path[1:len(cur.path)-1])
			return out
		}
		if dist >= exactLength {
			continue
		}

		inPath := make(map[latt.Coord]struct{}, len(cur.path))
		for _, p := range cur.path {
			inPath[p] = struct{}{}
		}

		for _, n := range latt.Neighbours(cur.coord, c.Bounds) {
			if _, inOwn := inPath[n]; inOwn {
				continue
			}
			if n == end && dist+1 != exactLength {
				continue
			}
			next := make([]latt.Coord, len(cur.path)+1)
			copy(next, cur.path)
			next[len(cur.path)] = n
			queue = append(queue, item{coord: n, path: next})
		}
	}
	return nil
}
