package chip

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/latticewire/latt"
)

// LoadPrintCSV reads a "print" CSV: one gate per row, columns
// id,x,y(,z). z defaults to 0 when the column is absent, matching the
// two-dimensional print format spec.md §6 documents as legacy input.
func LoadPrintCSV(r io.Reader) (map[int]latt.Coord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("chip: read print csv: %w", err)
	}

	gates := make(map[int]latt.Coord, len(records))
	for _, rec := range records {
		if len(rec) < 3 {
			return nil, fmt.Errorf("chip: print csv row has fewer than 3 columns: %v", rec)
		}
		id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("chip: invalid gate id %q: %w", rec[0], err)
		}
		x, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("chip: invalid x %q: %w", rec[1], err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, fmt.Errorf("chip: invalid y %q: %w", rec[2], err)
		}
		z := 0
		if len(rec) >= 4 && strings.TrimSpace(rec[3]) != "" {
			z, err = strconv.Atoi(strings.TrimSpace(rec[3]))
			if err != nil {
				return nil, fmt.Errorf("chip: invalid z %q: %w", rec[3], err)
			}
		}
		gates[id] = latt.Coord{X: x, Y: y, Z: z}
	}
	return gates, nil
}

// LoadNetlistCSV reads a netlist CSV: one pair per row, columns gateA,gateB.
func LoadNetlistCSV(r io.Reader) ([]Pair, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("chip: read netlist csv: %w", err)
	}

	pairs := make([]Pair, 0, len(records))
	for _, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("chip: netlist csv row has fewer than 2 columns: %v", rec)
		}
		a, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("chip: invalid netlist gate %q: %w", rec[0], err)
		}
		b, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("chip: invalid netlist gate %q: %w", rec[1], err)
		}
		pairs = append(pairs, Pair{A: a, B: b})
	}
	return pairs, nil
}

// SaveOutput writes the chip's routed wires in spec.md §6's output CSV
// format: a "net,wires" header row, then one row per wire, columns
// "(a,b)" (the net, as a literal parenthesized string) and
// "[(x,y,z),...]" (the full segment list, also a literal bracketed
// string), followed by a trailing summary row
// "chip_<ChipID>_net_<NetID>,<total_cost>".
func (c *Chip) SaveOutput(w io.Writer) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"net", "wires"}); err != nil {
		return fmt.Errorf("chip: write output header: %w", err)
	}

	for i, wr := range c.Wires {
		p := c.Netlist[i]
		netStr := fmt.Sprintf("(%d,%d)", p.A, p.B)

		segs := make([]string, len(wr.Segments))
		for j, s := range wr.Segments {
			segs[j] = s.String()
		}
		wiresStr := "[" + strings.Join(segs, ",") + "]"

		if err := writer.Write([]string{netStr, wiresStr}); err != nil {
			return fmt.Errorf("chip: write output row: %w", err)
		}
	}

	footer := fmt.Sprintf("chip_%d_net_%d", c.ChipID, c.NetID)
	if err := writer.Write([]string{footer, strconv.Itoa(c.TotalCost())}); err != nil {
		return fmt.Errorf("chip: write summary row: %w", err)
	}
	return nil
}

// LoadFromCSV re-parses a previously saved output CSV, reconstructing
// gate coordinates from the endpoints of each wire (since the output
// format carries only net IDs, not a gate coordinate table) and the
// full routed segment chain for every wire. The returned chip's gate
// IDs are synthesized from the net column; callers that need the
// original gate ID-to-coordinate mapping should keep the print CSV
// alongside the output CSV.
func LoadFromCSV(r io.Reader) (*Chip, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("chip: read output csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("chip: output csv has no data rows")
	}

	footer := records[len(records)-1]
	rows := records[1 : len(records)-1] // drop header and trailing summary row

	gates := make(map[int]latt.Coord)
	netlist := make([]Pair, 0, len(rows))
	paths := make([][]latt.Coord, 0, len(rows))

	for _, rec := range rows {
		if len(rec) < 2 {
			return nil, fmt.Errorf("chip: output csv row has fewer than 2 columns: %v", rec)
		}
		a, b, err := parseNet(rec[0])
		if err != nil {
			return nil, err
		}
		path, err := parseWireList(rec[1])
		if err != nil {
			return nil, err
		}
		if len(path) == 0 {
			return nil, fmt.Errorf("chip: output csv row has empty wire list: %v", rec)
		}
		gates[a] = path[0]
		gates[b] = path[len(path)-1]
		netlist = append(netlist, Pair{A: a, B: b})
		paths = append(paths, path)
	}

	c, err := New(gates, netlist, 2)
	if err != nil {
		return nil, err
	}
	for i, path := range paths {
		p := netlist[i]
		if err := c.AddEntireWire(gates[p.A], gates[p.B], path); err != nil {
			return nil, err
		}
	}
	if len(footer) > 0 {
		if chipID, netID, err := parseChipNetID(footer[0]); err == nil {
			c.ChipID, c.NetID = chipID, netID
		}
	}
	return c, nil
}

// parseChipNetID extracts chip_id and net_id from a SaveOutput footer's
// net column, formatted "chip_{chip_id}_net_{net_id}".
func parseChipNetID(s string) (chipID, netID int, err error) {
	var rest string
	rest, ok := strings.CutPrefix(s, "chip_")
	if !ok {
		return 0, 0, fmt.Errorf("chip: malformed footer net string %q", s)
	}
	parts := strings.SplitN(rest, "_net_", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("chip: malformed footer net string %q", s)
	}
	chipID, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("chip: malformed footer chip id %q: %w", s, err)
	}
	netID, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("chip: malformed footer net id %q: %w", s, err)
	}
	return chipID, netID, nil
}

func parseNet(s string) (int, int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("chip: malformed net string %q", s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("chip: malformed net string %q: %w", s, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("chip: malformed net string %q: %w", s, err)
	}
	return a, b, nil
}

func parseWireList(s string) ([]latt.Coord, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if s == "" {
		return nil, nil
	}

	var coords []latt.Coord
	depth := 0
	start := -1
	for i, r := range s {
		switch r {
		case '(':
			if depth == 0 {
				start = i + 1
			}
			depth++
		case ')':
			depth--
			if depth == 0 {
				c, err := parseCoord(s[start:i])
				if err != nil {
					return nil, err
				}
				coords = append(coords, c)
			}
		}
	}
	return coords, nil
}

func parseCoord(s string) (latt.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return latt.Coord{}, fmt.Errorf("chip: malformed coordinate %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return latt.Coord{}, fmt.Errorf("chip: malformed coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return latt.Coord{}, fmt.Errorf("chip: malformed coordinate %q: %w", s, err)
	}
	z, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return latt.Coord{}, fmt.Errorf("chip: malformed coordinate %q: %w", s, err)
	}
	return latt.Coord{X: x, Y: y, Z: z}, nil
}

// LoadChipFromFiles is a convenience wrapper used by cmd/latticewire: it
// opens a print CSV and a netlist CSV by path and constructs a Chip.
func LoadChipFromFiles(printPath, netlistPath string, padding int) (*Chip, error) {
	pf, err := os.Open(printPath)
	if err != nil {
		return nil, fmt.Errorf("chip: open print csv: %w", err)
	}
	defer pf.Close()
	gates, err := LoadPrintCSV(pf)
	if err != nil {
		return nil, err
	}

	nf, err := os.Open(netlistPath)
	if err != nil {
		return nil, fmt.Errorf("chip: open netlist csv: %w", err)
	}
	defer nf.Close()
	netlist, err := LoadNetlistCSV(nf)
	if err != nil {
		return nil, err
	}

	return New(gates, netlist, padding)
}
