package testutil

import (
	"strings"
	"testing"

	"github.com/hupe1980/gridmesh/core"
)

// ParseGrid builds a ground-truth grid from a compact multi-line layout.
// '.' and '0' are free cells, '#' and '1' are obstacles; spaces and empty
// lines are ignored. Example:
//
//	g := testutil.ParseGrid(t, `
//		. . .
//		. # .
//		. . .
//	`)
func ParseGrid(t *testing.T, layout string) *core.Grid {
	t.Helper()

	var cells [][]core.Cell
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var row []core.Cell
		for _, ch := range line {
			switch ch {
			case '.', '0':
				row = append(row, core.Free)
			case '#', '1':
				row = append(row, core.Obstacle)
			case ' ', '\t':
				// layout padding
			default:
				t.Fatalf("unexpected grid symbol %q", ch)
			}
		}
		cells = append(cells, row)
	}

	g, err := core.NewGrid(cells)
	if err != nil {
		t.Fatalf("invalid test grid: %v", err)
	}
	return g
}

// FreeGrid builds an obstacle-free rows×cols grid.
func FreeGrid(t *testing.T, rows, cols int) *core.Grid {
	t.Helper()

	cells := make([][]core.Cell, rows)
	for r := range cells {
		cells[r] = make([]core.Cell, cols)
	}
	g, err := core.NewGrid(cells)
	if err != nil {
		t.Fatalf("invalid free grid: %v", err)
	}
	return g
}

// P is shorthand for building positions in table tests.
func P(row, col int) core.Position { return core.Position{Row: row, Col: col} }
