package core

import "strings"

// Fact is one cell's discovered ground-truth content. Facts are immutable
// once recorded and are the unit of knowledge exchanged between agents.
type Fact struct {
	Pos    Position
	Symbol Cell
}

// LocalMap is an agent's private, partially known view of the grid. All
// cells start Unknown except the goal cell, which starts Goal. Knowledge is
// monotonic: cells transition Unknown to a known symbol and are never
// forgotten. Only the owning agent and the coordinator's refresh/broadcast
// phases write to it.
type LocalMap struct {
	rows, cols int
	cells      [][]Cell
}

// NewLocalMap creates an all-Unknown local map with the goal cell marked.
func NewLocalMap(rows, cols int, goal Position) *LocalMap {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		for c := range cells[r] {
			cells[r][c] = Unknown
		}
	}
	cells[goal.Row][goal.Col] = Goal
	return &LocalMap{rows: rows, cols: cols, cells: cells}
}

// Dims returns the map dimensions as (rows, cols).
func (m *LocalMap) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns the symbol currently believed to be at p.
func (m *LocalMap) At(p Position) Cell { return m.cells[p.Row][p.Col] }

// Set overwrites the symbol at p.
func (m *LocalMap) Set(p Position, c Cell) { m.cells[p.Row][p.Col] = c }

// InBounds reports whether p lies on the map.
func (m *LocalMap) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < m.rows && p.Col >= 0 && p.Col < m.cols
}

// KnownCount returns the number of non-Unknown cells. It never decreases
// over an agent's lifetime.
func (m *LocalMap) KnownCount() int {
	n := 0
	for _, row := range m.cells {
		for _, c := range row {
			if c != Unknown {
				n++
			}
		}
	}
	return n
}

// ClearMarkers resets every RobotMarker cell to Free. Used by the refresh
// phase before stamping current agent positions.
func (m *LocalMap) ClearMarkers() {
	for _, row := range m.cells {
		for i, c := range row {
			if c == RobotMarker {
				row[i] = Free
			}
		}
	}
}

// Snapshot returns a deep copy of the current cell matrix for external
// rendering or inspection.
func (m *LocalMap) Snapshot() [][]Cell {
	out := make([][]Cell, m.rows)
	for r, row := range m.cells {
		out[r] = make([]Cell, m.cols)
		copy(out[r], row)
	}
	return out
}

// Render returns the map as newline-separated rows of space-separated
// rendering symbols. Rendering to a terminal or file is the caller's job.
func (m *LocalMap) Render() string {
	var b strings.Builder
	for r, row := range m.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, cell := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(cell.Rune())
		}
	}
	return b.String()
}
