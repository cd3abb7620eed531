package core

import (
	"errors"
	"fmt"
)

// CellMap is the read-only view of a 2-D occupancy map consumed by the
// search engine. Both the ground-truth Grid and a per-agent LocalMap
// implement it, so planning can run against either complete or partial
// knowledge.
type CellMap interface {
	// Dims returns the map dimensions as (rows, cols).
	Dims() (rows, cols int)
	// At returns the symbol at p. Callers must ensure p is in bounds.
	At(p Position) Cell
}

// ErrEmptyGrid is returned when a grid is constructed without any cells.
var ErrEmptyGrid = errors.New("grid has no cells")

// Grid is the immutable ground-truth occupancy map. It is owned by the
// environment collaborator and read-only to the simulation core: agents only
// ever see it through sensing.
type Grid struct {
	rows, cols int
	cells      [][]Cell
}

// NewGrid validates and wraps a ground-truth cell matrix. Rows must be
// non-empty and rectangular, and cells restricted to Free and Obstacle.
// The matrix is copied so later caller mutations cannot leak in.
func NewGrid(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	copied := make([][]Cell, rows)
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("ragged grid: row %d has %d cells, want %d", r, len(row), cols)
		}
		copied[r] = make([]Cell, cols)
		for c, cell := range row {
			if cell != Free && cell != Obstacle {
				return nil, fmt.Errorf("invalid ground-truth symbol %q at (%d,%d)", cell, r, c)
			}
			copied[r][c] = cell
		}
	}
	return &Grid{rows: rows, cols: cols, cells: copied}, nil
}

// Dims returns the grid dimensions as (rows, cols).
func (g *Grid) Dims() (rows, cols int) { return g.rows, g.cols }

// At returns the ground-truth symbol at p.
func (g *Grid) At(p Position) Cell { return g.cells[p.Row][p.Col] }

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}
