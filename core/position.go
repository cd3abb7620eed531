package core

import (
	"fmt"
	"math"
)

// Position identifies a grid cell by row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// StepOrder is the fixed neighbor expansion order used by every search
// variant: right, left, down, up. The order is part of the search contract
// because it drives tie-breaking between equally scored nodes.
var StepOrder = [4]Position{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// Add returns the position offset by d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Sub returns the component-wise difference p-o, i.e. the step taken to
// reach p from o.
func (p Position) Sub(o Position) Position {
	return Position{Row: p.Row - o.Row, Col: p.Col - o.Col}
}

// Manhattan returns the L1 distance between p and o.
func (p Position) Manhattan(o Position) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

// Euclidean returns the L2 distance between p and o.
func (p Position) Euclidean(o Position) float64 {
	dr := float64(p.Row - o.Row)
	dc := float64(p.Col - o.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// String returns the position in "(row,col)" form.
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
