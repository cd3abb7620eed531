package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition_Distances(t *testing.T) {
	a := Position{Row: 1, Col: 2}
	b := Position{Row: 4, Col: 6}

	assert.Equal(t, 7, a.Manhattan(b))
	assert.Equal(t, 7, b.Manhattan(a))
	assert.Equal(t, 5.0, a.Euclidean(b))
	assert.Equal(t, "(1,2)", a.String())
	assert.Equal(t, Position{Row: 3, Col: 4}, b.Sub(a))
	assert.Equal(t, b, a.Add(Position{Row: 3, Col: 4}))
}

func TestStepOrder_IsRightLeftDownUp(t *testing.T) {
	assert.Equal(t, [4]Position{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}, StepOrder)
}

func TestCell_RenderingSymbols(t *testing.T) {
	tests := []struct {
		cell Cell
		want rune
	}{
		{Free, '0'},
		{Obstacle, '1'},
		{RobotMarker, 'R'},
		{Goal, 'G'},
		{Unknown, '?'},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.cell.Rune())
		assert.Equal(t, string(tt.want), tt.cell.String())
	}
	assert.False(t, Obstacle.Passable())
	assert.True(t, Unknown.Passable())
}

func TestNewGrid_Validation(t *testing.T) {
	_, err := NewGrid(nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = NewGrid([][]Cell{{}})
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = NewGrid([][]Cell{{Free, Free}, {Free}})
	assert.ErrorContains(t, err, "ragged grid")

	_, err = NewGrid([][]Cell{{Free, Unknown}})
	assert.ErrorContains(t, err, "invalid ground-truth symbol")
}

func TestNewGrid_CopiesInput(t *testing.T) {
	cells := [][]Cell{{Free, Free}, {Free, Obstacle}}
	g, err := NewGrid(cells)
	require.NoError(t, err)

	cells[0][0] = Obstacle
	assert.Equal(t, Free, g.At(Position{Row: 0, Col: 0}), "grid must not alias caller memory")

	rows, cols := g.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.True(t, g.InBounds(Position{Row: 1, Col: 1}))
	assert.False(t, g.InBounds(Position{Row: 2, Col: 0}))
	assert.False(t, g.InBounds(Position{Row: -1, Col: 0}))
}

func TestNewLocalMap_StartsUnknownExceptGoal(t *testing.T) {
	goal := Position{Row: 1, Col: 2}
	lm := NewLocalMap(3, 4, goal)

	rows, cols := lm.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, Goal, lm.At(goal))
	assert.Equal(t, 1, lm.KnownCount())

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := Position{Row: r, Col: c}
			if p != goal {
				assert.Equal(t, Unknown, lm.At(p))
			}
		}
	}
}

func TestLocalMap_ClearMarkers(t *testing.T) {
	lm := NewLocalMap(2, 2, Position{Row: 1, Col: 1})
	lm.Set(Position{Row: 0, Col: 0}, RobotMarker)
	lm.Set(Position{Row: 0, Col: 1}, Obstacle)

	lm.ClearMarkers()

	assert.Equal(t, Free, lm.At(Position{Row: 0, Col: 0}))
	assert.Equal(t, Obstacle, lm.At(Position{Row: 0, Col: 1}))
}

func TestLocalMap_SnapshotIsDetached(t *testing.T) {
	lm := NewLocalMap(2, 2, Position{Row: 0, Col: 0})
	snap := lm.Snapshot()
	snap[1][1] = Obstacle

	assert.Equal(t, Unknown, lm.At(Position{Row: 1, Col: 1}))
}

func TestLocalMap_Render(t *testing.T) {
	lm := NewLocalMap(2, 2, Position{Row: 1, Col: 1})
	lm.Set(Position{Row: 0, Col: 0}, Free)

	assert.Equal(t, "0 ?\n? G", lm.Render())
}

func TestPositionRegistry(t *testing.T) {
	reg := NewPositionRegistry()
	assert.Equal(t, 0, reg.Len())

	_, ok := reg.Get(1)
	assert.False(t, ok)

	reg.Set(1, Position{Row: 2, Col: 3})
	reg.Set(2, Position{Row: 0, Col: 0})
	reg.Set(1, Position{Row: 2, Col: 4}) // overwrite

	p, ok := reg.Get(1)
	assert.True(t, ok)
	assert.Equal(t, Position{Row: 2, Col: 4}, p)
	assert.Equal(t, 2, reg.Len())

	snap := reg.Snapshot()
	snap[1] = Position{Row: 9, Col: 9}
	p, _ = reg.Get(1)
	assert.Equal(t, Position{Row: 2, Col: 4}, p, "snapshot must be a copy")
}

func TestNewEvent(t *testing.T) {
	e1 := NewEvent("run-1", EventMoved, 3, 0)
	e2 := NewEvent("run-1", EventMoved, 3, 0)

	assert.Equal(t, "run-1", e1.RunID)
	assert.Equal(t, EventMoved, e1.Kind)
	assert.Equal(t, 3, e1.Step)
	assert.Equal(t, 0, e1.AgentID)
	assert.NotEmpty(t, e1.ID)
	assert.NotEqual(t, e1.ID, e2.ID)
	assert.False(t, e1.Timestamp.IsZero())
}
