package core

// Cell is the symbol stored in a single grid cell.
type Cell int

const (
	// Free marks a traversable cell.
	Free Cell = iota
	// Obstacle marks an impassable cell. It is the only symbol any search
	// variant refuses to cross.
	Obstacle
	// RobotMarker marks a cell currently occupied by an agent. Markers are
	// stamped into local maps by the coordinator's refresh phase and are
	// passable to planning.
	RobotMarker
	// Goal marks the run's goal cell.
	Goal
	// Unknown marks a cell an agent has not yet discovered. Unknown cells
	// are treated as passable on purpose: optimistic planning is what makes
	// an agent walk into undiscovered obstacles.
	Unknown
)

// Rune returns the single-character rendering symbol used by external
// renderers: '0', '1', 'R', 'G' and '?'.
func (c Cell) Rune() rune {
	switch c {
	case Free:
		return '0'
	case Obstacle:
		return '1'
	case RobotMarker:
		return 'R'
	case Goal:
		return 'G'
	case Unknown:
		return '?'
	default:
		return '?'
	}
}

// String returns the rendering symbol as a string.
func (c Cell) String() string { return string(c.Rune()) }

// Passable reports whether a search may cross the cell.
func (c Cell) Passable() bool { return c != Obstacle }
