package core

// MoveResult reports the outcome of a single Move call.
type MoveResult struct {
	// From and To are the positions before and after the move. They are
	// equal when the agent had no path to follow.
	From, To Position
	// Moved is false when the agent had an empty path.
	Moved bool
	// Mismatch is true when ground truth marks To as an obstacle the local
	// map did not know about. The move still happened.
	Mismatch bool
}

// Agent is the contract between the coordinator and an agent implementation.
//
// Agents own a private LocalMap built from sensing and received knowledge,
// plan on that map (never on ground truth) and execute one grid step at a
// time when the coordinator clears them to move. All methods are called from
// the single-threaded coordinator loop; implementations need no locking.
type Agent interface {
	// ID returns the agent's unique id. Conflict resolution processes
	// agents in ascending id order, so ids define priority.
	ID() int
	// Position returns the agent's current position.
	Position() Position
	// Goal returns the agent's current goal.
	Goal() Position
	// AtGoal reports whether the agent occupies its goal cell.
	AtGoal() bool
	// NextMove returns the next planned path position, if any.
	NextMove() (Position, bool)
	// HasPath reports whether the agent currently holds a planned path.
	HasPath() bool
	// Plan computes a path to the goal on the local map, falling back to
	// exploration of the nearest reachable Unknown cell.
	Plan()
	// Move executes the next path step unconditionally, updates the
	// position registry and re-senses.
	Move() MoveResult
	// Replan updates the goal and plans again.
	Replan(goal Position)
	// Share returns the agent's full fact record keyed by position. Later
	// facts win when a position was recorded twice.
	Share() map[Position]Cell
	// Receive adopts facts whose local cell is still Unknown and reports
	// whether anything new was learned. Any adoption triggers a replan.
	Receive(facts map[Position]Cell) bool
	// LocalMap exposes the agent's map for the refresh phase and renderers.
	LocalMap() *LocalMap
	// Mismatches returns how many reality mismatches the agent has hit.
	Mismatches() int

	// Wait accounting, driven by the coordinator's conflict resolution.
	IncrementWait() int
	ResetWait()
	WaitCount() int
}
