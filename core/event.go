package core

import (
	"time"

	"github.com/google/uuid"
)

// EventKind categorizes simulation events.
type EventKind string

const (
	// EventMoved records an agent moving one step along its path.
	EventMoved EventKind = "moved"
	// EventWaited records an agent skipping its turn after losing a
	// conflict resolution round.
	EventWaited EventKind = "waited"
	// EventReplanned records the anti-deadlock nudge: an agent replanning
	// toward its own goal after waiting too long.
	EventReplanned EventKind = "replanned"
	// EventRealityMismatch flags an agent stepping onto a cell its local
	// map believed passable while ground truth marks an obstacle. The move
	// is executed anyway; the mismatch is an observation, not a failure.
	EventRealityMismatch EventKind = "reality_mismatch"
	// EventGoalEntryOccupied records an agent entering its goal cell even
	// though another agent already occupies it. Goal entry is exempt from
	// occupancy conflicts.
	EventGoalEntryOccupied EventKind = "goal_entry_occupied"
	// EventBroadcast records one all-to-all knowledge exchange.
	EventBroadcast EventKind = "broadcast"
	// EventFinished records run termination with the outcome in Detail.
	EventFinished EventKind = "finished"
)

// Event is an immutable record of one simulation occurrence. Events are the
// core's only channel to external reporting collaborators; after emission
// they must be treated as read-only.
type Event struct {
	ID        string    `json:"id"`
	RunID     string    `json:"run_id"`
	Kind      EventKind `json:"kind"`
	Step      int       `json:"step"`
	AgentID   int       `json:"agent_id"`
	Pos       Position  `json:"pos"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEvent creates an event bound to a run with a fresh unique id and a UTC
// timestamp. AgentID is -1 for events not attributable to a single agent.
func NewEvent(runID string, kind EventKind, step, agentID int) Event {
	return Event{
		ID:        NewID(),
		RunID:     runID,
		Kind:      kind,
		Step:      step,
		AgentID:   agentID,
		Timestamp: time.Now().UTC(),
	}
}

// NewID generates a new unique identifier for runs and events.
func NewID() string { return uuid.NewString() }

// EventSink receives emitted events. A nil sink disables emission. Sinks are
// invoked synchronously from the coordinator loop and must not block.
type EventSink func(Event)
