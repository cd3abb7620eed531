package core

// PositionRegistry maps agent ids to their current grid positions. It is
// created and owned by a single coordinator and passed explicitly to the
// agents of that run, so independent simulations never share state. A run is
// single-threaded by contract: each entry is written only by its agent
// during the execution phase, so the registry needs no locking.
type PositionRegistry struct {
	positions map[int]Position
}

// NewPositionRegistry creates an empty registry.
func NewPositionRegistry() *PositionRegistry {
	return &PositionRegistry{positions: make(map[int]Position)}
}

// Set records the current position of the agent with the given id.
func (r *PositionRegistry) Set(id int, p Position) { r.positions[id] = p }

// Get returns the recorded position of an agent.
func (r *PositionRegistry) Get(id int) (Position, bool) {
	p, ok := r.positions[id]
	return p, ok
}

// Len returns the number of registered agents.
func (r *PositionRegistry) Len() int { return len(r.positions) }

// Snapshot returns a copy of the registry contents.
func (r *PositionRegistry) Snapshot() map[int]Position {
	out := make(map[int]Position, len(r.positions))
	for id, p := range r.positions {
		out[id] = p
	}
	return out
}
