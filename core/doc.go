// Package core provides the foundational domain types used by GridMesh. It
// defines the core abstractions for:
//
//   - Positions and cell symbols on a 2-D occupancy grid
//   - The immutable ground-truth Grid and per-agent LocalMap views
//   - Facts (discovered cell contents) exchanged between agents
//   - The PositionRegistry tracking agent locations during a run
//   - Events (immutable per-step simulation records)
//   - The Agent interface driven by the engine
//
// The package intentionally keeps implementation concerns (search algorithms,
// concrete agents, the coordinator loop) out of scope, exposing small
// interfaces to enable custom implementations and isolated testing.
package core
