// Package agent contains the partial-knowledge agent implementation used by
// the GridMesh simulation. The package focuses on three concerns:
//
//  1. Sensing: copying ground truth within the sensor radius into the
//     agent's private LocalMap and recording newly discovered facts
//  2. Planning: A* on the LocalMap with an exploration fallback toward the
//     nearest reachable Unknown cell when the goal is unreachable
//  3. Knowledge exchange: sharing the fact record and adopting facts from
//     other agents, replanning whenever something new is learned
//
// Design principles:
//   - No hidden global state: ground truth, registry and logger are wired
//     in explicitly at construction
//   - Planning never reads ground truth; only Sense does
//   - Moves are executed unconditionally; walking onto an undiscovered
//     obstacle is surfaced as a reality mismatch, not prevented
package agent
