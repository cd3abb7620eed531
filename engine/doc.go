// Package engine drives the synchronous multi-agent simulation loop. The
// Coordinator owns the ground-truth grid, the agents and the position
// registry, and advances discrete time steps through fixed phases:
//
//  1. Intent: every agent proposes its next path position
//  2. Conflict resolution: deterministic priority by ascending agent id:
//     same-target conflicts go to the lowest id, occupied cells force a
//     wait (goal-cell entry excepted), and agents that waited twice are
//     nudged into replanning toward their own goal
//  3. Execution: cleared agents move, then immediately replan
//  4. Broadcast: the union of all agents' knowledge is delivered to every
//     agent as a full barrier
//  5. Refresh: stale robot markers in every local map are re-stamped from
//     the registry
//  6. Termination: success, stall or step cap
//
// A run is single-threaded and fully deterministic; independent runs share
// no state and may execute in parallel.
package engine
