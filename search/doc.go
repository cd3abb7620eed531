// Package search implements the grid search engine: a family of heuristic
// best-first algorithms (A*, Greedy Best-First, Weighted A*, Dynamic-Weighted
// A* and a bounded-memory SMA*-style variant) plus the heuristics they share.
//
// All variants obey the same contract: given a CellMap, start, goal and a
// Heuristic they return a Result; "no path" is a result, never an error.
// Neighbor expansion order is fixed (right, left, down, up) and part of the
// contract because it drives tie-breaking. Only Obstacle cells are
// impassable; Unknown cells are deliberately treated as free so planning on
// partial knowledge stays optimistic.
//
// Search trees are held in a per-call arena of nodes addressed by index,
// with parent/child links stored as indices. The arena grounds both path
// reconstruction and the bounded-memory backup step, and is discarded when
// the call returns.
package search
