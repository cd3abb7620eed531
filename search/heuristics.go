package search

import (
	"math"

	"github.com/hupe1980/gridmesh/core"
)

// Heuristic estimates the remaining cost from a search node to the goal.
// Implementations receive the node view rather than a bare position so
// direction-aware heuristics can inspect ancestry; distance heuristics
// simply ignore it.
type Heuristic func(n Node, goal core.Position) float64

// Manhattan returns the L1 distance heuristic. Admissible on 4-connected
// grids with unit step cost.
func Manhattan() Heuristic {
	return func(n Node, goal core.Position) float64 {
		return float64(n.Position().Manhattan(goal))
	}
}

// Euclidean returns the L2 distance heuristic.
func Euclidean() Heuristic {
	return func(n Node, goal core.Position) float64 {
		return n.Position().Euclidean(goal)
	}
}

// Relaxed returns the relaxed-problem heuristic: the exact shortest-path
// length over an obstacle-free grid spanning the bounding box of the two
// points, computed by recursively invoking A*. Results are memoized per
// returned Heuristic so the recursion cost is paid once per position pair.
// Returns +Inf when the relaxed instance has no path.
func Relaxed() Heuristic {
	type pair struct{ a, b core.Position }
	cache := make(map[pair]float64)
	return func(n Node, goal core.Position) float64 {
		k := pair{n.Position(), goal}
		if v, ok := cache[k]; ok {
			return v
		}
		rows := max(k.a.Row, k.b.Row) + 1
		cols := max(k.a.Col, k.b.Col) + 1
		res := AStar(freeMap{rows: rows, cols: cols}, k.a, k.b, Manhattan())
		v := math.Inf(1)
		if res.Found {
			v = float64(len(res.Path) - 1)
		}
		cache[k] = v
		return v
	}
}

// Learned defaults, taken from offline tuning of obstacle density against
// detour length.
const (
	LearnedRadius        = 3
	LearnedDensityWeight = 3.0
	LearnedGoalWeight    = 1.0
)

// Learned returns the learned heuristic: a linear combination of the local
// obstacle density around the node (counted on m within the given radius)
// and the Manhattan distance to the goal. Not admissible; it trades
// optimality for steering away from cluttered regions.
func Learned(m core.CellMap, radius int, densityWeight, goalWeight float64) Heuristic {
	rows, cols := m.Dims()
	return func(n Node, goal core.Position) float64 {
		pos := n.Position()
		obstacles := 0
		for dr := -radius; dr <= radius; dr++ {
			for dc := -radius; dc <= radius; dc++ {
				p := core.Position{Row: pos.Row + dr, Col: pos.Col + dc}
				if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
					continue
				}
				if m.At(p) == core.Obstacle {
					obstacles++
				}
			}
		}
		return densityWeight*float64(obstacles) + goalWeight*float64(pos.Manhattan(goal))
	}
}

// DirectionalBias returns a Manhattan heuristic that adds a unit penalty
// whenever the step leading to the node differs in direction from the step
// before it, biasing the search toward straight runs. Requires a two
// ancestor lookback; nodes closer to the root pay no penalty.
func DirectionalBias() Heuristic {
	return func(n Node, goal core.Position) float64 {
		h := float64(n.Position().Manhattan(goal))
		parent, ok := n.Parent()
		if !ok {
			return h
		}
		grand, ok := parent.Parent()
		if !ok {
			return h
		}
		prev := parent.Position().Sub(grand.Position())
		last := n.Position().Sub(parent.Position())
		if prev != last {
			h++
		}
		return h
	}
}

// freeMap is an obstacle-free CellMap used by the relaxed heuristic.
type freeMap struct {
	rows, cols int
}

func (f freeMap) Dims() (int, int)           { return f.rows, f.cols }
func (f freeMap) At(core.Position) core.Cell { return core.Free }
