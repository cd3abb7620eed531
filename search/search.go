package search

import (
	"container/heap"

	"github.com/hupe1980/gridmesh/core"
)

// Result is the outcome of a search. "No path" is expressed by Found=false,
// never by an error: an unreachable goal is an ordinary answer here.
type Result struct {
	// Path is the ordered start→goal position sequence, inclusive of both
	// endpoints. Nil when Found is false.
	Path []core.Position
	// Cost is the number of steps in Path (unit step cost).
	Cost float64
	// Expanded counts the nodes popped and expanded before termination.
	Expanded int
	// Found reports whether a path was discovered.
	Found bool
}

// scorer combines path cost g and heuristic estimate h into the frontier
// priority f. It is the only thing that differs between the plain best-first
// variants.
type scorer func(g, h float64) float64

// AStar performs A* search: f = g + h. Optimal when h is admissible.
func AStar(m core.CellMap, start, goal core.Position, h Heuristic) Result {
	return bestFirst(m, start, goal, h, func(g, hv float64) float64 { return g + hv })
}

// Greedy performs Greedy Best-First search: f = h. Typically faster than
// A* but not optimal.
func Greedy(m core.CellMap, start, goal core.Position, h Heuristic) Result {
	return bestFirst(m, start, goal, h, func(_, hv float64) float64 { return hv })
}

// WeightedAStar performs Weighted A*: f = g + weight*h. A weight above 1
// makes the search greedier, trading optimality for speed.
func WeightedAStar(m core.CellMap, start, goal core.Position, h Heuristic, weight float64) Result {
	return bestFirst(m, start, goal, h, func(g, hv float64) float64 { return g + weight*hv })
}

// DynamicWeightedAStar performs A* with a Manhattan heuristic whose weight
// decays from 2 toward 1 as the remaining estimate shrinks relative to the
// initial start→goal Manhattan distance: w = 1 + h/initial. The decay biases
// exploration early and becomes cost-uniform near the goal.
func DynamicWeightedAStar(m core.CellMap, start, goal core.Position) Result {
	initial := float64(start.Manhattan(goal))
	score := func(g, hv float64) float64 {
		ratio := 1.0
		if initial != 0 {
			ratio = hv / initial
		}
		return g + (1+ratio)*hv
	}
	return bestFirst(m, start, goal, Manhattan(), score)
}

// bestFirst is the engine shared by the unbounded variants: pop the best
// frontier node, skip and never re-expand closed positions, stop when the
// goal is popped or the frontier empties.
func bestFirst(m core.CellMap, start, goal core.Position, h Heuristic, score scorer) Result {
	a := &arena{}
	open := &frontier{a: a}
	heap.Init(open)

	root := a.alloc(noParent, start)
	a.nodes[root].h = h(Node{a: a, id: root}, goal)
	a.nodes[root].f = score(0, a.nodes[root].h)
	heap.Push(open, root)

	closed := make(map[core.Position]struct{})
	rows, cols := m.Dims()
	expanded := 0

	for open.Len() > 0 {
		id := heap.Pop(open).(int)
		pos := a.nodes[id].pos
		if _, done := closed[pos]; done {
			continue
		}
		closed[pos] = struct{}{}
		expanded++

		if pos == goal {
			return Result{Path: a.pathTo(id), Cost: a.nodes[id].g, Expanded: expanded, Found: true}
		}

		g := a.nodes[id].g
		for _, d := range core.StepOrder {
			next := pos.Add(d)
			if next.Row < 0 || next.Row >= rows || next.Col < 0 || next.Col >= cols {
				continue
			}
			if m.At(next) == core.Obstacle {
				continue
			}
			if _, done := closed[next]; done {
				continue
			}
			nid := a.alloc(id, next)
			n := &a.nodes[nid]
			n.g = g + 1
			n.h = h(Node{a: a, id: nid}, goal)
			n.f = score(n.g, n.h)
			heap.Push(open, nid)
		}
	}

	return Result{Expanded: expanded}
}
