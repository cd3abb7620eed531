package search

import (
	"container/heap"

	"github.com/hupe1980/gridmesh/core"
)

// SMAStar performs a simplified memory-bounded A* search. It behaves like
// AStar until the frontier exceeds maxNodes; then the worst frontier node
// (highest f, ties broken by greatest depth) is evicted and its f-value is
// backed up into its parent as the minimum f among the parent's remaining
// children, forgetting the node while remembering how promising its
// subtree looked. Forgotten nodes may be regenerated later.
//
// The closed set is still honored when forgotten nodes regenerate, so a
// bound tighter than the solution depth can cost completeness: the search
// may report not-found on solvable instances.
func SMAStar(m core.CellMap, start, goal core.Position, h Heuristic, maxNodes int) Result {
	if maxNodes < 1 {
		maxNodes = 1
	}
	a := &arena{}
	open := &frontier{a: a}
	heap.Init(open)

	root := a.alloc(noParent, start)
	a.nodes[root].h = h(Node{a: a, id: root}, goal)
	a.nodes[root].f = a.nodes[root].h
	heap.Push(open, root)

	closed := make(map[core.Position]struct{})
	rows, cols := m.Dims()
	expanded := 0

	for open.Len() > 0 {
		for open.Len() > maxNodes {
			evictWorst(a, open)
		}

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
			n.f = n.g + n.h
			heap.Push(open, nid)
		}
	}

	return Result{Expanded: expanded}
}

// evictWorst removes the worst frontier node and backs its value up into the
// parent: parent.f = max(parent.f, min f over the parent's remaining
// children). Parents still sitting in the frontier are re-ordered in place.
func evictWorst(a *arena, open *frontier) {
	wi := open.worst()
	worst := heap.Remove(open, wi).(int)

	parent := a.nodes[worst].parent
	if parent == noParent {
		return
	}
	a.detachChild(parent, worst)

	siblings := a.nodes[parent].children
	if len(siblings) == 0 {
		return
	}
	minF := a.nodes[siblings[0]].f
	for _, s := range siblings[1:] {
		if a.nodes[s].f < minF {
			minF = a.nodes[s].f
		}
	}
	if minF > a.nodes[parent].f {
		a.nodes[parent].f = minF
		for i, id := range open.ids {
			if id == parent {
				heap.Fix(open, i)
				break
			}
		}
	}
}
