package search

import "github.com/hupe1980/gridmesh/core"

// noParent marks the root node's parent index.
const noParent = -1

// node is one entry of a search-tree arena. Parent and children are arena
// indices, never pointers, so the tree has no ownership cycles and pruning
// only touches plain ints.
type node struct {
	pos      core.Position
	parent   int
	g, h, f  float64
	depth    int
	children []int
}

// arena owns every node created during a single search call. It is created
// per call and discarded after path extraction.
type arena struct {
	nodes []node
}

// alloc appends a node below parent and returns its index. Depth and the
// parent's child list are maintained here so the bounded-memory variant can
// rely on them.
func (a *arena) alloc(parent int, pos core.Position) int {
	n := node{pos: pos, parent: parent}
	if parent != noParent {
		n.depth = a.nodes[parent].depth + 1
	}
	id := len(a.nodes)
	a.nodes = append(a.nodes, n)
	if parent != noParent {
		p := &a.nodes[parent]
		p.children = append(p.children, id)
	}
	return id
}

// pathTo reconstructs the start→id position sequence by walking parent links.
func (a *arena) pathTo(id int) []core.Position {
	var path []core.Position
	for cur := id; cur != noParent; cur = a.nodes[cur].parent {
		path = append(path, a.nodes[cur].pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// detachChild removes child from parent's child list.
func (a *arena) detachChild(parent, child int) {
	kids := a.nodes[parent].children
	for i, c := range kids {
		if c == child {
			a.nodes[parent].children = append(kids[:i], kids[i+1:]...)
			return
		}
	}
}

// Node is a read-only view of one search-tree node handed to heuristics.
// It exposes ancestry so direction-aware heuristics can look back through
// the parent chain without owning references into the arena.
type Node struct {
	a  *arena
	id int
}

// Position returns the node's grid position.
func (n Node) Position() core.Position { return n.a.nodes[n.id].pos }

// Depth returns the node's depth in the search tree; the root is 0.
func (n Node) Depth() int { return n.a.nodes[n.id].depth }

// Parent returns the parent view and true, or a zero view and false for the
// root.
func (n Node) Parent() (Node, bool) {
	p := n.a.nodes[n.id].parent
	if p == noParent {
		return Node{}, false
	}
	return Node{a: n.a, id: p}, true
}
