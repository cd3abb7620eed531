package search

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gridmesh/internal/testutil"
)

func TestSMAStar_GenerousBoundMatchesAStar(t *testing.T) {
	g := testutil.ParseGrid(t, `
		. . . . .
		. # # # .
		. . . # .
		# # . . .
	`)
	start, goal := testutil.P(0, 0), testutil.P(3, 4)

	optimal := AStar(g, start, goal, Manhattan())
	require.True(t, optimal.Found)

	// A frontier bound at least the free-cell count never forces an
	// eviction that matters, so the cost matches plain A*.
	bounded := SMAStar(g, start, goal, Manhattan(), 14)
	require.True(t, bounded.Found)
	assert.Equal(t, optimal.Cost, bounded.Cost)
	assertValidPath(t, g, start, goal, bounded.Path)
}

func TestSMAStar_TightBoundOnCorridor(t *testing.T) {
	g := testutil.FreeGrid(t, 1, 6)
	start, goal := testutil.P(0, 0), testutil.P(0, 5)

	res := SMAStar(g, start, goal, Manhattan(), 1)

	require.True(t, res.Found)
	assert.Equal(t, 5.0, res.Cost)
	assertValidPath(t, g, start, goal, res.Path)
}

func TestSMAStar_NoPath(t *testing.T) {
	g := testutil.ParseGrid(t, `
		. # .
		. # .
	`)

	res := SMAStar(g, testutil.P(0, 0), testutil.P(0, 2), Manhattan(), 10)

	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
}

func TestFrontier_WorstPrefersHighestFThenGreatestDepth(t *testing.T) {
	a := &arena{}
	open := &frontier{a: a}
	heap.Init(open)

	root := a.alloc(noParent, testutil.P(0, 0))
	shallow := a.alloc(root, testutil.P(0, 1))
	deep := a.alloc(shallow, testutil.P(0, 2))
	low := a.alloc(root, testutil.P(1, 0))

	a.nodes[shallow].f = 7
	a.nodes[deep].f = 7
	a.nodes[low].f = 3
	heap.Push(open, shallow)
	heap.Push(open, deep)
	heap.Push(open, low)

	worst := open.ids[open.worst()]
	assert.Equal(t, deep, worst, "equal f must evict the deeper node")
}

func TestEvictWorst_BacksUpMinimumSiblingF(t *testing.T) {
	a := &arena{}
	open := &frontier{a: a}
	heap.Init(open)

	parent := a.alloc(noParent, testutil.P(0, 0))
	keep := a.alloc(parent, testutil.P(0, 1))
	worst := a.alloc(parent, testutil.P(1, 0))

	a.nodes[parent].f = 2
	a.nodes[keep].f = 5
	a.nodes[worst].f = 9
	heap.Push(open, keep)
	heap.Push(open, worst)

	evictWorst(a, open)

	assert.Equal(t, 1, open.Len())
	assert.Equal(t, keep, open.ids[0])
	assert.Equal(t, []int{keep}, a.nodes[parent].children, "worst must be detached from its parent")
	assert.Equal(t, 5.0, a.nodes[parent].f, "parent f must be raised to the minimum remaining child f")
}

func TestEvictWorst_NeverLowersParentF(t *testing.T) {
	a := &arena{}
	open := &frontier{a: a}
	heap.Init(open)

	parent := a.alloc(noParent, testutil.P(0, 0))
	keep := a.alloc(parent, testutil.P(0, 1))
	worst := a.alloc(parent, testutil.P(1, 0))

	a.nodes[parent].f = 8
	a.nodes[keep].f = 5
	a.nodes[worst].f = 9
	heap.Push(open, keep)
	heap.Push(open, worst)

	evictWorst(a, open)

	assert.Equal(t, 8.0, a.nodes[parent].f)
}
