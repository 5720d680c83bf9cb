package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
)

func starProblem(t *testing.T) *Problem {
	t.Helper()
	g := core.NewGraph(core.Directed)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 2)
	g.AddEdge(0, 3, 3)
	p, err := NewProblem(0, 3, g)
	require.NoError(t, err)
	return p
}

func TestExpand_SingleUse(t *testing.T) {
	p := starProblem(t)
	w := p.newWalker(p.graph)
	root := w.root(p.start)
	seq := w.expand(root)

	var got []core.State
	for n := range seq {
		got = append(got, n.State)
		assert.Equal(t, root, n.Parent)
		assert.Equal(t, 1, n.Depth)
		assert.Equal(t, int64(n.State), n.Cost)
	}
	assert.Equal(t, []core.State{1, 2, 3}, got)

	for range seq {
		t.Fatal("second iteration must yield nothing")
	}
	assert.Equal(t, Stats{Expanded: 1, Generated: 3}, w.stats)
}

func TestExpand_StopsEarly(t *testing.T) {
	p := starProblem(t)
	w := p.newWalker(p.graph)
	root := w.root(p.start)

	for n := range w.expand(root) {
		if n.State == 1 {
			break
		}
	}
	assert.Equal(t, Stats{Expanded: 1, Generated: 1}, w.stats)
	assert.Equal(t, 1, len(w.tree.nodes), "children are not stored by expand")
}

func TestTree_PathAndTruncate(t *testing.T) {
	tr := newTree(4)
	r := tr.add(Node{State: 5, Parent: noParent})
	a := tr.add(Node{State: 6, Parent: r, Depth: 1})
	b := tr.add(Node{State: 7, Parent: a, Depth: 2})
	assert.Equal(t, []core.State{5, 6, 7}, tr.path(b))
	assert.Equal(t, []core.State{5}, tr.path(r))

	tr.truncate(a)
	assert.Len(t, tr.nodes, 1)
	c := tr.add(Node{State: 9, Parent: r, Depth: 1})
	assert.Equal(t, a, c)
	assert.Equal(t, []core.State{5, 9}, tr.path(c))
}

// TestDepthLimited_NeverExpandsAtLimit: nodes at the limit are cut off, not expanded.
func TestDepthLimited_NeverExpandsAtLimit(t *testing.T) {
	g := core.NewGraph(core.Undirected)
	g.AddEdge(0, 1, 0)
	g.AddEdge(1, 2, 0)
	g.EnsureState(3)

	const limit = 6
	var maxDepth int
	p, err := NewProblem(0, 3, g, WithDepthLimit(limit), WithOnExpand(func(n Node) {
		maxDepth = max(maxDepth, n.Depth)
	}))
	require.NoError(t, err)

	res := p.DepthLimitedSearch()
	assert.True(t, res.Is(CutOff))
	assert.Equal(t, limit-1, maxDepth)
}
