// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
)

func TestBuildGraph_Sizes(t *testing.T) {
	cases := []struct {
		name   string
		kind   core.Kind
		con    builder.Constructor
		states int
		edges  int
	}{
		{"path", core.Undirected, builder.Path(5), 5, 4},
		{"cycle", core.Undirected, builder.Cycle(5), 5, 5},
		{"star", core.Directed, builder.Star(4), 4, 3},
		{"grid", core.Undirected, builder.Grid(3, 4), 12, 17},
		{"grid single cell", core.Undirected, builder.Grid(1, 1), 1, 0},
		{"complete undirected", core.Undirected, builder.Complete(4), 4, 6},
		{"complete directed", core.Directed, builder.Complete(4), 4, 12},
		{"sparse p=0", core.Directed, builder.RandomSparse(6, 0), 6, 0},
		{"sparse p=1", core.Undirected, builder.RandomSparse(5, 1), 5, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.kind, nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.states, g.Len())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestBuildGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"path too short", builder.Path(1), builder.ErrTooFewVertices},
		{"cycle too short", builder.Cycle(2), builder.ErrTooFewVertices},
		{"star too short", builder.Star(1), builder.ErrTooFewVertices},
		{"grid empty", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"complete empty", builder.Complete(0), builder.ErrTooFewVertices},
		{"sparse bad p", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"sparse no rng", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(core.Undirected, nil, tc.con)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(core.Directed, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(30, 0.1))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	for s := core.State(0); int(s) < a.Len(); s++ {
		require.Equal(t, a.Actions(s), b.Actions(s))
	}
}

func TestLabeledCosts(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithSeed(1),
		builder.WithCostFn(builder.UniformCost(2, 9)),
	}
	g, err := builder.BuildGraph(core.Labeled, opts, builder.Path(10))
	require.NoError(t, err)
	for s := core.State(0); int(s) < g.Len(); s++ {
		for _, a := range g.Actions(s) {
			assert.GreaterOrEqual(t, a.Cost, int32(2))
			assert.LessOrEqual(t, a.Cost, int32(9))
		}
	}

	// unlabeled kinds ignore the cost generator
	u, err := builder.BuildGraph(core.Undirected, opts, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []core.Action{{Target: 1}}, u.Actions(0))
}

func TestGrid_Layout(t *testing.T) {
	g, err := builder.BuildGraph(core.Directed, nil, builder.Grid(2, 3))
	require.NoError(t, err)
	// cell (0,1) = 1: right then down
	assert.Equal(t, []core.Action{{Target: 2}, {Target: 4}}, g.Actions(1))
	// last cell has no outgoing edges in a directed grid
	assert.Empty(t, g.Actions(5))
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithCostFn(nil) })
	assert.Panics(t, func() { builder.UniformCost(5, 1) })
	assert.Equal(t, int32(3), builder.UniformCost(3, 8)(nil))
	assert.Equal(t, int32(4), builder.UniformCost(4, 4)(rand.New(rand.NewSource(1))))
}
