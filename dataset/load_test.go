package dataset_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dataset"
)

const chain = "# Undirected\n0 1\n1 2\n2 3\n"

// TestLoad_UndirectedChain is the round-trip scenario: 3 edges, 4 states, mutual steps.
func TestLoad_UndirectedChain(t *testing.T) {
	g, st, err := dataset.Load(strings.NewReader(chain))
	require.NoError(t, err)

	assert.Equal(t, core.Undirected, g.Kind())
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, dataset.Stats{
		Kind: core.Undirected, Lines: 3, Comments: 1, States: 4, Edges: 3, Elapsed: st.Elapsed,
	}, st)
	for u := core.State(0); u < 3; u++ {
		assert.Contains(t, g.Actions(u), core.Action{Target: u + 1})
		assert.Contains(t, g.Actions(u+1), core.Action{Target: u})
	}
}

func TestLoad_SkipsMalformed(t *testing.T) {
	in := "# Directed graph\n# FromNodeId\tToNodeId\n0 1\nbogus\n\n1\n1 2 # trailing note\n2,3\n"
	g, st, err := dataset.Load(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, core.Directed, g.Kind())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, st.Skipped)
	assert.Equal(t, 2, st.Comments)
	assert.Equal(t, 5, st.Lines)
	assert.Equal(t, []core.Action{{Target: 1}}, g.Actions(0))
	assert.Equal(t, []core.Action{{Target: 2}}, g.Actions(1), "a trailing note keeps the edge")
	assert.Equal(t, []core.Action{{Target: 3}}, g.Actions(2))
}

// TestLoad_BodyHashLines: after the header, '#' does not turn a line into a comment.
func TestLoad_BodyHashLines(t *testing.T) {
	g, st, err := dataset.Load(strings.NewReader("# Directed\n0 1\n1 2 # bridge\n# 5 6\n2 3\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, []core.Action{{Target: 2}}, g.Actions(1))
	assert.Equal(t, 1, st.Skipped, "a body line starting with # does not parse")
	assert.Equal(t, 1, st.Comments)
}

// TestLoad_FloatCosts is a headerless CSV with fractional weights: every edge
// is kept with cost 0.
func TestLoad_FloatCosts(t *testing.T) {
	g, st, err := dataset.Load(strings.NewReader("0,1,2.5\n1,2,0.7\n2,3,1.25\n"))
	require.NoError(t, err)

	assert.Equal(t, core.Labeled, st.Kind)
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 0, st.Skipped)
	assert.Equal(t, []core.Action{{Target: 0}, {Target: 2}}, g.Actions(1))
}

func TestLoad_NegativeCostSkipped(t *testing.T) {
	g, st, err := dataset.Load(strings.NewReader("0 1 3\n1 2 -1\n"))
	require.NoError(t, err)

	assert.Equal(t, 1, st.Skipped)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, g.Len())
}

func TestLoad_MaxStates(t *testing.T) {
	_, _, err := dataset.Load(strings.NewReader("0 1\n0 4294967295\n"))
	require.ErrorIs(t, err, dataset.ErrTooManyStates)
	assert.Contains(t, err.Error(), "line 2")

	_, _, err = dataset.Load(strings.NewReader("# Directed\n0 1\n1 8\n"), dataset.WithMaxStates(8))
	require.ErrorIs(t, err, dataset.ErrTooManyStates)

	g, _, err := dataset.Load(strings.NewReader("# Directed\n0 1\n1 7\n"), dataset.WithMaxStates(8))
	require.NoError(t, err)
	assert.Equal(t, 8, g.Len())

	g, _, err = dataset.Load(strings.NewReader("0 99\n"), dataset.WithMaxStates(0))
	require.NoError(t, err)
	assert.Equal(t, 100, g.Len())
}

func TestLoad_LabeledDefault(t *testing.T) {
	g, st, err := dataset.Load(strings.NewReader("0 1 5\n1 2 7\n"))
	require.NoError(t, err)

	assert.Equal(t, core.Labeled, st.Kind)
	assert.Equal(t, []core.Action{{Target: 1, Cost: 5}}, g.Actions(0))
	assert.Equal(t, []core.Action{{Target: 0, Cost: 5}, {Target: 2, Cost: 7}}, g.Actions(1))
}

func TestLoad_Empty(t *testing.T) {
	g, st, err := dataset.Load(strings.NewReader("# Directed\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, core.Directed, st.Kind)
}

func TestLoad_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(chain))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	g, st, err := dataset.Load(&buf)
	require.NoError(t, err)
	assert.True(t, st.Compressed)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestLoadFile(t *testing.T) {
	_, _, err := dataset.LoadFile("")
	require.ErrorIs(t, err, dataset.ErrEmptyPath)

	_, _, err = dataset.LoadFile(filepath.Join(t.TempDir(), "missing.txt.gz"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "chain.txt")
	require.NoError(t, os.WriteFile(path, []byte(chain), 0o600))
	g, _, err := dataset.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())
}

func TestWrite_RoundTrip(t *testing.T) {
	for _, kind := range []core.Kind{core.Directed, core.Undirected, core.Labeled} {
		t.Run(kind.String(), func(t *testing.T) {
			g := core.NewGraph(kind)
			g.AddEdge(0, 1, 3)
			g.AddEdge(1, 2, 4)
			g.AddEdge(3, 0, 1)

			var buf bytes.Buffer
			require.NoError(t, dataset.Write(&buf, g))

			back, _, err := dataset.Load(&buf)
			require.NoError(t, err)
			assert.Equal(t, kind, back.Kind())
			assert.Equal(t, g.Len(), back.Len())
			assert.Equal(t, g.EdgeCount(), back.EdgeCount())
			for s := core.State(0); int(s) < g.Len(); s++ {
				if kind == core.Labeled {
					assert.ElementsMatch(t, g.Actions(s), back.Actions(s))
					continue
				}
				// costs are not serialized outside Labeled graphs
				assert.Len(t, back.Actions(s), len(g.Actions(s)))
			}
		})
	}
}
