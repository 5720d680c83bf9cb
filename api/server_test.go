package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/api"
	"github.com/katalvlaran/lvsearch/core"
)

func chainServer(opts ...api.Option) *api.Server {
	g := core.NewGraph(core.Undirected)
	g.AddEdge(0, 1, 0)
	g.AddEdge(1, 2, 0)
	g.AddEdge(2, 3, 0)
	g.EnsureState(4)
	return api.New(g, opts...)
}

func do(t *testing.T, s *api.Server, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestHealthz(t *testing.T) {
	resp, body := do(t, chainServer(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestGraphInfo(t *testing.T) {
	resp, body := do(t, chainServer(), http.MethodGet, "/graph", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var info api.GraphInfo
	require.NoError(t, json.Unmarshal(body, &info))
	assert.Equal(t, api.GraphInfo{Kind: "Undirected", States: 5, Edges: 3}, info)
}

func TestSearch_Found(t *testing.T) {
	resp, body := do(t, chainServer(), http.MethodPost, "/search",
		`{"start":0,"goal":3,"algorithm":"breadth-first"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out api.SearchResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "breadth-first", out.Algorithm)
	assert.Equal(t, "found", out.Outcome)
	assert.Equal(t, 3, out.Depth)
	assert.Equal(t, []core.State{0, 1, 2, 3}, out.Path)
	assert.Positive(t, out.Expanded)

	_, err := uuid.Parse(out.ID)
	require.NoError(t, err)
	assert.Equal(t, out.ID, resp.Header.Get(api.RequestIDHeader))
}

func TestSearch_DefaultAlgorithmAndLimit(t *testing.T) {
	s := chainServer()

	_, body := do(t, s, http.MethodPost, "/search", `{"start":3,"goal":0}`)
	var out api.SearchResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "bi-directional", out.Algorithm)
	assert.Equal(t, []core.State{3, 2, 1, 0}, out.Path)

	// limits are per request: a cut-off request does not leak into the next one
	_, body = do(t, s, http.MethodPost, "/search", `{"start":0,"goal":3,"algorithm":"depth-limited","limit":2}`)
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "cutoff", out.Outcome)
	assert.Equal(t, 0, out.Depth)
	assert.Empty(t, out.Path)

	_, body = do(t, s, http.MethodPost, "/search", `{"start":0,"goal":3,"algorithm":"depth-limited"}`)
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "found", out.Outcome)
}

func TestSearch_Failure(t *testing.T) {
	_, body := do(t, chainServer(), http.MethodPost, "/search",
		`{"start":0,"goal":4,"algorithm":"iterative-deepening"}`)
	var out api.SearchResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "failure", out.Outcome)
	assert.NotNil(t, out.Path)
	assert.Empty(t, out.Path)
}

func TestSearch_Errors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed body", `{"start":`, http.StatusBadRequest},
		{"unknown algorithm", `{"start":0,"goal":1,"algorithm":"a-star"}`, http.StatusBadRequest},
		{"tree search not served", `{"start":0,"goal":1,"algorithm":"tree-search"}`, http.StatusBadRequest},
		{"negative limit", `{"start":0,"goal":1,"limit":-1}`, http.StatusBadRequest},
		{"limit above max", `{"start":0,"goal":1,"limit":9}`, http.StatusBadRequest},
		{"unknown start", `{"start":50,"goal":1}`, http.StatusUnprocessableEntity},
		{"unknown goal", `{"start":0,"goal":50}`, http.StatusUnprocessableEntity},
	}
	s := chainServer(api.WithMaxLimit(8))
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := do(t, s, http.MethodPost, "/search", tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)

			var e map[string]string
			require.NoError(t, json.Unmarshal(body, &e))
			assert.NotEmpty(t, e["error"])
		})
	}
}
