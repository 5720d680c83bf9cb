// File: graph.go
// Role: load-time mutation (AddEdge) and read-only queries over the adjacency table.
// Determinism:
//   - Actions(s) returns actions in insertion order.
//   - Reversed() inserts transposed actions by ascending source state.
// Concurrency:
//   - AddEdge under the write lock; every query under the read lock.

package core

// AddEdge inserts the transition from→to with the given cost.
//
// Steps:
//  1. Grow the node table so both endpoints are valid indices.
//  2. Append (to, cost) at from unless that exact pair is already stored.
//  3. For bidirectional kinds append (from, cost) at to unless already stored.
//
// Each newly stored forward action counts as one edge, so a directed dataset that
// lists both u→v and v→u counts two edges while an undirected one counts one.
// AddEdge must not be called once the graph is handed to a search.
// Complexity: O(deg(from) + deg(to)) for the duplicate scans.
func (g *Graph) AddEdge(from, to State, cost int32) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.grow(max(from, to))

	if !hasAction(g.nodes[from], to, cost) {
		g.nodes[from] = append(g.nodes[from], Action{Target: to, Cost: cost})
		g.edgeCount++
	}
	if g.kind.Bidirectional() && !hasAction(g.nodes[to], from, cost) {
		g.nodes[to] = append(g.nodes[to], Action{Target: from, Cost: cost})
	}
}

// EnsureState grows the node table so s is a valid state with no actions
// unless it already has some. Used for isolated states that no edge mentions.
func (g *Graph) EnsureState(s State) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.grow(s)
}

// grow extends the node table to cover state s. Caller holds the write lock.
func (g *Graph) grow(s State) {
	need := int(s) + 1
	if need <= len(g.nodes) {
		return
	}
	if need <= cap(g.nodes) {
		g.nodes = g.nodes[:need]
		return
	}
	grown := make([][]Action, need, max(need, 2*cap(g.nodes)))
	copy(grown, g.nodes)
	g.nodes = grown
}

func hasAction(actions []Action, target State, cost int32) bool {
	for _, a := range actions {
		if a.Target == target && a.Cost == cost {
			return true
		}
	}
	return false
}

// Kind returns the graph classification chosen at load time.
func (g *Graph) Kind() Kind {
	return g.kind
}

// Len returns the size of the node table, i.e. the number of valid states.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of stored forward actions (see AddEdge).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edgeCount
}

// HasState reports whether s is a valid index into the node table.
func (g *Graph) HasState(s State) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return int(s) < len(g.nodes)
}

// Actions returns the outgoing actions of s in insertion order.
// The returned slice is shared with the graph and must not be modified.
// States outside the table have no actions.
func (g *Graph) Actions(s State) []Action {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if int(s) >= len(g.nodes) {
		return nil
	}
	return g.nodes[s]
}

// Nodes returns the ordered per-state action lists. The outer slice is a copy;
// the inner slices are shared and must not be modified.
func (g *Graph) Nodes() [][]Action {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([][]Action, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Reversed returns the transpose of a directed graph, built once and cached.
// Bidirectional graphs are their own transpose, so g itself is returned.
// Bidirectional search expands the goal side over this graph.
func (g *Graph) Reversed() *Graph {
	if g.kind.Bidirectional() {
		return g
	}
	g.revOnce.Do(func() {
		g.mu.RLock()
		defer g.mu.RUnlock()

		r := &Graph{kind: g.kind, nodes: make([][]Action, len(g.nodes))}
		for from, actions := range g.nodes {
			for _, a := range actions {
				r.nodes[a.Target] = append(r.nodes[a.Target], Action{Target: State(from), Cost: a.Cost})
			}
		}
		r.edgeCount = g.edgeCount
		g.reversed = r
	})
	return g.reversed
}
