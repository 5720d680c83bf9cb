package search

import "github.com/katalvlaran/lvsearch/core"

// tree is the node arena of one run. Predecessor links are indices into nodes,
// so ancestry is shared freely and nothing recursive is ever freed.
type tree struct {
	nodes []Node
}

func newTree(capHint int) *tree {
	return &tree{nodes: make([]Node, 0, capHint)}
}

// add appends n and returns its index.
func (t *tree) add(n Node) int {
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

func (t *tree) at(i int) Node {
	return t.nodes[i]
}

// truncate drops index i and everything after it. Depth-limited search uses the
// arena as its stack, so popping a frame truncates its node.
func (t *tree) truncate(i int) {
	t.nodes = t.nodes[:i]
}

// path walks parent indices from i back to the root and returns root→i.
func (t *tree) path(i int) []core.State {
	out := make([]core.State, 0, t.nodes[i].Depth+1)
	for ; i != noParent; i = t.nodes[i].Parent {
		out = append(out, t.nodes[i].State)
	}
	// reverse to get root → i
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out
}
