package search

import (
	"iter"

	"github.com/katalvlaran/lvsearch/core"
)

// walker encapsulates the mutable state of one run over one graph: the node
// arena and the work counters. Bidirectional search drives two walkers.
type walker struct {
	p     *Problem
	graph *core.Graph
	tree  *tree
	stats Stats
}

func (p *Problem) newWalker(g *core.Graph) *walker {
	return &walker{p: p, graph: g, tree: newTree(64)}
}

// root adds the depth-0 node for s and returns its index.
func (w *walker) root(s core.State) int {
	return w.tree.add(Node{
		State:   s,
		Actions: w.graph.Actions(s),
		Parent:  noParent,
	})
}

// visit counts an expansion of the node at idx and runs the OnExpand hook.
func (w *walker) visit(idx int) Node {
	n := w.tree.at(idx)
	w.stats.Expanded++
	w.p.opts.OnExpand(n)
	return n
}

// child builds the node reached from parent (at index idx) through its i-th action.
func (w *walker) child(parent Node, idx, i int) Node {
	a := parent.Actions[i]
	w.stats.Generated++
	return Node{
		State:   a.Target,
		Actions: w.graph.Actions(a.Target),
		Parent:  idx,
		Cost:    parent.Cost + int64(a.Cost),
		Depth:   parent.Depth + 1,
	}
}

// expand yields one child per outgoing action of the node at idx, in action order.
// The sequence is lazy and single-use: ranging over it a second time yields nothing.
// Children are not added to the arena; callers add the ones they keep.
func (w *walker) expand(idx int) iter.Seq[Node] {
	used := false
	return func(yield func(Node) bool) {
		if used {
			return
		}
		used = true

		parent := w.visit(idx)
		for i := range parent.Actions {
			if !yield(w.child(parent, idx, i)) {
				return
			}
		}
	}
}

// found wraps the node at idx into a Found result.
func (w *walker) found(idx int) Result {
	return Result{
		Outcome: Found,
		Node:    w.tree.at(idx),
		Stats:   w.stats,
		tree:    w.tree,
		index:   idx,
	}
}

// result returns a non-Found outcome with the run's counters. Its Node is an
// empty root so that Node.IsRoot holds and Path stays nil.
func (w *walker) result(o Outcome) Result {
	return Result{Outcome: o, Node: Node{Parent: noParent}, Stats: w.stats, index: noParent}
}
