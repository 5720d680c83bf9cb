package search

import "github.com/katalvlaran/lvsearch/core"

// BreadthFirstSearch explores by non-decreasing depth and tests the goal when a
// child is generated, before it is enqueued. The first discovery of a state is
// kept in the reached set and never replaced, so the result has the minimum
// number of edges.
//
// Complexity: O(V + E) time, O(V) arena, frontier and reached set.
func (p *Problem) BreadthFirstSearch() Result {
	w := p.newWalker(p.graph)
	root := w.root(p.start)
	if p.GoalTest(p.start) {
		return w.found(root)
	}

	frontier := []int{root}
	reached := map[core.State]int{p.start: root}

	for len(frontier) > 0 {
		idx := frontier[0]
		frontier = frontier[1:]

		for child := range w.expand(idx) {
			if p.GoalTest(child.State) {
				return w.found(w.tree.add(child))
			}
			if _, seen := reached[child.State]; !seen {
				ci := w.tree.add(child)
				reached[child.State] = ci
				frontier = append(frontier, ci)
			}
		}
	}

	return w.result(Failure)
}
