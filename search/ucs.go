package search

import "github.com/katalvlaran/lvsearch/core"

// UniformCostSearch is breadth-first search with a cost-aware reached set: a
// state already reached is replaced and enqueued again only when the new node's
// path cost is strictly lower than the recorded one.
//
// The frontier stays FIFO and the goal is tested at generation time, exactly as
// in BreadthFirstSearch. It is NOT a priority-ordered (Dijkstra-style) search:
// a cheaper path discovered later in FIFO order is never returned once the goal
// has been generated through a more expensive one.
//
// Action costs must be non-negative. dataset.Load rejects negative costs; a
// graph built by hand with a negative edge on a cycle keeps lowering the cost
// of the states on it, and the search does not terminate when the goal is
// unreachable.
func (p *Problem) UniformCostSearch() Result {
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
			prev, seen := reached[child.State]
			if !seen || w.tree.at(prev).Cost > child.Cost {
				ci := w.tree.add(child)
				reached[child.State] = ci
				frontier = append(frontier, ci)
			}
		}
	}

	return w.result(Failure)
}
