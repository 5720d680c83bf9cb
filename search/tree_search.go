package search

// TreeSearch is breadth-first search without a reached set: the goal is tested
// when a node is popped and every child is enqueued, so states are revisited and
// the frontier grows exponentially on cyclic graphs. It is kept as the baseline
// the other strategies are measured against and is excluded from Strategies().
func (p *Problem) TreeSearch() Result {
	w := p.newWalker(p.graph)
	frontier := []int{w.root(p.start)}

	for len(frontier) > 0 {
		idx := frontier[0]
		frontier = frontier[1:]

		if p.GoalTest(w.tree.at(idx).State) {
			return w.found(idx)
		}
		for child := range w.expand(idx) {
			frontier = append(frontier, w.tree.add(child))
		}
	}

	return w.result(Failure)
}
