package search

import "github.com/katalvlaran/lvsearch/core"

// BiDirectionalSearch grows one breadth-first tree from the start over the graph
// and one from the goal over the reversed graph, popping one node from each
// frontier per round.
//
// Reached sets use insert-if-absent and there is no per-child goal test; after
// both expansions the states newly reached this round are checked against the
// other side's reached set. The first common state is the meeting state: the
// start-side node for it is extended with the goal-side chain walked back to the
// goal, so the Found node's ancestry is a connected start→goal path whose depth
// and cost are the sums of both halves.
//
// start == goal returns the start node at once without expanding anything.
// Failure is returned as soon as either frontier is empty.
func (p *Problem) BiDirectionalSearch() Result {
	fw := p.newWalker(p.graph)
	startIdx := fw.root(p.start)
	if p.GoalTest(p.start) {
		return fw.found(startIdx)
	}

	bw := p.newWalker(p.graph.Reversed())
	goalIdx := bw.root(p.goal)

	fFrontier, bFrontier := []int{startIdx}, []int{goalIdx}
	fReached := map[core.State]int{p.start: startIdx}
	bReached := map[core.State]int{p.goal: goalIdx}

	for len(fFrontier) > 0 && len(bFrontier) > 0 {
		fi, bi := fFrontier[0], bFrontier[0]
		fFrontier, bFrontier = fFrontier[1:], bFrontier[1:]

		var fNew, bNew []core.State
		fFrontier, fNew = grow(fw, fi, fReached, fFrontier)
		bFrontier, bNew = grow(bw, bi, bReached, bFrontier)

		for _, s := range fNew {
			if m, ok := bReached[s]; ok {
				return p.join(fw, fReached[s], bw, m)
			}
		}
		for _, s := range bNew {
			if m, ok := fReached[s]; ok {
				return p.join(fw, m, bw, bReached[s])
			}
		}
	}

	res := fw.result(Failure)
	res.Stats.add(bw.stats)
	return res
}

// grow expands idx, records unseen children in reached and the frontier, and
// returns the updated frontier with the newly reached states in generation order.
func grow(w *walker, idx int, reached map[core.State]int, frontier []int) ([]int, []core.State) {
	var fresh []core.State
	for child := range w.expand(idx) {
		if _, seen := reached[child.State]; seen {
			continue
		}
		ci := w.tree.add(child)
		reached[child.State] = ci
		frontier = append(frontier, ci)
		fresh = append(fresh, child.State)
	}
	return frontier, fresh
}

// join appends the goal-side chain of bIdx (meeting state → goal) below the
// start-side node fIdx. Goal-side edges were taken over the reversed graph, so
// the goal-side cost difference between a node and its parent is the cost of
// the forward action from the node's state to the parent's state.
func (p *Problem) join(fw *walker, fIdx int, bw *walker, bIdx int) Result {
	cur := fIdx
	tail := fw.tree.at(fIdx)
	b := bw.tree.at(bIdx)

	for !b.IsRoot() {
		up := bw.tree.at(b.Parent)
		next := Node{
			State:   up.State,
			Actions: p.graph.Actions(up.State),
			Parent:  cur,
			Cost:    tail.Cost + (b.Cost - up.Cost),
			Depth:   tail.Depth + 1,
		}
		cur = fw.tree.add(next)
		tail = next
		b = up
	}

	res := fw.found(cur)
	res.Stats.add(bw.stats)
	return res
}
