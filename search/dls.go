package search

import (
	"context"
	"log/slog"
)

// frame is one level of the depth-first stack: the arena index of the node and
// the position of the next action to try.
type frame struct {
	index int
	next  int
}

// DepthLimitedSearch runs depth-first search bounded by the problem's depth limit.
//
// A node is tested for the goal when it is entered; a non-goal node at the limit
// is not expanded and marks the run as cut off. Children are tried in action
// order and a Found result short-circuits. After the stack empties the result is
// CutOff if any node was cut off, Failure otherwise.
//
// There is no reached set, so states are revisited along different branches;
// the limit is what guarantees termination on cyclic graphs.
//
// The arena doubles as the stack: it only ever holds the current root→node
// branch, so memory is O(limit) regardless of the size of the explored tree.
func (p *Problem) DepthLimitedSearch() Result {
	return p.depthLimited(p.limit)
}

func (p *Problem) depthLimited(limit int) Result {
	w := p.newWalker(p.graph)
	root := w.root(p.start)
	if p.GoalTest(p.start) {
		return w.found(root)
	}
	if limit == 0 {
		return w.result(CutOff)
	}

	w.visit(root)
	stack := []frame{{index: root}}
	cutoff := false

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		parent := w.tree.at(top.index)

		// 1. all children tried: pop the frame and its node
		if top.next == len(parent.Actions) {
			idx := top.index
			stack = stack[:len(stack)-1]
			w.tree.truncate(idx)
			continue
		}

		// 2. enter the next child
		child := w.child(parent, top.index, top.next)
		top.next++
		ci := w.tree.add(child)

		if p.GoalTest(child.State) {
			return w.found(ci)
		}
		if child.Depth == limit {
			cutoff = true
			w.tree.truncate(ci)
			continue
		}

		// 3. descend
		w.visit(ci)
		stack = append(stack, frame{index: ci})
	}

	if cutoff {
		return w.result(CutOff)
	}
	return w.result(Failure)
}

// IterativeDeepeningSearch runs DepthLimitedSearch with limit 1, 2, 3, ... and
// returns the first round that does not cut off, so the shallowest goal is found
// first. Stats accumulate over all rounds.
//
// A reachable goal lies at depth at most Len()-1, so a round at that limit that
// still cuts off proves the goal unreachable and Failure is returned; without
// this bound an undirected graph would deepen forever on an unreachable goal.
//
// The depth limit is mutated between rounds and restored before returning.
func (p *Problem) IterativeDeepeningSearch() Result {
	configured := p.limit
	defer func() { p.limit = configured }()

	bound := max(p.graph.Len()-1, 1)
	var total Stats

	for p.limit = 1; ; p.limit++ {
		res := p.DepthLimitedSearch()
		total.add(res.Stats)

		p.opts.Logger.LogAttrs(context.Background(), slog.LevelDebug, "deepening round",
			slog.Int("limit", p.limit),
			slog.String("outcome", res.Outcome.String()),
			slog.Int("expanded", res.Stats.Expanded),
		)

		if !res.Is(CutOff) {
			res.Stats = total
			return res
		}
		if p.limit >= bound {
			return Result{Outcome: Failure, Node: Node{Parent: noParent}, Stats: total, index: noParent}
		}
	}
}
