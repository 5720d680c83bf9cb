// Package search runs classical uninformed search strategies over a core.Graph.
//
// What
//
//   - A Problem pairs a read-only graph with a start and a goal state.
//   - Every strategy returns a tri-state Result: Found (with the goal Node),
//     Failure (the reachable space is exhausted) or CutOff (a depth bound, not the
//     whole space, was exhausted). Failure and CutOff are outcomes, not errors.
//   - Nodes live in an arena owned by the run; a Node points at its predecessor by
//     index, so Result.Path walks indices back to the root.
//
// Strategies
//
//   - BreadthFirstSearch:       FIFO frontier, reached set, goal test at generation.
//   - UniformCostSearch:        BFS discipline plus a strictly-lower-cost re-enqueue rule.
//     The frontier is FIFO, not a priority queue, so the returned path is not
//     guaranteed to be the cheapest one.
//   - DepthLimitedSearch:       depth-first, bounded by the problem's depth limit,
//     no reached set; runs on an explicit stack.
//   - IterativeDeepeningSearch: depth-limited rounds with limit 1, 2, ... until a round
//     does not cut off.
//   - BiDirectionalSearch:      two FIFO frontiers (the goal side walks the reversed
//     graph) that stop when their reached sets share a state.
//   - TreeSearch:               FIFO with no reached set; exponential on cyclic graphs.
//
// Determinism
//
//	Children are generated in core.Graph action order and every frontier is FIFO,
//	so repeated runs on the same Problem return identical results.
//
// Concurrency
//
//	A Problem is not safe for concurrent searches: IterativeDeepeningSearch mutates
//	the depth limit between rounds. The Graph is read-only and may be shared by
//	any number of Problems.
//
// Errors (construction only):
//
//   - ErrGraphNil            if the graph is nil.
//   - ErrStartStateNotFound  if start is outside the node table.
//   - ErrGoalStateNotFound   if goal is outside the node table.
//   - ErrOptionViolation     for invalid options (e.g. negative depth limit).
//   - ErrUnknownStrategy     from ParseStrategy.
package search
