package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Strategy names one search algorithm.
type Strategy int

const (
	BreadthFirst Strategy = iota
	UniformCost
	DepthLimited
	IterativeDeepening
	BiDirectional
	Tree
)

var strategyNames = [...]string{
	BreadthFirst:       "breadth-first",
	UniformCost:        "uniform-cost",
	DepthLimited:       "depth-limited",
	IterativeDeepening: "iterative-deepening",
	BiDirectional:      "bi-directional",
	Tree:               "tree-search",
}

// String returns the CLI name of s.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy maps a CLI name (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownStrategy, name, strings.Join(strategyNames[:], ", "))
}

// Strategies returns the strategies run by "all": every strategy except
// TreeSearch, whose frontier explodes on real datasets.
func Strategies() []Strategy {
	return []Strategy{BreadthFirst, UniformCost, DepthLimited, IterativeDeepening, BiDirectional}
}

// Run dispatches to the method implementing s and logs the outcome at debug level.
// Unknown strategies report Failure.
func (p *Problem) Run(s Strategy) Result {
	var res Result
	switch s {
	case BreadthFirst:
		res = p.BreadthFirstSearch()
	case UniformCost:
		res = p.UniformCostSearch()
	case DepthLimited:
		res = p.DepthLimitedSearch()
	case IterativeDeepening:
		res = p.IterativeDeepeningSearch()
	case BiDirectional:
		res = p.BiDirectionalSearch()
	case Tree:
		res = p.TreeSearch()
	default:
		res = Result{Outcome: Failure, Node: Node{Parent: noParent}, index: noParent}
	}

	p.opts.Logger.LogAttrs(context.Background(), slog.LevelDebug, "search finished",
		slog.String("strategy", s.String()),
		slog.Uint64("start", uint64(p.start)),
		slog.Uint64("goal", uint64(p.goal)),
		slog.String("outcome", res.Outcome.String()),
		slog.Int("depth", res.Node.Depth),
		slog.Int64("cost", res.Node.Cost),
		slog.Int("expanded", res.Stats.Expanded),
	)
	return res
}
