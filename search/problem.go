package search

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dataset"
)

// Problem is one search context: a graph, a start and a goal state, and the
// mutable depth limit used by depth-limited and iterative-deepening search.
type Problem struct {
	start core.State
	goal  core.State
	graph *core.Graph
	limit int
	opts  Options
}

// NewProblem validates start and goal against g once; searches never re-check.
// Returns ErrGraphNil, ErrStartStateNotFound, ErrGoalStateNotFound or
// ErrOptionViolation.
func NewProblem(start, goal core.State, g *core.Graph, opts ...Option) (*Problem, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasState(start) {
		return nil, fmt.Errorf("%w: %w: %d (graph has %d states)", ErrStartStateNotFound, core.ErrStateNotFound, start, g.Len())
	}
	if !g.HasState(goal) {
		return nil, fmt.Errorf("%w: %w: %d (graph has %d states)", ErrGoalStateNotFound, core.ErrStateNotFound, goal, g.Len())
	}

	return &Problem{
		start: start,
		goal:  goal,
		graph: g,
		limit: o.DepthLimit,
		opts:  o,
	}, nil
}

// NewProblemFromFile loads the dataset at path and builds a Problem over it.
func NewProblemFromFile(start, goal core.State, path string, opts ...Option) (*Problem, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g, _, err := dataset.LoadFile(path, dataset.WithLogger(o.Logger))
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return NewProblem(start, goal, g, opts...)
}

// GoalTest reports whether s is the goal state.
func (p *Problem) GoalTest(s core.State) bool {
	return s == p.goal
}

// Start returns the initial state.
func (p *Problem) Start() core.State { return p.start }

// Goal returns the goal state.
func (p *Problem) Goal() core.State { return p.goal }

// Graph returns the searched graph.
func (p *Problem) Graph() *core.Graph { return p.graph }

// DepthLimit returns the current depth-limited search bound.
func (p *Problem) DepthLimit() int { return p.limit }

// SetDepthLimit changes the depth-limited search bound. Negative values are ignored.
func (p *Problem) SetDepthLimit(d int) {
	if d >= 0 {
		p.limit = d
	}
}
