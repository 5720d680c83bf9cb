package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Sentinel errors for Problem construction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrStartStateNotFound is returned when start is not a valid state index.
	ErrStartStateNotFound = errors.New("search: start state not found")

	// ErrGoalStateNotFound is returned when goal is not a valid state index.
	ErrGoalStateNotFound = errors.New("search: goal state not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownStrategy is returned by ParseStrategy for unknown names.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// noParent marks a root node.
const noParent = -1

// Node is a search-tree element. Parent is the arena index of the predecessor,
// or -1 for the root; Depth grows by exactly one per link.
type Node struct {
	State core.State

	// Actions is the graph's adjacency for State at creation time.
	Actions []core.Action

	Parent int
	Cost   int64
	Depth  int
}

// IsRoot reports whether n has no predecessor.
func (n Node) IsRoot() bool {
	return n.Parent == noParent
}

// Outcome is the discriminant of a Result.
type Outcome int

const (
	// Failure: the frontier was exhausted, the goal is unreachable.
	Failure Outcome = iota
	// Found: Result.Node holds the goal node.
	Found
	// CutOff: a depth bound was exhausted before Failure could be established.
	CutOff
)

// String returns a lower-case label for o.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Failure:
		return "failure"
	case CutOff:
		return "cutoff"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Stats counts the work done by one run.
type Stats struct {
	// Expanded is the number of nodes whose children were generated.
	Expanded int
	// Generated is the number of child nodes produced by expansion.
	Generated int
}

func (s *Stats) add(o Stats) {
	s.Expanded += o.Expanded
	s.Generated += o.Generated
}

// Result is the tri-state outcome of a search. Node is meaningful only when
// Outcome is Found; otherwise it is an empty root (IsRoot true, Depth and
// Cost 0). Equality for control purposes is Is / SameOutcome, which compare
// the discriminant only.
type Result struct {
	Outcome Outcome
	Node    Node
	Stats   Stats

	tree  *tree
	index int
}

// Is reports whether r has outcome o.
func (r Result) Is(o Outcome) bool {
	return r.Outcome == o
}

// SameOutcome compares discriminants only; Node payloads are ignored.
func (r Result) SameOutcome(other Result) bool {
	return r.Outcome == other.Outcome
}

// Found reports whether the goal was reached.
func (r Result) Found() bool {
	return r.Outcome == Found
}

// Path returns the states from the root to the found node, or nil when the
// search did not find the goal.
func (r Result) Path() []core.State {
	if r.Outcome != Found || r.tree == nil {
		return nil
	}
	return r.tree.path(r.index)
}

// String renders the outcome and, when found, the goal node counters.
func (r Result) String() string {
	if r.Outcome != Found {
		return r.Outcome.String()
	}
	return fmt.Sprintf("found(state=%d depth=%d cost=%d)", r.Node.State, r.Node.Depth, r.Node.Cost)
}
