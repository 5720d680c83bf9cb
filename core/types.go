// File: types.go
// Role: State, Action, Kind and sentinel errors shared by the loader and the search engine.

package core

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrStateNotFound indicates an operation referenced a state outside the node table.
	ErrStateNotFound = errors.New("core: state not found")

	// ErrUnknownKind is returned by ParseKind for unrecognized names.
	ErrUnknownKind = errors.New("core: unknown graph kind")
)

// State is an opaque vertex identifier. Dataset ids are used as-is, so the node
// table is as large as the biggest id seen.
type State = uint32

// Action is a directed transition to Target with an integer Cost.
type Action struct {
	// Target is the state reached by taking this action.
	Target State

	// Cost is added to the path cost of the node taking the action.
	Cost int32
}

// Kind classifies how dataset pairs become actions.
type Kind int

const (
	// Labeled graphs are undirected and may carry a per-edge cost column.
	// It is the zero value because it is the loader's fallback.
	Labeled Kind = iota
	// Directed graphs insert only the forward action.
	Directed
	// Undirected graphs insert the forward and the reverse action.
	Undirected
)

// String returns the dataset header marker for k.
func (k Kind) String() string {
	switch k {
	case Directed:
		return "Directed"
	case Undirected:
		return "Undirected"
	case Labeled:
		return "Labeled"
	default:
		return "Unknown"
	}
}

// ParseKind maps a case-insensitive kind name ("directed", "undirected",
// "labeled") to a Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range []Kind{Labeled, Directed, Undirected} {
		if strings.EqualFold(strings.TrimSpace(name), k.String()) {
			return k, nil
		}
	}
	return Labeled, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Bidirectional reports whether every inserted pair also gets its reverse action.
func (k Kind) Bidirectional() bool {
	return k == Undirected || k == Labeled
}

// Graph is the immutable-after-load adjacency table.
//
// nodes[s] holds the outgoing actions of state s in insertion order.
// reversed caches the transpose of a directed graph (see Reversed).
type Graph struct {
	mu sync.RWMutex // guards nodes and edgeCount

	kind      Kind
	nodes     [][]Action
	edgeCount int

	revOnce  sync.Once
	reversed *Graph
}

// NewGraph creates an empty graph of the given kind.
// Complexity: O(1).
func NewGraph(kind Kind) *Graph {
	return &Graph{kind: kind}
}
