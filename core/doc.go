// Package core defines the state-space graph consumed by the search engine.
//
// A Graph is a dense adjacency table indexed by State: for every state it stores
// the ordered list of outgoing Actions (target state + integer cost). The table is
// filled once at load time through AddEdge and is read-only afterwards, so a single
// Graph can be shared by any number of search problems.
//
// Kinds
//
//   - Directed:   every dataset pair (u,v) inserts only u→v.
//   - Undirected: every pair inserts u→v and v→u.
//   - Labeled:    undirected, and the dataset may carry a third cost column.
//
// Invariants
//
//   - Every Action.Target is a valid index into the table (AddEdge resizes the table
//     to cover both endpoints).
//   - Actions(s) preserves insertion order; search strategies expand in that order,
//     which makes every traversal reproducible.
//   - An exact (target, cost) pair is never stored twice for the same source.
//
// Concurrency
//
//	All methods are guarded by a sync.RWMutex. Queries take the read lock, so a
//	loaded graph can be searched from many goroutines at once.
//
// Errors:
//
//	ErrStateNotFound - a state outside the loaded table was requested.
//	ErrUnknownKind   - ParseKind got a name that is not a Kind.
package core
