// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(kind, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; constructors return sentinel errors.
//
// Hints:
//   - Constructors address states 0..n-1; composing several in one BuildGraph call
//     overlays them on the same states (e.g. Path(n) + a few extra edges).
//   - Costs are drawn only for core.Labeled graphs; other kinds store cost 0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST validate parameters early, return sentinel
// errors (no panics) and emit edges in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph of the given kind, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(kind core.Kind, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(kind)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		// Reject a nil constructor instead of panicking on the call below.
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Topology factories - implemented in impl_*.go.
//
// Path(n)             0-1-...-(n-1), n ≥ 2.
// Cycle(n)            Path(n) closed by (n-1)-0, n ≥ 3.
// Star(n)             center 0 with leaves 1..n-1, n ≥ 2.
// Grid(rows, cols)    4-neighborhood grid, state r*cols+c, rows, cols ≥ 1.
// Complete(n)         every ordered (directed) or unordered pair, n ≥ 1.
// RandomSparse(n, p)  independent Bernoulli(p) trial per pair, needs WithSeed/WithRand for 0<p<1.
