// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng    = nil                       (pure/deterministic unless seeded)
//   - costFn = constant defaultCost (1)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvsearch/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Cost generator for edges; used only for Labeled graphs.
	costFn func(*rand.Rand) int32
}

// defaultCost is the constant edge cost of Labeled graphs without WithCostFn.
const defaultCost = int32(1)

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		costFn: func(*rand.Rand) int32 { return defaultCost },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// addEdge draws the cost according to the graph kind and inserts from→to.
func (c builderConfig) addEdge(g *core.Graph, from, to int) {
	var cost int32
	if g.Kind() == core.Labeled {
		cost = c.costFn(c.rng)
	}
	g.AddEdge(core.State(from), core.State(to), cost)
}
