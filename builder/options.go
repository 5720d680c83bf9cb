// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   - Option constructors VALIDATE and PANIC on meaningless inputs (nil funcs, bad ranges).
//     Constructors themselves MUST NOT panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCostFn overrides the per-edge cost generator of Labeled graphs.
// The function receives the (possibly nil) RNG. Panics on nil.
func WithCostFn(fn func(*rand.Rand) int32) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// UniformCost returns a cost generator drawing uniformly from [lo, hi].
// A nil RNG yields lo. Panics if hi < lo.
func UniformCost(lo, hi int32) func(*rand.Rand) int32 {
	if hi < lo {
		panic(fmt.Sprintf("builder: UniformCost requires lo <= hi, got lo=%d hi=%d", lo, hi))
	}
	return func(r *rand.Rand) int32 {
		if r == nil || lo == hi {
			return lo
		}
		return lo + r.Int31n(hi-lo+1)
	}
}
