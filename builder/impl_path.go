// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2; edges (i-1)→i for i=1..n-1 in increasing order.
//   - Cycle: n ≥ 3; the Path edges plus (n-1)→0.
//   - Cost policy: cfg.costFn for Labeled graphs, 0 otherwise.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the chain 0-1-...-(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			cfg.addEdge(g, i-1, i)
		}
		return nil
	}
}

// Cycle returns a Constructor that builds the ring 0-1-...-(n-1)-0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		// Emit edges in ascending i; i==n-1 closes the ring.
		for i := 0; i < n; i++ {
			cfg.addEdge(g, i, (i+1)%n)
		}
		return nil
	}
}
