// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_star.go - Star(n) and Complete(n) constructors.
//
// Contract:
//   - Star: n ≥ 2; center 0, edges 0→i for i=1..n-1.
//   - Complete: n ≥ 1; directed graphs get every ordered pair i≠j (i asc, j asc),
//     bidirectional kinds every unordered pair i<j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star returns a Constructor that connects center 0 to n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			cfg.addEdge(g, 0, i)
		}
		return nil
	}
}

// Complete returns a Constructor that builds K_n without self-loops.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		g.EnsureState(core.State(n - 1))

		directed := !g.Kind().Bidirectional()
		for i := 0; i < n; i++ {
			j := i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i != j {
					cfg.addEdge(g, i, j)
				}
			}
		}
		return nil
	}
}
