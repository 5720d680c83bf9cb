// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - State of cell (r,c) is r*cols + c (row-major).
//   - Row-major scan; per cell the right edge is emitted before the down edge.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid returns a Constructor that builds a 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		g.EnsureState(core.State(rows*cols - 1))

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					cfg.addEdge(g, id, id+1)
				}
				if r+1 < rows {
					cfg.addEdge(g, id, id+cols)
				}
			}
		}
		return nil
	}
}
