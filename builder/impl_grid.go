// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbor per cell),
//     always connected in both directions: a street grid.
//   • Vertex names use the fixed scheme "r,c" (row-major) instead of cfg.idFn
//     to keep coordinates explicit.
//
// Complexity:
//   • Time: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridName returns the vertex name of cell (r, c).
func GridName(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a rows×cols street grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) Vertices in row-major order.
		gridCfg := cfg
		gridCfg.idFn = func(i int) string { return GridName(i/cols, i%cols) }
		ids, err := addVertices(methodGrid, g, gridCfg, rows*cols)
		if err != nil {
			return err
		}

		// 3) For each cell emit Right then Bottom.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err = connect(methodGrid, g, cfg, u, ids[r*cols+c+1], true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = connect(methodGrid, g, cfg, u, ids[(r+1)*cols+c], true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
