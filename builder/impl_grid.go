// SPDX-License-Identifier: MIT
//
// File: impl_grid.go
// Role: Grid(rows, cols) constructor and the shared lattice wiring.
//
// Contract:
//   - rows, cols >= 1 (else ErrTooFewVertices).
//   - Row-major nodes; per cell the right edge precedes the down edge.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathlab/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols 4-neighbourhood lattice. Nodes are added in
// row-major order at (c·spacing, r·spacing); for every cell the right edge
// is emitted before the down edge.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor[r2.Vec] {
	return func(g *core.Graph[r2.Vec], cfg builderConfig) error {
		pts, err := lattice(methodGrid, rows, cols, cfg.spacing)
		if err != nil {
			return err
		}

		return wireLattice(g, cfg, methodGrid, place(g, cfg, pts), rows, cols)
	}
}

// lattice returns the unperturbed row-major grid points.
func lattice(method string, rows, cols int, spacing float64) ([]r2.Vec, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", method, rows, cols, minGridDim, ErrTooFewVertices)
	}
	pts := make([]r2.Vec, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pts = append(pts, r2.Vec{X: float64(c) * spacing, Y: float64(r) * spacing})
		}
	}

	return pts, nil
}

func wireLattice(g *core.Graph[r2.Vec], cfg builderConfig, method string, ids []int, rows, cols int) error {
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			at := ids[r*cols+c]
			if c+1 < cols {
				if err := link(g, cfg, method, at, ids[r*cols+c+1]); err != nil {
					return err
				}
			}
			if r+1 < rows {
				if err := link(g, cfg, method, at, ids[(r+1)*cols+c]); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
