// SPDX-License-Identifier: MIT
//
// File: impl_path.go
// Role: Path(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Nodes on a horizontal line cfg.spacing apart, edges i-(i+1) in index order.

package builder

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathlab/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path lays n nodes along the x axis, cfg.spacing apart, and joins each to
// the next.
// Complexity: O(n).
func Path(n int) Constructor[r2.Vec] {
	return func(g *core.Graph[r2.Vec], cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		pts := make([]r2.Vec, n)
		for i := range pts {
			pts[i] = r2.Vec{X: float64(i) * cfg.spacing}
		}
		ids := place(g, cfg, pts)
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
