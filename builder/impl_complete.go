// SPDX-License-Identifier: MIT
//
// File: impl_complete.go
// Role: Complete(n) constructor.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - Every unordered pair joined once, in ascending (i, j) order.

package builder

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathlab/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete places n nodes on a circle and joins every pair (i < j), in
// ascending (i, j) order.
// Complexity: O(n²) edges.
func Complete(n int) Constructor[r2.Vec] {
	return func(g *core.Graph[r2.Vec], cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		ids := place(g, cfg, ring(n, cfg.spacing))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
