// SPDX-License-Identifier: MIT
//
// File: impl_cycle.go
// Role: Cycle(n) constructor.
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices).
//   - Nodes on a ring, edges i-(i+1) then the closing edge (n-1)-0.

package builder

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathlab/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle places n nodes on a circle and emits edges i→(i+1)%n in ascending i.
// Complexity: O(n).
func Cycle(n int) Constructor[r2.Vec] {
	return func(g *core.Graph[r2.Vec], cfg builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		ids := place(g, cfg, ring(n, cfg.spacing))
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
