// SPDX-License-Identifier: MIT
//
// File: impl_jittered.go
// Role: JitteredGrid(rows, cols, amp) constructor over an OpenSimplex noise field.
//
// Contract:
//   - amp in [0, 0.5) so rows and columns never cross.
//   - Deterministic for a given WithSeed value.

package builder

import (
	"fmt"
	"math"

	"github.com/ojrac/opensimplex-go"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathlab/core"
)

const (
	methodJitteredGrid = "JitteredGrid"

	// noiseScale maps grid units to noise space; smaller values give
	// smoother, more correlated displacement between neighbours.
	noiseScale = 0.35

	// yOffset decorrelates the y displacement from the x displacement.
	yOffset = 101.7
)

// JitteredGrid builds a Grid whose points are displaced by up to
// amp·spacing along each axis, sampled from an OpenSimplex noise field
// seeded with the WithSeed value. Neighbouring points move together, so
// the layout reads like a street map rather than a scatter.
//
// amp must lie in [0, 0.5) so that rows and columns cannot cross.
// Edge weights follow the displaced coordinates.
func JitteredGrid(rows, cols int, amp float64) Constructor[r2.Vec] {
	return func(g *core.Graph[r2.Vec], cfg builderConfig) error {
		if amp < 0 || amp >= 0.5 || math.IsNaN(amp) {
			return fmt.Errorf("%s: amp=%g not in [0,0.5): %w", methodJitteredGrid, amp, ErrConstructFailed)
		}
		pts, err := lattice(methodJitteredGrid, rows, cols, cfg.spacing)
		if err != nil {
			return err
		}

		noise := opensimplex.New(cfg.seed)
		shift := amp * cfg.spacing
		for i := range pts {
			r, c := float64(i/cols), float64(i%cols)
			pts[i].X += shift * noise.Eval2(c*noiseScale, r*noiseScale)
			pts[i].Y += shift * noise.Eval2(c*noiseScale+yOffset, r*noiseScale+yOffset)
		}

		return wireLattice(g, cfg, methodJitteredGrid, place(g, cfg, pts), rows, cols)
	}
}
