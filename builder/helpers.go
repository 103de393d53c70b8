// SPDX-License-Identifier: MIT
//
// File: helpers.go
// Role: Shared helpers: edge linking under the weight policy, layout placement, rings, size checks.

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathlab/core"
)

// link joins a and b, honouring cfg.weightFn.
func link[C any](g *core.Graph[C], cfg builderConfig, method string, a, b int) error {
	var err error
	if cfg.weightFn == nil {
		err = g.AddEdge(a, b)
	} else {
		d, _ := g.Distance(a, b)
		err = g.AddEdge(a, b, core.WithWeight(cfg.weightFn(cfg.rng, d)))
	}
	if err != nil {
		return fmt.Errorf("%s: AddEdge(%d, %d): %w: %w", method, a, b, ErrConstructFailed, err)
	}

	return nil
}

// place adds one node per point, translated by cfg.origin, and returns the ids.
func place(g *core.Graph[r2.Vec], cfg builderConfig, pts []r2.Vec) []int {
	ids := make([]int, len(pts))
	for i, p := range pts {
		ids[i] = g.AddNode(r2.Add(p, cfg.origin))
	}

	return ids
}

// ring returns n points evenly spread on a circle whose chord between
// neighbours is cfg.spacing, starting at angle 0 and running counter-clockwise.
func ring(n int, spacing float64) []r2.Vec {
	pts := make([]r2.Vec, n)
	if n == 1 {
		return pts
	}
	r := spacing / (2 * math.Sin(math.Pi/float64(n)))
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = r2.Vec{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}

	return pts
}

func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}
