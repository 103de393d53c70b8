// SPDX-License-Identifier: MIT
//
// File: impl_star.go
// Role: Star(n) and Wheel(n) constructors.
//
// Contract:
//   - Star: n >= 2; Wheel: n >= 4 (else ErrTooFewVertices).
//   - The centre is added first, leaves follow in ring order.

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathlab/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star adds a centre at the origin first, then n-1 leaves on a ring of
// radius cfg.spacing, each joined to the centre.
func Star(n int) Constructor[r2.Vec] {
	return func(g *core.Graph[r2.Vec], cfg builderConfig) error {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		_, err := hub(g, cfg, methodStar, n-1)

		return err
	}
}

// Wheel is a Star whose n-1 leaves are also joined into a rim cycle.
func Wheel(n int) Constructor[r2.Vec] {
	return func(g *core.Graph[r2.Vec], cfg builderConfig) error {
		if err := validateMin(methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		leaves, err := hub(g, cfg, methodWheel, n-1)
		if err != nil {
			return err
		}
		for i := range leaves {
			if err = link(g, cfg, methodWheel, leaves[i], leaves[(i+1)%len(leaves)]); err != nil {
				return err
			}
		}

		return nil
	}
}

// hub adds a centre plus k spokes and returns the leaf ids.
func hub(g *core.Graph[r2.Vec], cfg builderConfig, method string, k int) ([]int, error) {
	centre := place(g, cfg, []r2.Vec{{}})[0]
	pts := make([]r2.Vec, k)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(k)
		pts[i] = r2.Vec{X: cfg.spacing * math.Cos(a), Y: cfg.spacing * math.Sin(a)}
	}
	leaves := place(g, cfg, pts)
	for _, l := range leaves {
		if err := link(g, cfg, method, centre, l); err != nil {
			return nil, err
		}
	}

	return leaves, nil
}
