// SPDX-License-Identifier: MIT
//
// File: impl_random_sparse.go
// Role: RandomSparse(n, p) constructor.
//
// Contract:
//   - n >= 1, p in [0, 1], an RNG configured (else ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource).
//   - One draw per pair in ascending (i, j) order; fixed output per seed.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathlab/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse scatters n nodes uniformly over a square of side
// n·cfg.spacing and joins each unordered pair with probability p.
// Pairs are visited in ascending (i, j) order, one draw per pair, so the
// result is fixed for a given seed.
// Requires an RNG (WithSeed/WithRand).
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor[r2.Vec] {
	return func(g *core.Graph[r2.Vec], cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, n, minRandomSparseVertices); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		side := float64(n) * cfg.spacing
		pts := make([]r2.Vec, n)
		for i := range pts {
			pts[i] = r2.Vec{X: cfg.rng.Float64() * side, Y: cfg.rng.Float64() * side}
		}
		ids := place(g, cfg, pts)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
