// SPDX-License-Identifier: MIT
//
// File: weight_fn.go
// Role: WeightFn policies deriving explicit edge weights from the metric distance.

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn derives an edge weight from the metric distance between its
// endpoints. rng is nil unless WithSeed or WithRand was given.
type WeightFn func(rng *rand.Rand, dist float64) float64

// ConstantWeightFn ignores geometry and returns w. Constant weights below
// the straight-line distance make the A* heuristic inadmissible.
// Panics if w < 0.
func ConstantWeightFn(w float64) WeightFn {
	if w < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", w))
	}

	return func(*rand.Rand, float64) float64 {
		return w
	}
}

// ScaledWeightFn multiplies the distance by k. k ≥ 1 keeps the metric an
// admissible A* heuristic, modelling roads that wind. Panics if k < 0.
func ScaledWeightFn(k float64) WeightFn {
	if k < 0 {
		panic(fmt.Sprintf("ScaledWeightFn: factor must be ≥ 0, got %g", k))
	}

	return func(_ *rand.Rand, d float64) float64 {
		return d * k
	}
}

// DetourWeightFn scales the distance by a random factor in [1, 1+maxExtra].
// Without an RNG it returns the plain distance. Panics if maxExtra < 0.
func DetourWeightFn(maxExtra float64) WeightFn {
	if maxExtra < 0 {
		panic(fmt.Sprintf("DetourWeightFn: maxExtra must be ≥ 0, got %g", maxExtra))
	}

	return func(rng *rand.Rand, d float64) float64 {
		if rng == nil {
			return d
		}

		return d * (1 + rng.Float64()*maxExtra)
	}
}
