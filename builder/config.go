// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: builderConfig: rng, seed, spacing, origin and weight function shared by constructors.

package builder

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// builderConfig aggregates all knobs used by constructors. It is passed by
// value; constructors never modify it.
type builderConfig struct {
	// rng drives stochastic choices; nil means none were requested.
	rng *rand.Rand
	// seed feeds the noise field of JitteredGrid.
	seed int64

	spacing float64
	origin  r2.Vec

	// weightFn derives explicit weights; nil keeps the metric default.
	weightFn WeightFn
}

const (
	defaultSpacing = 1.0
	defaultSeed    = 0
)

// newBuilderConfig resolves options in order; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		seed:    defaultSeed,
		spacing: defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
