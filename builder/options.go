// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: BuilderOption setters. Invalid arguments panic at option construction time.

package builder

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG and seeds the JitteredGrid noise field.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
		c.seed = seed
	}
}

// WithSpacing sets the distance between neighbouring layout points.
// Panics unless s is positive and finite.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 1) {
		panic("builder: WithSpacing(s<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}

// WithOrigin translates every planar layout by o.
func WithOrigin(o r2.Vec) BuilderOption {
	return func(c *builderConfig) {
		c.origin = o
	}
}

// WithWeightFn replaces metric default weights with fn(rng, distance).
// Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
