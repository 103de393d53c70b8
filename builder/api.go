// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Build entry points: Build onto an existing graph, BuildPlanar and BuildGeo onto fresh ones.
//
// Contract:
//   - Constructors run in argument order against one shared builderConfig.
//   - The first failing constructor stops the build; nodes it already added stay.
//   - A nil graph returns ErrConstructFailed.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/metric"
)

// Constructor applies a deterministic mutation to g using the resolved
// configuration. Constructors validate parameters first and return
// sentinel errors; they never panic.
type Constructor[C any] func(g *core.Graph[C], cfg builderConfig) error

// Build resolves bopts and applies cons to g in order. The first error is
// returned wrapped with "Build: "; earlier constructors' work is kept.
func Build[C any](g *core.Graph[C], bopts []BuilderOption, cons ...Constructor[C]) error {
	if g == nil {
		return fmt.Errorf("Build: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}

// BuildPlanar creates a fresh Euclidean graph and applies cons.
func BuildPlanar(bopts []BuilderOption, cons ...Constructor[r2.Vec]) (*core.Graph[r2.Vec], error) {
	g := core.NewPlanar()
	if err := Build(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// BuildGeo creates a fresh haversine graph and applies cons.
func BuildGeo(bopts []BuilderOption, cons ...Constructor[metric.LatLng]) (*core.Graph[metric.LatLng], error) {
	g := core.NewGeo()
	if err := Build(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}
