// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options, functional setters, Result and sentinel errors for Dijkstra.

package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/pathlab/paths"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates a negative or NaN distance cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures one Dijkstra run.
type Options struct {
	Ctx context.Context

	Goal    int
	HasGoal bool

	// MaxDistance caps exploration; nodes farther away stay unsettled.
	MaxDistance float64

	// OnSettle is called once per node when its distance becomes final.
	OnSettle func(id int, dist float64) error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no goal, no distance cap and a
// background context.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: math.Inf(1),
		OnSettle:    func(int, float64) error { return nil },
	}
}

// WithGoal stops the run once id is settled.
func WithGoal(id int) Option {
	return func(o *Options) {
		o.Goal = id
		o.HasGoal = true
	}
}

// WithMaxDistance sets the exploration cap. Validated by Dijkstra.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		o.MaxDistance = d
	}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnSettle registers a hook for settled nodes. nil is ignored.
func WithOnSettle(fn func(id int, dist float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// Result holds the distances and predecessors computed by Dijkstra.
type Result struct {
	Start   int
	Goal    int
	HasGoal bool

	// Dist maps every node id of the graph to its shortest distance; +Inf
	// marks nodes that were not settled (unreachable, or cut off by the goal
	// or the distance cap).
	Dist map[int]float64

	// Prev maps each settled node except Start to its predecessor on a
	// shortest path.
	Prev map[int]int

	// Order lists nodes in the order they were settled.
	Order []int

	// Path runs from Start to Goal; empty without a goal or if unreachable.
	Path []int
}

// DistanceTo returns the distance to id and whether it is finite.
func (r *Result) DistanceTo(id int) (float64, bool) {
	d, ok := r.Dist[id]
	if !ok || math.IsInf(d, 1) {
		return math.Inf(1), false
	}

	return d, true
}

// PathTo reconstructs a shortest path from Start to id; empty unless id
// was settled.
func (r *Result) PathTo(id int) []int {
	if _, ok := r.DistanceTo(id); !ok {
		return []int{}
	}

	return paths.Reconstruct(r.Prev, r.Start, id)
}
