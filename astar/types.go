package astar

import (
	"context"
	"errors"
	"math"
)

// ErrNilGraph is returned when a nil graph is passed.
var ErrNilGraph = errors.New("astar: graph is nil")

// Heuristic estimates the remaining cost from id to goal.
type Heuristic func(id, goal int) float64

// Options configures one A* run.
type Options struct {
	Ctx context.Context

	// Heuristic overrides the metric distance. nil means use the metric.
	Heuristic Heuristic

	// OnExpand is called once per expanded node with its g and f scores.
	OnExpand func(id int, g, f float64) error
}

// Option is a functional option for AStar.
type Option func(*Options)

// DefaultOptions returns Options with a background context and the metric
// heuristic.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(int, float64, float64) error { return nil },
	}
}

// WithHeuristic replaces the metric heuristic. Passing a function that
// always returns 0 turns A* into Dijkstra.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
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

// WithOnExpand registers an expansion hook. nil is ignored.
func WithOnExpand(fn func(id int, g, f float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of one A* search.
type Result struct {
	Start, Goal int

	// Prev maps each reached node to its predecessor.
	Prev map[int]int

	// G holds the best known cost from Start for every reached node.
	G map[int]float64

	// Order lists nodes in expansion order.
	Order []int

	// Path runs from Start to Goal, empty if unreachable.
	Path []int

	// Cost is the weight of Path, +Inf if unreachable.
	Cost float64
}

// Found reports whether a path was found.
func (r *Result) Found() bool {
	return len(r.Path) > 0 && !math.IsInf(r.Cost, 1)
}
