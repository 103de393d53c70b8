// Package bfs provides options, the result type and sentinel errors for
// breadth-first search.
package bfs

import (
	"context"
	"errors"
)

// ErrGraphNil is returned if a nil graph is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for one BFS run.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// Goal is the target node; only meaningful when HasGoal is true.
	Goal    int
	HasGoal bool

	// OnVisit is called for each dequeued node with its hop depth.
	// Returning an error aborts the search.
	OnVisit func(id, depth int) error
}

// DefaultOptions returns Options with a background context, no goal and a
// no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithGoal sets the goal node.
func WithGoal(id int) Option {
	return func(o *Options) {
		o.Goal = id
		o.HasGoal = true
	}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every dequeue. nil is ignored.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS run.
type Result struct {
	// Start is the node the search began at.
	Start int

	// Goal and HasGoal echo WithGoal.
	Goal    int
	HasGoal bool

	// Order lists nodes in dequeue order.
	Order []int

	// Parent maps each discovered node except Start to its BFS-tree parent.
	Parent map[int]int

	// Depth maps each discovered node to its hop count from Start.
	Depth map[int]int

	// Path runs from Start to Goal; empty when there is no goal or it was not reached.
	Path []int
}

// Reached reports whether id was discovered.
func (r *Result) Reached(id int) bool {
	_, ok := r.Depth[id]

	return ok
}
