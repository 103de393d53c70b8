package dfs

import (
	"context"
	"errors"
)

// ErrGraphNil is returned when a nil graph is passed to DFS.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures a DFS run.
type Option func(*Options)

// Options holds the parameters of one DFS run.
type Options struct {
	// Ctx allows cancellation; checked once per visited node.
	Ctx context.Context

	// Goal stops the traversal once visited. Ignored unless HasGoal.
	Goal    int
	HasGoal bool

	// OnVisit is invoked in pre-order with the node's depth in the DFS tree.
	// Returning an error aborts traversal.
	OnVisit func(id, depth int) error
}

// DefaultOptions returns Options with a background context, no goal and a
// no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithGoal sets the node whose visit ends the traversal.
func WithGoal(id int) Option {
	return func(o *Options) {
		o.Goal = id
		o.HasGoal = true
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

// WithOnVisit registers a pre-order hook. nil is ignored.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a DFS run.
type Result struct {
	Start   int
	Goal    int
	HasGoal bool

	// Order lists nodes in pre-order visit sequence.
	Order []int

	// Parent maps each visited node except Start to the node it was reached from.
	Parent map[int]int

	// Depth maps each visited node to its depth in the DFS tree.
	Depth map[int]int

	// Path is the tree branch from Start to Goal, empty if not reached.
	Path []int
}

// Visited reports whether id was visited.
func (r *Result) Visited(id int) bool {
	_, ok := r.Depth[id]

	return ok
}
