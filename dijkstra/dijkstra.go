// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: Dijkstra runner: lazy-decrease-key frontier, settle loop, relaxation.
//
// Contract:
//   - Non-negative weights only; the graph is read, never mutated.
//   - Dist and Prev describe settled nodes only.

package dijkstra

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/pq"
)

// runner holds the mutable state of one invocation.
type runner struct {
	g        core.Reader
	opts     Options
	ctx      context.Context
	res      *Result
	settled  map[int]bool
	frontier *pq.Queue[int]
}

// Dijkstra computes shortest distances from start to every node of g.
//
// Returns ErrNilGraph for a nil graph, ErrBadMaxDistance for an invalid cap,
// the context error on cancellation and wrapped OnSettle errors. In the last
// two cases the partial result is returned as well.
func Dijkstra(g core.Reader, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxDistance < 0 || math.IsNaN(cfg.MaxDistance) {
		return nil, fmt.Errorf("%w: %v", ErrBadMaxDistance, cfg.MaxDistance)
	}

	ids := g.NodeIDs()
	res := &Result{
		Start:   start,
		Goal:    cfg.Goal,
		HasGoal: cfg.HasGoal,
		Dist:    make(map[int]float64, len(ids)),
		Prev:    make(map[int]int, len(ids)),
		Order:   []int{},
		Path:    []int{},
	}
	for _, id := range ids {
		res.Dist[id] = math.Inf(1)
	}
	if !g.HasNode(start) {
		return res, nil
	}

	r := &runner{
		g:        g,
		opts:     cfg,
		ctx:      cfg.Ctx,
		res:      res,
		settled:  make(map[int]bool, len(ids)),
		frontier: pq.NewWithCapacity[int](len(ids)),
	}
	res.Dist[start] = 0
	r.frontier.Push(start, 0)
	err := r.process()
	r.dropTentative()
	if err != nil {
		return res, err
	}

	if cfg.HasGoal && r.settled[cfg.Goal] {
		res.Path = res.PathTo(cfg.Goal)
	}

	return res, nil
}

// dropTentative resets every node that was reached but not settled, so Dist
// and Prev only describe final shortest paths.
func (r *runner) dropTentative() {
	for id := range r.res.Prev {
		if !r.settled[id] {
			r.res.Dist[id] = math.Inf(1)
			delete(r.res.Prev, id)
		}
	}
}

// process pops the frontier until it empties, the goal settles or the
// distance cap is exceeded.
func (r *runner) process() error {
	for {
		u, du, ok := r.frontier.PopWithPriority()
		if !ok {
			return nil
		}
		if r.settled[u] {
			continue // stale entry
		}
		if du > r.opts.MaxDistance {
			return nil
		}
		if err := r.ctx.Err(); err != nil {
			return err
		}

		r.settled[u] = true
		r.res.Order = append(r.res.Order, u)
		if err := r.opts.OnSettle(u, du); err != nil {
			return fmt.Errorf("dijkstra: OnSettle error at %d: %w", u, err)
		}
		if r.opts.HasGoal && u == r.opts.Goal {
			return nil
		}

		r.relax(u, du)
	}
}

// relax offers every neighbour of u a path through u.
func (r *runner) relax(u int, du float64) {
	for _, e := range r.g.Neighbors(u) {
		if r.settled[e.To] {
			continue
		}
		nd := du + e.Weight
		if nd < r.res.Dist[e.To] {
			r.res.Dist[e.To] = nd
			r.res.Prev[e.To] = u
			r.frontier.Push(e.To, nd)
		}
	}
}
