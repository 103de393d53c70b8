package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/paths"
	"github.com/katalvlaran/pathlab/pq"
)

type search struct {
	g      core.Spatial
	opts   Options
	goal   int
	h      Heuristic
	res    *Result
	closed map[int]bool
	open   *pq.Queue[int]
}

// AStar finds a shortest path from start to goal in g.
//
// Missing endpoints and unreachable goals yield an empty Path and +Inf Cost
// without error. Errors are ErrNilGraph, the context error and wrapped
// OnExpand errors.
func AStar(g core.Spatial, start, goal int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	res := &Result{
		Start: start,
		Goal:  goal,
		Prev:  map[int]int{},
		G:     map[int]float64{},
		Order: []int{},
		Path:  []int{},
		Cost:  math.Inf(1),
	}
	if !g.HasNode(start) || !g.HasNode(goal) {
		return res, nil
	}

	s := &search{
		g:      g,
		opts:   cfg,
		goal:   goal,
		h:      cfg.Heuristic,
		res:    res,
		closed: map[int]bool{},
		open:   pq.New[int](),
	}
	if s.h == nil {
		s.h = s.metricHeuristic
	}

	res.G[start] = 0
	s.open.Push(start, s.h(start, goal))
	if err := s.run(); err != nil {
		return res, err
	}

	if s.closed[goal] {
		res.Path = paths.Reconstruct(res.Prev, start, goal)
		res.Cost = res.G[goal]
	}

	return res, nil
}

// metricHeuristic measures straight-line distance with the graph's metric.
func (s *search) metricHeuristic(id, goal int) float64 {
	d, ok := s.g.Distance(id, goal)
	if !ok {
		return 0
	}

	return d
}

func (s *search) run() error {
	for {
		u, f, ok := s.open.PopWithPriority()
		if !ok {
			return nil
		}
		if s.closed[u] {
			continue
		}
		if err := s.opts.Ctx.Err(); err != nil {
			return err
		}

		s.closed[u] = true
		s.res.Order = append(s.res.Order, u)
		gu := s.res.G[u]
		if err := s.opts.OnExpand(u, gu, f); err != nil {
			return fmt.Errorf("astar: OnExpand error at %d: %w", u, err)
		}
		if u == s.goal {
			return nil
		}

		for _, e := range s.g.Neighbors(u) {
			if s.closed[e.To] {
				continue
			}
			tentative := gu + e.Weight
			if old, seen := s.res.G[e.To]; seen && tentative >= old {
				continue
			}
			s.res.G[e.To] = tentative
			s.res.Prev[e.To] = u
			s.open.Push(e.To, tentative+s.h(e.To, s.goal))
		}
	}
}
