package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/paths"
)

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   core.Reader
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[int]bool
	res     *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil for a nil graph, the context error on cancellation, or
// a wrapped OnVisit error. The partial result is returned alongside errors.
func BFS(g core.Reader, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result{
		Start:   start,
		Goal:    o.Goal,
		HasGoal: o.HasGoal,
		Order:   []int{},
		Parent:  map[int]int{},
		Depth:   map[int]int{},
		Path:    []int{},
	}
	if !g.HasNode(start) {
		return res, nil
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: map[int]bool{},
		res:     res,
	}
	w.enqueue(start, 0)
	if err := w.loop(); err != nil {
		return res, err
	}

	if o.HasGoal && w.visited[o.Goal] {
		res.Path = paths.Reconstruct(res.Parent, start, o.Goal)
	}

	return res, nil
}

// enqueue marks id visited at depth d and appends it to the queue.
func (w *walker) enqueue(id, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until it is empty, the goal is dequeued, or an error occurs.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if w.opts.HasGoal && item.id == w.opts.Goal {
			return nil
		}

		for _, e := range w.graph.Neighbors(item.id) {
			if !w.visited[e.To] {
				w.res.Parent[e.To] = item.id
				w.enqueue(e.To, item.depth+1)
			}
		}
	}

	return nil
}
