package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/paths"
)

// frame is one level of the simulated recursion.
type frame struct {
	node  int
	depth int
	adj   []core.Adjacent
	next  int // index of the next neighbour to consider
}

// walker carries mutable state for one traversal.
type walker struct {
	graph core.Reader
	opts  Options
	ctx   context.Context
	stack []frame
	res   *Result
	done  bool
}

// DFS runs depth-first search on g from start.
// An absent start yields an empty result and no error.
func DFS(g core.Reader, start int, opts ...Option) (*Result, error) {
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

	w := &walker{graph: g, opts: o, ctx: o.Ctx, res: res}
	if err := w.run(start); err != nil {
		return res, err
	}
	if o.HasGoal && res.Visited(o.Goal) {
		res.Path = paths.Reconstruct(res.Parent, start, o.Goal)
	}

	return res, nil
}

// visit records id in pre-order and opens a frame for it unless the goal
// has just been reached.
func (w *walker) visit(id, depth int) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, depth); err != nil {
		return fmt.Errorf("dfs: OnVisit error at %d: %w", id, err)
	}
	if w.opts.HasGoal && id == w.opts.Goal {
		w.done = true
		return nil
	}
	w.stack = append(w.stack, frame{node: id, depth: depth, adj: w.graph.Neighbors(id)})

	return nil
}

func (w *walker) run(start int) error {
	if err := w.visit(start, 0); err != nil {
		return err
	}
	for !w.done && len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next >= len(top.adj) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		n := top.adj[top.next].To
		top.next++
		if w.res.Visited(n) {
			continue
		}
		w.res.Parent[n] = top.node
		// top may be invalidated by the append inside visit
		if err := w.visit(n, top.depth+1); err != nil {
			return err
		}
	}

	return nil
}
