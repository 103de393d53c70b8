// Package dfs provides depth-first search over a pathlab graph.
//
// The walk is pre-order: a node is marked, recorded in Order and handed to
// OnVisit the moment it is discovered, before any of its neighbours. When a
// goal is set the whole traversal stops as soon as the goal is visited; no
// pending frame resumes after that.
//
// The implementation keeps an explicit stack of frames instead of recursing,
// so graph size never threatens the goroutine stack. Each frame remembers
// how far it got through its neighbour list, which reproduces exactly the
// order a recursive walk would produce.
//
// Edge weights are ignored. The path found is simply the branch that led to
// the goal and is usually neither the shortest nor the cheapest.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors
//
//   - ErrGraphNil if the graph is nil.
//   - ctx.Err() if the context is cancelled.
//   - Wrapped OnVisit errors.
package dfs
