// Package bfs provides breadth-first search over a pathlab graph, returning
// visit order, parent links, hop depths and the path to an optional goal.
//
// What
//
//   - FIFO frontier; a node is marked visited when it is enqueued, so it is
//     never queued twice.
//   - Order is the dequeue order.
//   - With WithGoal, the search stops right after the goal is dequeued and
//     recorded: Order ends with the goal and its neighbours are not scanned.
//   - Edge weights are ignored. BFS finds paths with the fewest hops, which
//     is not the cheapest path on a weighted graph. Interfaces presenting BFS
//     results should say so.
//
// Determinism
//
//	Neighbours are scanned in adjacency insertion order, so for a given graph
//	the visit sequence is fully reproducible.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start, bfs.WithGoal(goal))
//	if err != nil {
//		// only ErrGraphNil, context errors or OnVisit errors
//	}
//	if len(res.Path) == 0 {
//		// goal unreachable
//	}
//
// Options
//
//   - WithGoal(id):      stop once id is dequeued and reconstruct the path.
//   - WithContext(ctx):  cancellation, checked once per dequeue.
//   - WithOnVisit(fn):   called for each dequeued node; an error aborts.
//
// Errors
//
//   - ErrGraphNil if the graph is nil.
//   - ctx.Err() if the context is cancelled.
//   - Wrapped OnVisit errors.
//
// An absent start node is not an error: the result is empty.
package bfs
