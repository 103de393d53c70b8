// File: methods_nodes.go
// Role: Node lifecycle and node queries.
// Determinism:
//   - Nodes() and NodeIDs() are sorted by id ascending.

package core

import (
	"sort"

	"github.com/katalvlaran/pathlab/metric"
)

// AddNode allocates the next id, stores a node at c and gives it an empty
// adjacency list. It never fails.
// Complexity: O(1) amortized.
func (g *Graph[C]) AddNode(c C) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextID
	g.nextID++
	g.nodes[id] = &Node[C]{ID: id, Coord: c}
	g.adj[id] = []Adjacent{}

	return id
}

// RemoveNode deletes the node, its adjacency list and every entry in other
// lists that points to it, as one operation.
//
// Errors: ErrNodeNotFound if id is absent (graph unchanged).
// Complexity: O(V + E).
func (g *Graph[C]) RemoveNode(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return ErrNodeNotFound
	}

	delete(g.nodes, id)
	delete(g.adj, id)
	for k, list := range g.adj {
		g.adj[k] = without(list, id)
	}

	return nil
}

// MoveNode replaces the coordinates of id. Incident edge weights are not
// recomputed; they keep the value fixed when the edge was created.
//
// Errors: ErrNodeNotFound if id is absent.
// Complexity: O(1).
func (g *Graph[C]) MoveNode(id int, c C) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	n.Coord = c

	return nil
}

// Node returns a copy of the node with the given id.
func (g *Graph[C]) Node(id int) (Node[C], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node[C]{}, false
	}

	return *n, true
}

// HasNode reports whether id exists.
// Complexity: O(1).
func (g *Graph[C]) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns a snapshot of all nodes sorted by id.
// Complexity: O(V log V).
func (g *Graph[C]) Nodes() []Node[C] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node[C], 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeIDs returns all node ids in ascending order.
// Complexity: O(V log V).
func (g *Graph[C]) NodeIDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedIDs()
}

// NodeCount returns the number of nodes.
func (g *Graph[C]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Distance returns the metric distance between the current coordinates of a and b.
func (g *Graph[C]) Distance(a, b int) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	na, okA := g.nodes[a]
	nb, okB := g.nodes[b]
	if !okA || !okB {
		return 0, false
	}

	return g.metric(na.Coord, nb.Coord), true
}

// Metric returns the metric the graph was built with.
func (g *Graph[C]) Metric() metric.Metric[C] {
	return g.metric
}

// sortedIDs lists node ids ascending; caller holds at least the read lock.
func (g *Graph[C]) sortedIDs() []int {
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// without returns list minus every entry pointing at id, reusing the backing array.
func without(list []Adjacent, id int) []Adjacent {
	out := list[:0]
	for _, e := range list {
		if e.To != id {
			out = append(out, e)
		}
	}

	return out
}
