// File: methods_edges.go
// Role: Edge lifecycle and adjacency queries.
// Determinism:
//   - Neighbors() keeps insertion order.
//   - Edges() is sorted by (A, B) ascending, then by insertion order.

package core

import (
	"math"
	"sort"
)

// AddEdge connects a and b with an undirected edge. Without WithWeight the
// weight is the metric distance between the endpoints right now.
//
// Steps:
//  1. Resolve options; reject NaN or negative explicit weights.
//  2. Under the write lock, verify both endpoints exist.
//  3. Append {b,w} to a's list and {a,w} to b's list.
//
// Errors (graph unchanged on any error):
//   - ErrNegativeWeight: explicit weight < 0 or NaN.
//   - ErrNodeNotFound:   a or b is absent.
//
// Complexity: O(1) amortized.
func (g *Graph[C]) AddEdge(a, b int, opts ...EdgeOption) error {
	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.explicit && (math.IsNaN(cfg.weight) || cfg.weight < 0) {
		return ErrNegativeWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	na, okA := g.nodes[a]
	nb, okB := g.nodes[b]
	if !okA || !okB {
		return ErrNodeNotFound
	}

	w := cfg.weight
	if !cfg.explicit {
		w = g.metric(na.Coord, nb.Coord)
	}
	g.adj[a] = append(g.adj[a], Adjacent{To: b, Weight: w})
	g.adj[b] = append(g.adj[b], Adjacent{To: a, Weight: w})

	return nil
}

// RemoveEdge strips every entry to b from a's list and every entry to a from
// b's list, so parallel edges go too. Removing a pair that is not connected
// is a successful no-op.
//
// Errors: ErrNodeNotFound if either adjacency list is absent.
// Complexity: O(deg(a) + deg(b)).
func (g *Graph[C]) RemoveEdge(a, b int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	la, okA := g.adj[a]
	lb, okB := g.adj[b]
	if !okA || !okB {
		return ErrNodeNotFound
	}
	g.adj[a] = without(la, b)
	if a != b {
		g.adj[b] = without(lb, a)
	}

	return nil
}

// HasEdge reports whether at least one edge joins a and b.
// Complexity: O(deg(a)).
func (g *Graph[C]) HasEdge(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.adj[a] {
		if e.To == b {
			return true
		}
	}

	return false
}

// Neighbors returns a copy of id's adjacency list; empty when id is absent.
// Complexity: O(deg(id)).
func (g *Graph[C]) Neighbors(id int) []Adjacent {
	g.mu.RLock()
	defer g.mu.RUnlock()

	list := g.adj[id]
	out := make([]Adjacent, len(list))
	copy(out, list)

	return out
}

// Edges lists every undirected edge exactly once. An adjacency entry a→b is
// emitted only when a < b, which picks one side of each mirrored pair and
// leaves self-loops out. Parallel edges appear once each.
// Complexity: O(V log V + E).
func (g *Graph[C]) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0)
	for _, a := range g.sortedIDs() {
		for _, e := range g.adj[a] {
			if a < e.To {
				out = append(out, Edge{A: a, B: e.To, Weight: e.Weight})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}

		return out[i].B < out[j].B
	})

	return out
}

// EdgeCount returns len(Edges()) without building the slice.
func (g *Graph[C]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for a, list := range g.adj {
		for _, e := range list {
			if a < e.To {
				n++
			}
		}
	}

	return n
}
