package converters

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/metric"
)

// ErrNilGraph is returned when a nil source graph is passed.
var ErrNilGraph = errors.New("converters: graph is nil")

// ToGonum copies g into a weighted undirected gonum graph with the same
// node ids. Absent pairs weigh +Inf, as gonum's path package expects.
// Complexity: O(V + E).
func ToGonum(g core.Reader) (*simple.WeightedUndirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))

	ids := g.NodeIDs()
	for _, id := range ids {
		out.AddNode(simple.Node(id))
	}
	for _, id := range ids {
		for _, e := range g.Neighbors(id) {
			if e.To <= id {
				continue // self-loop, or mirrored half already seen
			}
			if prev := out.WeightedEdge(int64(id), int64(e.To)); prev != nil && prev.Weight() <= e.Weight {
				continue
			}
			out.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(id),
				T: simple.Node(e.To),
				W: e.Weight,
			})
		}
	}

	return out, nil
}

// FromGonum builds a core.Graph from src. coord places each source node;
// m supplies the graph's default metric. The returned map translates gonum
// node ids to pathlab ids. Source nodes are added in ascending id order.
func FromGonum[C any](
	src graph.WeightedUndirected,
	m metric.Metric[C],
	coord func(n graph.Node) C,
) (*core.Graph[C], map[int64]int, error) {
	if src == nil {
		return nil, nil, ErrNilGraph
	}

	nodes := graph.NodesOf(src.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	dst := core.NewGraph[C](m)
	ids := make(map[int64]int, len(nodes))
	for _, n := range nodes {
		ids[n.ID()] = dst.AddNode(coord(n))
	}

	for _, u := range nodes {
		to := graph.NodesOf(src.From(u.ID()))
		sort.Slice(to, func(i, j int) bool { return to[i].ID() < to[j].ID() })
		for _, v := range to {
			if v.ID() <= u.ID() {
				continue
			}
			w, ok := src.Weight(u.ID(), v.ID())
			if !ok {
				continue
			}
			if err := dst.AddEdge(ids[u.ID()], ids[v.ID()], core.WithWeight(w)); err != nil {
				return nil, nil, fmt.Errorf("converters: edge %d-%d: %w", u.ID(), v.ID(), err)
			}
		}
	}

	return dst, ids, nil
}
