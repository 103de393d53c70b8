package session

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/pathlab/astar"
	"github.com/katalvlaran/pathlab/bfs"
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dfs"
	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/paths"
	"github.com/katalvlaran/pathlab/tsp"
)

// Compute answers req against the current graph. A non-empty route
// sequence takes precedence over the algorithm.
//
// Errors: ErrUnknownAlgorithm, ErrStartNotFound, and context errors from
// the algorithms. "No route" is an Outcome with an empty Path, not an error.
func (s *Session[C]) Compute(ctx context.Context, req Request) (*Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	algo, err := ParseAlgorithm(string(req.Algorithm))
	if err != nil {
		return nil, err
	}
	req.Algorithm = algo
	if !s.graph.HasNode(req.Start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, req.Start)
	}

	var out *Outcome
	if len(s.sequence) > 0 {
		out, err = s.fromSequence(req)
	} else {
		out, err = s.run(ctx, req)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("algorithm", string(req.Algorithm)).Int("start", req.Start).Msg("compute failed")
		return nil, err
	}

	s.log.Info().
		Str("algorithm", string(out.Algorithm)).
		Int("start", out.Start).
		Int("goal", out.Target).
		Bool("sequence", out.FromSequence).
		Int("visited", len(out.Order)).
		Int("path_len", len(out.Path)).
		Float64("distance", out.Distance).
		Msg("route computed")

	return out, nil
}

func (s *Session[C]) fromSequence(req Request) (*Outcome, error) {
	seq := append([]int{}, s.sequence...)
	d, ok := paths.Length(s.graph, seq)
	if !ok {
		return nil, fmt.Errorf("session: sequence: %w", core.ErrNodeNotFound)
	}

	return &Outcome{
		Algorithm:    req.Algorithm,
		Start:        seq[0],
		Target:       seq[len(seq)-1],
		Order:        seq,
		Path:         append([]int{}, seq...),
		Distance:     d,
		FromSequence: true,
	}, nil
}

func (s *Session[C]) run(ctx context.Context, req Request) (*Outcome, error) {
	g := s.graph
	out := &Outcome{
		Algorithm:      req.Algorithm,
		Start:          req.Start,
		Order:          []int{},
		Path:           []int{},
		IgnoresWeights: req.Algorithm.IgnoresWeights(),
	}
	if req.HasGoal {
		out.Target = req.Goal
	}

	switch req.Algorithm {
	case BFS:
		opts := []bfs.Option{bfs.WithContext(ctx)}
		if req.HasGoal {
			opts = append(opts, bfs.WithGoal(req.Goal))
		}
		res, err := bfs.BFS(g, req.Start, opts...)
		if err != nil {
			return nil, err
		}
		out.Order, out.Path = res.Order, res.Path

	case DFS:
		opts := []dfs.Option{dfs.WithContext(ctx)}
		if req.HasGoal {
			opts = append(opts, dfs.WithGoal(req.Goal))
		}
		res, err := dfs.DFS(g, req.Start, opts...)
		if err != nil {
			return nil, err
		}
		out.Order, out.Path = res.Order, res.Path

	case Dijkstra:
		return s.runDijkstra(ctx, req, out)

	case AStar:
		goal, ok := req.Goal, req.HasGoal
		if !ok {
			goal, ok = nearestByMetric(g, req.Start)
		}
		if !ok {
			return out, nil
		}
		out.Target = goal
		res, err := astar.AStar(g, req.Start, goal, astar.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		out.Order, out.Path = res.Order, res.Path

	case NearestNeighbor:
		res, err := tsp.NearestNeighbor(g, req.Start)
		if err != nil {
			return nil, err
		}
		out.Order, out.Path = res.Tour, res.Tour
		if n := len(res.Tour); n > 0 {
			out.Target = res.Tour[n-1]
		}
	}

	out.Distance = s.length(out.Path)

	return out, nil
}

func (s *Session[C]) runDijkstra(ctx context.Context, req Request, out *Outcome) (*Outcome, error) {
	opts := []dijkstra.Option{dijkstra.WithContext(ctx)}
	if req.HasGoal {
		opts = append(opts, dijkstra.WithGoal(req.Goal))
	}
	res, err := dijkstra.Dijkstra(s.graph, req.Start, opts...)
	if err != nil {
		return nil, err
	}
	out.Order = res.Order

	target, ok := req.Goal, req.HasGoal
	if !ok {
		target, ok = nearestReachable(res)
	}
	if !ok {
		return out, nil
	}
	out.Target = target
	out.Path = res.PathTo(target)
	if len(out.Path) > 1 {
		out.Distance, _ = res.DistanceTo(target)
	}

	return out, nil
}

// length is the metric length of path, 0 for fewer than two nodes.
func (s *Session[C]) length(path []int) float64 {
	d, ok := paths.Length(s.graph, path)
	if !ok {
		return 0
	}

	return d
}

// nearestReachable picks the settled node other than Start with the
// smallest distance, ties to the smaller id.
func nearestReachable(res *dijkstra.Result) (int, bool) {
	best, bestD := 0, math.Inf(1)
	for _, id := range res.Order {
		if id == res.Start {
			continue
		}
		if d := res.Dist[id]; d < bestD || (d == bestD && id < best) {
			best, bestD = id, d
		}
	}

	return best, best != 0
}

// nearestByMetric picks the node other than start closest in a straight line.
func nearestByMetric[C any](g *core.Graph[C], start int) (int, bool) {
	best, bestD := 0, math.Inf(1)
	for _, id := range g.NodeIDs() {
		if id == start {
			continue
		}
		d, _ := g.Distance(start, id)
		if d < bestD || best == 0 {
			best, bestD = id, d
		}
	}

	return best, best != 0
}
