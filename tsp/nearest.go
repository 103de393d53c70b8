// SPDX-License-Identifier: MIT
//
// File: nearest.go
// Role: Nearest-neighbour tour over direct edges.
//
// Contract:
//   - Candidates are direct neighbours only; ties go to the smaller id.
//   - The tour stops early when no unvisited neighbour remains.

package tsp

import (
	"math"

	"github.com/katalvlaran/pathlab/core"
)

// NearestNeighbor builds a greedy open tour from start.
func NearestNeighbor(g core.Reader, start int) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	res := &Result{Tour: []int{}}
	if !g.HasNode(start) {
		return res, nil
	}

	total := len(g.NodeIDs())
	visited := map[int]bool{start: true}
	res.Tour = append(res.Tour, start)

	for cur := start; ; {
		next, w, ok := lightestUnvisited(g.Neighbors(cur), visited)
		if !ok {
			break
		}
		visited[next] = true
		res.Tour = append(res.Tour, next)
		res.Cost += w
		cur = next
	}
	res.Complete = len(res.Tour) == total

	return res, nil
}

// lightestUnvisited picks the unvisited neighbour with the smallest edge
// weight, breaking ties by smaller id.
func lightestUnvisited(adj []core.Adjacent, visited map[int]bool) (int, float64, bool) {
	best, bestW, found := 0, math.Inf(1), false
	for _, e := range adj {
		if visited[e.To] {
			continue
		}
		if !found || e.Weight < bestW || (e.Weight == bestW && e.To < best) {
			best, bestW, found = e.To, e.Weight, true
		}
	}

	return best, bestW, found
}
