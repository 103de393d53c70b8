// Package paths holds the helpers shared by every path-producing algorithm:
// predecessor-chain reconstruction and route cost measurement.
package paths

import (
	"math"

	"github.com/katalvlaran/pathlab/core"
)

// Reconstruct walks prev from goal back to start and returns the path in
// start→goal order. It returns an empty, non-nil slice when goal was not
// reached: goal != start and goal has no predecessor, or the chain breaks
// before arriving at start.
// Complexity: O(len(path)).
func Reconstruct(prev map[int]int, start, goal int) []int {
	if goal == start {
		return []int{start}
	}
	if _, ok := prev[goal]; !ok {
		return []int{}
	}

	rev := []int{goal}
	seen := map[int]bool{goal: true}
	for cur := goal; cur != start; {
		p, ok := prev[cur]
		if !ok || seen[p] {
			return []int{}
		}
		seen[p] = true
		rev = append(rev, p)
		cur = p
	}

	return Reverse(rev)
}

// Reverse returns a new slice with the elements of s in reverse order.
func Reverse(s []int) []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// Weight sums edge weights along path, taking the cheapest of any parallel
// edges for each hop. ok is false if some consecutive pair is not adjacent.
// A path of zero or one node weighs 0.
func Weight(g core.Reader, path []int) (total float64, ok bool) {
	for i := 0; i+1 < len(path); i++ {
		best := math.Inf(1)
		for _, e := range g.Neighbors(path[i]) {
			if e.To == path[i+1] && e.Weight < best {
				best = e.Weight
			}
		}
		if math.IsInf(best, 1) {
			return 0, false
		}
		total += best
	}

	return total, true
}

// Length sums the metric distance between consecutive nodes of path, using
// current coordinates and ignoring edges. This is the "distance travelled"
// figure of a route. ok is false if a node is missing.
func Length(g core.Spatial, path []int) (total float64, ok bool) {
	for i := 0; i+1 < len(path); i++ {
		d, found := g.Distance(path[i], path[i+1])
		if !found {
			return 0, false
		}
		total += d
	}

	return total, true
}
