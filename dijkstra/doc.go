// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over pathlab graphs with non-negative edge weights.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E); the heap may hold one stale entry per relaxation.
//
// Implementation notes:
//
//   - The frontier is a pq.Queue with lazy decrease-key: an improved
//     distance is pushed as a new entry and stale entries are skipped when
//     popped, because their node is already settled.
//   - Distances start at +Inf for every node, 0 for the source.
//   - With WithGoal the run stops as soon as the goal is settled.
//   - Nodes left unsettled by an early stop (goal or distance cap) report
//     +Inf and have no Prev entry; tentative distances are not exposed.
//     A goal beyond the cap therefore yields an empty Path.
//   - Without a goal every reachable node is settled and the caller is free
//     to pick a target from Dist afterwards.
//   - Parallel edges are handled naturally: only the cheapest one relaxes.
//
// Options:
//
//	– WithGoal(id):        stop once id is settled and reconstruct the path.
//	– WithMaxDistance(d):  do not settle nodes farther than d.
//	– WithContext(ctx):    cancellation, checked per settled node.
//	– WithOnSettle(fn):    hook called for every settled node.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the graph is nil.
//	– ErrBadMaxDistance  if WithMaxDistance received a negative or NaN value.
//
// An absent source is not an error: every distance stays +Inf.
package dijkstra
