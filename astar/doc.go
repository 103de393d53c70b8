// Package astar implements A* search between two nodes of a pathlab graph.
//
// The frontier is ordered by f = g + h, where g is the best known cost from
// the start and h estimates the remaining cost to the goal. By default h is
// the graph's own metric distance between a node and the goal, which keeps
// A* optimal as long as every edge weighs at least the straight-line
// distance between its endpoints. Default edge weights satisfy this; callers
// who supply lighter explicit weights break admissibility and may get a
// non-optimal path. That contract is documented, not enforced.
//
// g is updated only on a strictly better cost. Entries left behind by such
// updates are skipped once their node has been expanded. The search ends
// when the goal is popped, or with an empty Path when the frontier drains.
//
// A goal is mandatory. Callers that want "nearest something" semantics
// choose the goal themselves.
package astar
