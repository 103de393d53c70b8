// Package session is the calling layer between a user interface and the
// pathlab algorithms. A Session owns one graph for its lifetime together
// with everything an interactive editor keeps around it:
//
//   - an explicit undo history of Commands (add node, connect, move);
//   - a custom route sequence that, when non-empty, replaces any algorithm;
//   - the policy for turning a (start, goal, algorithm) request into an
//     Outcome: which target to pick when no goal is given, and which
//     distance figure to report.
//
// Target policy without a goal:
//
//   - dijkstra:  the reachable node (other than start) with the smallest
//     distance, ties to the smaller id.
//   - astar:     the node (other than start) closest to start in a straight
//     line, ties to the smaller id, whether or not it is reachable.
//   - bfs, dfs:  no target; the Outcome carries the visit order only.
//   - nn:        a goal is never used.
//
// Distance figure: Dijkstra reports its own shortest-path cost; every other
// algorithm, and the custom sequence, report the metric length of the
// returned path (kilometres on a geographic graph).
//
// Clear throws the graph away and starts a fresh one from the factory.
// Destructive edits (RemoveNode, Disconnect) are applied directly and are
// not recorded; undoing an entry whose effect has already been removed by
// such an edit is a no-op.
package session
