// Package tsp provides the nearest-neighbour heuristic for building an open
// tour through the nodes of a pathlab graph.
//
// From the current node the walk moves to the globally unvisited node that
// is joined to it by the lightest direct edge. Only direct neighbours are
// candidates: the nearest node in the whole graph is not considered unless
// an edge leads to it. When no unvisited node is directly reachable the walk
// ends, so on a disconnected graph (or after a greedy dead end) the tour
// silently covers only part of the graph. That is a property of the
// heuristic, not an error, and the result reports it through Complete.
//
// Ties on weight go to the smaller node id. Parallel edges count with their
// cheapest weight.
//
// The tour is not closed and no improvement pass (2-opt and friends) is run.
//
// Complexity: O(V · (V + E)) worst case, O(V) memory.
package tsp
