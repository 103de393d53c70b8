// Package pathlab is a small laboratory for route finding on spatial graphs:
// build a road network on a plane or on the globe, run a search over it, and
// replay a vehicle along the answer.
//
// What is in the box?
//
//	• One generic, thread-safe graph over any coordinate type with an
//	  injected distance metric (Euclidean for r2.Vec, haversine km for LatLng)
//	• Traversals: BFS, DFS (fewest hops; weights ignored)
//	• Shortest paths: Dijkstra, A* with a metric heuristic
//	• Heuristic tours: nearest-neighbour routing
//	• Fixtures: grids, cycles, random sparse and noise-jittered layouts,
//	  a sample city network
//	• Sessions: command history with undo, custom route sequences and the
//	  "which target?" policy an interactive front end needs
//
// Packages:
//
//	pq/         — min-priority queue used by Dijkstra and A*
//	metric/     — Euclidean and haversine metrics, LatLng
//	core/       — Graph[C], nodes, undirected weighted edges
//	bfs/, dfs/  — unweighted traversals with hooks and cancellation
//	dijkstra/   — single-source shortest paths
//	astar/      — goal-directed shortest path
//	tsp/        — nearest-neighbour tour
//	paths/      — path reconstruction, weights and metric lengths
//	builder/    — deterministic sample graphs
//	converters/ — gonum interop
//	playback/   — frame pacing and vehicle traces
//	session/    — the calling layer: edits, undo, compute
//
// Quick ASCII example:
//
//	    1───2
//	    │ ╲ │
//	    4───3
//
//	Dijkstra from 1 to 3 takes the diagonal; BFS does too, but only
//	because it is one hop, not because it is short.
//
//	go get github.com/katalvlaran/pathlab
package pathlab
