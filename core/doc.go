// Package core provides the in-memory weighted, undirected graph that every
// pathlab algorithm runs on.
//
// A single generic Graph[C] serves both coordinate systems used by the
// application; the coordinate type and the metric that produces default edge
// weights are injected at construction:
//
//	g := core.NewPlanar() // Graph[r2.Vec], Euclidean weights
//	m := core.NewGeo()    // Graph[metric.LatLng], haversine weights (km)
//
// Storage
//
//	nodes:     id → *Node[C]
//	adjacency: id → []Adjacent{To, Weight}
//
// An undirected edge is stored as two mirrored adjacency entries with equal
// weights. AddEdge, RemoveEdge and RemoveNode update both sides under one
// write lock, so the mirror invariant holds after every call.
//
// Policies
//
//   - Node ids come from a strictly increasing counter starting at 1 and are
//     never reused, not even after RemoveNode.
//   - A default edge weight is the metric distance between the endpoints at
//     creation time. Stored weights are frozen: MoveNode does not recompute
//     them.
//   - Parallel edges are kept. RemoveEdge removes all of them at once.
//   - Self-loops are not rejected; callers are responsible for not asking for
//     them. Edges() never lists a self-loop.
//   - Explicit weights must be non-negative and not NaN (ErrNegativeWeight).
//
// Errors
//
//	ErrNodeNotFound    - an endpoint or node id is absent; nothing was changed.
//	ErrNegativeWeight  - an explicit weight is negative or NaN; nothing was changed.
//
// Lookups never fail: Node reports ok=false and Neighbors returns an empty
// slice for unknown ids.
//
// Algorithms consume the graph through the read-only Reader and Spatial
// interfaces and treat it as a snapshot for the duration of one call.
package core
