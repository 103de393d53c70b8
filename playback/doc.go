// Package playback paces precomputed algorithm output for display: the
// visit order of a traversal, or a vehicle moving along a route.
//
// Nothing here computes paths. A Player steps through an immutable slice of
// frames, either on demand (Next) or on a ticker (Run). Run stops when the
// frames are exhausted or its context is cancelled; cancelling never
// touches the graph or the result being played.
//
// Trace turns a route into vehicle frames: the position is interpolated
// linearly between consecutive nodes, the heading is the bearing of the
// current segment in degrees, and the last frame of every segment reports
// the node just reached.
package playback
