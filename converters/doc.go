// Package converters provides two-way adapters between pathlab graphs and
// gonum/graph.
//
// ToGonum exports any core.Reader to a *simple.WeightedUndirectedGraph so
// the gonum algorithm suite (path, topo, network, ...) can run on it. Node
// ids are preserved. gonum graphs hold at most one edge per pair and no
// self-loops, so parallel edges collapse to the cheapest and self-loops are
// dropped.
//
// FromGonum imports a weighted undirected gonum graph into a fresh
// core.Graph, placing nodes with a caller-supplied coordinate function.
// pathlab allocates its own ids, so the id mapping is returned alongside.
package converters
