// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Adjacent, Edge, Graph, options, read-only interfaces and sentinel errors.

package core

import (
	"errors"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathlab/metric"
)

// Sentinel errors for graph mutations.
var (
	// ErrNodeNotFound indicates an operation referenced an absent node id.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeWeight indicates an explicit edge weight below zero or NaN.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")
)

// Node is a graph vertex. Its identity is ID; Coord may change via MoveNode.
type Node[C any] struct {
	ID    int
	Coord C
}

// Adjacent is one directed half of an undirected edge, stored in the
// adjacency list of its source node.
type Adjacent struct {
	To     int
	Weight float64
}

// Edge is an undirected edge as listed by Graph.Edges, with A < B.
type Edge struct {
	A, B   int
	Weight float64
}

// Reader is the read-only view that traversal and shortest-path algorithms need.
type Reader interface {
	// HasNode reports whether id exists.
	HasNode(id int) bool

	// NodeIDs returns all node ids in ascending order.
	NodeIDs() []int

	// Neighbors returns the adjacency entries of id in insertion order,
	// or an empty slice when id is absent.
	Neighbors(id int) []Adjacent
}

// Spatial is a Reader that can also measure the metric distance between two
// nodes. A* uses it for its heuristic.
type Spatial interface {
	Reader

	// Distance returns the metric distance between the coordinates of a and b.
	// ok is false when either node is absent.
	Distance(a, b int) (d float64, ok bool)
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	weight   float64
	explicit bool
}

// WithWeight sets an explicit weight instead of the metric default.
// The weight is validated by AddEdge.
func WithWeight(w float64) EdgeOption {
	return func(c *edgeConfig) {
		c.weight = w
		c.explicit = true
	}
}

// Graph is an undirected weighted graph over coordinates of type C.
//
// mu guards every field below it. Read queries return copies, so callers may
// keep results after the lock is released.
type Graph[C any] struct {
	mu sync.RWMutex

	metric metric.Metric[C]
	nextID int

	nodes map[int]*Node[C]
	adj   map[int][]Adjacent
}

// NewGraph creates an empty Graph whose default edge weights come from m.
// A nil m falls back to metric.Zero.
// Complexity: O(1).
func NewGraph[C any](m metric.Metric[C]) *Graph[C] {
	if m == nil {
		m = metric.Zero[C]
	}

	return &Graph[C]{
		metric: m,
		nextID: 1,
		nodes:  make(map[int]*Node[C]),
		adj:    make(map[int][]Adjacent),
	}
}

// NewPlanar creates an empty graph on the plane with Euclidean default weights.
func NewPlanar() *Graph[r2.Vec] {
	return NewGraph[r2.Vec](metric.Euclidean)
}

// NewGeo creates an empty graph of lat/lng nodes with haversine (km) default weights.
func NewGeo() *Graph[metric.LatLng] {
	return NewGraph[metric.LatLng](metric.Haversine)
}

// compile-time interface checks
var (
	_ Spatial = (*Graph[r2.Vec])(nil)
	_ Spatial = (*Graph[metric.LatLng])(nil)
)
