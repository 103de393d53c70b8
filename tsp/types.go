// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Result type and sentinel errors for tour construction.

package tsp

import "errors"

// ErrNilGraph is returned when a nil graph is passed.
var ErrNilGraph = errors.New("tsp: graph is nil")

// Result holds the outcome of a nearest-neighbour walk.
type Result struct {
	// Tour lists node ids in visiting order, starting at the start node.
	// Empty when the start node does not exist.
	Tour []int

	// Cost is the total weight of the edges taken.
	Cost float64

	// Complete is true when Tour visits every node of the graph.
	Complete bool
}
