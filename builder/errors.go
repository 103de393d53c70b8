// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors returned (wrapped with the method name) by every constructor.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrUnknownCity indicates a road referencing a city name that was not defined.
	ErrUnknownCity = errors.New("builder: unknown city")

	// ErrConstructFailed indicates a nil graph, a nil constructor or a
	// refused core mutation.
	ErrConstructFailed = errors.New("builder: construction failed")
)
