package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Sentinel errors.
var (
	// ErrUnknownAlgorithm indicates an algorithm name ParseAlgorithm does not know.
	ErrUnknownAlgorithm = errors.New("session: unknown algorithm")

	// ErrStartNotFound indicates a Compute request whose start node does not exist.
	ErrStartNotFound = errors.New("session: start node not found")

	// ErrNothingToUndo is returned by Undo on an empty history.
	ErrNothingToUndo = errors.New("session: nothing to undo")
)

// Algorithm names a routing strategy.
type Algorithm string

// Supported algorithms.
const (
	BFS             Algorithm = "bfs"
	DFS             Algorithm = "dfs"
	Dijkstra        Algorithm = "dijkstra"
	AStar           Algorithm = "astar"
	NearestNeighbor Algorithm = "nn"
)

// Algorithms lists every supported algorithm.
var Algorithms = []Algorithm{BFS, DFS, Dijkstra, AStar, NearestNeighbor}

// ParseAlgorithm resolves a case-insensitive name.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Algorithms {
		if a == known {
			return a, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// IgnoresWeights reports whether the algorithm treats every edge alike.
func (a Algorithm) IgnoresWeights() bool {
	return a == BFS || a == DFS
}

// Request asks for a route.
type Request struct {
	Algorithm Algorithm
	Start     int
	Goal      int
	HasGoal   bool
}

// Outcome is what a user interface renders.
type Outcome struct {
	Algorithm Algorithm `json:"algorithm"`
	Start     int       `json:"start"`
	// Target is the goal that was routed to: the requested one, or the one
	// chosen by the target policy. 0 when there is none.
	Target int `json:"target,omitempty"`

	// Order is the visit, settle or expansion order of the algorithm.
	Order []int `json:"order"`
	// Path is the route to render; empty when there is none.
	Path []int `json:"path"`
	// Distance is the reported route figure, 0 when Path is empty.
	Distance float64 `json:"distance"`

	// FromSequence is set when the custom route sequence was used.
	FromSequence bool `json:"from_sequence,omitempty"`
	// IgnoresWeights warns that the path is fewest-hops, not cheapest.
	IgnoresWeights bool `json:"ignores_weights,omitempty"`
}

// Found reports whether Outcome carries a route.
func (o *Outcome) Found() bool { return len(o.Path) > 0 }

// Option configures a Session.
type Option func(*options)

type options struct {
	logger       zerolog.Logger
	historyLimit int
}

func defaultOptions() options {
	return options{logger: zerolog.Nop()}
}

// WithLogger sets the session logger. Mutations log at debug, computations
// at info.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithHistoryLimit caps the undo history; the oldest entries are dropped.
// n <= 0 means unlimited.
func WithHistoryLimit(n int) Option {
	return func(o *options) {
		o.historyLimit = n
	}
}
