package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/metric"
)

// Session owns one graph, its undo history and the custom route sequence.
// All methods are safe for concurrent use; each runs to completion under
// the session lock.
type Session[C any] struct {
	mu sync.Mutex

	id      string
	log     zerolog.Logger
	limit   int
	factory func() *core.Graph[C]

	graph    *core.Graph[C]
	history  []Command[C]
	sequence []int
}

// New creates a session whose graph (initial and after Clear) comes from
// factory.
func New[C any](factory func() *core.Graph[C], opts ...Option) *Session[C] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	id := uuid.New().String()

	return &Session[C]{
		id:      id,
		log:     o.logger.With().Str("session", id).Logger(),
		limit:   o.historyLimit,
		factory: factory,
		graph:   factory(),
	}
}

// NewPlanar creates a session over an empty Euclidean graph.
func NewPlanar(opts ...Option) *Session[r2.Vec] {
	return New(core.NewPlanar, opts...)
}

// NewGeo creates a session over an empty haversine graph.
func NewGeo(opts ...Option) *Session[metric.LatLng] {
	return New(core.NewGeo, opts...)
}

// ID returns the session's unique identifier.
func (s *Session[C]) ID() string { return s.id }

// Graph returns the current graph. The pointer changes after Clear.
func (s *Session[C]) Graph() *core.Graph[C] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.graph
}

// Execute applies cmd and records it for Undo. A failed command is not
// recorded and leaves the graph unchanged.
func (s *Session[C]) Execute(cmd Command[C]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := cmd.Do(s.graph); err != nil {
		s.log.Debug().Err(err).Stringer("command", cmd).Msg("command refused")
		return err
	}
	s.history = append(s.history, cmd)
	if s.limit > 0 && len(s.history) > s.limit {
		s.history = append(s.history[:0:0], s.history[len(s.history)-s.limit:]...)
	}
	s.log.Debug().Stringer("command", cmd).Int("history", len(s.history)).Msg("command applied")

	return nil
}

// AddNode adds a node and returns its id.
func (s *Session[C]) AddNode(c C) (int, error) {
	cmd := &AddNodeCmd[C]{Coord: c}
	if err := s.Execute(cmd); err != nil {
		return 0, err
	}

	return cmd.ID, nil
}

// Connect adds an edge with the metric default weight.
func (s *Session[C]) Connect(a, b int) error {
	return s.Execute(&ConnectCmd[C]{A: a, B: b})
}

// ConnectWeighted adds an edge with an explicit weight.
func (s *Session[C]) ConnectWeighted(a, b int, w float64) error {
	return s.Execute(&ConnectCmd[C]{A: a, B: b, Weight: w, HasWeight: true})
}

// MoveNode repositions id; edge weights stay frozen.
func (s *Session[C]) MoveNode(id int, c C) error {
	return s.Execute(&MoveNodeCmd[C]{ID: id, To: c})
}

// Disconnect removes every edge between a and b. Not undoable.
func (s *Session[C]) Disconnect(a, b int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.graph.RemoveEdge(a, b); err != nil {
		return fmt.Errorf("session: disconnect %d-%d: %w", a, b, err)
	}
	s.log.Debug().Int("a", a).Int("b", b).Msg("edge removed")

	return nil
}

// RemoveNode deletes id with its edges and drops it from the route
// sequence. Not undoable.
func (s *Session[C]) RemoveNode(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.graph.RemoveNode(id); err != nil {
		return fmt.Errorf("session: remove node %d: %w", id, err)
	}
	s.sequence = dropID(s.sequence, id)
	s.log.Debug().Int("node", id).Msg("node removed")

	return nil
}

// Undo reverts the most recent recorded command. Undoing a node addition
// also drops that node from the route sequence.
func (s *Session[C]) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) == 0 {
		return ErrNothingToUndo
	}
	last := s.history[len(s.history)-1]
	if err := last.Undo(s.graph); err != nil {
		return fmt.Errorf("session: undo %s: %w", last, err)
	}
	s.history = s.history[:len(s.history)-1]
	if add, ok := last.(*AddNodeCmd[C]); ok {
		s.sequence = dropID(s.sequence, add.ID)
	}
	s.log.Debug().Stringer("command", last).Msg("undone")

	return nil
}

// HistoryLen returns the number of undoable commands.
func (s *Session[C]) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.history)
}

// Clear replaces the graph with a fresh one and forgets history and sequence.
func (s *Session[C]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.graph = s.factory()
	s.history = nil
	s.sequence = nil
	s.log.Debug().Msg("session cleared")
}

// AppendToSequence adds id to the custom route sequence.
func (s *Session[C]) AppendToSequence(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.graph.HasNode(id) {
		return fmt.Errorf("session: sequence: %w: %d", core.ErrNodeNotFound, id)
	}
	s.sequence = append(s.sequence, id)

	return nil
}

// ClearSequence empties the custom route sequence.
func (s *Session[C]) ClearSequence() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sequence = nil
}

// Sequence returns a copy of the custom route sequence.
func (s *Session[C]) Sequence() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]int{}, s.sequence...)
}

func dropID(list []int, id int) []int {
	out := list[:0]
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}

	return out
}
