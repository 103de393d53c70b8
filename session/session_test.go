package session_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/session"
)

func TestSession_ID(t *testing.T) {
	a, b := session.NewPlanar(), session.NewGeo()
	_, err := uuid.Parse(a.ID())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSession_UndoStack(t *testing.T) {
	s := session.NewPlanar()
	n1, err := s.AddNode(r2.Vec{X: 0})
	require.NoError(t, err)
	n2, _ := s.AddNode(r2.Vec{X: 3})
	n3, _ := s.AddNode(r2.Vec{X: 3, Y: 4})
	require.NoError(t, s.Connect(n1, n2))
	require.NoError(t, s.ConnectWeighted(n2, n3, 10))
	assert.Equal(t, 5, s.HistoryLen())

	g := s.Graph()
	require.NoError(t, s.Undo())
	assert.False(t, g.HasEdge(n2, n3))
	assert.True(t, g.HasEdge(n1, n2))

	require.NoError(t, s.Undo())
	assert.Zero(t, g.EdgeCount())

	require.NoError(t, s.Undo())
	assert.False(t, g.HasNode(n3))
	assert.Equal(t, 2, s.HistoryLen())

	require.NoError(t, s.Undo())
	require.NoError(t, s.Undo())
	assert.Zero(t, g.NodeCount())
	assert.ErrorIs(t, s.Undo(), session.ErrNothingToUndo)
}

func TestSession_UndoParallelEdges(t *testing.T) {
	s := session.NewPlanar()
	a, _ := s.AddNode(r2.Vec{})
	b, _ := s.AddNode(r2.Vec{X: 1})
	require.NoError(t, s.Connect(a, b))
	require.NoError(t, s.ConnectWeighted(a, b, 4))
	assert.Len(t, s.Graph().Neighbors(a), 2)

	require.NoError(t, s.Undo())
	assert.Empty(t, s.Graph().Neighbors(a), "undo strips every edge of the pair")
}

func TestSession_RefusedCommandNotRecorded(t *testing.T) {
	s := session.NewPlanar()
	a, _ := s.AddNode(r2.Vec{})

	assert.ErrorIs(t, s.Connect(a, 99), core.ErrNodeNotFound)
	assert.ErrorIs(t, s.ConnectWeighted(a, a, -1), core.ErrNegativeWeight)
	assert.ErrorIs(t, s.MoveNode(42, r2.Vec{}), core.ErrNodeNotFound)
	assert.Equal(t, 1, s.HistoryLen())
}

func TestSession_UndoAfterDestructiveEdit(t *testing.T) {
	s := session.NewPlanar()
	a, _ := s.AddNode(r2.Vec{})
	b, _ := s.AddNode(r2.Vec{X: 1})
	require.NoError(t, s.Connect(a, b))
	require.NoError(t, s.RemoveNode(b))

	require.NoError(t, s.Undo(), "edge already gone")
	require.NoError(t, s.Undo(), "node already gone")
	require.NoError(t, s.Undo())
	assert.Zero(t, s.Graph().NodeCount())

	assert.ErrorIs(t, s.RemoveNode(b), core.ErrNodeNotFound)
	assert.ErrorIs(t, s.Disconnect(a, b), core.ErrNodeNotFound)
}

func TestSession_MoveNodeKeepsWeights(t *testing.T) {
	s := session.NewPlanar()
	a, _ := s.AddNode(r2.Vec{})
	b, _ := s.AddNode(r2.Vec{X: 1})
	require.NoError(t, s.Connect(a, b))

	require.NoError(t, s.MoveNode(b, r2.Vec{X: 10}))
	assert.Equal(t, 1.0, s.Graph().Neighbors(a)[0].Weight)
	n, _ := s.Graph().Node(b)
	assert.Equal(t, 10.0, n.Coord.X)

	require.NoError(t, s.Undo())
	n, _ = s.Graph().Node(b)
	assert.Equal(t, 1.0, n.Coord.X)
}

func TestSession_Sequence(t *testing.T) {
	s := session.NewPlanar()
	a, _ := s.AddNode(r2.Vec{})
	b, _ := s.AddNode(r2.Vec{X: 1})
	c, _ := s.AddNode(r2.Vec{X: 2})

	require.NoError(t, s.AppendToSequence(a))
	require.NoError(t, s.AppendToSequence(c))
	require.NoError(t, s.AppendToSequence(b))
	assert.ErrorIs(t, s.AppendToSequence(77), core.ErrNodeNotFound)
	assert.Equal(t, []int{a, c, b}, s.Sequence())

	// undo of the last addNode (c) also drops c from the sequence
	require.NoError(t, s.Undo())
	assert.Equal(t, []int{a, b}, s.Sequence())

	require.NoError(t, s.RemoveNode(a))
	assert.Equal(t, []int{b}, s.Sequence())

	s.ClearSequence()
	assert.Empty(t, s.Sequence())
}

func TestSession_Clear(t *testing.T) {
	s := session.NewPlanar()
	a, _ := s.AddNode(r2.Vec{})
	require.NoError(t, s.AppendToSequence(a))
	old := s.Graph()

	s.Clear()
	assert.NotSame(t, old, s.Graph())
	assert.Zero(t, s.Graph().NodeCount())
	assert.Zero(t, s.HistoryLen())
	assert.Empty(t, s.Sequence())

	id, _ := s.AddNode(r2.Vec{})
	assert.Equal(t, 1, id, "fresh graph, fresh ids")
	assert.Equal(t, 1, old.NodeCount(), "old graph untouched")
}

func TestSession_HistoryLimit(t *testing.T) {
	s := session.NewPlanar(session.WithHistoryLimit(2))
	for i := 0; i < 5; i++ {
		_, err := s.AddNode(r2.Vec{X: float64(i)})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, s.HistoryLen())

	require.NoError(t, s.Undo())
	require.NoError(t, s.Undo())
	assert.ErrorIs(t, s.Undo(), session.ErrNothingToUndo)
	assert.Equal(t, []int{1, 2, 3}, s.Graph().NodeIDs())
}

func TestParseAlgorithm(t *testing.T) {
	for _, name := range []string{"bfs", "DFS", " dijkstra ", "AStar", "nn"} {
		_, err := session.ParseAlgorithm(name)
		assert.NoError(t, err, name)
	}
	_, err := session.ParseAlgorithm("bellman-ford")
	assert.ErrorIs(t, err, session.ErrUnknownAlgorithm)

	assert.True(t, session.BFS.IgnoresWeights())
	assert.False(t, session.AStar.IgnoresWeights())
}
