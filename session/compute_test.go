package session_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/metric"
	"github.com/katalvlaran/pathlab/session"
)

// pakistan returns a geo session seeded with the demo network.
func pakistan(t *testing.T, opts ...session.Option) (*session.Session[metric.LatLng], map[string]int) {
	t.Helper()
	s := session.NewGeo(opts...)
	ids := map[string]int{}
	require.NoError(t, builder.Build(s.Graph(), nil, builder.PakistanCities(ids)))

	return s, ids
}

func TestCompute_DijkstraWithGoal(t *testing.T) {
	s, ids := pakistan(t)
	out, err := s.Compute(context.Background(), session.Request{
		Algorithm: session.Dijkstra, Start: ids["Karachi"], Goal: ids["Peshawar"], HasGoal: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []int{ids["Karachi"], ids["Multan"], ids["Lahore"], ids["Islamabad"], ids["Peshawar"]}, out.Path)
	assert.InDelta(t, 1464.3, out.Distance, 0.5)
	assert.Equal(t, ids["Peshawar"], out.Target)
	assert.False(t, out.IgnoresWeights)
}

func TestCompute_DijkstraNoGoalPicksNearestReachable(t *testing.T) {
	s := session.NewPlanar()
	a, _ := s.AddNode(r2.Vec{X: 0})
	_, _ = s.AddNode(r2.Vec{X: 1}) // closest, but isolated
	c, _ := s.AddNode(r2.Vec{X: 5})
	d, _ := s.AddNode(r2.Vec{X: 9})
	require.NoError(t, s.Connect(a, c))
	require.NoError(t, s.Connect(c, d))

	out, err := s.Compute(context.Background(), session.Request{Algorithm: session.Dijkstra, Start: a})
	require.NoError(t, err)
	assert.Equal(t, c, out.Target)
	assert.Equal(t, []int{a, c}, out.Path)
	assert.Equal(t, 5.0, out.Distance)
}

func TestCompute_AStarNoGoalPicksStraightLineNearest(t *testing.T) {
	s := session.NewPlanar()
	a, _ := s.AddNode(r2.Vec{X: 0})
	b, _ := s.AddNode(r2.Vec{X: 1})
	c, _ := s.AddNode(r2.Vec{X: 5})
	require.NoError(t, s.Connect(a, c))

	out, err := s.Compute(context.Background(), session.Request{Algorithm: session.AStar, Start: a})
	require.NoError(t, err)
	assert.Equal(t, b, out.Target)
	assert.False(t, out.Found(), "b is nearest but unreachable")
	assert.Zero(t, out.Distance)
}

func TestCompute_AStarLonelyStart(t *testing.T) {
	s := session.NewPlanar()
	a, _ := s.AddNode(r2.Vec{})

	out, err := s.Compute(context.Background(), session.Request{Algorithm: session.AStar, Start: a})
	require.NoError(t, err)
	assert.False(t, out.Found())
	assert.Zero(t, out.Target)
}

func TestCompute_AStarAgreesWithDijkstra(t *testing.T) {
	s, ids := pakistan(t)
	req := session.Request{Start: ids["Quetta"], Goal: ids["Islamabad"], HasGoal: true}

	req.Algorithm = session.AStar
	a, err := s.Compute(context.Background(), req)
	require.NoError(t, err)
	req.Algorithm = session.Dijkstra
	d, err := s.Compute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, d.Path, a.Path)
	assert.InDelta(t, d.Distance, a.Distance, 1e-6, "haversine edges: metric length equals cost")
}

func TestCompute_TraversalsIgnoreWeights(t *testing.T) {
	s, ids := pakistan(t)
	for _, algo := range []session.Algorithm{session.BFS, session.DFS} {
		out, err := s.Compute(context.Background(), session.Request{
			Algorithm: algo, Start: ids["Karachi"], Goal: ids["Lahore"], HasGoal: true,
		})
		require.NoError(t, err)
		assert.True(t, out.IgnoresWeights, algo)
		assert.Equal(t, ids["Karachi"], out.Path[0])
		assert.Equal(t, ids["Lahore"], out.Path[len(out.Path)-1])
		assert.Positive(t, out.Distance)
	}

	out, err := s.Compute(context.Background(), session.Request{Algorithm: session.BFS, Start: ids["Karachi"]})
	require.NoError(t, err)
	assert.Len(t, out.Order, 7)
	assert.Empty(t, out.Path)
	assert.Zero(t, out.Distance)
}

func TestCompute_NearestNeighbor(t *testing.T) {
	s, ids := pakistan(t)
	out, err := s.Compute(context.Background(), session.Request{Algorithm: session.NearestNeighbor, Start: ids["Karachi"]})
	require.NoError(t, err)

	want := []int{ids["Karachi"], ids["Quetta"], ids["Multan"], ids["Lahore"], ids["Faisalabad"], ids["Islamabad"], ids["Peshawar"]}
	assert.Equal(t, want, out.Path)
	assert.Equal(t, ids["Peshawar"], out.Target)
	assert.InDelta(t, 1849.2, out.Distance, 0.5)
}

func TestCompute_SequenceOverridesAlgorithm(t *testing.T) {
	s, ids := pakistan(t)
	require.NoError(t, s.AppendToSequence(ids["Karachi"]))
	require.NoError(t, s.AppendToSequence(ids["Lahore"]))

	out, err := s.Compute(context.Background(), session.Request{
		Algorithm: session.Dijkstra, Start: ids["Peshawar"], Goal: ids["Quetta"], HasGoal: true,
	})
	require.NoError(t, err)
	assert.True(t, out.FromSequence)
	assert.Equal(t, []int{ids["Karachi"], ids["Lahore"]}, out.Path)
	assert.InDelta(t, 1033, out.Distance, 1, "straight-line, not road, distance")
}

func TestCompute_Errors(t *testing.T) {
	s, ids := pakistan(t)

	_, err := s.Compute(context.Background(), session.Request{Algorithm: "floyd", Start: ids["Karachi"]})
	assert.ErrorIs(t, err, session.ErrUnknownAlgorithm)

	_, err = s.Compute(context.Background(), session.Request{Algorithm: session.BFS, Start: 99})
	assert.ErrorIs(t, err, session.ErrStartNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Compute(ctx, session.Request{Algorithm: session.Dijkstra, Start: ids["Karachi"]})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompute_UnreachableGoal(t *testing.T) {
	s, ids := pakistan(t)
	lone, err := s.AddNode(metric.LatLng{Lat: 40, Lng: 70})
	require.NoError(t, err)

	for _, algo := range session.Algorithms {
		out, err := s.Compute(context.Background(), session.Request{
			Algorithm: algo, Start: ids["Karachi"], Goal: lone, HasGoal: true,
		})
		require.NoError(t, err, algo)
		assert.NotContains(t, out.Path, lone, algo)
		if algo != session.NearestNeighbor {
			assert.False(t, out.Found(), algo)
			assert.Zero(t, out.Distance, algo)
		}
	}
}

func TestCompute_Logs(t *testing.T) {
	var buf bytes.Buffer
	s, ids := pakistan(t, session.WithLogger(zerolog.New(&buf)))

	_, err := s.Compute(context.Background(), session.Request{Algorithm: session.Dijkstra, Start: ids["Karachi"]})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"route computed"`)
	assert.Contains(t, out, `"session":"`+s.ID()+`"`)
	assert.Contains(t, out, `"algorithm":"dijkstra"`)
}
