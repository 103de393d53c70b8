package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/tsp"
)

func TestNearestNeighbor_NilGraph(t *testing.T) {
	_, err := tsp.NearestNeighbor(nil, 1)
	assert.ErrorIs(t, err, tsp.ErrNilGraph)
}

func TestNearestNeighbor_StartAbsent(t *testing.T) {
	g := core.NewPlanar()
	g.AddNode(r2.Vec{})

	res, err := tsp.NearestNeighbor(g, 9)
	require.NoError(t, err)
	assert.Empty(t, res.Tour)
	assert.False(t, res.Complete)
}

func TestNearestNeighbor_ExcludesIsolatedNode(t *testing.T) {
	g := core.NewPlanar()
	for i := 0; i < 5; i++ {
		g.AddNode(r2.Vec{X: float64(i)})
	}
	// 1..4 on a line, 5 has no edges
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 4))

	res, err := tsp.NearestNeighbor(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, res.Tour)
	assert.NotContains(t, res.Tour, 5)
	assert.False(t, res.Complete)
	assert.Equal(t, 3.0, res.Cost)
}

func TestNearestNeighbor_OnlyDirectNeighbours(t *testing.T) {
	// 3 is the closest node to 1 in the plane but not adjacent to it
	g := core.NewPlanar()
	g.AddNode(r2.Vec{X: 0})
	g.AddNode(r2.Vec{X: 10})
	g.AddNode(r2.Vec{X: 1})
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))

	res, err := tsp.NearestNeighbor(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, res.Tour)
	assert.True(t, res.Complete)
	assert.Equal(t, 19.0, res.Cost)
}

func TestNearestNeighbor_GreedyDeadEnd(t *testing.T) {
	// star centred at 1: after the cheapest leaf there is no way back
	g := core.NewPlanar()
	for i := 0; i < 4; i++ {
		g.AddNode(r2.Vec{X: float64(i)})
	}
	require.NoError(t, g.AddEdge(1, 2, core.WithWeight(5)))
	require.NoError(t, g.AddEdge(1, 3, core.WithWeight(1)))
	require.NoError(t, g.AddEdge(1, 4, core.WithWeight(3)))

	res, err := tsp.NearestNeighbor(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, res.Tour)
	assert.Equal(t, 1.0, res.Cost)
}

func TestNearestNeighbor_TieGoesToSmallerID(t *testing.T) {
	g := core.NewPlanar()
	for i := 0; i < 3; i++ {
		g.AddNode(r2.Vec{X: float64(i)})
	}
	// 3 inserted first, same weight as 2
	require.NoError(t, g.AddEdge(1, 3, core.WithWeight(2)))
	require.NoError(t, g.AddEdge(1, 2, core.WithWeight(2)))

	res, err := tsp.NearestNeighbor(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, res.Tour)
}

func TestNearestNeighbor_ParallelEdgesUseCheapest(t *testing.T) {
	g := core.NewPlanar()
	for i := 0; i < 3; i++ {
		g.AddNode(r2.Vec{X: float64(i)})
	}
	require.NoError(t, g.AddEdge(1, 2, core.WithWeight(9)))
	require.NoError(t, g.AddEdge(1, 3, core.WithWeight(4)))
	require.NoError(t, g.AddEdge(1, 2, core.WithWeight(1)))
	require.NoError(t, g.AddEdge(2, 3, core.WithWeight(1)))

	res, err := tsp.NearestNeighbor(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, res.Tour)
	assert.Equal(t, 2.0, res.Cost)
	assert.True(t, res.Complete)
}

func TestNearestNeighbor_SingleNode(t *testing.T) {
	g := core.NewPlanar()
	id := g.AddNode(r2.Vec{})

	res, err := tsp.NearestNeighbor(g, id)
	require.NoError(t, err)
	assert.Equal(t, []int{id}, res.Tour)
	assert.True(t, res.Complete)
	assert.Zero(t, res.Cost)
}
