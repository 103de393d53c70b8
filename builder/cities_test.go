package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/metric"
)

func TestPakistanCities(t *testing.T) {
	ids := map[string]int{}
	g, err := builder.BuildGeo(nil, builder.PakistanCities(ids))
	require.NoError(t, err)

	assert.Equal(t, 7, g.NodeCount())
	assert.Equal(t, 8, g.EdgeCount())
	assert.Equal(t, 1, ids["Karachi"])
	assert.Equal(t, 7, ids["Faisalabad"])

	w, ok := g.Distance(ids["Karachi"], ids["Lahore"])
	require.True(t, ok)
	assert.InDelta(t, 1033, w, 1)

	res, err := dijkstra.Dijkstra(g, ids["Karachi"], dijkstra.WithGoal(ids["Peshawar"]))
	require.NoError(t, err)
	assert.Equal(t, ids["Karachi"], res.Path[0])
	assert.Equal(t, ids["Peshawar"], res.Path[len(res.Path)-1])
	assert.Contains(t, res.Path, ids["Islamabad"], "Peshawar is only reachable via Islamabad")
}

func TestCities_Validation(t *testing.T) {
	ok := []builder.City{{Name: "A", Pos: metric.LatLng{Lat: 1, Lng: 1}}}

	_, err := builder.BuildGeo(nil, builder.Cities(nil, nil, nil))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGeo(nil, builder.Cities(ok, []builder.Road{{From: "A", To: "Z"}}, nil))
	assert.ErrorIs(t, err, builder.ErrUnknownCity)

	dup := append(ok, ok[0])
	_, err = builder.BuildGeo(nil, builder.Cities(dup, nil, nil))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	bad := []builder.City{{Name: "X", Pos: metric.LatLng{Lat: 91}}}
	_, err = builder.BuildGeo(nil, builder.Cities(bad, nil, nil))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}
