package playback_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/metric"
	"github.com/katalvlaran/pathlab/playback"
)

func TestTrace_Planar(t *testing.T) {
	g := core.NewPlanar()
	a := g.AddNode(r2.Vec{X: 0, Y: 0})
	b := g.AddNode(r2.Vec{X: 4, Y: 0})
	c := g.AddNode(r2.Vec{X: 4, Y: 4})

	frames, err := playback.Trace[r2.Vec](g, []int{a, b, c}, 4, playback.Planar)
	require.NoError(t, err)
	require.Len(t, frames, 10)

	assert.Equal(t, r2.Vec{X: 0, Y: 0}, frames[0].Pos)
	assert.Equal(t, r2.Vec{X: 2, Y: 0}, frames[2].Pos)
	assert.Equal(t, 0.0, frames[0].Heading)
	assert.Equal(t, b, frames[4].Reached)
	assert.Zero(t, frames[3].Reached)

	assert.Equal(t, 1, frames[5].Segment)
	assert.InDelta(t, 90.0, frames[5].Heading, 1e-9)
	assert.Equal(t, r2.Vec{X: 4, Y: 4}, frames[9].Pos)
	assert.Equal(t, c, frames[9].Reached)
}

func TestTrace_Geo(t *testing.T) {
	g := core.NewGeo()
	k := g.AddNode(metric.LatLng{Lat: 24.8607, Lng: 67.0011})
	q := g.AddNode(metric.LatLng{Lat: 30.1798, Lng: 66.9750})

	steps := playback.StepsForSpeed(400 * time.Millisecond)
	frames, err := playback.Trace[metric.LatLng](g, []int{k, q}, steps, playback.Geo)
	require.NoError(t, err)
	require.Len(t, frames, steps+1)

	// Quetta is almost due north of Karachi
	assert.InDelta(t, 90, frames[0].Heading, 1)
	mid := frames[steps/2].Pos
	assert.InDelta(t, (24.8607+30.1798)/2, mid.Lat, 1e-9)
}

func TestTrace_Degenerate(t *testing.T) {
	g := core.NewPlanar()
	a := g.AddNode(r2.Vec{})

	frames, err := playback.Trace[r2.Vec](g, []int{a}, 5, playback.Planar)
	require.NoError(t, err)
	assert.Empty(t, frames)

	_, err = playback.Trace[r2.Vec](g, []int{a, 42}, 5, playback.Planar)
	assert.ErrorIs(t, err, playback.ErrNodeNotFound)

	b := g.AddNode(r2.Vec{X: 1})
	frames, err = playback.Trace[r2.Vec](g, []int{a, b}, 0, playback.Planar)
	require.NoError(t, err)
	assert.Len(t, frames, 2)
}

func TestPacing(t *testing.T) {
	assert.Equal(t, 12, playback.StepsForSpeed(400*time.Millisecond))
	assert.Equal(t, 20, playback.StepsForSpeed(50*time.Millisecond))
	assert.Equal(t, 12, playback.StepsForSpeed(0))

	assert.Equal(t, 33*time.Millisecond+333333*time.Nanosecond, playback.FrameDelay(400*time.Millisecond, 12))
	assert.Equal(t, playback.MinFrameDelay, playback.FrameDelay(50*time.Millisecond, 20))
	assert.Equal(t, 100*time.Millisecond, playback.FrameDelay(100*time.Millisecond, 0))
}

func TestHeadingAndAngles(t *testing.T) {
	assert.InDelta(t, 180.0, playback.HeadingVec(r2.Vec{X: 1}, r2.Vec{X: 0}), 1e-9)
	assert.InDelta(t, -90.0, playback.HeadingLatLng(metric.LatLng{Lat: 1}, metric.LatLng{Lat: 0}), 1e-9)

	assert.Equal(t, 5.0, playback.LerpAngle(0, 10, 0.5))
	assert.InDelta(t, 180.0, playback.LerpAngle(170, -170, 0.5), 1e-9, "wraps the short way")
	assert.InDelta(t, -20.0, playback.LerpAngle(0, 340, 1), 1e-9)
}
