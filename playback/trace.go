package playback

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/metric"
)

// ErrNodeNotFound is returned when a route references an absent node.
var ErrNodeNotFound = errors.New("playback: route node not found")

const (
	// MinSegmentSteps is the fewest interpolation steps per route segment.
	MinSegmentSteps = 12
	// MinFrameDelay keeps very fast playback watchable.
	MinFrameDelay = 20 * time.Millisecond

	defaultSpeed = 200 * time.Millisecond
)

// Frame is one vehicle position along a route.
type Frame[C any] struct {
	// Segment indexes the route hop being travelled.
	Segment int
	// T is the progress along the segment, in [0, 1].
	T float64
	Pos C
	// Heading is the segment bearing in degrees, counter-clockwise from the
	// positive x (longitude) axis.
	Heading float64
	// Reached is the node arrived at; 0 unless this frame ends a segment.
	Reached int
}

// Locator resolves node coordinates. *core.Graph satisfies it.
type Locator[C any] interface {
	Node(id int) (core.Node[C], bool)
}

// Interp supplies coordinate interpolation and heading for one coordinate type.
type Interp[C any] struct {
	Lerp    func(a, b C, t float64) C
	Heading func(a, b C) float64
}

// Planar interpolates r2.Vec coordinates.
var Planar = Interp[r2.Vec]{Lerp: LerpVec, Heading: HeadingVec}

// Geo interpolates lat/lng coordinates in degree space.
var Geo = Interp[metric.LatLng]{Lerp: LerpLatLng, Heading: HeadingLatLng}

// StepsForSpeed returns the interpolation steps per segment for a playback
// speed: one step per 1000/speed-ms, never fewer than MinSegmentSteps.
// A non-positive speed falls back to 200ms.
func StepsForSpeed(speed time.Duration) int {
	if speed <= 0 {
		speed = defaultSpeed
	}
	steps := int(time.Second / speed)

	return max(MinSegmentSteps, steps)
}

// FrameDelay spreads speed over steps frames, never below MinFrameDelay.
func FrameDelay(speed time.Duration, steps int) time.Duration {
	if steps <= 0 {
		return max(MinFrameDelay, speed)
	}

	return max(MinFrameDelay, speed/time.Duration(steps))
}

// Trace builds the frames for driving route on loc with steps+1 frames per
// segment (t = 0, 1/steps, ..., 1). A route with fewer than two nodes has
// no frames. steps below 1 is treated as 1.
func Trace[C any](loc Locator[C], route []int, steps int, in Interp[C]) ([]Frame[C], error) {
	if len(route) < 2 {
		return nil, nil
	}
	if steps < 1 {
		steps = 1
	}

	coords := make([]C, len(route))
	for i, id := range route {
		n, ok := loc.Node(id)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
		}
		coords[i] = n.Coord
	}

	frames := make([]Frame[C], 0, (len(route)-1)*(steps+1))
	for i := 0; i+1 < len(route); i++ {
		a, b := coords[i], coords[i+1]
		h := in.Heading(a, b)
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			f := Frame[C]{Segment: i, T: t, Pos: in.Lerp(a, b, t), Heading: h}
			if s == steps {
				f.Reached = route[i+1]
			}
			frames = append(frames, f)
		}
	}

	return frames, nil
}

// LerpVec interpolates between a and b.
func LerpVec(a, b r2.Vec, t float64) r2.Vec {
	return r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
}

// LerpLatLng interpolates latitude and longitude independently. Adequate
// for the short hops of a road network; it does not follow great circles.
func LerpLatLng(a, b metric.LatLng, t float64) metric.LatLng {
	return metric.LatLng{
		Lat: a.Lat + (b.Lat-a.Lat)*t,
		Lng: a.Lng + (b.Lng-a.Lng)*t,
	}
}

// HeadingVec returns atan2(dy, dx) in degrees.
func HeadingVec(a, b r2.Vec) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
}

// HeadingLatLng returns atan2(Δlat, Δlng) in degrees.
func HeadingLatLng(a, b metric.LatLng) float64 {
	return math.Atan2(b.Lat-a.Lat, b.Lng-a.Lng) * 180 / math.Pi
}

// LerpAngle interpolates from a to b degrees along the shorter arc.
func LerpAngle(a, b, t float64) float64 {
	diff := math.Mod(math.Mod(b-a, 360)+540, 360) - 180

	return a + diff*t
}
