package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/session"
)

func quiet(t *testing.T) {
	t.Helper()
	t.Setenv("PATHLAB_LOG_LEVEL", "error")
}

func TestRun_GeoText(t *testing.T) {
	quiet(t)
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-algo", "dijkstra", "-start", "1", "-goal", "2"}, &out))

	assert.Contains(t, out.String(), "path:      Karachi -> Multan -> Lahore")
	assert.Contains(t, out.String(), "distance:  1048.8")
}

func TestRun_GeoJSON(t *testing.T) {
	quiet(t)
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-algo", "NN", "-json"}, &out))

	var got session.Outcome
	require.NoError(t, sonic.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, session.NearestNeighbor, got.Algorithm)
	assert.Equal(t, []int{1, 5, 6, 2, 7, 3, 4}, got.Path)
}

func TestRun_BFSNote(t *testing.T) {
	quiet(t)
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-algo", "bfs", "-goal", "4"}, &out))
	assert.Contains(t, out.String(), "edge weights ignored")
}

func TestRun_PlanarPlay(t *testing.T) {
	quiet(t)
	t.Setenv("PATHLAB_GRID_ROWS", "2")
	t.Setenv("PATHLAB_GRID_COLS", "2")
	t.Setenv("PATHLAB_PLAYBACK_STEPS_PER_SEGMENT", "1")
	t.Setenv("PATHLAB_PLAYBACK_INTERVAL", "1ms")

	var out bytes.Buffer
	err := run(context.Background(), []string{"-mode", "planar", "-algo", "astar", "-goal", "4", "-play"}, &out)
	require.NoError(t, err)

	// 2x2 grid: 1-2 / 3-4, so the route takes two segments of two frames each
	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "arrived at"))
	assert.Equal(t, 2, strings.Count(text, "segment "))
	assert.Contains(t, text, "arrived at #4")
}

func TestRun_Errors(t *testing.T) {
	quiet(t)
	var out bytes.Buffer

	err := run(context.Background(), []string{"-algo", "floyd"}, &out)
	assert.Error(t, err)

	err = run(context.Background(), []string{"-start", "99"}, &out)
	assert.ErrorIs(t, err, session.ErrStartNotFound)

	err = run(context.Background(), []string{"-bogus"}, &out)
	assert.Error(t, err)

	err = run(context.Background(), []string{"-config", "does-not-exist.yaml"}, &out)
	assert.Error(t, err)
}
