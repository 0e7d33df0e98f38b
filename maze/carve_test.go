package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/maze"
)

func walled(t *testing.T, radius int) *hexgrid.Grid {
	t.Helper()
	g, err := hexgrid.NewGrid(radius)
	require.NoError(t, err)
	g.Fill()
	return g
}

func TestCarveConnection_ThroughSolidRock(t *testing.T) {
	g := walled(t, 3)
	a, b := hexgrid.Hex{Q: -3, R: 0}, hexgrid.Hex{Q: 3, R: 0}
	cleared := maze.CarveConnection(g, a, b, 60)
	assert.Len(t, cleared, hexgrid.Distance(a, b)+1)
	assert.True(t, g.Connected(a, b))
	assert.Equal(t, len(cleared), g.WalkableCount())
}

// TestCarveConnection_PrefersOpenCells: an open detour of length 6 beats
// punching through 3 wall cells at penalty 60.
func TestCarveConnection_PrefersOpenCells(t *testing.T) {
	g := walled(t, 3)
	a, b := hexgrid.Hex{Q: -2, R: 0}, hexgrid.Hex{Q: 2, R: 0}
	g.SetWall(a, false)
	g.SetWall(b, false)
	// Open an arc through the upper half.
	for _, h := range []hexgrid.Hex{{Q: -2, R: -1}, {Q: -1, R: -2}, {Q: 0, R: -2}, {Q: 1, R: -2}, {Q: 2, R: -2}, {Q: 2, R: -1}} {
		g.SetWall(h, false)
	}
	before := g.WalkableCount()
	cleared := maze.CarveConnection(g, a, b, 60)
	assert.Empty(t, cleared)
	assert.Equal(t, before, g.WalkableCount())

	// With a unit penalty the straight line is as cheap, and it is shorter.
	cleared = maze.CarveConnection(g, a, b, 1)
	assert.NotEmpty(t, cleared)
}

func TestCarveConnection_OutsideRegion(t *testing.T) {
	g := walled(t, 2)
	assert.Nil(t, maze.CarveConnection(g, hexgrid.Origin, hexgrid.Hex{Q: 5, R: 0}, 60))
}

func TestEnsureConnected(t *testing.T) {
	g := walled(t, 4)
	wps := []hexgrid.Hex{{Q: -4, R: 0}, {Q: 0, R: 0}, {Q: 4, R: -4}}
	for _, w := range wps {
		g.SetWall(w, false)
	}
	cleared := maze.EnsureConnected(g, wps, 60)
	assert.NotEmpty(t, cleared)
	for i := 0; i+1 < len(wps); i++ {
		assert.True(t, g.Connected(wps[i], wps[i+1]))
	}
	assert.Empty(t, maze.EnsureConnected(g, wps, 60), "second pass is a no-op")
}

func TestNormalize(t *testing.T) {
	g, err := hexgrid.NewGrid(2)
	require.NoError(t, err)
	g.SetWall(hexgrid.Origin, true)
	in := []hexgrid.Hex{hexgrid.Origin, {Q: 1, R: 1}, {Q: 7, R: 0}}
	out, err := maze.Normalize(g, in...)
	require.NoError(t, err)
	assert.Equal(t, []hexgrid.Hex{{Q: 1, R: 0}, {Q: 1, R: 1}, {Q: 2, R: 0}}, out)
	assert.Equal(t, hexgrid.Origin, in[0], "input untouched")

	g.Fill()
	_, err = maze.Normalize(g, hexgrid.Origin)
	assert.ErrorIs(t, err, hexgrid.ErrNoWalkableCell)
}
