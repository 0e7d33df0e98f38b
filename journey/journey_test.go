package journey

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/search"
)

func openGrid(t *testing.T, radius int) *hexgrid.Grid {
	t.Helper()
	g, err := hexgrid.NewGrid(radius)
	require.NoError(t, err)
	return g
}

// sealed walls off the six neighbours of c.
func sealed(g *hexgrid.Grid, c hexgrid.Hex) {
	for _, n := range g.Neighbors(c) {
		g.SetWall(n, true)
	}
}

func TestNew_Errors(t *testing.T) {
	g := openGrid(t, 2)
	_, err := New(g, search.AStar, []hexgrid.Hex{hexgrid.Origin})
	assert.ErrorIs(t, err, ErrTooFewWaypoints)

	_, err = New(g, search.AStar, []hexgrid.Hex{hexgrid.Origin, {Q: 5, R: 0}})
	assert.ErrorIs(t, err, search.ErrOutsideRegion)

	g.SetWall(hexgrid.Hex{Q: 1, R: 0}, true)
	_, err = New(g, search.AStar, []hexgrid.Hex{hexgrid.Origin, {Q: 2, R: 0}, {Q: 1, R: 0}})
	assert.ErrorIs(t, err, search.ErrBlockedEndpoint)

	_, err = New(nil, search.AStar, []hexgrid.Hex{hexgrid.Origin, {Q: 1, R: 0}})
	assert.ErrorIs(t, err, search.ErrNilGrid)
}

func TestJourney_ThreeWaypoints(t *testing.T) {
	g := openGrid(t, 4)
	wps := []hexgrid.Hex{{Q: -4, R: 0}, {Q: 0, R: 4}, {Q: 4, R: -4}}
	for _, s := range search.Strategies {
		t.Run(s.String(), func(t *testing.T) {
			j, err := New(g, s, wps)
			require.NoError(t, err)
			assert.Equal(t, 2, j.Legs())
			assert.Equal(t, 1, j.Leg())

			st, err := j.Run(context.Background())
			require.NoError(t, err)
			require.Equal(t, search.StatusFound, st)
			assert.Equal(t, Completed, j.State())

			segs := j.Segments()
			require.Len(t, segs, 2)
			assert.Equal(t, wps[0], segs[0][0])
			assert.Equal(t, wps[1], segs[0][len(segs[0])-1])
			assert.Equal(t, wps[1], segs[1][0])
			assert.Equal(t, wps[2], segs[1][len(segs[1])-1])

			route := j.Route()
			require.Equal(t, len(segs[0])+len(segs[1])-1, len(route))
			for i := 1; i < len(route); i++ {
				require.Equal(t, 1, hexgrid.Distance(route[i-1], route[i]))
			}
			explored := hexgrid.NewSet(j.Explored()...)
			for _, h := range route {
				assert.True(t, explored.Has(h), "route cell %v not explored", h)
			}
			assert.Empty(t, j.Frontier())
			_, hasCur := j.Current()
			assert.False(t, hasCur)
			assert.Equal(t, search.StatusFound, j.Step(), "completed journey is terminal")
		})
	}
}

// TestJourney_OptimalLegs: Dijkstra legs have hop length equal to the
// hex distance on an open grid.
func TestJourney_OptimalLegs(t *testing.T) {
	g := openGrid(t, 5)
	wps := []hexgrid.Hex{{Q: 0, R: 0}, {Q: 5, R: -5}, {Q: -5, R: 5}, {Q: 0, R: -5}}
	j, err := New(g, search.Dijkstra, wps)
	require.NoError(t, err)
	_, err = j.Run(context.Background())
	require.NoError(t, err)
	for i, seg := range j.Segments() {
		assert.Equal(t, hexgrid.Distance(wps[i], wps[i+1])+1, len(seg))
	}
}

func TestJourney_FailedLeg(t *testing.T) {
	g := openGrid(t, 4)
	last := hexgrid.Hex{Q: 2, R: 0}
	sealed(g, last)
	wps := []hexgrid.Hex{{Q: -4, R: 0}, {Q: -2, R: 4}, last}
	j, err := New(g, search.AStar, wps)
	require.NoError(t, err)

	st, err := j.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, search.StatusExhausted, st)
	assert.Equal(t, Failed, j.State())
	assert.Equal(t, 2, j.Leg())
	assert.Nil(t, j.Route())
	assert.Len(t, j.Segments(), 1, "first leg stays inspectable")
	assert.NotEmpty(t, j.Path())

	// Explored covers the whole component reachable from the second waypoint.
	explored := hexgrid.NewSet(j.Explored()...)
	for _, h := range g.Reachable(wps[1]) {
		assert.True(t, explored.Has(h))
	}
	assert.ErrorIs(t, j.RestartLeg(), ErrNotActive)
}

func TestJourney_Advance(t *testing.T) {
	g := openGrid(t, 3)
	wps := []hexgrid.Hex{{Q: -3, R: 0}, {Q: 3, R: 0}, {Q: 0, R: 3}}
	j, err := New(g, search.BFS, wps)
	require.NoError(t, err)

	assert.Equal(t, search.StatusContinuing, j.Advance())
	assert.Equal(t, 2, j.Leg())
	assert.Len(t, j.Segments(), 1)
	stepsAfterLeg1 := j.Steps()
	assert.Positive(t, stepsAfterLeg1)

	assert.Equal(t, search.StatusFound, j.Advance())
	assert.Len(t, j.Segments(), 2)
	assert.Greater(t, j.Steps(), stepsAfterLeg1)
}

func TestJourney_CancelAndRestart(t *testing.T) {
	g := openGrid(t, 3)
	wps := []hexgrid.Hex{{Q: -3, R: 0}, {Q: 3, R: 0}}
	j, err := New(g, search.AStar, wps)
	require.NoError(t, err)
	j.Step()
	j.Step()
	require.NotEmpty(t, j.Explored())

	j.CancelLeg()
	assert.Equal(t, Halted, j.State())
	assert.Empty(t, j.Explored())
	assert.Empty(t, j.Frontier())
	assert.Equal(t, search.StatusIdle, j.Step())

	require.NoError(t, j.RestartLeg())
	assert.Equal(t, Running, j.State())
	assert.Equal(t, []hexgrid.Hex{wps[0]}, j.Frontier())
	assert.Equal(t, 0, j.Steps())

	// A wall placed on the active leg's source fails the restart.
	g.SetWall(wps[0], true)
	assert.ErrorIs(t, j.RestartLeg(), search.ErrBlockedEndpoint)
}

func TestJourney_SharedOptions(t *testing.T) {
	g := openGrid(t, 2)
	finishes := 0
	wps := []hexgrid.Hex{{Q: -2, R: 0}, {Q: 2, R: 0}, {Q: 0, R: -2}}
	j, err := New(g, search.Greedy, wps, search.WithOnFinish(func(bool, int) { finishes++ }))
	require.NoError(t, err)
	_, err = j.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, finishes)
}
