package maze_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/maze"
)

// requireSolvable checks the guarantees every layout must satisfy.
func requireSolvable(t *testing.T, l *maze.Layout) {
	t.Helper()
	g := l.Grid()
	require.GreaterOrEqual(t, len(l.Waypoints), 2)
	require.Equal(t, l.Start, l.Waypoints[0])
	require.Equal(t, l.Goal, l.Waypoints[len(l.Waypoints)-1])
	for _, w := range l.Waypoints {
		require.True(t, g.IsWalkable(w), "waypoint %v blocked", w)
	}
	for i := 0; i+1 < len(l.Waypoints); i++ {
		require.True(t, g.Connected(l.Waypoints[i], l.Waypoints[i+1]),
			"waypoints %v and %v disconnected", l.Waypoints[i], l.Waypoints[i+1])
	}
	l.Walls.Each(func(h hexgrid.Hex) {
		require.True(t, g.Contains(h), "wall %v outside region", h)
	})
	for h := range l.Order {
		require.True(t, l.Walls.Has(h), "ordered cell %v is not a wall", h)
	}
}

func TestGenerate_Errors(t *testing.T) {
	_, err := maze.Generate(0, maze.DepthFirst)
	assert.ErrorIs(t, err, hexgrid.ErrInvalidRadius)
	_, err = maze.Generate(5, maze.Policy(7))
	assert.ErrorIs(t, err, maze.ErrUnknownPolicy)
}

func TestGenerate_AllPoliciesSolvable(t *testing.T) {
	policies := []struct {
		name string
		p    maze.Policy
		opts []maze.Option
	}{
		{"depth_first", maze.DepthFirst, nil},
		{"seed_scatter", maze.SeedScatter, nil},
		{"seed_scatter_dense", maze.SeedScatter, []maze.Option{maze.WithSpreadScale(0.6)}},
		{"heart", maze.Traced, []maze.Option{maze.WithShape(maze.Heart)}},
		{"star", maze.Traced, []maze.Option{maze.WithShape(maze.Star)}},
		{"infinity", maze.Traced, []maze.Option{maze.WithShape(maze.Infinity)}},
		{"spiral", maze.Traced, []maze.Option{maze.WithShape(maze.Spiral)}},
	}
	for _, tc := range policies {
		t.Run(tc.name, func(t *testing.T) {
			for _, radius := range []int{1, 2, 5, 12, 25} {
				for seed := int64(1); seed <= 3; seed++ {
					opts := append([]maze.Option{maze.WithSeed(seed)}, tc.opts...)
					l, err := maze.Generate(radius, tc.p, opts...)
					require.NoError(t, err, "radius %d seed %d", radius, seed)
					assert.Equal(t, radius, l.Radius)
					requireSolvable(t, l)
				}
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, p := range []maze.Policy{maze.DepthFirst, maze.SeedScatter, maze.Traced} {
		a, err := maze.Generate(10, p, maze.WithSeed(99))
		require.NoError(t, err)
		b, err := maze.Generate(10, p, maze.WithSeed(99))
		require.NoError(t, err)
		assert.Equal(t, a, b, p.String())
	}
}

// TestDepthFirst_SpanningTree: every even node is open and the open cells
// are exactly the nodes plus one bridge per tree edge.
func TestDepthFirst_SpanningTree(t *testing.T) {
	const radius = 8
	l, err := maze.Generate(radius, maze.DepthFirst, maze.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)
	g := l.Grid()

	nodes := 0
	for _, h := range g.Cells() {
		if h.Q%2 == 0 && h.R%2 == 0 {
			nodes++
			assert.True(t, g.IsWalkable(h), "node %v left walled", h)
		}
	}
	assert.Equal(t, 2*nodes-1, g.WalkableCount())
	assert.Len(t, g.ConnectedComponents(), 1)
	assert.NotEqual(t, l.Start, l.Goal)
	assert.Nil(t, l.Order)
}

func TestDepthFirst_TinyRegionIsOpen(t *testing.T) {
	l, err := maze.Generate(1, maze.DepthFirst, maze.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 0, l.Walls.Size())
	assert.Equal(t, hexgrid.Hex{Q: -1, R: 0}, l.Start)
	assert.Equal(t, hexgrid.Hex{Q: 1, R: 0}, l.Goal)
}

func TestSeedScatter_Waypoints(t *testing.T) {
	l, err := maze.Generate(35, maze.SeedScatter, maze.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, l.Waypoints, 5)
	assert.Equal(t, hexgrid.Origin, l.Start)
	assert.Positive(t, l.Walls.Size())
	assert.NotEmpty(t, l.Order)
	for _, n := range l.Order {
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 1870)
	}
	// The goal is the bottom tip: below the origin on screen.
	assert.Positive(t, l.Goal.R)
}

func TestSeedScatter_NoSeeds(t *testing.T) {
	l, err := maze.Generate(6, maze.SeedScatter, maze.WithSeedCount(0))
	require.NoError(t, err)
	assert.Equal(t, 0, l.Walls.Size())
	assert.Empty(t, l.Order)
}

func TestTraced_CorridorEndsDiffer(t *testing.T) {
	for _, s := range []maze.Shape{maze.Heart, maze.Star, maze.Infinity, maze.Spiral} {
		l, err := maze.Generate(25, maze.Traced, maze.WithShape(s), maze.WithSeed(3))
		require.NoError(t, err)
		assert.NotEqual(t, l.Start, l.Goal, s.String())
		assert.Positive(t, l.Walls.Size(), s.String())
	}
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { maze.WithRand(nil) })
	assert.Panics(t, func() { maze.WithHexSize(0) })
	assert.Panics(t, func() { maze.WithSeedCount(-1) })
	assert.Panics(t, func() { maze.WithSpreadScale(-2) })
	assert.Panics(t, func() { maze.WithShape(maze.Shape(12)) })
	assert.Panics(t, func() { maze.WithWallPenalty(0) })
}

func TestParse(t *testing.T) {
	p, err := maze.ParsePolicy("Seed-Scatter")
	require.NoError(t, err)
	assert.Equal(t, maze.SeedScatter, p)
	_, err = maze.ParsePolicy("prim")
	assert.ErrorIs(t, err, maze.ErrUnknownPolicy)

	s, err := maze.ParseShape("spiral")
	require.NoError(t, err)
	assert.Equal(t, maze.Spiral, s)
	_, err = maze.ParseShape("moon")
	assert.ErrorIs(t, err, maze.ErrUnknownShape)

	var back maze.Policy
	b, err := maze.Traced.MarshalText()
	require.NoError(t, err)
	require.NoError(t, back.UnmarshalText(b))
	assert.Equal(t, maze.Traced, back)
}
