package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/maze"
	"github.com/katalvlaran/hexmaze/search"
)

const sample = `
grid:
  radius: 12
  hex_size: 6
search:
  strategy: dijkstra
  speed: 10
  waypoints:
    - {q: -12, r: 0}
    - {q: 0, r: 0}
    - {q: 12, r: 0}
maze:
  policy: seed-scatter
  shape: infinity
  seed: 42
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Grid.Radius)
	assert.Equal(t, 6.0, cfg.Grid.HexSize)
	assert.Equal(t, search.Dijkstra, cfg.Search.Strategy)
	assert.Equal(t, []hexgrid.Hex{{Q: -12}, {}, {Q: 12}}, cfg.Search.Waypoints)
	assert.Equal(t, maze.SeedScatter, cfg.Maze.Policy)
	assert.Equal(t, maze.Infinity, cfg.Maze.Shape)
	assert.Equal(t, int64(42), cfg.Maze.Seed)

	// defaults fill the gaps
	assert.Equal(t, 35, cfg.Search.DelayMS)
	assert.Equal(t, 1870, cfg.Maze.SeedCount)
	assert.Equal(t, 1.2, cfg.Maze.SpreadScale)
	assert.Equal(t, 60, cfg.Maze.WallPenalty)

	assert.Equal(t, 155*time.Millisecond, cfg.Delay(), "speed wins over delay_ms")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 25, cfg.Grid.Radius)
	assert.Equal(t, search.AStar, cfg.Search.Strategy)
	assert.Equal(t, maze.DepthFirst, cfg.Maze.Policy)
	assert.Equal(t, 35*time.Millisecond, cfg.Delay())

	empty, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, cfg, empty)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("search:\n  strategy: bogo\n"))
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)

	_, err = Parse([]byte("maze:\n  policy: prim\n"))
	assert.ErrorIs(t, err, maze.ErrUnknownPolicy)

	_, err = Parse([]byte("grid: [1, 2"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"radius":    func(c *Config) { c.Grid.Radius = -1 },
		"hex size":  func(c *Config) { c.Grid.HexSize = -2 },
		"strategy":  func(c *Config) { c.Search.Strategy = search.Strategy(9) },
		"delay":     func(c *Config) { c.Search.DelayMS = -1 },
		"speed":     func(c *Config) { c.Search.Speed = 51 },
		"waypoints": func(c *Config) { c.Search.Waypoints = []hexgrid.Hex{{}} },
		"policy":    func(c *Config) { c.Maze.Policy = maze.Policy(7) },
		"shape":     func(c *Config) { c.Maze.Shape = maze.Shape(-1) },
		"seeds":     func(c *Config) { c.Maze.SeedCount = -5 },
		"spread":    func(c *Config) { c.Maze.SpreadScale = -0.5 },
		"penalty":   func(c *Config) { c.Maze.WallPenalty = -60 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hexmaze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Grid.Radius)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMazeOptions(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	a, err := maze.Generate(cfg.Grid.Radius, cfg.Maze.Policy, cfg.MazeOptions()...)
	require.NoError(t, err)
	b, err := maze.Generate(cfg.Grid.Radius, cfg.Maze.Policy, cfg.MazeOptions()...)
	require.NoError(t, err)
	assert.Equal(t, hexgrid.Sorted(a.Walls), hexgrid.Sorted(b.Walls), "fixed seed is reproducible")
	assert.Len(t, a.Waypoints, 5)
}
