// Package config loads hexmaze settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/maze"
	"github.com/katalvlaran/hexmaze/search"
	"github.com/katalvlaran/hexmaze/session"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all engine configuration
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Search SearchConfig `yaml:"search"`
	Maze   MazeConfig   `yaml:"maze"`
}

// GridConfig holds region settings
type GridConfig struct {
	Radius  int     `yaml:"radius"`
	HexSize float64 `yaml:"hex_size"` // pixel circumradius used for projection
}

// SearchConfig holds search and pacing settings
type SearchConfig struct {
	Strategy  search.Strategy `yaml:"strategy"`
	DelayMS   int             `yaml:"delay_ms"`
	Speed     int             `yaml:"speed"` // 1..50, overrides delay_ms when set
	Waypoints []hexgrid.Hex   `yaml:"waypoints"`
}

// MazeConfig holds generator settings
type MazeConfig struct {
	Policy      maze.Policy `yaml:"policy"`
	Shape       maze.Shape  `yaml:"shape"`
	Seed        int64       `yaml:"seed"` // 0 means a fresh layout every run
	SeedCount   int         `yaml:"seed_count"`
	SpreadScale float64     `yaml:"spread_scale"`
	WallPenalty int         `yaml:"wall_penalty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML, fills defaults and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Set defaults if not provided
func (c *Config) applyDefaults() {
	if c.Grid.Radius == 0 {
		c.Grid.Radius = 25
	}
	if c.Grid.HexSize == 0 {
		c.Grid.HexSize = 8
	}
	if c.Search.DelayMS == 0 {
		c.Search.DelayMS = int(session.DefaultDelay / time.Millisecond)
	}
	if c.Maze.SeedCount == 0 {
		c.Maze.SeedCount = 1870
	}
	if c.Maze.SpreadScale == 0 {
		c.Maze.SpreadScale = 1.2
	}
	if c.Maze.WallPenalty == 0 {
		c.Maze.WallPenalty = 60
	}
}

// Validate rejects values the engine cannot use.
func (c *Config) Validate() error {
	switch {
	case c.Grid.Radius < 1:
		return fmt.Errorf("%w: grid.radius must be positive, got %d", ErrInvalid, c.Grid.Radius)
	case c.Grid.HexSize <= 0:
		return fmt.Errorf("%w: grid.hex_size must be positive, got %g", ErrInvalid, c.Grid.HexSize)
	case !c.Search.Strategy.Valid():
		return fmt.Errorf("%w: search.strategy %d", ErrInvalid, int(c.Search.Strategy))
	case c.Search.DelayMS < 0:
		return fmt.Errorf("%w: search.delay_ms must not be negative, got %d", ErrInvalid, c.Search.DelayMS)
	case c.Search.Speed < 0 || c.Search.Speed > session.MaxSpeed:
		return fmt.Errorf("%w: search.speed must be within 0..%d, got %d", ErrInvalid, session.MaxSpeed, c.Search.Speed)
	case len(c.Search.Waypoints) == 1:
		return fmt.Errorf("%w: search.waypoints needs at least two entries", ErrInvalid)
	case !c.Maze.Policy.Valid():
		return fmt.Errorf("%w: maze.policy %d", ErrInvalid, int(c.Maze.Policy))
	case !c.Maze.Shape.Valid():
		return fmt.Errorf("%w: maze.shape %d", ErrInvalid, int(c.Maze.Shape))
	case c.Maze.SeedCount < 0:
		return fmt.Errorf("%w: maze.seed_count must not be negative, got %d", ErrInvalid, c.Maze.SeedCount)
	case c.Maze.SpreadScale <= 0:
		return fmt.Errorf("%w: maze.spread_scale must be positive, got %g", ErrInvalid, c.Maze.SpreadScale)
	case c.Maze.WallPenalty < 1:
		return fmt.Errorf("%w: maze.wall_penalty must be at least 1, got %d", ErrInvalid, c.Maze.WallPenalty)
	}

	return nil
}

// Delay returns the pause between scheduled steps. Speed wins over DelayMS.
func (c *Config) Delay() time.Duration {
	if c.Search.Speed > 0 {
		return session.SpeedToDelay(c.Search.Speed)
	}
	return time.Duration(c.Search.DelayMS) * time.Millisecond
}

// MazeOptions translates the maze section into generator options.
// Call Validate first; invalid values make the options panic.
func (c *Config) MazeOptions() []maze.Option {
	opts := []maze.Option{
		maze.WithHexSize(c.Grid.HexSize),
		maze.WithSeedCount(c.Maze.SeedCount),
		maze.WithSpreadScale(c.Maze.SpreadScale),
		maze.WithShape(c.Maze.Shape),
		maze.WithWallPenalty(c.Maze.WallPenalty),
	}
	if c.Maze.Seed != 0 {
		opts = append(opts, maze.WithSeed(c.Maze.Seed))
	}

	return opts
}
