// SPDX-License-Identifier: MIT
// Package: hexmaze/maze
//
// config.go - internal configuration and defaults.
//
// Defaults:
//   • rng          = nil → a fresh time-seeded RNG per Generate call
//   • hexSize      = 6     (pixel circumradius used by SeedScatter projection)
//   • seedCount    = 1870  (phyllotaxis seeds)
//   • spreadScale  = 1.2   (radial spacing factor)
//   • shape        = Heart
//   • wallPenalty  = 60    (carve cost of entering a wall cell)

package maze

import (
	"math/rand"
	"time"
)

const (
	defaultHexSize     = 6.0
	defaultSeedCount   = 1870
	defaultSpreadScale = 1.2
	defaultWallPenalty = 60
)

// mazeConfig aggregates every generator knob. Passed by value.
type mazeConfig struct {
	rng         *rand.Rand
	hexSize     float64
	seedCount   int
	spreadScale float64
	shape       Shape
	wallPenalty int
}

// newMazeConfig applies opts in order over the defaults; last wins.
func newMazeConfig(opts ...Option) mazeConfig {
	cfg := mazeConfig{
		hexSize:     defaultHexSize,
		seedCount:   defaultSeedCount,
		spreadScale: defaultSpreadScale,
		shape:       Heart,
		wallPenalty: defaultWallPenalty,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
