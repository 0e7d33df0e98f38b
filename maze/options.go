// SPDX-License-Identifier: MIT
// Package: hexmaze/maze
//
// options.go - functional options for Generate.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Determinism is explicit: WithSeed or WithRand.

package maze

import (
	"fmt"
	"math/rand"
)

// Option customizes a Generate call by mutating mazeConfig.
type Option func(*mazeConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *mazeConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *mazeConfig) {
		c.rng = r
	}
}

// WithHexSize sets the pixel circumradius used to project SeedScatter
// seeds and waypoints. Panics if size <= 0.
func WithHexSize(size float64) Option {
	if size <= 0 {
		panic("maze: WithHexSize(size<=0)")
	}
	return func(c *mazeConfig) {
		c.hexSize = size
	}
}

// WithSeedCount sets the number of phyllotaxis seeds. Panics if n < 0.
func WithSeedCount(n int) Option {
	if n < 0 {
		panic("maze: WithSeedCount(n<0)")
	}
	return func(c *mazeConfig) {
		c.seedCount = n
	}
}

// WithSpreadScale sets the radial spacing of phyllotaxis seeds.
// Panics if scale <= 0.
func WithSpreadScale(scale float64) Option {
	if scale <= 0 {
		panic("maze: WithSpreadScale(scale<=0)")
	}
	return func(c *mazeConfig) {
		c.spreadScale = scale
	}
}

// WithShape selects the corridor traced by the Traced policy.
// Panics on an unknown shape.
func WithShape(s Shape) Option {
	if !s.Valid() {
		panic(fmt.Sprintf("maze: WithShape(%d)", int(s)))
	}
	return func(c *mazeConfig) {
		c.shape = s
	}
}

// WithWallPenalty sets the cost of carving through a wall cell.
// Panics if p < 1.
func WithWallPenalty(p int) Option {
	if p < 1 {
		panic("maze: WithWallPenalty(p<1)")
	}
	return func(c *mazeConfig) {
		c.wallPenalty = p
	}
}
