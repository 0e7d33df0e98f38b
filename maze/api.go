// SPDX-License-Identifier: MIT
// Package: hexmaze/maze
//
// api.go - public entry point, policy and shape enums, Layout.
//
// Design contract:
//   • One orchestrator: Generate(radius, policy, opts...).
//   • Policies are implemented in impl_*.go and share the post-processing
//     here: waypoint normalisation and the connectivity guarantee.
//   • Determinism: same inputs and seed ⇒ identical Layout.

package maze

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hexmaze/hexgrid"
)

// Policy selects a generation algorithm.
type Policy int

const (
	// DepthFirst carves a spanning tree of corridors with a randomized DFS.
	DepthFirst Policy = iota
	// SeedScatter places golden-angle walls and carves between waypoints.
	SeedScatter
	// Traced clears a shape-traced corridor and grows branches off it.
	Traced
)

var policyNames = [...]string{"depth_first", "seed_scatter", "traced"}

// Valid reports whether p is a supported policy.
func (p Policy) Valid() bool { return p >= DepthFirst && p <= Traced }

func (p Policy) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Policy(%d)", int(p))
	}
	return policyNames[p]
}

// ParsePolicy maps "depth_first", "seed_scatter" or "traced" (case and
// dash/underscore insensitive) to a Policy.
func ParsePolicy(name string) (Policy, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, s := range policyNames {
		if s == n {
			return Policy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(p))
	}
	return []byte(p.String()), nil
}

// Shape selects the corridor drawn by the Traced policy.
type Shape int

const (
	Heart Shape = iota
	Star
	Infinity
	Spiral
)

var shapeNames = [...]string{"heart", "star", "infinity", "spiral"}

// Valid reports whether s is a supported shape.
func (s Shape) Valid() bool { return s >= Heart && s <= Spiral }

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape maps a lower-case shape name to a Shape.
func ParseShape(name string) (Shape, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range shapeNames {
		if s == n {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	v, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(s))
	}
	return []byte(s.String()), nil
}

// Layout is a generated maze. Waypoints always starts with Start and ends
// with Goal. Order maps a wall cell to its position in the growth sequence
// (SeedScatter only; nil otherwise).
type Layout struct {
	Radius    int
	Walls     hexgrid.Set
	Start     hexgrid.Hex
	Goal      hexgrid.Hex
	Waypoints []hexgrid.Hex
	Order     map[hexgrid.Hex]int
}

// Grid returns a fresh grid holding a copy of the layout's walls.
func (l *Layout) Grid() *hexgrid.Grid {
	return &hexgrid.Grid{Radius: l.Radius, Walls: hexgrid.CloneSet(l.Walls)}
}

// Generate builds a maze of the given radius with policy.
//
// Errors: hexgrid.ErrInvalidRadius, ErrUnknownPolicy, hexgrid.ErrNoWalkableCell.
// Complexity: O(V log V) for every policy, V = 1+3N(N+1); SeedScatter adds
// O(seedCount).
func Generate(radius int, policy Policy, opts ...Option) (*Layout, error) {
	if !policy.Valid() {
		return nil, fmt.Errorf("Generate: %w: %d", ErrUnknownPolicy, int(policy))
	}
	g, err := hexgrid.NewGrid(radius)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	cfg := newMazeConfig(opts...)

	var (
		waypoints []hexgrid.Hex
		order     map[hexgrid.Hex]int
	)
	switch policy {
	case DepthFirst:
		waypoints = carveDepthFirst(g, cfg)
	case SeedScatter:
		waypoints, order = scatterSeeds(g, cfg)
	case Traced:
		waypoints = traceShape(g, cfg)
	}

	waypoints, err = Normalize(g, waypoints...)
	if err != nil {
		return nil, fmt.Errorf("Generate(%s): %w", policy, err)
	}
	for _, c := range EnsureConnected(g, waypoints, cfg.wallPenalty) {
		delete(order, c)
	}

	return &Layout{
		Radius:    radius,
		Walls:     g.Walls,
		Start:     waypoints[0],
		Goal:      waypoints[len(waypoints)-1],
		Waypoints: waypoints,
		Order:     order,
	}, nil
}
