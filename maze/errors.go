// SPDX-License-Identifier: MIT
// Package: hexmaze/maze
//
// errors.go - sentinel errors for the maze package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the call site, never in the sentinel.
//   • Generators never panic; validation panics live in option constructors.

package maze

import "errors"

// ErrUnknownPolicy indicates a Policy value outside DepthFirst..Traced.
var ErrUnknownPolicy = errors.New("maze: unknown policy")

// ErrUnknownShape indicates a Shape value outside Heart..Spiral.
var ErrUnknownShape = errors.New("maze: unknown shape")
