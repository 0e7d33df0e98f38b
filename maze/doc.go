// Package maze generates wall layouts over a hexagonal region.
//
// The package offers the following key components:
//
//   - Generate(radius, policy, opts...): single entry point returning a Layout.
//   - Policies:
//     – DepthFirst:  randomized depth-first carving over the even sub-lattice;
//     start and goal are the ends of a double farthest-reachable sweep.
//     – SeedScatter: golden-angle phyllotaxis walls plus five waypoints joined
//     by a penalty-biased carve.
//     – Traced:      a Heart, Star, Infinity or Spiral corridor traced with hex
//     lines, then grown into side branches.
//   - Options (functional, panic on meaningless values):
//     WithSeed, WithRand, WithHexSize, WithSeedCount, WithSpreadScale,
//     WithShape, WithWallPenalty.
//   - Helpers: CarveConnection, EnsureConnected, Normalize.
//
// Guarantees:
//
//   - Start, goal and every waypoint are walkable.
//   - Every consecutive pair of waypoints is connected; a pair left apart by a
//     policy is joined by CarveConnection.
//   - Same radius, policy, options and seed ⇒ identical Layout.
//   - Without WithSeed or WithRand each call draws a fresh time-seeded RNG.
//
// Errors:
//
//   - hexgrid.ErrInvalidRadius: radius < 1.
//   - ErrUnknownPolicy, ErrUnknownShape: enum values outside the supported set.
//   - hexgrid.ErrNoWalkableCell: normalisation found no walkable cell.
package maze
