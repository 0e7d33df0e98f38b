// Package hexgrid treats a hexagonal region of axial coordinates as a graph,
// enabling distance queries, pixel projection, line drawing and reachability
// analysis over the walkable cells.
//
// What:
//
//   - Hex is an axial coordinate (q, r); the cube component s = -q-r is implicit.
//   - Grid is the set of cells within Radius hex-steps of the origin, plus a
//     wall Set of blocked cells.
//   - Reachable, ConnectedComponents, NearestWalkable and FarthestReachable run
//     breadth-first sweeps over the region.
//
// Neighbour enumeration always follows Directions, so every traversal built on
// this package is deterministic for a given wall set.
//
// Complexity:
//
//   - Distance, Neighbors, Contains: O(1).
//   - Reachable, ConnectedComponents, FarthestReachable: O(V), V = 1+3N(N+1).
//   - Line: O(Distance(a, b)).
//
// Errors:
//
//   - ErrInvalidRadius: radius must be positive.
//   - ErrOutsideRegion: coordinate lies outside the region.
//   - ErrNoWalkableCell: the region holds no walkable cell at all.
package hexgrid
