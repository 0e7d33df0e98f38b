// Package hexmaze is a hexagonal-grid pathfinding playground: generate a
// maze inside a hexagonal region, then watch a search advance one expansion
// at a time.
//
// What is inside?
//
//	• Hex math: axial coordinates, distance, rounding, pixel projection, lines
//	• Mazes: depth-first carving, seed scatter, traced shapes; always connected
//	• Stepped search: A*, Dijkstra, Greedy best-first, BFS, DFS
//	• Journeys: multi-leg searches through ordered waypoints
//	• Sessions: pause, resume, cancel and live wall edits between steps
//
// Packages:
//
//	hexgrid/ - Hex, Grid, region enumeration, connectivity helpers
//	pqueue/  - stable min-priority queue (FIFO among equal priorities)
//	maze/    - Generate(radius, policy, opts...) and connectivity carving
//	search/  - Engine: Initialize, Step, Snapshot, ReconstructPath
//	journey/ - Journey: legs between waypoints over one Engine
//	session/ - Session controller and the timer-driven Scheduler
//	config/  - YAML settings (grid, search, maze)
//	cmd/hexmaze - headless driver
//
// Quick ASCII picture of a radius-1 region (7 cells):
//
//	   ⬡ ⬡
//	  ⬡ ⬢ ⬡
//	   ⬡ ⬡
//
// Library packages never log and never panic on bad input; option
// constructors in maze are the exception and panic on meaningless values.
//
//	go get github.com/katalvlaran/hexmaze
package hexmaze
