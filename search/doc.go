// Package search runs classical graph searches over a hexgrid.Grid one
// expansion at a time, so every step can be observed and animated.
//
// What:
//
//   - Five strategies share one engine: AStar, Dijkstra, Greedy, BFS, DFS.
//   - Step expands exactly one cell and reports StatusContinuing,
//     StatusFound or StatusExhausted.
//   - Snapshot copies frontier, explored set, current cell and path without
//     touching the engine.
//
// Frontier disciplines:
//
//	Strategy   key                  re-expansion rule
//	BFS        insertion (FIFO)     skip cells already reached
//	DFS        insertion (LIFO)     skip cells already reached
//	Greedy     h(n, target)         skip cells already reached
//	Dijkstra   g(n)                 relax if strictly cheaper
//	AStar      g(n) + h(n, target)  relax if strictly cheaper
//
// Every move costs 1 and h is the hex distance, which is admissible and
// consistent, so AStar, Dijkstra and BFS return shortest paths; Greedy and
// DFS return valid but possibly longer ones.
//
// The frontier uses lazy decrease-key: a cheaper route pushes a duplicate
// entry and the stale one is skipped when popped. Ties in priority leave in
// insertion order, so a run is a pure function of grid, endpoints and strategy.
//
// Complexity:
//
//   - Step: O(log F) amortised, F = frontier entries.
//   - Full run: O(V log V), V = 1+3N(N+1).
//
// Errors:
//
//   - ErrNilGrid, ErrUnknownStrategy, ErrOptionViolation from NewEngine.
//   - ErrOutsideRegion, ErrBlockedEndpoint from Initialize.
//
// An unreachable target is not an error: the run ends in StatusExhausted.
package search
