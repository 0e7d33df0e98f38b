// Package session owns one interactive pathfinding session: a grid, its
// endpoints and waypoints, and at most one live journey.
//
// What:
//
//   - Configure, GenerateMaze and SetWaypoints define the board.
//   - StartSearch, Step, AdvanceJourney, PauseSearch, ResumeSearch and
//     CancelSearch drive the live search.
//   - ToggleWall, SetWall, MoveStart, MoveGoal and ClearWalls edit the board
//     between steps; a live leg is reinitialised from its source and never
//     continues on stale state.
//   - Snapshot returns read-only copies and a per-cell classification with
//     precedence wall > start > goal > waypoint > path > current > frontier >
//     explored > free.
//   - Scheduler paces Step calls with a timer and skips ticks while paused.
//
// Every exported method takes the session lock, so edits issued from another
// goroutine always land between two steps. Hooks run under that lock and must
// not call back into the Session.
//
// Errors:
//
//   - hexgrid.ErrInvalidRadius, hexgrid.ErrOutsideRegion, hexgrid.ErrNoWalkableCell.
//   - search.ErrUnknownStrategy.
//   - journey.ErrTooFewWaypoints.
//   - ErrProtectedCell: walling an endpoint or waypoint.
package session
