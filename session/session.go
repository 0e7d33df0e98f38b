package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/journey"
	"github.com/katalvlaran/hexmaze/maze"
	"github.com/katalvlaran/hexmaze/search"
)

// Session is the single owner of a board and its live search.
type Session struct {
	mu   sync.Mutex
	opts Options

	grid      *hexgrid.Grid
	start     hexgrid.Hex
	goal      hexgrid.Hex
	waypoints []hexgrid.Hex // nil means a single start → goal leg
	order     map[hexgrid.Hex]int

	strategy search.Strategy
	journey  *journey.Journey
	status   Status
	stats    Stats
}

// New returns a session over an open region of the given radius with start
// and goal halfway out on either side of the Q axis.
func New(radius int, opts ...Option) (*Session, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Session{opts: o}
	if err := s.Configure(radius, nil, hexgrid.Hex{Q: -radius / 2}, hexgrid.Hex{Q: radius / 2}); err != nil {
		return nil, err
	}

	return s, nil
}

// Configure replaces the board. Walls outside the region are dropped and
// endpoints are snapped to the nearest walkable cell. Any live search is
// discarded and waypoints are cleared.
func (s *Session) Configure(radius int, walls []hexgrid.Hex, start, goal hexgrid.Hex) error {
	g, err := hexgrid.NewGrid(radius)
	if err != nil {
		return fmt.Errorf("session: configure: %w", err)
	}
	for _, w := range walls {
		g.SetWall(w, true)
	}
	ends, err := maze.Normalize(g, start, goal)
	if err != nil {
		return fmt.Errorf("session: configure: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropSearchLocked()
	s.grid = g
	s.start, s.goal = ends[0], ends[1]
	s.waypoints = nil
	s.order = nil

	return nil
}

// GenerateMaze replaces the walls, endpoints and waypoints with a freshly
// generated layout of the current radius.
func (s *Session) GenerateMaze(policy maze.Policy, opts ...maze.Option) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := maze.Generate(s.grid.Radius, policy, opts...)
	if err != nil {
		return fmt.Errorf("session: generate: %w", err)
	}
	s.dropSearchLocked()
	s.grid = l.Grid()
	s.start, s.goal = l.Start, l.Goal
	s.waypoints = nil
	if len(l.Waypoints) > 2 {
		s.waypoints = append([]hexgrid.Hex(nil), l.Waypoints...)
	}
	s.order = l.Order

	return nil
}

// SetWaypoints replaces the route with list (start first, goal last).
// Points are snapped to walkable cells. A live search restarts on the new route.
func (s *Session) SetWaypoints(list []hexgrid.Hex) error {
	if len(list) < 2 {
		return fmt.Errorf("session: %w: got %d", journey.ErrTooFewWaypoints, len(list))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wps, err := maze.Normalize(s.grid, list...)
	if err != nil {
		return fmt.Errorf("session: waypoints: %w", err)
	}
	s.waypoints = wps
	s.start, s.goal = wps[0], wps[len(wps)-1]

	return s.restartLocked()
}

// StartSearch discards any live search and starts a new journey over the
// current route using strategy.
func (s *Session) StartSearch(strategy search.Strategy) error {
	if !strategy.Valid() {
		return fmt.Errorf("session: %w: %d", search.ErrUnknownStrategy, int(strategy))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.strategy = strategy

	return s.startLocked()
}

func (s *Session) route() []hexgrid.Hex {
	if s.waypoints != nil {
		return s.waypoints
	}
	return []hexgrid.Hex{s.start, s.goal}
}

func (s *Session) startLocked() error {
	s.dropSearchLocked()
	wps, err := maze.Normalize(s.grid, s.route()...)
	if err != nil {
		return fmt.Errorf("session: start: %w", err)
	}
	if s.waypoints != nil {
		s.waypoints = wps
	}
	s.start, s.goal = wps[0], wps[len(wps)-1]

	j, err := journey.New(s.grid, s.strategy, wps, s.opts.SearchOptions...)
	if err != nil {
		return fmt.Errorf("session: start: %w", err)
	}
	s.journey = j
	s.status = Running
	s.stats.Searches++

	return nil
}

// restartLocked starts a fresh search if one is live, or if one finished
// and live update is on. Otherwise any stale journey is dropped.
func (s *Session) restartLocked() error {
	switch {
	case s.status.Live():
		paused := s.status == Paused
		if err := s.startLocked(); err != nil {
			return err
		}
		if paused {
			s.status = Paused
		}
		return nil
	case s.journey != nil && (s.status == Found || s.status == Exhausted) && s.opts.LiveUpdate:
		return s.startLocked()
	}
	s.dropSearchLocked()

	return nil
}

func (s *Session) dropSearchLocked() {
	s.journey = nil
	s.status = Idle
}

// Step advances the live search by one expansion. It is a no-op reporting
// StatusIdle when no search is live, and works while paused.
func (s *Session) Step() search.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepLocked(false)
}

// tick steps only while Running and returns the state right after the step;
// used by the Scheduler.
func (s *Session) tick() (search.Status, Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != Running {
		return search.StatusIdle, Snapshot{}, false
	}
	st := s.stepLocked(false)

	return st, s.snapshotLocked(), true
}

// AdvanceJourney runs the active leg to completion and moves to the next.
func (s *Session) AdvanceJourney() search.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepLocked(true)
}

func (s *Session) stepLocked(wholeLeg bool) search.Status {
	if !s.status.Live() || s.journey == nil {
		return search.StatusIdle
	}
	var st search.Status
	if wholeLeg {
		st = s.journey.Advance()
	} else {
		st = s.journey.Step()
	}
	if st.Done() {
		s.finishLocked(st == search.StatusFound)
	}

	return st
}

func (s *Session) finishLocked(found bool) {
	if found {
		s.status = Found
		s.stats.Finds++
	} else {
		s.status = Exhausted
	}
	s.stats.LastDuration = s.journey.Elapsed()
	s.stats.LastExplored = len(s.journey.Explored())
	s.opts.OnFinish(found, s.stats)
}

// PauseSearch stops scheduling without touching search state.
// Reports whether the session was running.
func (s *Session) PauseSearch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != Running {
		return false
	}
	s.status = Paused
	return true
}

// ResumeSearch continues a paused search. A leg whose frontier has just
// drained still resumes; its next Step reports StatusExhausted.
func (s *Session) ResumeSearch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != Paused || s.journey == nil || s.journey.State() != journey.Running {
		return false
	}
	s.status = Running
	return true
}

// CancelSearch discards the active leg. Legs already found stay visible in
// snapshots until the next search starts.
func (s *Session) CancelSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.journey != nil && s.status.Live() {
		s.journey.CancelLeg()
	}
	s.status = Idle
}

// editedLocked reinitialises after a wall change. A first leg restarts from
// its source; once a leg has been found the whole journey restarts, since
// its segments were computed on the old walls. A finished search reruns
// under live update.
func (s *Session) editedLocked() error {
	if s.status.Live() && s.journey != nil && s.journey.Leg() == 1 {
		if err := s.journey.RestartLeg(); err == nil {
			return nil
		}
	}
	return s.restartLocked()
}

func (s *Session) protected(h hexgrid.Hex) bool {
	for _, w := range s.route() {
		if w == h {
			return true
		}
	}
	return false
}

// SetWall marks or clears a wall between steps.
func (s *Session) SetWall(h hexgrid.Hex, wall bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setWallLocked(h, wall)
}

// ToggleWall flips the wall state of h.
func (s *Session) ToggleWall(h hexgrid.Hex) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setWallLocked(h, !s.grid.IsWall(h))
}

func (s *Session) setWallLocked(h hexgrid.Hex, wall bool) error {
	if !s.grid.Contains(h) {
		return fmt.Errorf("session: %w: %v", hexgrid.ErrOutsideRegion, h)
	}
	if wall && s.protected(h) {
		return fmt.Errorf("%w: %v", ErrProtectedCell, h)
	}
	if s.grid.IsWall(h) == wall {
		return nil
	}
	s.grid.SetWall(h, wall)
	delete(s.order, h)

	return s.editedLocked()
}

// ClearWalls removes every wall.
func (s *Session) ClearWalls() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.ClearWalls()
	s.order = nil
	return s.editedLocked()
}

// MoveStart relocates the first waypoint (snapped to a walkable cell).
func (s *Session) MoveStart(h hexgrid.Hex) error {
	return s.moveEndpoint(h, true)
}

// MoveGoal relocates the last waypoint (snapped to a walkable cell).
func (s *Session) MoveGoal(h hexgrid.Hex) error {
	return s.moveEndpoint(h, false)
}

func (s *Session) moveEndpoint(h hexgrid.Hex, first bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.grid.Contains(h) {
		return fmt.Errorf("session: %w: %v", hexgrid.ErrOutsideRegion, h)
	}
	p, err := s.grid.NearestWalkable(h)
	if err != nil {
		return fmt.Errorf("session: move: %w", err)
	}
	if first {
		s.start = p
		if s.waypoints != nil {
			s.waypoints[0] = p
		}
	} else {
		s.goal = p
		if s.waypoints != nil {
			s.waypoints[len(s.waypoints)-1] = p
		}
	}

	return s.restartLocked()
}

// SetDelay changes the scheduler pace; it takes effect on the next tick.
func (s *Session) SetDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Delay = max(d, 0)
}

// Delay returns the pause between scheduled steps.
func (s *Session) Delay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Delay
}

// Status returns the session status.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Stats returns the session counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Grid returns a copy of the board.
func (s *Session) Grid() *hexgrid.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

// GrowthOrder returns a copy of the wall growth order of the last generated
// maze (empty unless it used SeedScatter).
func (s *Session) GrowthOrder() map[hexgrid.Hex]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[hexgrid.Hex]int, len(s.order))
	for h, n := range s.order {
		out[h] = n
	}
	return out
}
