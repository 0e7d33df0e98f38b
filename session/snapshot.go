package session

import (
	"time"

	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/search"
)

// Snapshot is a read-only view of a Session between two steps. All slices
// are copies; cell lists are in canonical order except Waypoints and Path,
// which follow the route.
type Snapshot struct {
	Radius     int
	Status     Status
	Strategy   search.Strategy
	Start      hexgrid.Hex
	Goal       hexgrid.Hex
	Waypoints  []hexgrid.Hex
	Leg        int // 1-based active leg, 0 without a journey
	Legs       int
	Walls      []hexgrid.Hex
	Frontier   []hexgrid.Hex
	Explored   []hexgrid.Hex
	Path       []hexgrid.Hex
	Current    hexgrid.Hex
	HasCurrent bool
	Steps      int
	Elapsed    time.Duration
	Stats      Stats

	classes map[hexgrid.Hex]CellClass
}

// Snapshot copies the observable state. It never mutates the session, so two
// calls with no Step or edit in between return equal values.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	route := append([]hexgrid.Hex(nil), s.route()...)
	snap := Snapshot{
		Radius:    s.grid.Radius,
		Status:    s.status,
		Strategy:  s.strategy,
		Start:     s.start,
		Goal:      s.goal,
		Waypoints: route,
		Legs:      len(route) - 1,
		Walls:     hexgrid.Sorted(s.grid.Walls),
		Stats:     s.stats,
	}
	if j := s.journey; j != nil {
		snap.Leg = j.Leg()
		snap.Frontier = j.Frontier()
		snap.Explored = j.Explored()
		snap.Path = j.Path()
		snap.Current, snap.HasCurrent = j.Current()
		snap.Steps = j.Steps()
		snap.Elapsed = j.Elapsed()
	}
	snap.classes = classify(snap)

	return snap
}

// classify assigns each non-free cell its highest-precedence class.
func classify(snap Snapshot) map[hexgrid.Hex]CellClass {
	classes := make(map[hexgrid.Hex]CellClass, len(snap.Walls)+len(snap.Explored))
	mark := func(c CellClass, cells ...hexgrid.Hex) {
		for _, h := range cells {
			if _, ok := classes[h]; !ok {
				classes[h] = c
			}
		}
	}
	mark(Wall, snap.Walls...)
	mark(Start, snap.Start)
	mark(Goal, snap.Goal)
	mark(Waypoint, snap.Waypoints...)
	mark(Path, snap.Path...)
	if snap.HasCurrent {
		mark(Current, snap.Current)
	}
	mark(Frontier, snap.Frontier...)
	mark(Explored, snap.Explored...)

	return classes
}

// Classify returns the display class of h.
func (s Snapshot) Classify(h hexgrid.Hex) CellClass {
	if hexgrid.Distance(hexgrid.Origin, h) > s.Radius {
		return Outside
	}
	if c, ok := s.classes[h]; ok {
		return c
	}
	return Free
}

// Counts tallies every in-region cell by class.
func (s Snapshot) Counts() map[CellClass]int {
	counts := make(map[CellClass]int)
	total := 1 + 3*s.Radius*(s.Radius+1)
	for _, c := range s.classes {
		counts[c]++
	}
	counts[Free] = total - len(s.classes)

	return counts
}
