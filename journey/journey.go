package journey

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/search"
)

// Journey sequences legs between consecutive waypoints. It is not safe for
// concurrent use.
type Journey struct {
	grid      *hexgrid.Grid
	waypoints []hexgrid.Hex
	engine    *search.Engine

	leg      int
	state    State
	segments [][]hexgrid.Hex
	explored hexgrid.Set // folded from finished legs
	steps    int
	elapsed  time.Duration
}

// New validates the waypoints and initialises the first leg.
// opts are applied to the engine that runs every leg.
func New(grid *hexgrid.Grid, strategy search.Strategy, waypoints []hexgrid.Hex, opts ...search.Option) (*Journey, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewWaypoints, len(waypoints))
	}
	e, err := search.NewEngine(grid, strategy, opts...)
	if err != nil {
		return nil, err
	}
	for i, w := range waypoints {
		if !grid.Contains(w) {
			return nil, fmt.Errorf("%w: waypoint %d at %v", search.ErrOutsideRegion, i, w)
		}
		if grid.IsWall(w) {
			return nil, fmt.Errorf("%w: waypoint %d at %v", search.ErrBlockedEndpoint, i, w)
		}
	}
	j := &Journey{
		grid:      grid,
		waypoints: append([]hexgrid.Hex(nil), waypoints...),
		engine:    e,
		explored:  hexgrid.NewSet(),
	}
	if err := j.initLeg(); err != nil {
		return nil, err
	}

	return j, nil
}

func (j *Journey) initLeg() error {
	if err := j.engine.Initialize(j.waypoints[j.leg], j.waypoints[j.leg+1]); err != nil {
		return fmt.Errorf("journey: leg %d: %w", j.leg+1, err)
	}
	j.state = Running

	return nil
}

// fold moves the active leg's explored cells and counters into the totals.
func (j *Journey) fold() {
	for _, h := range j.engine.Explored() {
		j.explored.Put(h)
	}
	j.steps += j.engine.Steps()
	j.elapsed += j.engine.Elapsed()
}

// Step advances the active leg by one expansion. A found intermediate leg
// reports StatusContinuing because the next leg starts immediately; the
// final leg reports StatusFound. An exhausted leg fails the journey.
func (j *Journey) Step() search.Status {
	switch j.state {
	case Completed:
		return search.StatusFound
	case Failed:
		return search.StatusExhausted
	case Halted:
		return search.StatusIdle
	}

	st := j.engine.Step()
	switch st {
	case search.StatusFound:
		j.segments = append(j.segments, j.engine.Path())
		j.fold()
		if j.leg == len(j.waypoints)-2 {
			j.state = Completed
			return search.StatusFound
		}
		j.leg++
		if err := j.initLeg(); err != nil {
			j.state = Failed
			return search.StatusExhausted
		}
		return search.StatusContinuing
	case search.StatusExhausted:
		j.fold()
		j.state = Failed
	}

	return st
}

// Advance runs the active leg to completion and returns the status of the
// step that ended it.
func (j *Journey) Advance() search.Status {
	leg := j.leg
	for {
		st := j.Step()
		if st != search.StatusContinuing || j.leg != leg {
			return st
		}
	}
}

// Run steps until the journey ends or ctx is done.
func (j *Journey) Run(ctx context.Context) (search.Status, error) {
	for {
		if err := ctx.Err(); err != nil {
			return search.StatusContinuing, err
		}
		st := j.Step()
		if st != search.StatusContinuing {
			return st, nil
		}
	}
}

// CancelLeg discards the active leg's search state. Finished legs are kept.
func (j *Journey) CancelLeg() {
	if j.state != Running {
		return
	}
	j.engine.Reset()
	j.state = Halted
}

// RestartLeg re-initialises the active leg from its source waypoint,
// discarding any partial state. Used after the grid changes under a leg.
func (j *Journey) RestartLeg() error {
	if j.state == Completed || j.state == Failed {
		return ErrNotActive
	}

	return j.initLeg()
}

// State returns the lifecycle state.
func (j *Journey) State() State { return j.state }

// Strategy returns the strategy every leg uses.
func (j *Journey) Strategy() search.Strategy { return j.engine.Strategy() }

// Waypoints returns a copy of the waypoint list.
func (j *Journey) Waypoints() []hexgrid.Hex {
	return append([]hexgrid.Hex(nil), j.waypoints...)
}

// Leg returns the 1-based index of the active (or last) leg.
func (j *Journey) Leg() int { return j.leg + 1 }

// Legs returns the number of legs, len(waypoints)-1.
func (j *Journey) Legs() int { return len(j.waypoints) - 1 }

// Engine exposes the engine of the active leg for read-only inspection.
func (j *Journey) Engine() *search.Engine { return j.engine }

// Segments returns a copy of the paths of every found leg.
func (j *Journey) Segments() [][]hexgrid.Hex {
	out := make([][]hexgrid.Hex, len(j.segments))
	for i, s := range j.segments {
		out[i] = append([]hexgrid.Hex(nil), s...)
	}

	return out
}

// Path concatenates the found segments, sharing each joint waypoint once.
func (j *Journey) Path() []hexgrid.Hex {
	var out []hexgrid.Hex
	for _, s := range j.segments {
		if len(out) > 0 && len(s) > 0 && out[len(out)-1] == s[0] {
			s = s[1:]
		}
		out = append(out, s...)
	}

	return out
}

// Route returns the full waypoint-to-waypoint route once every leg is found,
// or nil otherwise.
func (j *Journey) Route() []hexgrid.Hex {
	if j.state != Completed {
		return nil
	}
	return j.Path()
}

// Explored returns the union of every leg's explored cells, including the
// active leg, in canonical order.
func (j *Journey) Explored() []hexgrid.Hex {
	all := hexgrid.CloneSet(j.explored)
	if j.state == Running {
		for _, h := range j.engine.Explored() {
			all.Put(h)
		}
	}

	return hexgrid.Sorted(all)
}

// Frontier returns the active leg's frontier.
func (j *Journey) Frontier() []hexgrid.Hex {
	if j.state != Running {
		return nil
	}
	return j.engine.Frontier()
}

// Current returns the active leg's most recently expanded cell.
func (j *Journey) Current() (hexgrid.Hex, bool) {
	if j.state != Running {
		return hexgrid.Hex{}, false
	}
	return j.engine.Current()
}

// Steps returns the total number of expansions across legs.
func (j *Journey) Steps() int {
	if j.state == Running {
		return j.steps + j.engine.Steps()
	}
	return j.steps
}

// Elapsed returns the summed leg durations.
func (j *Journey) Elapsed() time.Duration {
	if j.state == Running {
		return j.elapsed + j.engine.Elapsed()
	}
	return j.elapsed
}
