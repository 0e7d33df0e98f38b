// Package search defines strategies, states, options and sentinel errors
// for the stepped hex-grid search engine.
package search

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/hexmaze/hexgrid"
)

// Sentinel errors for engine construction and initialisation.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownStrategy is returned for a strategy outside the supported set.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrOutsideRegion is returned when an endpoint lies outside the grid region.
	ErrOutsideRegion = errors.New("search: endpoint outside region")

	// ErrBlockedEndpoint is returned when an endpoint is a wall.
	ErrBlockedEndpoint = errors.New("search: endpoint is a wall")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Strategy selects the frontier discipline.
type Strategy int

const (
	// AStar orders the frontier by cost-so-far plus hex distance to the target.
	AStar Strategy = iota
	// Dijkstra orders the frontier by cost-so-far.
	Dijkstra
	// Greedy orders the frontier by hex distance to the target only.
	Greedy
	// BFS expands cells in first-in first-out order.
	BFS
	// DFS expands cells in last-in first-out order.
	DFS
)

var strategyNames = [...]string{"astar", "dijkstra", "greedy", "bfs", "dfs"}

// Strategies lists every supported strategy.
var Strategies = []Strategy{AStar, Dijkstra, Greedy, BFS, DFS}

// Valid reports whether s is one of the supported strategies.
func (s Strategy) Valid() bool {
	return s >= AStar && s <= DFS
}

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy maps a name ("astar", "a*", "dijkstra", "greedy", "bfs",
// "dfs", case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "a*" || n == "a-star" {
		return AStar, nil
	}
	for i, s := range strategyNames {
		if s == n {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// usesCost reports whether the strategy relaxes on strictly cheaper cost
// rather than skipping every already-reached cell.
func (s Strategy) usesCost() bool {
	return s == AStar || s == Dijkstra
}

// State is the engine lifecycle: Idle → Initialized → Stepping → Found|Exhausted.
type State int

const (
	// Idle means no leg is loaded; Step reports StatusIdle.
	Idle State = iota
	// Initialized means the source is on the frontier and nothing is expanded yet.
	Initialized
	// Stepping means at least one cell has been expanded.
	Stepping
	// Found means the target was expanded and the path is available.
	Found
	// Exhausted means the frontier emptied before reaching the target.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Initialized:
		return "initialized"
	case Stepping:
		return "stepping"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether no further step can change the state.
func (s State) Terminal() bool { return s == Found || s == Exhausted }

// Status is the result of a single Step.
type Status int

const (
	// StatusIdle means there is nothing to step.
	StatusIdle Status = iota
	// StatusContinuing means one cell was expanded and the search goes on.
	StatusContinuing
	// StatusFound means the target was expanded.
	StatusFound
	// StatusExhausted means the frontier emptied without reaching the target.
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusContinuing:
		return "continuing"
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Done reports whether s ends the search.
func (s Status) Done() bool { return s == StatusFound || s == StatusExhausted }

// Heuristic estimates the remaining cost from a to b. It must never
// overestimate for AStar to return shortest paths.
type Heuristic func(a, b hexgrid.Hex) int

// Option configures an Engine via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by NewEngine.
type Option func(*Options)

// Options holds hooks and tunables for an Engine.
type Options struct {
	// OnEnqueue is called whenever a cell is pushed onto the frontier.
	OnEnqueue func(h hexgrid.Hex, priority int)

	// OnExpand is called when a cell is expanded; step counts from 1.
	OnExpand func(h hexgrid.Hex, step int)

	// OnFinish is called once when the engine reaches Found or Exhausted.
	OnFinish func(found bool, explored int)

	// Heuristic used by AStar and Greedy. Defaults to hexgrid.Distance.
	Heuristic Heuristic

	// Clock supplies timestamps for Elapsed. Defaults to time.Now.
	Clock func() time.Time

	err error
}

// DefaultOptions returns Options with no-op hooks, the hex-distance
// heuristic and the wall clock.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(hexgrid.Hex, int) {},
		OnExpand:  func(hexgrid.Hex, int) {},
		OnFinish:  func(bool, int) {},
		Heuristic: hexgrid.Distance,
		Clock:     time.Now,
	}
}

// WithOnEnqueue registers a callback run on every frontier push.
func WithOnEnqueue(fn func(h hexgrid.Hex, priority int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(h hexgrid.Hex, step int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnFinish registers a callback run when the search terminates.
func WithOnFinish(fn func(found bool, explored int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinish = fn
		}
	}
}

// WithHeuristic replaces the hex-distance heuristic. nil is an option violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic must not be nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithClock replaces time.Now, mainly for deterministic tests.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		if clock != nil {
			o.Clock = clock
		}
	}
}

// Snapshot is a read-only copy of an engine's observable state.
// Slices are owned by the caller and listed in canonical cell order,
// except Path which runs source → target.
type Snapshot struct {
	Strategy   Strategy
	State      State
	Source     hexgrid.Hex
	Target     hexgrid.Hex
	Frontier   []hexgrid.Hex
	Explored   []hexgrid.Hex
	Path       []hexgrid.Hex
	Current    hexgrid.Hex
	HasCurrent bool
	Steps      int
	Elapsed    time.Duration
}
