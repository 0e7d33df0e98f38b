package session

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/hexmaze/search"
)

// ErrProtectedCell is returned when an edit would wall an endpoint or waypoint.
var ErrProtectedCell = errors.New("session: cell is an endpoint or waypoint")

// Pacing bounds for SpeedToDelay and DelayToSpeed.
const (
	MinSpeed     = 1
	MaxSpeed     = 50
	DefaultDelay = 35 * time.Millisecond
)

// SpeedToDelay maps a speed in MinSpeed..MaxSpeed (clamped) to the pause
// between scheduled steps: 205-5*speed milliseconds, floored at zero, so
// speed 1 waits 200ms and every speed from 41 up runs without delay.
func SpeedToDelay(speed int) time.Duration {
	speed = min(max(speed, MinSpeed), MaxSpeed)
	return time.Duration(max(205-5*speed, 0)) * time.Millisecond
}

// DelayToSpeed is the inverse of SpeedToDelay, rounded and clamped.
func DelayToSpeed(d time.Duration) int {
	s := int(math.Round(float64(205-d.Milliseconds()) / 5))
	return min(max(s, MinSpeed), MaxSpeed)
}

// Status is the session-level search status.
type Status int

const (
	// Idle means no search is live (never started or cancelled).
	Idle Status = iota
	// Running means the scheduler steps the search.
	Running
	// Paused means the search is live but the scheduler skips it.
	Paused
	// Found means the journey reached its final goal.
	Found
	// Exhausted means some leg ran out of frontier.
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Live reports whether a search is in progress (running or paused).
func (s Status) Live() bool { return s == Running || s == Paused }

// CellClass is the display class of a cell.
type CellClass int

const (
	Free CellClass = iota
	Wall
	Start
	Goal
	Waypoint
	Path
	Current
	Frontier
	Explored
	Outside
)

var classNames = [...]string{"free", "wall", "start", "goal", "waypoint", "path", "current", "frontier", "explored", "outside"}

func (c CellClass) String() string {
	if c < Free || c > Outside {
		return fmt.Sprintf("CellClass(%d)", int(c))
	}
	return classNames[c]
}

// Stats are counters kept across searches for the lifetime of a Session.
type Stats struct {
	Searches     int           // searches started
	Finds        int           // searches that reached the final goal
	LastDuration time.Duration // elapsed time of the last finished search
	LastExplored int           // cells entered by the last finished search
}

// Option configures a Session.
type Option func(*Options)

// Options holds session tunables and hooks.
type Options struct {
	// Delay between scheduled steps.
	Delay time.Duration

	// LiveUpdate restarts a finished search after a board edit.
	LiveUpdate bool

	// OnFinish is called when a search reaches Found or Exhausted.
	OnFinish func(found bool, stats Stats)

	// SearchOptions are passed to every leg's engine.
	SearchOptions []search.Option
}

// DefaultOptions returns 35ms pacing, live update on and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Delay:      DefaultDelay,
		LiveUpdate: true,
		OnFinish:   func(bool, Stats) {},
	}
}

// WithDelay sets the pause between scheduled steps; negative values clamp to 0.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		o.Delay = max(d, 0)
	}
}

// WithSpeed sets the delay from a speed value, see SpeedToDelay.
func WithSpeed(speed int) Option {
	return func(o *Options) {
		o.Delay = SpeedToDelay(speed)
	}
}

// WithLiveUpdate toggles automatic re-search after edits on a finished search.
func WithLiveUpdate(on bool) Option {
	return func(o *Options) {
		o.LiveUpdate = on
	}
}

// WithOnFinish registers a callback run when a search terminates.
func WithOnFinish(fn func(found bool, stats Stats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinish = fn
		}
	}
}

// WithSearchOptions forwards engine options (hooks, clock) to every leg.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) {
		o.SearchOptions = append(o.SearchOptions, opts...)
	}
}
