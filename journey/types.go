package journey

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewWaypoints is returned when a journey has fewer than two waypoints.
	ErrTooFewWaypoints = errors.New("journey: at least two waypoints required")

	// ErrNotActive is returned when restarting a journey that already ended.
	ErrNotActive = errors.New("journey: journey is not active")
)

// State is the journey lifecycle.
type State int

const (
	// Running means a leg is in progress.
	Running State = iota
	// Halted means the active leg was cancelled; RestartLeg resumes it.
	Halted
	// Completed means every leg found its target.
	Completed
	// Failed means some leg exhausted its frontier.
	Failed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}
