package session

import (
	"context"
	"time"
)

// Scheduler paces a Session: one Step per delay tick, skipping ticks while
// paused. It is the only component that waits; Session.Step never blocks.
type Scheduler struct {
	s      *Session
	onStep func(Snapshot)
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithOnStep registers a callback that receives a snapshot after every
// scheduled step.
func WithOnStep(fn func(Snapshot)) SchedulerOption {
	return func(sc *Scheduler) {
		if fn != nil {
			sc.onStep = fn
		}
	}
}

// NewScheduler binds a scheduler to s.
func NewScheduler(s *Session, opts ...SchedulerOption) *Scheduler {
	sc := &Scheduler{s: s, onStep: func(Snapshot) {}}
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

// Run steps the session until its search finishes, it is cancelled, or ctx
// is done. The delay is re-read every tick, so SetDelay applies live.
// Returns the final session status and ctx.Err() when ctx ended the run.
func (sc *Scheduler) Run(ctx context.Context) (Status, error) {
	timer := time.NewTimer(sc.s.Delay())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return sc.s.Status(), ctx.Err()
		case <-timer.C:
		}

		st, snap, stepped := sc.s.tick()
		if stepped {
			sc.onStep(snap)
			if st.Done() {
				return sc.s.Status(), nil
			}
		} else if status := sc.s.Status(); !status.Live() {
			return status, nil
		}
		timer.Reset(sc.s.Delay())
	}
}
