package session_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/search"
	"github.com/katalvlaran/hexmaze/session"
)

// ExampleSession steps a BFS by hand across an open radius-2 board.
func ExampleSession() {
	s, _ := session.New(2)
	_ = s.StartSearch(search.BFS)
	for s.Step() == search.StatusContinuing {
	}

	snap := s.Snapshot()
	fmt.Println(snap.Status, snap.Path)
	fmt.Println(snap.Classify(hexgrid.Origin), snap.Classify(hexgrid.Hex{Q: 3}))
	// Output:
	// found [-1,0 0,0 1,0]
	// path outside
}

// ExampleScheduler paces a search with no delay around a wall.
func ExampleScheduler() {
	s, _ := session.New(2, session.WithDelay(0))
	_ = s.SetWall(hexgrid.Origin, true)
	_ = s.StartSearch(search.AStar)

	status, err := session.NewScheduler(s).Run(context.Background())
	fmt.Println(status, err, len(s.Snapshot().Path), s.Stats().Finds)
	// Output:
	// found <nil> 4 1
}

func ExampleSpeedToDelay() {
	fmt.Println(session.SpeedToDelay(1), session.SpeedToDelay(34), session.SpeedToDelay(50))
	// Output:
	// 200ms 35ms 0s
}
