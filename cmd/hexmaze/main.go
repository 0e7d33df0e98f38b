package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/hexmaze/config"
	"github.com/katalvlaran/hexmaze/maze"
	"github.com/katalvlaran/hexmaze/search"
	"github.com/katalvlaran/hexmaze/session"
)

func main() {
	var (
		configPath = flag.String("config", os.Getenv("CONFIG_PATH"), "YAML config file (defaults when empty)")
		strategy   = flag.String("strategy", "", "override search.strategy (astar, dijkstra, greedy, bfs, dfs)")
		policy     = flag.String("policy", "", "override maze.policy (depth_first, seed_scatter, traced)")
		open       = flag.Bool("open", false, "skip maze generation and search an open board")
		timeout    = flag.Duration("timeout", time.Minute, "abort the search after this long")
		verbose    = flag.Bool("v", false, "log every step")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		log.Printf("Configuration loaded from %s", *configPath)
	}
	if *strategy != "" {
		s, err := search.ParseStrategy(*strategy)
		if err != nil {
			log.Fatalf("Bad -strategy: %v", err)
		}
		cfg.Search.Strategy = s
	}
	if *policy != "" {
		p, err := maze.ParsePolicy(*policy)
		if err != nil {
			log.Fatalf("Bad -policy: %v", err)
		}
		cfg.Maze.Policy = p
	}

	s, err := session.New(cfg.Grid.Radius,
		session.WithDelay(cfg.Delay()),
		session.WithOnFinish(func(found bool, st session.Stats) {
			log.Printf("Search finished: found=%t explored=%d in %v", found, st.LastExplored, st.LastDuration)
		}),
	)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	if !*open {
		if err := s.GenerateMaze(cfg.Maze.Policy, cfg.MazeOptions()...); err != nil {
			log.Fatalf("Failed to generate maze: %v", err)
		}
		log.Printf("Generated %s maze, radius %d, %d walls", cfg.Maze.Policy, cfg.Grid.Radius, s.Grid().Walls.Size())
	}
	if len(cfg.Search.Waypoints) > 0 {
		if err := s.SetWaypoints(cfg.Search.Waypoints); err != nil {
			log.Fatalf("Failed to set waypoints: %v", err)
		}
	}
	if err := s.StartSearch(cfg.Search.Strategy); err != nil {
		log.Fatalf("Failed to start search: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	var opts []session.SchedulerOption
	if *verbose {
		opts = append(opts, session.WithOnStep(func(snap session.Snapshot) {
			log.Printf("step %d leg %d/%d at %v, frontier %d", snap.Steps, snap.Leg, snap.Legs, snap.Current, len(snap.Frontier))
		}))
	}
	log.Printf("Running %s every %v", cfg.Search.Strategy, s.Delay())
	status, err := session.NewScheduler(s, opts...).Run(ctx)
	if err != nil {
		log.Printf("Search interrupted: %v", err)
		s.CancelSearch()
	}

	snap := s.Snapshot()
	fmt.Printf("status:   %s\n", status)
	fmt.Printf("steps:    %d\n", snap.Steps)
	fmt.Printf("explored: %d\n", len(snap.Explored))
	fmt.Printf("path:     %d cells %v\n", len(snap.Path), snap.Path)
	if status != session.Found {
		os.Exit(1)
	}
}
