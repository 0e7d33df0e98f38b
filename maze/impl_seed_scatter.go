// SPDX-License-Identifier: MIT
// Package: hexmaze/maze
//
// impl_seed_scatter.go - golden-angle phyllotaxis walls.
//
// Model:
//   • Seed n (1..seedCount) sits at polar angle n·π(3−√5) and radius
//     spreadScale·hexSize·√n in pointy-top pixel space; it is projected to a
//     cell with PixelToHex and becomes a wall when inside the region.
//   • order[cell] is the first seed index that landed on the cell, so a
//     renderer can grow the walls in sunflower order.
//   • Waypoints: centre, top, bottom-right, bottom-left and bottom tip at
//     95% of the radius. They are cleared, then every consecutive pair is
//     joined with CarveConnection.

package maze

import (
	"math"

	"github.com/katalvlaran/hexmaze/hexgrid"
)

const (
	waypointReach = 0.95
	cos30         = 0.866
)

var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// scatterSeeds mutates g and returns the waypoints and wall growth order.
func scatterSeeds(g *hexgrid.Grid, cfg mazeConfig) ([]hexgrid.Hex, map[hexgrid.Hex]int) {
	order := make(map[hexgrid.Hex]int)
	for n := 1; n <= cfg.seedCount; n++ {
		theta := float64(n) * goldenAngle
		r := cfg.spreadScale * cfg.hexSize * math.Sqrt(float64(n))
		h := hexgrid.PixelToHex(r*math.Cos(theta), r*math.Sin(theta), cfg.hexSize)
		if !g.Contains(h) {
			continue
		}
		g.Walls.Put(h)
		if _, ok := order[h]; !ok {
			order[h] = n
		}
	}

	reach := math.Floor(float64(g.Radius)*waypointReach) * cfg.hexSize
	waypoints := []hexgrid.Hex{
		hexgrid.Origin,
		hexgrid.PixelToHex(0, -reach, cfg.hexSize),
		hexgrid.PixelToHex(reach*cos30, reach*0.5, cfg.hexSize),
		hexgrid.PixelToHex(-reach*cos30, reach*0.5, cfg.hexSize),
		hexgrid.PixelToHex(0, reach, cfg.hexSize),
	}
	for i, w := range waypoints {
		w = g.Clamp(w)
		waypoints[i] = w
		g.SetWall(w, false)
		delete(order, w)
	}

	for i := 0; i+1 < len(waypoints); i++ {
		for _, c := range CarveConnection(g, waypoints[i], waypoints[i+1], cfg.wallPenalty) {
			delete(order, c)
		}
	}

	return waypoints, order
}
