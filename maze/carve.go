// SPDX-License-Identifier: MIT
// Package: hexmaze/maze
//
// carve.go - connectivity guarantee shared by every policy.
//
// CarveConnection runs an A* over the whole region that treats walls as
// passable but expensive (entering a wall costs wallPenalty, a free cell 1),
// then clears every wall on the route. The penalty keeps carved corridors
// hugging existing open space, which reads as organic rather than straight.

package maze

import (
	"fmt"

	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/pqueue"
)

// CarveConnection clears the walls on the cheapest wall-penalised route
// from a to b and returns the cleared cells in route order (b first).
// If no route exists the direct hex line is cleared instead.
// Endpoints outside the region yield nil.
func CarveConnection(g *hexgrid.Grid, a, b hexgrid.Hex, wallPenalty int) []hexgrid.Hex {
	if !g.Contains(a) || !g.Contains(b) {
		return nil
	}
	if wallPenalty < 1 {
		wallPenalty = 1
	}

	cost := map[hexgrid.Hex]int{a: 0}
	prev := make(map[hexgrid.Hex]hexgrid.Hex)
	closed := hexgrid.NewSet()
	pq := pqueue.New[hexgrid.Hex]()
	pq.Insert(a, 0)

	found := false
	for !pq.IsEmpty() {
		cur, _, _ := pq.ExtractMin()
		if cur == b {
			found = true
			break
		}
		if closed.Has(cur) {
			continue
		}
		closed.Put(cur)
		for _, n := range g.Neighbors(cur) {
			step := 1
			if g.IsWall(n) {
				step = wallPenalty
			}
			nc := cost[cur] + step
			if old, ok := cost[n]; !ok || nc < old {
				cost[n] = nc
				prev[n] = cur
				pq.Insert(n, nc+hexgrid.Distance(n, b))
			}
		}
	}

	var route []hexgrid.Hex
	if found {
		for cur := b; ; {
			route = append(route, cur)
			p, ok := prev[cur]
			if !ok {
				break
			}
			cur = p
		}
	} else {
		route = hexgrid.Line(a, b)
	}

	var cleared []hexgrid.Hex
	for _, h := range route {
		if g.IsWall(h) {
			g.SetWall(h, false)
			cleared = append(cleared, h)
		}
	}

	return cleared
}

// EnsureConnected carves between every consecutive pair of waypoints that
// no walkable path joins yet. It returns every cleared cell.
func EnsureConnected(g *hexgrid.Grid, waypoints []hexgrid.Hex, wallPenalty int) []hexgrid.Hex {
	var cleared []hexgrid.Hex
	for i := 0; i+1 < len(waypoints); i++ {
		a, b := waypoints[i], waypoints[i+1]
		if g.Connected(a, b) {
			continue
		}
		cleared = append(cleared, CarveConnection(g, a, b, wallPenalty)...)
	}

	return cleared
}

// Normalize snaps every point to its nearest walkable cell (see
// hexgrid.Grid.NearestWalkable). The input slice is not modified.
func Normalize(g *hexgrid.Grid, points ...hexgrid.Hex) ([]hexgrid.Hex, error) {
	out := make([]hexgrid.Hex, len(points))
	for i, p := range points {
		h, err := g.NearestWalkable(p)
		if err != nil {
			return nil, fmt.Errorf("Normalize(%v): %w", p, err)
		}
		out[i] = h
	}

	return out, nil
}
