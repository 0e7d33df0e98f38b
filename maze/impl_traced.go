// SPDX-License-Identifier: MIT
// Package: hexmaze/maze
//
// impl_traced.go - shape-traced corridors with grown side branches.
//
// Model:
//   • The region starts fully walled. A shape is sampled as a polyline of
//     cells (parametric curve projected with PixelToHex, or lerped axial
//     nodes for Infinity); consecutive samples are joined with hex lines,
//     keeping in-region cells once each in draw order.
//   • The corridor is cleared; start is its first cell and goal its last.
//   • Branches grow from wall cells that touch exactly one open cell and at
//     most one corridor cell. Candidates are shuffled and occasionally
//     swapped to the top so branches wander; opening a cell never closes a
//     loop, so the open cells stay a tree hanging off the corridor.
//   • Curves are designed for radius 25 and scaled linearly to the region.
//   • A corridor of two cells or fewer falls back to DepthFirst.

package maze

import (
	"math"

	"github.com/katalvlaran/hexmaze/hexgrid"
)

const (
	traceReferenceRadius = 25.0
	branchSwapChance     = 0.2
	minCorridorCells     = 3
)

// shapeSamples returns the ordered cells sampled along shape.
func shapeSamples(shape Shape, radius int) []hexgrid.Hex {
	scale := float64(radius) / traceReferenceRadius
	project := func(x, y float64) hexgrid.Hex {
		return hexgrid.PixelToHex(x*scale, y*scale, 1)
	}

	var out []hexgrid.Hex
	switch shape {
	case Heart:
		const n = 80
		for i := 6; i <= n-6; i++ {
			t := float64(i) / n * 2 * math.Pi
			x := 16 * math.Pow(math.Sin(t), 3)
			y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
			out = append(out, project(x*1.8, y*-1.8+4))
		}
	case Star:
		const n = 10
		for i := 0; i <= n; i++ {
			angle := -math.Pi/2 + float64(i)/n*2*math.Pi
			reach := 18.0
			if i%2 == 0 {
				reach = 30
			}
			x, y := reach*math.Cos(angle), reach*math.Sin(angle)
			// Split the top point so start and goal do not coincide.
			if i == 0 {
				x += 3.5
			} else if i == n {
				x -= 3.5
			}
			out = append(out, project(x, y))
		}
	case Infinity:
		s := int(math.Floor(float64(radius) * 0.40))
		h := int(math.Floor(float64(radius) * 0.25))
		nodes := []hexgrid.Hex{
			{Q: -2 * s, R: -h},
			{Q: -s, R: -2 * h},
			{Q: -1, R: -1},
			{Q: s, R: -2 * h},
			{Q: 2 * s, R: -h},
			{Q: 2 * s, R: h},
			{Q: s, R: 2 * h},
			{Q: 1, R: 1},
			{Q: -s, R: 2 * h},
			{Q: -2 * s, R: h},
		}
		for i, a := range nodes {
			b := nodes[(i+1)%len(nodes)]
			steps := max(1, hexgrid.Distance(a, b))
			end := steps
			// Leave a gap before closing the loop so the walk has to go all the way round.
			if i == len(nodes)-1 {
				end = max(1, steps-4)
			}
			for j := 0; j < end; j++ {
				out = append(out, hexgrid.Lerp(a, b, float64(j)/float64(steps)))
			}
		}
	case Spiral:
		const (
			loops = 5.0
			n     = 800
		)
		for i := 0; i <= n; i++ {
			t := float64(i) / n * 2 * math.Pi * loops
			r := 2 + 5.5*(t/(2*math.Pi))
			out = append(out, project(r*math.Cos(t), r*math.Sin(t)))
		}
	}

	return out
}

// corridor joins samples with hex lines, keeping in-region cells once.
func corridor(g *hexgrid.Grid, samples []hexgrid.Hex) []hexgrid.Hex {
	seen := hexgrid.NewSet()
	var out []hexgrid.Hex
	for i := 0; i+1 < len(samples); i++ {
		for _, h := range hexgrid.Line(samples[i], samples[i+1]) {
			if !g.Contains(h) || seen.Has(h) {
				continue
			}
			seen.Put(h)
			out = append(out, h)
		}
	}

	return out
}

// traceShape mutates g and returns [start, goal].
func traceShape(g *hexgrid.Grid, cfg mazeConfig) []hexgrid.Hex {
	g.Fill()
	path := corridor(g, shapeSamples(cfg.shape, g.Radius))
	if len(path) < minCorridorCells {
		return carveDepthFirst(g, cfg)
	}

	open := hexgrid.NewSet(path...)
	traced := hexgrid.NewSet(path...)
	for _, h := range path {
		g.SetWall(h, false)
	}

	touches := func(h hexgrid.Hex) (openN, tracedN int) {
		for _, n := range g.Neighbors(h) {
			if open.Has(n) {
				openN++
				if traced.Has(n) {
					tracedN++
				}
			}
		}
		return openN, tracedN
	}

	var eligible []hexgrid.Hex
	for _, h := range g.Cells() {
		if !g.IsWall(h) {
			continue
		}
		if n, _ := touches(h); n == 1 {
			eligible = append(eligible, h)
		}
	}
	cfg.rng.Shuffle(len(eligible), func(i, j int) { eligible[i], eligible[j] = eligible[j], eligible[i] })

	for len(eligible) > 0 {
		last := len(eligible) - 1
		if cfg.rng.Float64() < branchSwapChance {
			k := cfg.rng.Intn(len(eligible))
			eligible[last], eligible[k] = eligible[k], eligible[last]
		}
		cur := eligible[last]
		eligible = eligible[:last]
		if !g.IsWall(cur) {
			continue
		}
		if n, t := touches(cur); n != 1 || t > 1 {
			continue
		}
		g.SetWall(cur, false)
		open.Put(cur)
		for _, n := range g.Neighbors(cur) {
			if !g.IsWall(n) {
				continue
			}
			if on, tn := touches(n); on == 1 && tn <= 1 {
				eligible = append(eligible, n)
			}
		}
	}

	return []hexgrid.Hex{path[0], path[len(path)-1]}
}
