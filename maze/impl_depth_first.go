// SPDX-License-Identifier: MIT
// Package: hexmaze/maze
//
// impl_depth_first.go - randomized depth-first carving.
//
// Model:
//   • Nodes are the in-region cells with both axial components even; two
//     nodes are linked when they differ by twice a unit direction, and the
//     cell halfway between them is the bridge.
//   • The region starts fully walled. A stack-based DFS from a random node
//     picks a random unvisited linked node, clears the bridge and the node,
//     and backtracks when no option remains. Each node is opened through
//     exactly one bridge, so the nodes form a spanning tree.
//   • Endpoints: from the first open cell, the farthest reachable cell a,
//     then the farthest reachable cell from a.
//   • Fewer than two nodes (radius 1): the region is cleared and the
//     endpoints sit on opposite sides of the Q axis.

package maze

import "github.com/katalvlaran/hexmaze/hexgrid"

func isNode(h hexgrid.Hex) bool {
	return h.Q%2 == 0 && h.R%2 == 0
}

// carveDepthFirst mutates g and returns [start, goal].
func carveDepthFirst(g *hexgrid.Grid, cfg mazeConfig) []hexgrid.Hex {
	g.Fill()

	var nodes []hexgrid.Hex
	for _, h := range g.Cells() {
		if isNode(h) {
			nodes = append(nodes, h)
		}
	}
	if len(nodes) < 2 {
		g.ClearWalls()
		return []hexgrid.Hex{{Q: -g.Radius, R: 0}, {Q: g.Radius, R: 0}}
	}

	first := nodes[cfg.rng.Intn(len(nodes))]
	visited := hexgrid.NewSet(first)
	g.SetWall(first, false)
	stack := []hexgrid.Hex{first}

	options := make([]hexgrid.Hex, 0, 6)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		options = options[:0]
		for _, d := range hexgrid.Directions {
			next := cur.Add(d.Scale(2))
			if g.Contains(next) && !visited.Has(next) {
				options = append(options, next)
			}
		}
		if len(options) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := options[cfg.rng.Intn(len(options))]
		bridge := hexgrid.Hex{Q: (cur.Q + next.Q) / 2, R: (cur.R + next.R) / 2}
		g.SetWall(bridge, false)
		g.SetWall(next, false)
		visited.Put(next)
		stack = append(stack, next)
	}

	seed, _ := g.FirstOpen()
	a := g.FarthestReachable(seed)
	b := g.FarthestReachable(a)

	return []hexgrid.Hex{a, b}
}
