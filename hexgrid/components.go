package hexgrid

import "fmt"

// Reachable returns every walkable cell connected to from, in breadth-first
// order (from first). Returns nil if from is not walkable.
// Time: O(V). Memory: O(V).
func (g *Grid) Reachable(from Hex) []Hex {
	if !g.IsWalkable(from) {
		return nil
	}
	seen := NewSet(from)
	queue := []Hex{from}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.WalkableNeighbors(queue[qi]) {
			if !seen.Has(n) {
				seen.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return queue
}

// Connected reports whether a walkable path joins a and b.
func (g *Grid) Connected(a, b Hex) bool {
	if !g.IsWalkable(a) || !g.IsWalkable(b) {
		return false
	}
	for _, h := range g.Reachable(a) {
		if h == b {
			return true
		}
	}

	return false
}

// ConnectedComponents partitions the walkable cells into maximal connected
// regions. Components appear in the canonical order of their first cell,
// and each component lists its cells in breadth-first order.
// Time: O(V). Memory: O(V).
func (g *Grid) ConnectedComponents() [][]Hex {
	seen := NewSet()
	var comps [][]Hex
	for _, h := range g.Cells() {
		if g.Walls.Has(h) || seen.Has(h) {
			continue
		}
		comp := g.Reachable(h)
		for _, c := range comp {
			seen.Put(c)
		}
		comps = append(comps, comp)
	}

	return comps
}

// FirstOpen returns the first walkable cell in canonical order.
func (g *Grid) FirstOpen() (Hex, bool) {
	for _, h := range g.Cells() {
		if !g.Walls.Has(h) {
			return h, true
		}
	}

	return Hex{}, false
}

// FarthestReachable returns the walkable cell with the greatest step count
// from `from`. Ties go to the cell discovered first. Returns from itself when
// from is isolated or not walkable.
func (g *Grid) FarthestReachable(from Hex) Hex {
	if !g.IsWalkable(from) {
		return from
	}
	depth := map[Hex]int{from: 0}
	queue := []Hex{from}
	far := from
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if depth[u] > depth[far] {
			far = u
		}
		for _, n := range g.WalkableNeighbors(u) {
			if _, ok := depth[n]; !ok {
				depth[n] = depth[u] + 1
				queue = append(queue, n)
			}
		}
	}

	return far
}

// Clamp pulls h back into the region along the straight line toward the
// origin. In-region cells are returned unchanged.
func (g *Grid) Clamp(h Hex) Hex {
	if g.Contains(h) {
		return h
	}
	line := Line(Origin, h)
	for i := len(line) - 1; i >= 0; i-- {
		if g.Contains(line[i]) {
			return line[i]
		}
	}

	return Origin
}

// NearestWalkable returns h if it is walkable, otherwise the first walkable
// cell found by a breadth-first sweep from h that ignores walls. A seed
// outside the region is clamped first.
// Returns ErrNoWalkableCell when the region is entirely walled.
func (g *Grid) NearestWalkable(h Hex) (Hex, error) {
	seed := g.Clamp(h)
	if g.IsWalkable(seed) {
		return seed, nil
	}
	seen := NewSet(seed)
	queue := []Hex{seed}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if !g.Walls.Has(u) {
			return u, nil
		}
		for _, n := range g.Neighbors(u) {
			if !seen.Has(n) {
				seen.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return Hex{}, fmt.Errorf("%w: radius %d", ErrNoWalkableCell, g.Radius)
}
