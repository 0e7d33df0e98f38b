package hexgrid

import "fmt"

// Grid is a hexagonal region of radius Radius centred on Origin together
// with its wall set. A cell is walkable iff it lies inside the region and is
// not a wall. Grid methods never allocate walls outside the region.
type Grid struct {
	Radius int
	Walls  Set
}

// NewGrid constructs an empty region of the given radius.
// Returns ErrInvalidRadius if radius < 1.
func NewGrid(radius int) (*Grid, error) {
	if radius < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRadius, radius)
	}

	return &Grid{Radius: radius, Walls: NewSet()}, nil
}

// Contains reports whether h lies within Radius of the origin.
// Complexity: O(1).
func (g *Grid) Contains(h Hex) bool {
	return h.Length() <= g.Radius
}

// IsWall reports whether h is a blocked cell.
func (g *Grid) IsWall(h Hex) bool {
	return g.Walls.Has(h)
}

// IsWalkable reports whether h is inside the region and not a wall.
func (g *Grid) IsWalkable(h Hex) bool {
	return g.Contains(h) && !g.Walls.Has(h)
}

// SetWall marks or clears h as a wall. Cells outside the region are ignored.
func (g *Grid) SetWall(h Hex, wall bool) {
	if !g.Contains(h) {
		return
	}
	if wall {
		g.Walls.Put(h)
		return
	}
	g.Walls.Remove(h)
}

// Neighbors returns the in-region neighbours of h in Directions order,
// regardless of wall status.
func (g *Grid) Neighbors(h Hex) []Hex {
	out := make([]Hex, 0, 6)
	for _, d := range Directions {
		n := h.Add(d)
		if g.Contains(n) {
			out = append(out, n)
		}
	}

	return out
}

// WalkableNeighbors returns the walkable neighbours of h in Directions order.
func (g *Grid) WalkableNeighbors(h Hex) []Hex {
	out := make([]Hex, 0, 6)
	for _, d := range Directions {
		n := h.Add(d)
		if g.IsWalkable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Size returns the number of cells in the region, 1 + 3N(N+1).
func (g *Grid) Size() int {
	return 1 + 3*g.Radius*(g.Radius+1)
}

// Cells enumerates the region in canonical order: Q ascending, then R ascending.
func (g *Grid) Cells() []Hex {
	n := g.Radius
	out := make([]Hex, 0, g.Size())
	for q := -n; q <= n; q++ {
		lo, hi := max(-n, -q-n), min(n, -q+n)
		for r := lo; r <= hi; r++ {
			out = append(out, Hex{q, r})
		}
	}

	return out
}

// Fill turns every cell of the region into a wall.
func (g *Grid) Fill() {
	for _, h := range g.Cells() {
		g.Walls.Put(h)
	}
}

// ClearWalls removes every wall.
func (g *Grid) ClearWalls() {
	g.Walls = NewSet()
}

// WalkableCount returns the number of walkable cells.
func (g *Grid) WalkableCount() int {
	return g.Size() - g.Walls.Size()
}

// Clone returns a deep copy whose wall set may be mutated independently.
func (g *Grid) Clone() *Grid {
	return &Grid{Radius: g.Radius, Walls: CloneSet(g.Walls)}
}
