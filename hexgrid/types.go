package hexgrid

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Hex is an axial hexagon coordinate. Two Hex values are equal iff Q and R match.
type Hex struct {
	Q, R int
}

// Origin is the centre of every region.
var Origin = Hex{}

// S returns the implicit third cube component, -Q-R.
func (h Hex) S() int { return -h.Q - h.R }

// Add returns h + o component-wise.
func (h Hex) Add(o Hex) Hex { return Hex{h.Q + o.Q, h.R + o.R} }

// Sub returns h - o component-wise.
func (h Hex) Sub(o Hex) Hex { return Hex{h.Q - o.Q, h.R - o.R} }

// Scale multiplies both components by k.
func (h Hex) Scale(k int) Hex { return Hex{h.Q * k, h.R * k} }

// Neighbor returns the adjacent cell in direction d (0..5, see Directions).
func (h Hex) Neighbor(d int) Hex { return h.Add(Directions[d%6]) }

// Length is the hex distance from the origin.
func (h Hex) Length() int { return Distance(Origin, h) }

// String formats the coordinate as "q,r".
func (h Hex) String() string { return fmt.Sprintf("%d,%d", h.Q, h.R) }

// Directions lists the six axial neighbour offsets. The order is fixed:
// every traversal in this module enumerates neighbours in this order.
var Directions = [6]Hex{
	{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1},
}

// Cube is a rounded cube coordinate; Q+R+S == 0 always holds for values
// returned by RoundCube.
type Cube struct {
	Q, R, S int
}

// Hex drops the redundant S component.
func (c Cube) Hex() Hex { return Hex{c.Q, c.R} }

// Set is an unordered collection of cells.
type Set = mapset.Set[Hex]

// NewSet returns a Set holding the given cells.
func NewSet(cells ...Hex) Set {
	s := mapset.New[Hex]()
	for _, h := range cells {
		s.Put(h)
	}

	return s
}

// CloneSet returns an independent copy of s.
func CloneSet(s Set) Set {
	out := mapset.New[Hex]()
	s.Each(func(h Hex) { out.Put(h) })

	return out
}

// Sorted returns the members of s in canonical order (Q, then R ascending).
func Sorted(s Set) []Hex {
	out := make([]Hex, 0, s.Size())
	s.Each(func(h Hex) { out = append(out, h) })
	SortHexes(out)

	return out
}

// SortHexes orders cells by Q, then R, in place.
func SortHexes(cells []Hex) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Q != cells[j].Q {
			return cells[i].Q < cells[j].Q
		}
		return cells[i].R < cells[j].R
	})
}
