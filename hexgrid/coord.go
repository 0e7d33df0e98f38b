package hexgrid

import "math"

var sqrt3 = math.Sqrt(3)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Distance returns the number of hex steps between a and b.
// It is a metric: symmetric, zero iff a == b, and obeys the triangle inequality.
// Complexity: O(1).
func Distance(a, b Hex) int {
	dq, dr := a.Q-b.Q, a.R-b.R
	return (abs(dq) + abs(dq+dr) + abs(dr)) / 2
}

// RoundCube rounds a fractional axial coordinate to the nearest cell.
// Each cube component is rounded independently; the component with the
// largest rounding error is then recomputed from the other two so that
// Q+R+S == 0 exactly.
func RoundCube(q, r float64) Cube {
	s := -q - r
	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)

	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	default:
		rs = -rq - rr
	}

	return Cube{Q: int(rq), R: int(rr), S: int(rs)}
}

// Round is RoundCube reduced to an axial Hex.
func Round(q, r float64) Hex {
	return RoundCube(q, r).Hex()
}

// PixelToHex maps a point in pointy-top pixel space (origin at the centre
// of Origin, y growing downward) to the cell containing it.
// size is the hexagon circumradius in pixels and must be positive.
func PixelToHex(x, y, size float64) Hex {
	q := (sqrt3/3*x - y/3) / size
	r := (2.0 / 3 * y) / size

	return Round(q, r)
}

// HexToPixel returns the pointy-top pixel centre of h.
func HexToPixel(h Hex, size float64) (x, y float64) {
	x = size * (sqrt3*float64(h.Q) + sqrt3/2*float64(h.R))
	y = size * (1.5 * float64(h.R))

	return x, y
}

// Lerp interpolates between a and b in fractional axial space and rounds.
func Lerp(a, b Hex, t float64) Hex {
	q := float64(a.Q) + (float64(b.Q)-float64(a.Q))*t
	r := float64(a.R) + (float64(b.R)-float64(a.R))*t

	return Round(q, r)
}

// Line returns the cells on the straight hex line from a to b, both included.
// Consecutive cells are adjacent.
// Complexity: O(Distance(a, b)).
func Line(a, b Hex) []Hex {
	n := Distance(a, b)
	if n == 0 {
		return []Hex{a}
	}
	// Nudge off exact cell edges so ties resolve consistently.
	const eps = 1e-6
	aq, ar := float64(a.Q)+eps, float64(a.R)+eps
	bq, br := float64(b.Q)+eps, float64(b.R)+eps

	out := make([]Hex, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		out = append(out, Round(aq+(bq-aq)*t, ar+(br-ar)*t))
	}

	return out
}

// Ring returns the 6k cells at exactly distance k from center, or just
// center when k == 0.
func Ring(center Hex, k int) []Hex {
	if k <= 0 {
		return []Hex{center}
	}
	out := make([]Hex, 0, 6*k)
	h := center.Add(Directions[4].Scale(k))
	for d := 0; d < 6; d++ {
		for i := 0; i < k; i++ {
			out = append(out, h)
			h = h.Neighbor(d)
		}
	}

	return out
}
