// Package geom provides the rectangle math and containment predicates used
// by the quadtree for bounds checks, quadrant subdivision and overlap tests.
//
// The predicates are deliberately asymmetric:
//
//   - Point containment is half-open ([min, max) on both axes) so that two
//     adjacent, touching rectangles claim any point exactly once.
//   - Rectangle overlap is strict on all four sides; a zero-area contact at
//     an edge does not count.
//   - Circle overlap is inclusive of tangency (distance exactly r counts).
//
// These rules determine which leaf (or leaves) a boundary-straddling shape
// is assigned to and must not be "fixed" for symmetry.
package geom

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Y grows downwards, matching the screen-space convention of the callers.
type Rect struct {
	X, Y, W, H float64
}

// ContainsPoint reports whether the point (x, y) lies within r.
// The test is half-open: the top/left edges are inclusive, the
// bottom/right edges are exclusive.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

// Overlaps reports whether r and o overlap with nonzero area.
// Rectangles that only touch at an edge or corner do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// IntersectsCircle reports whether the circle centered at (cx, cy) with
// radius rad intersects r. The center is clamped into r's span to find the
// closest point of the rectangle; the circle intersects iff the squared
// distance from the center to that point is at most rad².
// Tangency (distance exactly rad) counts as an intersection.
func (r Rect) IntersectsCircle(cx, cy, rad float64) bool {
	nx := clamp(cx, r.X, r.X+r.W)
	ny := clamp(cy, r.Y, r.Y+r.H)
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy <= rad*rad
}

// Quadrants returns the four equal, non-overlapping quadrants of r in
// top-left, top-right, bottom-left, bottom-right order. Together with the
// half-open point rule they partition r: any point of r belongs to exactly
// one quadrant.
func (r Rect) Quadrants() [4]Rect {
	hw := r.W / 2
	hh := r.H / 2
	return [4]Rect{
		{X: r.X, Y: r.Y, W: hw, H: hh},
		{X: r.X + hw, Y: r.Y, W: hw, H: hh},
		{X: r.X, Y: r.Y + hh, W: hw, H: hh},
		{X: r.X + hw, Y: r.Y + hh, W: hw, H: hh},
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
