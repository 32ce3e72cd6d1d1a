package geometry

// PointInPolygon reports whether p lies inside the polygon described by
// poly (vertices in traversal order, CW or CCW), using a rightward ray
// cast. An edge toggles inclusion when p.Y lies in (lo, hi], where lo
// and hi are the edge's lower and upper endpoint Y (strict lower bound,
// non-strict upper bound), and p.X is to the left of the edge's x-intercept at that
// height. Points exactly on the polygon boundary are accepted as
// inside.
func PointInPolygon(p Point, poly []Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	if onPolygonBoundary(p, poly) {
		return true
	}

	inside := false
	a := poly[0]
	for i := 1; i <= n; i++ {
		b := poly[i%n]

		lo, hi := a.Y, b.Y
		if lo > hi {
			lo, hi = hi, lo
		}
		// y-range strictly brackets p.Y: strict lower bound, non-strict upper.
		if p.Y > lo && p.Y <= hi && p.X <= max(a.X, b.X) {
			xIntersect := a.X
			if a.Y != b.Y {
				xIntersect = (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y) + a.X
			}
			if a.X == b.X || p.X <= xIntersect {
				inside = !inside
			}
		}
		a = b
	}
	return inside
}

// onPolygonBoundary reports whether p lies exactly on one of the
// polygon's edges.
func onPolygonBoundary(p Point, poly []Point) bool {
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		if OrientationOf(a, b, p) == Collinear && OnSegment(p, a, b) {
			return true
		}
	}
	return false
}
