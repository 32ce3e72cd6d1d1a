package world

import (
	"math"

	"github.com/pthm-cable/corridor/geometry"
)

// VerifyNode reports whether p lies within the boundary and is not
// within SafetyMargin of any obstacle. Rectangles are tested against
// their bounding box expanded by the margin — a conservative
// over-approximation chosen for speed and robustness over exact
// polygon distance. Circles are tested exactly against the inflated
// radius.
func (w *World) VerifyNode(p geometry.Point) bool {
	if !w.Boundary.Contains(p) {
		return false
	}

	margin := w.SafetyMargin
	for _, obs := range w.Obstacles {
		switch obs.Kind {
		case Rectangle:
			box := obs.BoundingBox()
			if p.X >= box.MinX-margin && p.X <= box.MaxX+margin &&
				p.Y >= box.MinY-margin && p.Y <= box.MaxY+margin {
				return false
			}
		case Circle:
			r := obs.Radius + margin
			dx, dy := p.X-obs.Center.X, p.Y-obs.Center.Y
			if dx*dx+dy*dy <= r*r {
				return false
			}
		}
	}
	return true
}

// IsCollisionFree reports whether segment a->b avoids every obstacle.
//
// The degenerate case a==b reduces to "is a inside any obstacle":
// rectangles are tested WITHOUT the safety margin here, while circles
// ARE tested with the margin, matching VerifyNode. This asymmetry
// between the two obstacle kinds is intentional, not a bug.
func (w *World) IsCollisionFree(a, b geometry.Point) bool {
	isPointCheck := a == b
	margin := w.SafetyMargin

	for _, obs := range w.Obstacles {
		switch obs.Kind {
		case Rectangle:
			if isPointCheck {
				if geometry.PointInPolygon(a, obs.Points[:]) {
					return false
				}
				continue
			}
			for i := 0; i < 4; i++ {
				p2 := obs.Points[i]
				q2 := obs.Points[(i+1)%4]
				if geometry.DoIntersect(a, b, p2, q2) {
					return false
				}
			}
			if geometry.PointInPolygon(a, obs.Points[:]) && geometry.PointInPolygon(b, obs.Points[:]) {
				return false
			}

		case Circle:
			r := obs.Radius + margin

			dax, day := a.X-obs.Center.X, a.Y-obs.Center.Y
			if dax*dax+day*day <= r*r {
				return false
			}
			dbx, dby := b.X-obs.Center.X, b.Y-obs.Center.Y
			if dbx*dbx+dby*dby <= r*r {
				return false
			}

			if isPointCheck {
				continue
			}

			dx, dy := b.X-a.X, b.Y-a.Y
			fx, fy := a.X-obs.Center.X, a.Y-obs.Center.Y
			qa := dx*dx + dy*dy
			qb := 2 * (fx*dx + fy*dy)
			qc := fx*fx + fy*fy - r*r

			discriminant := qb*qb - 4*qa*qc
			if discriminant < 0 {
				continue
			}
			sq := math.Sqrt(discriminant)
			t1, t2 := -1.0, -1.0
			if qa != 0 {
				t1 = (-qb - sq) / (2 * qa)
				t2 = (-qb + sq) / (2 * qa)
			}
			if (t1 >= 0 && t1 <= 1) || (t2 >= 0 && t2 <= 1) {
				return false
			}
		}
	}
	return true
}
