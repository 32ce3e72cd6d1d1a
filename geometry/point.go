// Package geometry provides the exact-arithmetic primitives the planning
// core is built on: point/segment orientation, segment intersection, and
// point-in-polygon containment. Every test here is exact (no epsilon
// tolerances) per spec — rounding and safety margins are the caller's
// concern (see package world), not geometry's.
package geometry

import "gonum.org/v1/gonum/spatial/r2"

// Point is a 2D coordinate in a metric frame. It is a plain alias for
// gonum's r2.Vec so callers can use gonum's vector arithmetic
// (r2.Add, r2.Sub, r2.Scale, r2.Dot) directly against planner output.
type Point = r2.Vec

// NewPoint constructs a Point from its coordinates.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns a-b as a displacement vector.
func Sub(a, b Point) Point {
	return r2.Sub(a, b)
}

// Add returns a+b.
func Add(a, b Point) Point {
	return r2.Add(a, b)
}

// Scale returns f*p.
func Scale(f float64, p Point) Point {
	return r2.Scale(f, p)
}
