// Package world models the immutable planning domain the A* and
// cellular-decomposition planners search over: a rectangular boundary
// containing rectangle and circle obstacles, together with the
// resolution-derived safety margin collision queries are built on.
package world

import "github.com/pthm-cable/corridor/geometry"

// Boundary is an axis-aligned rectangle. Invariant: MinX < MaxX and
// MinY < MaxY are expected for a well-formed world; see Resolution for
// the documented fallback when that invariant is violated.
type Boundary struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the boundary's horizontal extent.
func (b Boundary) Width() float64 { return b.MaxX - b.MinX }

// Height returns the boundary's vertical extent.
func (b Boundary) Height() float64 { return b.MaxY - b.MinY }

// Contains reports whether p lies within the boundary, inclusive.
func (b Boundary) Contains(p geometry.Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// ObstacleKind distinguishes the two obstacle shapes the core
// understands.
type ObstacleKind int

const (
	// Rectangle obstacles are described by 4 ordered vertices (CW or
	// CCW); the decomposition layer additionally treats them as
	// axis-aligned via their bounding box.
	Rectangle ObstacleKind = iota
	// Circle obstacles are described by a center and radius.
	Circle
)

// Obstacle is a tagged variant: a Rectangle (Points populated) or a
// Circle (Center, Radius populated).
type Obstacle struct {
	Kind   ObstacleKind
	Points [4]geometry.Point // valid when Kind == Rectangle
	Center geometry.Point    // valid when Kind == Circle
	Radius float64           // valid when Kind == Circle
}

// NewRectangleObstacle builds a Rectangle obstacle from its 4 ordered
// vertices.
func NewRectangleObstacle(points [4]geometry.Point) Obstacle {
	return Obstacle{Kind: Rectangle, Points: points}
}

// NewCircleObstacle builds a Circle obstacle.
func NewCircleObstacle(center geometry.Point, radius float64) Obstacle {
	return Obstacle{Kind: Circle, Center: center, Radius: radius}
}

// BoundingBox returns the obstacle's axis-aligned bounding box. For a
// Circle this is the box of an inscribing square of side 2r.
func (o Obstacle) BoundingBox() Boundary {
	switch o.Kind {
	case Circle:
		return Boundary{
			MinX: o.Center.X - o.Radius, MaxX: o.Center.X + o.Radius,
			MinY: o.Center.Y - o.Radius, MaxY: o.Center.Y + o.Radius,
		}
	default:
		minX, maxX := o.Points[0].X, o.Points[0].X
		minY, maxY := o.Points[0].Y, o.Points[0].Y
		for _, p := range o.Points[1:] {
			minX = min(minX, p.X)
			maxX = max(maxX, p.X)
			minY = min(minY, p.Y)
			maxY = max(maxY, p.Y)
		}
		return Boundary{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
	}
}

// World is the immutable pairing of a Boundary and its Obstacles that a
// planning call searches over, plus the resolution-derived quantities
// (grid spacing, safety margin) every other core component consumes.
type World struct {
	Boundary  Boundary
	Obstacles []Obstacle

	// Resolution is the grid spacing, safety-margin basis, and
	// goal-termination radius: 0.02 * min(width, height), or
	// 0.02 * fallbackExtent when width or height is non-positive
	// (DegenerateWorld, per spec §7).
	Resolution float64

	// SafetyMargin is safetyMarginFactor * Resolution.
	SafetyMargin float64
}

// New builds a World, deriving Resolution and SafetyMargin from the
// boundary per the given factors. resolutionFactor, safetyMarginFactor,
// and fallbackExtent are normally sourced from config.Config so a host
// can tune them without recompiling.
func New(b Boundary, obstacles []Obstacle, resolutionFactor, safetyMarginFactor, fallbackExtent float64) *World {
	minSide := min(b.Width(), b.Height())
	if minSide <= 0 {
		minSide = fallbackExtent
	}
	res := resolutionFactor * minSide
	return &World{
		Boundary:     b,
		Obstacles:    obstacles,
		Resolution:   res,
		SafetyMargin: safetyMarginFactor * res,
	}
}
