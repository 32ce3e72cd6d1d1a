// Package planner implements the A* grid planner: best-first search with
// continuous-coordinate motion primitives over a world.World, and the
// line-of-sight path pruner used by both this package and dpplanner.
package planner

import "github.com/pthm-cable/corridor/geometry"

// GridIndex is the integer key a continuous point snaps to for
// open/closed-set identity: iy*xWidth + ix.
type GridIndex int64

// SearchNode is a node in the A* search tree. Coordinates are
// continuous (not snapped to the grid); ParentIndex is the GridIndex of
// the predecessor, or -1 for the root.
type SearchNode struct {
	X, Y        float64
	Cost        float64
	ParentIndex GridIndex
}

// noParent is the sentinel ParentIndex for a root node.
const noParent GridIndex = -1

// Point returns the node's continuous coordinates as a geometry.Point.
func (n *SearchNode) Point() geometry.Point {
	return geometry.NewPoint(n.X, n.Y)
}
