// Package decomposition implements Boustrophedon cellular decomposition
// over a rasterized rectangle-obstacle map: a vertical sweep that
// tracks how the free-space connectivity of each column links to the
// previous column's, splitting and merging cell ids as corridors open
// and close.
package decomposition

import "github.com/pthm-cable/corridor/geometry"

// Cell is one x-monotone region of free space produced by the sweep
// (a single run of free rows in each of its columns). Index
// 0 in a Result's Cells is never populated — cell ids are 1-based,
// matching the sweep's "0 means obstacle" convention.
type Cell struct {
	MinX, MaxX int
	Left       []int
	Right      []int
	Ceiling    map[int]int
	Floor      map[int]int
	Center     geometry.Point
}

// Result is the full output of a decomposition run: the id grid, the
// per-cell metadata, and enough of the source geometry to convert
// between grid and world coordinates.
type Result struct {
	Grid       [][]int // Grid[y][x], 0 == obstacle, otherwise a 1-based cell id
	Width      int
	Height     int
	TotalCells int
	Cells      []*Cell // 1-based; Cells[0] is always nil

	OriginX, OriginY float64 // world coordinates of grid cell (0,0)
}

// CellAt returns the cell id at world point p. Points outside the
// rasterized grid are clamped to its nearest edge cell; the bool is
// false only when the grid is empty. A returned id of 0 means p is
// inside an obstacle (or was clamped there).
func (r *Result) CellAt(p geometry.Point) (int, bool) {
	x := int(p.X - r.OriginX)
	y := int(p.Y - r.OriginY)
	if r.Width == 0 || r.Height == 0 {
		return 0, false
	}
	if x < 0 {
		x = 0
	}
	if x > r.Width-1 {
		x = r.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y > r.Height-1 {
		y = r.Height - 1
	}
	return r.Grid[y][x], true
}

// WorldCenter returns a cell's center translated into world
// coordinates from its grid-relative Center.
func (r *Result) WorldCenter(cellID int) geometry.Point {
	c := r.Cells[cellID].Center
	return geometry.NewPoint(c.X+r.OriginX, c.Y+r.OriginY)
}
