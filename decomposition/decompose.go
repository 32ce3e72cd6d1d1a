package decomposition

import (
	"github.com/pthm-cable/corridor/geometry"
	"github.com/pthm-cable/corridor/world"
)

// interval is a half-open [Start, End) run of free rows within a
// column.
type interval struct {
	Start, End int
}

// Decompose rasterizes w's rectangle obstacles into an H x W
// occupancy grid (one cell per unit of world distance) and runs the
// Boustrophedon sweep over it. Cell centers in the Result stay in grid
// coordinates; Result.WorldCenter translates them into w's coordinate
// space using the stored origin.
//
// Only rectangle obstacles participate in the rasterization; circles
// never reach the occupancy grid and are invisible to the sweep.
func Decompose(w *world.World) *Result {
	width := int(w.Boundary.Width())
	if width <= 0 {
		width = 1
	}
	height := int(w.Boundary.Height())
	if height <= 0 {
		height = 1
	}

	free := rasterize(w, width, height)

	decomposed := make([][]int, height)
	for y := range decomposed {
		decomposed[y] = make([]int, width)
	}

	var lastConnectivity int
	var lastParts []interval
	var lastCells []int
	totalCells := 0

	for x := 0; x < width; x++ {
		column := make([]bool, height)
		for y := 0; y < height; y++ {
			column[y] = free[y][x]
		}
		connectivity, parts := calculateConnectivity(column)

		var currentCells []int
		switch {
		case lastConnectivity == 0:
			currentCells = make([]int, connectivity)
			for i := range currentCells {
				totalCells++
				currentCells[i] = totalCells
			}
		case connectivity == 0:
			currentCells = nil
		default:
			adjacency := adjacencyMatrix(lastParts, parts)
			currentCells = make([]int, connectivity)

			for i := range lastParts {
				adjCount, onlyJ := rowAdjacency(adjacency, i)
				switch {
				case adjCount == 1:
					currentCells[onlyJ] = lastCells[i]
				case adjCount > 1:
					for j := range parts {
						if adjacency[i][j] {
							totalCells++
							currentCells[j] = totalCells
						}
					}
				}
			}

			for j := range parts {
				adjCount := columnAdjacency(adjacency, j)
				if adjCount > 1 || adjCount == 0 {
					totalCells++
					currentCells[j] = totalCells
				}
			}
		}

		for i, part := range parts {
			id := currentCells[i]
			for y := part.Start; y < part.End; y++ {
				decomposed[y][x] = id
			}
		}

		lastConnectivity = connectivity
		lastParts = parts
		lastCells = currentCells
	}

	cells := createCells(decomposed, totalCells, width, height)

	return &Result{
		Grid:       decomposed,
		Width:      width,
		Height:     height,
		TotalCells: totalCells,
		Cells:      cells,
		OriginX:    w.Boundary.MinX,
		OriginY:    w.Boundary.MinY,
	}
}

// rasterize marks free[y][x] true wherever world point (originX+x+0.5,
// originY+y+0.5) is not inside any rectangle obstacle.
func rasterize(w *world.World, width, height int) [][]bool {
	free := make([][]bool, height)
	for y := range free {
		free[y] = make([]bool, width)
		for x := range free[y] {
			p := geometry.NewPoint(w.Boundary.MinX+float64(x)+0.5, w.Boundary.MinY+float64(y)+0.5)
			free[y][x] = true
			for _, obs := range w.Obstacles {
				if obs.Kind != world.Rectangle {
					continue
				}
				if geometry.PointInPolygon(p, obs.Points[:]) {
					free[y][x] = false
					break
				}
			}
		}
	}
	return free
}

// calculateConnectivity scans a column top-to-bottom and returns the
// number of contiguous free runs, plus their [start, end) bounds.
func calculateConnectivity(column []bool) (int, []interval) {
	connectivity := 0
	var parts []interval
	start := -1
	for i, free := range column {
		switch {
		case !free && start != -1:
			connectivity++
			parts = append(parts, interval{start, i})
			start = -1
		case free && start == -1:
			start = i
		}
	}
	if start != -1 {
		connectivity++
		parts = append(parts, interval{start, len(column)})
	}
	return connectivity, parts
}

// adjacencyMatrix reports which left-column intervals overlap which
// right-column intervals in row range.
func adjacencyMatrix(left, right []interval) [][]bool {
	m := make([][]bool, len(left))
	for i := range m {
		m[i] = make([]bool, len(right))
	}
	for i, l := range left {
		for j, r := range right {
			lo := max(l.Start, r.Start)
			hi := min(l.End, r.End)
			if hi-lo > 0 {
				m[i][j] = true
			}
		}
	}
	return m
}

func rowAdjacency(m [][]bool, i int) (count int, onlyJ int) {
	for j, v := range m[i] {
		if v {
			count++
			onlyJ = j
		}
	}
	return count, onlyJ
}

func columnAdjacency(m [][]bool, j int) int {
	count := 0
	for i := range m {
		if m[i][j] {
			count++
		}
	}
	return count
}

// createCells scans the finished id grid once per cell id, deriving
// each cell's bounding columns, left/right boundary rows, per-column
// ceiling/floor, and center (centroid fallback for cells too thin to
// have a populated center column).
func createCells(decomposed [][]int, totalCells, width, height int) []*Cell {
	cells := make([]*Cell, totalCells+1)
	for id := 1; id <= totalCells; id++ {
		cell := &Cell{Ceiling: make(map[int]int), Floor: make(map[int]int)}
		minX, maxX := width, -1
		var xs, ys []int

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if decomposed[y][x] != id {
					continue
				}
				xs = append(xs, x)
				ys = append(ys, y)
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
			}
		}
		if len(xs) == 0 {
			continue
		}
		cell.MinX, cell.MaxX = minX, maxX

		for i := range xs {
			x, y := xs[i], ys[i]
			if x == cell.MinX {
				cell.Left = append(cell.Left, y)
			}
			if x == cell.MaxX {
				cell.Right = append(cell.Right, y)
			}
			if cur, ok := cell.Ceiling[x]; !ok || y > cur {
				cell.Ceiling[x] = y
			}
			if cur, ok := cell.Floor[x]; !ok || y < cur {
				cell.Floor[x] = y
			}
		}

		xCenter := (cell.MinX + cell.MaxX) / 2
		if ceil, ok := cell.Ceiling[xCenter]; ok {
			if floor, ok2 := cell.Floor[xCenter]; ok2 {
				cell.Center = geometry.NewPoint(float64(xCenter), float64((ceil+floor)/2))
				cells[id] = cell
				continue
			}
		}
		cell.Center = geometry.NewPoint(mean(xs), mean(ys))
		cells[id] = cell
	}
	return cells
}

func mean(vs []int) float64 {
	sum := 0
	for _, v := range vs {
		sum += v
	}
	return float64(sum) / float64(len(vs))
}
