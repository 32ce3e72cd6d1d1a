package decomposition

import (
	"testing"

	"github.com/pthm-cable/corridor/geometry"
	"github.com/pthm-cable/corridor/world"
)

func TestCalculateConnectivityOpenColumn(t *testing.T) {
	column := make([]bool, 10)
	for i := range column {
		column[i] = true
	}
	connectivity, parts := calculateConnectivity(column)
	if connectivity != 1 {
		t.Fatalf("connectivity = %d, want 1", connectivity)
	}
	if len(parts) != 1 || parts[0] != (interval{0, 10}) {
		t.Errorf("parts = %v, want [{0 10}]", parts)
	}
}

func TestCalculateConnectivitySplitColumn(t *testing.T) {
	column := []bool{true, true, false, false, true, true, true}
	connectivity, parts := calculateConnectivity(column)
	if connectivity != 2 {
		t.Fatalf("connectivity = %d, want 2", connectivity)
	}
	want := []interval{{0, 2}, {4, 7}}
	for i, p := range parts {
		if p != want[i] {
			t.Errorf("parts[%d] = %v, want %v", i, p, want[i])
		}
	}
}

func TestDecomposeOpenFieldIsOneCell(t *testing.T) {
	b := world.Boundary{MinX: 0, MinY: 0, MaxX: 20, MaxY: 20}
	w := world.New(b, nil, 0.02, 0.5, 100)
	result := Decompose(w)
	if result.TotalCells != 1 {
		t.Fatalf("TotalCells = %d, want 1 for an obstacle-free boundary", result.TotalCells)
	}
}

func TestDecomposeSplitsAroundVerticalObstacle(t *testing.T) {
	b := world.Boundary{MinX: 0, MinY: 0, MaxX: 20, MaxY: 20}
	rect := world.NewRectangleObstacle([4]geometry.Point{
		geometry.NewPoint(9, 5), geometry.NewPoint(11, 5),
		geometry.NewPoint(11, 15), geometry.NewPoint(9, 15),
	})
	w := world.New(b, []world.Obstacle{rect}, 0.02, 0.5, 100)
	result := Decompose(w)
	if result.TotalCells < 3 {
		t.Fatalf("TotalCells = %d, want at least 3 (before/left/right-of-obstacle split)", result.TotalCells)
	}
}

func TestCellAtClampsOutOfRangePoints(t *testing.T) {
	b := world.Boundary{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	w := world.New(b, nil, 0.02, 0.5, 100)
	result := Decompose(w)

	id, ok := result.CellAt(geometry.NewPoint(-50, -50))
	if !ok {
		t.Fatal("CellAt should clamp rather than report out of range")
	}
	if id != result.Grid[0][0] {
		t.Errorf("clamped id = %d, want grid[0][0] = %d", id, result.Grid[0][0])
	}
}
