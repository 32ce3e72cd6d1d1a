package dpplanner

import (
	"testing"

	"github.com/pthm-cable/corridor/config"
	"github.com/pthm-cable/corridor/geometry"
	"github.com/pthm-cable/corridor/planner"
	"github.com/pthm-cable/corridor/world"
)

func testConfig() *config.Config {
	return &config.Config{
		Grid: config.GridConfig{
			ResolutionFactor:    0.02,
			FallbackExtent:      100,
			SafetyMarginFactor:  0.5,
			GoalToleranceFactor: 1.0,
		},
		Motion: config.MotionConfig{CardinalCost: 1.0, DiagonalCost: 1.4142135623730951},
		DP:     config.DPConfig{MaxIterationsFactor: 4.0},
	}
}

func TestPlanSameCellUsesDirectAStar(t *testing.T) {
	cfg := testConfig()
	b := world.Boundary{MinX: 0, MinY: 0, MaxX: 40, MaxY: 40}
	w := world.New(b, nil, cfg.Grid.ResolutionFactor, cfg.Grid.SafetyMarginFactor, cfg.Grid.FallbackExtent)
	p := New(w, cfg)

	_, pruned, diag := p.Plan(geometry.NewPoint(5, 5), geometry.NewPoint(35, 35))
	if diag != planner.DiagNone {
		t.Fatalf("diag = %v, want DiagNone", diag)
	}
	if len(pruned) < 2 {
		t.Fatalf("expected a non-trivial pruned path, got %d points", len(pruned))
	}
}

func TestPlanAcrossCellsMemoizesCenterPath(t *testing.T) {
	cfg := testConfig()
	b := world.Boundary{MinX: 0, MinY: 0, MaxX: 40, MaxY: 40}
	rect := world.NewRectangleObstacle([4]geometry.Point{
		geometry.NewPoint(18, 10), geometry.NewPoint(22, 10),
		geometry.NewPoint(22, 30), geometry.NewPoint(18, 30),
	})
	w := world.New(b, []world.Obstacle{rect}, cfg.Grid.ResolutionFactor, cfg.Grid.SafetyMarginFactor, cfg.Grid.FallbackExtent)
	p := New(w, cfg)

	if p.decomposition.TotalCells < 2 {
		t.Fatalf("expected the obstacle to split the map into multiple cells, got %d", p.decomposition.TotalCells)
	}

	start := geometry.NewPoint(5, 5)
	goal := geometry.NewPoint(35, 5)

	_, pruned1, diag1 := p.Plan(start, goal)
	if diag1 != planner.DiagNone {
		t.Fatalf("first Plan: diag = %v, want DiagNone", diag1)
	}
	if len(p.memo.entries) == 0 {
		t.Fatal("expected a center-to-center path to be memoized after crossing cells")
	}

	_, pruned2, diag2 := p.Plan(start, goal)
	if diag2 != planner.DiagNone {
		t.Fatalf("second Plan: diag = %v, want DiagNone", diag2)
	}
	if len(pruned1) != len(pruned2) {
		t.Errorf("repeated query produced a different path length: %d vs %d", len(pruned1), len(pruned2))
	}
}

func TestPlanStartInObstacle(t *testing.T) {
	cfg := testConfig()
	b := world.Boundary{MinX: 0, MinY: 0, MaxX: 40, MaxY: 40}
	rect := world.NewRectangleObstacle([4]geometry.Point{
		geometry.NewPoint(0, 0), geometry.NewPoint(10, 0),
		geometry.NewPoint(10, 10), geometry.NewPoint(0, 10),
	})
	w := world.New(b, []world.Obstacle{rect}, cfg.Grid.ResolutionFactor, cfg.Grid.SafetyMarginFactor, cfg.Grid.FallbackExtent)
	p := New(w, cfg)

	_, _, diag := p.Plan(geometry.NewPoint(5, 5), geometry.NewPoint(35, 35))
	if diag != planner.DiagStartInObstacle {
		t.Errorf("diag = %v, want DiagStartInObstacle", diag)
	}
}
