// Package main provides a CLI for running the A* or decomposition+DP
// planner against a scenario file and reporting the resulting path.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/pthm-cable/corridor/config"
	"github.com/pthm-cable/corridor/dpplanner"
	"github.com/pthm-cable/corridor/geometry"
	"github.com/pthm-cable/corridor/planner"
	"github.com/pthm-cable/corridor/telemetry"
	"github.com/pthm-cable/corridor/world"
)

// scenarioObstacle is the on-disk description of one obstacle: a
// rectangle (4 corner points) or a circle (center + radius).
type scenarioObstacle struct {
	Type   string       `json:"type"`
	Points [][2]float64 `json:"points,omitempty"`
	Center [2]float64   `json:"center,omitempty"`
	Radius float64      `json:"radius,omitempty"`
}

type scenario struct {
	Boundary struct {
		BottomLeft [2]float64 `json:"bottom_left"`
		TopRight   [2]float64 `json:"top_right"`
	} `json:"boundary"`
	Obstacles []scenarioObstacle `json:"obstacles"`
	Start     [2]float64         `json:"start"`
	Goal      [2]float64         `json:"goal"`
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var s scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	return &s, nil
}

func buildWorld(s *scenario, cfg *config.Config) (*world.World, error) {
	boundary := world.Boundary{
		MinX: s.Boundary.BottomLeft[0],
		MinY: s.Boundary.BottomLeft[1],
		MaxX: s.Boundary.TopRight[0],
		MaxY: s.Boundary.TopRight[1],
	}

	obstacles := make([]world.Obstacle, 0, len(s.Obstacles))
	for _, o := range s.Obstacles {
		switch o.Type {
		case "rectangle":
			if len(o.Points) != 4 {
				return nil, fmt.Errorf("rectangle obstacle requires exactly 4 points, got %d", len(o.Points))
			}
			var pts [4]geometry.Point
			for i, p := range o.Points {
				pts[i] = geometry.NewPoint(p[0], p[1])
			}
			obstacles = append(obstacles, world.NewRectangleObstacle(pts))
		case "circle":
			center := geometry.NewPoint(o.Center[0], o.Center[1])
			obstacles = append(obstacles, world.NewCircleObstacle(center, o.Radius))
		default:
			return nil, fmt.Errorf("unknown obstacle type %q", o.Type)
		}
	}

	return world.New(boundary, obstacles, cfg.Grid.ResolutionFactor, cfg.Grid.SafetyMarginFactor, cfg.Grid.FallbackExtent), nil
}

func main() {
	configPath := flag.String("config", "", "Config YAML file (empty = use defaults)")
	scenarioPath := flag.String("scenario", "", "Scenario JSON file describing boundary, obstacles, start and goal")
	mode := flag.String("mode", "astar", "Planner to use: astar or dp")
	outputDir := flag.String("output", "", "Output directory for paths.csv and perf.csv (empty = no CSV output)")
	flag.Parse()

	if *scenarioPath == "" {
		log.Fatal("--scenario is required")
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	s, err := loadScenario(*scenarioPath)
	if err != nil {
		log.Fatalf("failed to load scenario: %v", err)
	}

	w, err := buildWorld(s, cfg)
	if err != nil {
		log.Fatalf("failed to build world: %v", err)
	}

	start := geometry.NewPoint(s.Start[0], s.Start[1])
	goal := geometry.NewPoint(s.Goal[0], s.Goal[1])

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		log.Fatalf("failed to create output manager: %v", err)
	}
	defer om.Close()
	if err := om.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write effective config", "error", err)
	}

	perf := telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)

	var path, pruned []geometry.Point
	var diag planner.Diagnostic

	perf.StartCall()
	switch *mode {
	case "astar":
		perf.StartPhase(telemetry.PhaseAStarSearch)
		pl := planner.New(w, cfg)
		path, pruned, diag = pl.Plan(start, goal)
	case "dp":
		perf.StartPhase(telemetry.PhaseDecomposition)
		dp := dpplanner.New(w, cfg)
		perf.StartPhase(telemetry.PhaseDPQuery)
		path, pruned, diag = dp.Plan(start, goal)
	default:
		log.Fatalf("unknown --mode %q, want astar or dp", *mode)
	}
	perf.EndCall()

	if diag != planner.DiagNone {
		fmt.Printf("planning failed: %s\n", diag)
		os.Exit(1)
	}

	fmt.Printf("raw path: %d points, pruned path: %d points\n", len(path), len(pruned))
	for i, p := range pruned {
		fmt.Printf("  %d: (%.3f, %.3f)\n", i, p.X, p.Y)
	}

	rows := make([]telemetry.PathPoint, len(pruned))
	for i, p := range pruned {
		rows[i] = telemetry.PathPoint{X: p.X, Y: p.Y}
	}
	if err := om.WritePath(1, rows); err != nil {
		slog.Warn("failed to write path CSV", "error", err)
	}
	if err := om.WritePerf(perf.Stats(), 1); err != nil {
		slog.Warn("failed to write perf CSV", "error", err)
	}

	slog.Info("planning complete", "mode", *mode, "diagnostic", diag.String(),
		"raw_points", len(path), "pruned_points", len(pruned))
}
