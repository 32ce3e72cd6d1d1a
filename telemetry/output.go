package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/corridor/config"
)

// PathPoint is a single waypoint row in a path's CSV export.
type PathPoint struct {
	PlanID int     `csv:"plan_id"`
	Seq    int     `csv:"seq"`
	X      float64 `csv:"x"`
	Y      float64 `csv:"y"`
}

// OutputManager handles structured run output: planned paths and
// performance samples as CSV, and the effective config as YAML.
type OutputManager struct {
	dir      string
	pathFile *os.File
	perfFile *os.File

	pathHeaderWritten bool
	perfHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the
// output directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	pathPath := filepath.Join(dir, "paths.csv")
	f, err := os.Create(pathPath)
	if err != nil {
		return nil, fmt.Errorf("creating paths.csv: %w", err)
	}
	om.pathFile = f

	perfPath := filepath.Join(dir, "perf.csv")
	f, err = os.Create(perfPath)
	if err != nil {
		om.pathFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WritePath appends a planned path's waypoints to paths.csv under
// planID, so multiple Plan calls in one run can share the file.
func (om *OutputManager) WritePath(planID int, path []PathPoint) error {
	if om == nil {
		return nil
	}

	for i := range path {
		path[i].PlanID = planID
		path[i].Seq = i
	}

	if !om.pathHeaderWritten {
		if err := gocsv.Marshal(path, om.pathFile); err != nil {
			return fmt.Errorf("writing paths: %w", err)
		}
		om.pathHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(path, om.pathFile); err != nil {
			return fmt.Errorf("writing paths: %w", err)
		}
	}

	return nil
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}

	records := []PerfStatsCSV{stats.ToCSV(windowEnd)}

	if !om.perfHeaderWritten {
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		om.perfHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	if om.pathFile != nil {
		if err := om.pathFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if om.perfFile != nil {
		if err := om.perfFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
