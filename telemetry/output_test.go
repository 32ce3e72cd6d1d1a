package telemetry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutputManagerDisabledWhenDirEmpty(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager(\"\") returned error: %v", err)
	}
	if om != nil {
		t.Fatal("expected a nil OutputManager when dir is empty")
	}
	// nil-receiver methods must be safe no-ops.
	if err := om.WritePath(1, nil); err != nil {
		t.Errorf("WritePath on nil manager returned error: %v", err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Errorf("WritePerf on nil manager returned error: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager returned error: %v", err)
	}
}

func TestOutputManagerWritesPathsCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	defer om.Close()

	path := []PathPoint{{X: 0, Y: 0}, {X: 1, Y: 1.5}}
	if err := om.WritePath(1, path); err != nil {
		t.Fatalf("WritePath: %v", err)
	}

	secondPath := []PathPoint{{X: 5, Y: 5}}
	if err := om.WritePath(2, secondPath); err != nil {
		t.Fatalf("second WritePath: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "paths.csv"))
	if err != nil {
		t.Fatalf("reading paths.csv: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected paths.csv to contain data")
	}
}

func TestOutputManagerWritesPerfCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	defer om.Close()

	pc := NewPerfCollector(4)
	pc.StartCall()
	pc.StartPhase(PhaseAStarSearch)
	pc.EndCall()

	if err := om.WritePerf(pc.Stats(), 1); err != nil {
		t.Fatalf("WritePerf: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "perf.csv"))
	if err != nil {
		t.Fatalf("reading perf.csv: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected perf.csv to contain data")
	}
}
