package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if cfg.Grid.ResolutionFactor != 0.02 {
		t.Errorf("ResolutionFactor = %v, want 0.02", cfg.Grid.ResolutionFactor)
	}
	if cfg.Grid.SafetyMarginFactor != 0.5 {
		t.Errorf("SafetyMarginFactor = %v, want 0.5", cfg.Grid.SafetyMarginFactor)
	}
	if cfg.Grid.FallbackExtent != 100.0 {
		t.Errorf("FallbackExtent = %v, want 100.0", cfg.Grid.FallbackExtent)
	}
	if cfg.Derived.SafetyMarginOfResolution != cfg.Grid.SafetyMarginFactor {
		t.Errorf("Derived.SafetyMarginOfResolution = %v, want %v", cfg.Derived.SafetyMarginOfResolution, cfg.Grid.SafetyMarginFactor)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() { global = saved }()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Cfg() to panic before Init()")
		}
	}()
	Cfg()
}

func TestInitThenCfg(t *testing.T) {
	saved := global
	defer func() { global = saved }()

	if err := Init(""); err != nil {
		t.Fatalf("Init(\"\") returned error: %v", err)
	}
	if Cfg() == nil {
		t.Error("Cfg() returned nil after Init")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	path := t.TempDir() + "/config.yaml"
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load(written file): %v", err)
	}
	if reloaded.Grid.ResolutionFactor != cfg.Grid.ResolutionFactor {
		t.Errorf("round-tripped ResolutionFactor = %v, want %v", reloaded.Grid.ResolutionFactor, cfg.Grid.ResolutionFactor)
	}
}
