// Package config provides configuration loading and access for the
// planning core and its host-facing instrumentation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable the planning core and its surrounding
// tooling expose: resolution factor, safety margin factor, motion
// model, and so on, so a host can override them without touching code.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Motion    MotionConfig    `yaml:"motion"`
	DP        DPConfig        `yaml:"dp"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading.
	Derived DerivedConfig `yaml:"-"`
}

// GridConfig controls how the A* planner derives its grid from a World's
// boundary.
type GridConfig struct {
	ResolutionFactor    float64 `yaml:"resolution_factor"`     // res = ResolutionFactor * min(width, height)
	FallbackExtent      float64 `yaml:"fallback_extent"`       // used when width or height is non-positive
	SafetyMarginFactor  float64 `yaml:"safety_margin_factor"`  // safety_margin = SafetyMarginFactor * res
	GoalToleranceFactor float64 `yaml:"goal_tolerance_factor"` // goal reached when dist <= GoalToleranceFactor * res
}

// MotionConfig holds the 8-connected motion model's edge costs.
type MotionConfig struct {
	CardinalCost float64 `yaml:"cardinal_cost"`
	DiagonalCost float64 `yaml:"diagonal_cost"`
}

// DPConfig controls the memoized cellular-decomposition planner.
type DPConfig struct {
	// MaxIterationsFactor bounds a single A* call's expansions to
	// MaxIterationsFactor * x_width * y_width, guarding against
	// pathological non-termination on degenerate worlds.
	MaxIterationsFactor float64 `yaml:"max_iterations_factor"`
}

// TelemetryConfig controls the optional perf/CSV recording surface.
type TelemetryConfig struct {
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// DerivedConfig holds values computed once after loading.
type DerivedConfig struct {
	// SafetyMarginOfResolution is SafetyMarginFactor, kept here as a
	// convenience mirror so callers needing just the core planning knobs
	// don't have to reach into Grid.
	SafetyMarginOfResolution float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

// computeDerived calculates values derived from the loaded config.
func (c *Config) computeDerived() {
	c.Derived.SafetyMarginOfResolution = c.Grid.SafetyMarginFactor
}

// WriteYAML persists the effective configuration, for reproducibility:
// saving the config that produced a given run's output alongside it.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
