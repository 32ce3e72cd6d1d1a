package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for a single planning call.
const (
	PhaseDecomposition = "decomposition"
	PhaseAStarSearch   = "astar_search"
	PhaseLineOfSight   = "line_of_sight"
	PhaseDPQuery       = "dp_query"
)

// PerfSample holds timing data for a single Plan call.
type PerfSample struct {
	CallDuration time.Duration
	Phases       map[string]time.Duration
}

// PerfCollector tracks planning performance over a rolling window of
// recent Plan calls.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	callStart     time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of Plan calls to average over.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 64
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartCall begins timing a new planning call.
func (p *PerfCollector) StartCall() {
	p.callStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase within the current call.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndCall finishes timing the current call and records the sample.
func (p *PerfCollector) EndCall() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	sample := PerfSample{
		CallDuration: now.Sub(p.callStart),
		Phases:       p.currentPhases,
	}

	p.samples[p.writeIndex] = sample
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// PerfStats holds aggregated performance statistics over the window.
type PerfStats struct {
	AvgCallDuration time.Duration
	MinCallDuration time.Duration
	MaxCallDuration time.Duration

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64

	CallsPerSecond float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	if p.sampleCount == 0 {
		return PerfStats{
			PhaseAvg: make(map[string]time.Duration),
			PhasePct: make(map[string]float64),
		}
	}

	var totalCall time.Duration
	var minCall, maxCall time.Duration
	phaseSum := make(map[string]time.Duration)

	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		totalCall += s.CallDuration

		if i == 0 || s.CallDuration < minCall {
			minCall = s.CallDuration
		}
		if s.CallDuration > maxCall {
			maxCall = s.CallDuration
		}

		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}

	avgCall := totalCall / time.Duration(p.sampleCount)

	phaseAvg := make(map[string]time.Duration)
	phasePct := make(map[string]float64)
	for phase, sum := range phaseSum {
		phaseAvg[phase] = sum / time.Duration(p.sampleCount)
		if avgCall > 0 {
			phasePct[phase] = float64(phaseAvg[phase]) / float64(avgCall) * 100
		}
	}

	var callsPerSec float64
	if avgCall > 0 {
		callsPerSec = float64(time.Second) / float64(avgCall)
	}

	return PerfStats{
		AvgCallDuration: avgCall,
		MinCallDuration: minCall,
		MaxCallDuration: maxCall,
		PhaseAvg:        phaseAvg,
		PhasePct:        phasePct,
		CallsPerSecond:  callsPerSec,
	}
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_call_us", s.AvgCallDuration.Microseconds()),
		slog.Int64("min_call_us", s.MinCallDuration.Microseconds()),
		slog.Int64("max_call_us", s.MaxCallDuration.Microseconds()),
		slog.Float64("calls_per_sec", s.CallsPerSecond),
	}

	for _, phase := range []string{PhaseDecomposition, PhaseAStarSearch, PhaseLineOfSight, PhaseDPQuery} {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}

	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	WindowEnd        int32   `csv:"window_end"`
	AvgCallUS        int64   `csv:"avg_call_us"`
	MinCallUS        int64   `csv:"min_call_us"`
	MaxCallUS        int64   `csv:"max_call_us"`
	CallsPerSec      float64 `csv:"calls_per_sec"`
	DecompositionPct float64 `csv:"decomposition_pct"`
	AStarSearchPct   float64 `csv:"astar_search_pct"`
	LineOfSightPct   float64 `csv:"line_of_sight_pct"`
	DPQueryPct       float64 `csv:"dp_query_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:        windowEnd,
		AvgCallUS:        s.AvgCallDuration.Microseconds(),
		MinCallUS:        s.MinCallDuration.Microseconds(),
		MaxCallUS:        s.MaxCallDuration.Microseconds(),
		CallsPerSec:      s.CallsPerSecond,
		DecompositionPct: s.PhasePct[PhaseDecomposition],
		AStarSearchPct:   s.PhasePct[PhaseAStarSearch],
		LineOfSightPct:   s.PhasePct[PhaseLineOfSight],
		DPQueryPct:       s.PhasePct[PhaseDPQuery],
	}
}
