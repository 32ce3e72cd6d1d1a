package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollectorBasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartCall()
		pc.StartPhase(PhaseAStarSearch)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseLineOfSight)
		time.Sleep(200 * time.Microsecond)
		pc.EndCall()
	}

	stats := pc.Stats()

	if stats.AvgCallDuration <= 0 {
		t.Error("expected positive average call duration")
	}

	if len(stats.PhaseAvg) == 0 {
		t.Error("expected phase averages to be populated")
	}

	if _, ok := stats.PhaseAvg[PhaseAStarSearch]; !ok {
		t.Error("expected astar_search phase to be tracked")
	}

	if _, ok := stats.PhaseAvg[PhaseLineOfSight]; !ok {
		t.Error("expected line_of_sight phase to be tracked")
	}
}

func TestPerfCollectorRollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartCall()
		pc.StartPhase(PhaseAStarSearch)
		pc.EndCall()
	}

	stats := pc.Stats()

	if stats.AvgCallDuration <= 0 {
		t.Error("expected positive average call duration after window filled")
	}

	if stats.CallsPerSecond <= 0 {
		t.Error("expected positive calls per second")
	}
}

func TestPerfCollectorPhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartCall()
		pc.StartPhase("fast")
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase("slow")
		time.Sleep(100 * time.Microsecond)
		pc.EndCall()
	}

	stats := pc.Stats()

	fastPct := stats.PhasePct["fast"]
	slowPct := stats.PhasePct["slow"]

	if slowPct <= fastPct {
		t.Errorf("expected slow phase (%v%%) > fast phase (%v%%)", slowPct, fastPct)
	}
}

func TestPerfCollectorEmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	if stats.AvgCallDuration != 0 {
		t.Error("expected zero avg call duration for empty collector")
	}

	if stats.PhaseAvg == nil {
		t.Error("expected non-nil PhaseAvg map")
	}

	if stats.PhasePct == nil {
		t.Error("expected non-nil PhasePct map")
	}
}
