package sim

import (
	"math"
	"reflect"
	"testing"
)

func testParams() Parameters {
	return Parameters{
		LifespanYears:    30,
		ReplacementCost:  1_000_000,
		RiskAlpha:        6,
		MinLOF:           0.05,
		CycleLengthYears: 5,
		Threshold:        0.4,
		Points:           500,
	}
}

func TestFailureScheduleReproducible(t *testing.T) {
	p := testParams()

	a := drawFailureSchedule(NewSequence(DefaultSeed), p.LifespanYears, p.ReplacementCost)
	b := drawFailureSchedule(NewSequence(DefaultSeed), p.LifespanYears, p.ReplacementCost)

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("schedules diverged:\n%v\n%v", a, b)
	}

	if len(a) != 5 {
		t.Fatalf("expected 5 failure events, got %d", len(a))
	}

	for i, e := range a {
		if e.time < 0.3*p.LifespanYears || e.time > p.LifespanYears {
			t.Errorf("event %d: time %v outside [%v, %v]", i, e.time, 0.3*p.LifespanYears, p.LifespanYears)
		}
		if e.cost < 0.3*p.ReplacementCost || e.cost >= 0.5*p.ReplacementCost {
			t.Errorf("event %d: cost %v outside [%v, %v)", i, e.cost, 0.3*p.ReplacementCost, 0.5*p.ReplacementCost)
		}
	}
}

func TestInterventionTimes(t *testing.T) {
	got := interventionTimes(30)
	want := []float64{13.5, 18, 22.5, 27}

	if len(got) != len(want) {
		t.Fatalf("expected %d interventions, got %d", len(want), len(got))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("intervention %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestNoFixReplacementStep(t *testing.T) {
	p := testParams()
	curve := CostCurves(p, NewSequence(DefaultSeed))

	stepAt := -1
	for i, pt := range curve {
		if pt.Time >= 0.9*p.LifespanYears {
			stepAt = i
			break
		}
	}
	if stepAt <= 0 {
		t.Fatal("no sample at or past the replacement point")
	}

	// The sample before the replacement point carries only drift.
	before := curve[stepAt-1]
	if before.Values[StrategyNoFix] > 0.05*p.ReplacementCost {
		t.Errorf("sample before replacement already includes the step: %v", before.Values[StrategyNoFix])
	}

	// The first sample past it carries drift plus the full replacement.
	at := curve[stepAt]
	drift := 0.05 * p.ReplacementCost * at.TimeNorm
	if math.Abs(at.Values[StrategyNoFix]-drift-p.ReplacementCost) > 1e-6 {
		t.Errorf("expected step of %v over drift, got total %v (drift %v)",
			p.ReplacementCost, at.Values[StrategyNoFix], drift)
	}
}

func TestPlannedCycleSteps(t *testing.T) {
	p := testParams()
	curve := CostCurves(p, NewSequence(DefaultSeed))

	// 6 completed cycles of 5 years in a 30-year life.
	terminal := curve[len(curve)-1].Values[StrategyFixInPlan]
	want := 0.02*p.ReplacementCost + 6*0.15*p.ReplacementCost
	if math.Abs(terminal-want) > 1e-6 {
		t.Errorf("expected terminal planned cost %v, got %v", want, terminal)
	}
}

func TestCostCurvesNonDecreasing(t *testing.T) {
	p := testParams()
	curve := CostCurves(p, NewSequence(DefaultSeed))

	for _, s := range Strategies {
		for i := 1; i < len(curve); i++ {
			prev := curve[i-1].Values[s]
			cur := curve[i].Values[s]
			if cur < prev {
				t.Fatalf("%s: cost decreased at sample %d: %v -> %v", s, i, prev, cur)
			}
		}
	}
}

func TestCostCurvesIgnoreRiskAlpha(t *testing.T) {
	p := testParams()
	base := CostCurves(p, NewSequence(DefaultSeed))

	p.RiskAlpha = 42
	other := CostCurves(p, NewSequence(DefaultSeed))

	if !reflect.DeepEqual(base, other) {
		t.Error("cost curves changed with riskAlpha; the cost model must not read it")
	}
}
