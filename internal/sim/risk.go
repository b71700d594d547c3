package sim

import (
	"math"
	"sort"
)

// RiskCurves produces the expected-loss series (likelihood of failure
// times consequence) for all four strategies. The consequence of failure
// is the replacement cost. The failure schedule is drawn with the same
// formula and seed as the cost run, so both runs agree on failure times
// exactly; here only the times matter and they are evaluated in sorted
// order.
//
// No-Fix and Fix-in-Plan are pure functions of the sample time. Fix-on-
// Fail and Fix-on-Risk are stateful and must be folded over the samples
// in time order; their state lives in locals threaded through the loop,
// never in package variables.
func RiskCurves(p Parameters, rng *Sequence) []CurvePoint {
	events := drawFailureSchedule(rng, p.LifespanYears, p.ReplacementCost)
	failTimes := make([]float64, len(events))
	for i, e := range events {
		failTimes[i] = e.time
	}
	sort.Float64s(failTimes)

	cof := p.ReplacementCost

	// Fix-on-Fail fold state: position in the failure schedule, time of
	// the most recent repair, and the post-repair baseline likelihood.
	// Before the first failure the baseline is the floor and the ramp is
	// anchored at installation.
	lastFailure := 0.0
	idx := 0
	baseline := p.MinLOF

	// Fix-on-Risk sawtooth state.
	current := p.MinLOF * 1.5

	points := make([]CurvePoint, p.Points)
	for i := 0; i < p.Points; i++ {
		x := float64(i) / float64(p.Points-1)
		t := x * p.LifespanYears

		noFix := Likelihood(x, p.RiskAlpha, p.MinLOF) * cof

		// Planned maintenance: likelihood oscillates within each cycle,
		// dropping back near the floor after every service, with a peak
		// that drifts upward as the asset ages.
		cyclePos := math.Mod(t, p.CycleLengthYears) / p.CycleLengthYears
		wave := (1 - math.Cos(2*math.Pi*cyclePos)) / 2
		peak := p.MinLOF + (0.3-p.MinLOF)*(1+0.5*x)
		inPlan := (p.MinLOF + (peak-p.MinLOF)*wave) * cof

		// Run-to-failure: degradation ramps between failures; each
		// repair resets the baseline to double the floor, and the sample
		// that passes a failure sees that baseline doubled once more.
		justFailed := false
		for idx < len(failTimes) && failTimes[idx] <= t {
			lastFailure = failTimes[idx]
			idx++
			baseline = 2 * p.MinLOF
			justFailed = true
		}
		nextFailure := p.LifespanYears
		if idx < len(failTimes) {
			nextFailure = failTimes[idx]
		}
		var lof float64
		if t < nextFailure {
			b := baseline
			if justFailed {
				b *= 2
			}
			progress := 0.0
			if denom := nextFailure - lastFailure; denom != 0 {
				progress = (t - lastFailure) / denom
			}
			lof = b + (0.9-b)*Logistic(progress, 2*p.RiskAlpha, 0.6)
			if lof > 0.999 {
				lof = 0.999
			}
		} else {
			// Sample landed exactly on the next failure time.
			lof = 1.0
		}
		onFail := lof * cof

		// Condition-based: risk creeps up faster with age and is knocked
		// back down whenever it reaches the action threshold. Compare,
		// then reset, then record, so the recorded value never carries an
		// un-reset overflow.
		current += 0.001 * p.RiskAlpha * (1 + 2*x)
		if current >= p.Threshold {
			current = p.MinLOF * 1.5
		}
		onRisk := current * cof

		points[i] = CurvePoint{
			Time:     t,
			TimeNorm: x,
			Values: map[Strategy]float64{
				StrategyNoFix:     noFix,
				StrategyFixInPlan: inPlan,
				StrategyFixOnFail: onFail,
				StrategyFixOnRisk: onRisk,
			},
		}
	}
	return points
}
