package sim

import "math"

// failureEvent is one unplanned failure drawn for the Fix-on-Fail policy.
type failureEvent struct {
	time float64 // years since installation
	cost float64 // repair dollars
}

// failureSeverityBase feeds the event-count formula. With the current
// base of 1 the count always evaluates to max(3, 5) = 5; the formula is
// kept in full so a future severity input can drive the base.
const failureSeverityBase = 1.0

// Fixed cost fractions of the replacement cost.
const (
	noFixDriftFrac    = 0.05 // deferred-maintenance drift
	inPlanDriftFrac   = 0.02 // planned-maintenance overhead drift
	onFailDriftFrac   = 0.01 // run-to-failure overhead drift
	onRiskDriftFrac   = 0.02 // condition-monitoring overhead drift
	cycleServiceFrac  = 0.15 // one planned service
	interventionFrac  = 0.2  // one condition-triggered intervention
	replacementAtFrac = 0.9  // No-Fix forced replacement point in normalized life
)

// drawFailureSchedule draws the unplanned-failure schedule used by the
// Fix-on-Fail policy. Events are spread over the back 70% of life with a
// small uniform jitter, each costing 30-50% of replacement. Every event
// consumes exactly two draws (position offset, then repair fraction), so
// independently seeded cost and risk runs land on identical schedules.
// The schedule is sorted by construction up to the jitter width.
func drawFailureSchedule(rng *Sequence, lifespan, replacementCost float64) []failureEvent {
	n := int(math.Max(3, math.Floor(2+3*math.Pow(failureSeverityBase, 2))))
	events := make([]failureEvent, 0, n)
	for i := 1; i <= n; i++ {
		pos := 0.3 + float64(i)/float64(n)*0.7
		pos += rng.Range(-0.05, 0.05)
		pos = clamp(pos, 0.3, 1)
		frac := rng.Range(0.3, 0.5)
		events = append(events, failureEvent{
			time: pos * lifespan,
			cost: frac * replacementCost,
		})
	}
	return events
}

// interventionTimes returns the four fixed Fix-on-Risk intervention
// times, at 45/60/75/90% of life, capped at end of life.
func interventionTimes(lifespan float64) []float64 {
	times := make([]float64, 0, 4)
	for k := 1; k <= 4; k++ {
		pos := 0.3 + float64(k)*0.15
		if pos > 1 {
			pos = 1
		}
		times = append(times, pos*lifespan)
	}
	return times
}

// CostCurves produces the cumulative-cost series for all four strategies
// at p.Points evenly spaced samples. p.RiskAlpha is carried in the record
// but has no effect on the cost model. Every sample is recomputed from
// the closed-form sums over the pre-drawn schedules rather than
// accumulated incrementally; the schedules are ordered, so both
// evaluations agree exactly.
func CostCurves(p Parameters, rng *Sequence) []CurvePoint {
	failures := drawFailureSchedule(rng, p.LifespanYears, p.ReplacementCost)
	interventions := interventionTimes(p.LifespanYears)
	cycles := int(math.Floor(p.LifespanYears / p.CycleLengthYears))

	points := make([]CurvePoint, p.Points)
	for i := 0; i < p.Points; i++ {
		x := float64(i) / float64(p.Points-1)
		t := x * p.LifespanYears

		// Do nothing until the asset has to be replaced outright.
		noFix := noFixDriftFrac * p.ReplacementCost * x
		if t >= replacementAtFrac*p.LifespanYears {
			noFix += p.ReplacementCost
		}

		// One planned service at every completed maintenance cycle.
		inPlan := inPlanDriftFrac * p.ReplacementCost * x
		for m := 1; m <= cycles; m++ {
			if float64(m)*p.CycleLengthYears <= t {
				inPlan += cycleServiceFrac * p.ReplacementCost
			}
		}

		// Pay for each failure as it happens.
		onFail := onFailDriftFrac * p.ReplacementCost * x
		for _, f := range failures {
			if f.time <= t {
				onFail += f.cost
			}
		}

		// Fixed-price interventions when condition monitoring trips.
		onRisk := onRiskDriftFrac * p.ReplacementCost * x
		for _, it := range interventions {
			if it <= t {
				onRisk += interventionFrac * p.ReplacementCost
			}
		}

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

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
