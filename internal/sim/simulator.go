package sim

// Simulate runs the full lifecycle comparison for one parameter record.
// The call is referentially transparent: the cost and risk generators
// each get a fresh Sequence seeded from DefaultSeed, so identical
// parameters always produce bit-identical results, and concurrent calls
// share no state.
func Simulate(p Parameters) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	cost := CostCurves(p, NewSequence(DefaultSeed))
	risk := RiskCurves(p, NewSequence(DefaultSeed))

	totals := make(map[Strategy]float64, len(Strategies))
	last := cost[len(cost)-1]
	for _, s := range Strategies {
		totals[s] = last.Values[s]
	}

	averages := make(map[Strategy]float64, len(Strategies))
	for _, s := range Strategies {
		sum := 0.0
		for _, pt := range risk {
			sum += pt.Values[s]
		}
		averages[s] = sum / float64(len(risk))
	}

	return &Result{
		Cost:            cost,
		Risk:            risk,
		TotalCost:       totals,
		AverageRisk:     averages,
		ThresholdDollar: p.Threshold * p.ReplacementCost,
	}, nil
}
