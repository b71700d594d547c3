package sim

import "math"

// lofMidpoint is the inflection point of the aging curve: failure
// likelihood accelerates fastest at 70% of normalized lifespan.
const lofMidpoint = 0.7

// Logistic evaluates the sigmoid 1/(1+e^(-alpha*(x-midpoint))). It is the
// shared growth primitive: the aging model centers it at lofMidpoint, the
// post-repair degradation ramp at 0.6, and within-cycle shapes at 0.5.
func Logistic(x, alpha, midpoint float64) float64 {
	return 1 / (1 + math.Exp(-alpha*(x-midpoint)))
}

// Likelihood maps normalized age to a likelihood of failure in [floor, 1).
// The curve starts just above floor, inflects at lofMidpoint, and
// approaches 1 as age grows beyond the lifespan. alpha controls the
// steepness of the rise.
func Likelihood(ageNorm, alpha, floor float64) float64 {
	return floor + (1-floor)*Logistic(ageNorm, alpha, lofMidpoint)
}
