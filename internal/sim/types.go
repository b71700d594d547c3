package sim

import "fmt"

// Strategy identifies one of the four maintenance policies. The set is
// closed: every curve point and every summary map carries exactly these
// four entries.
type Strategy string

const (
	StrategyNoFix     Strategy = "noFix"
	StrategyFixInPlan Strategy = "fixInPlan"
	StrategyFixOnFail Strategy = "fixOnFail"
	StrategyFixOnRisk Strategy = "fixOnRisk"
)

// Strategies lists the maintenance policies in display order.
var Strategies = []Strategy{
	StrategyNoFix,
	StrategyFixInPlan,
	StrategyFixOnFail,
	StrategyFixOnRisk,
}

// Parameters is the input record for one simulation run. It is treated as
// immutable: the engine never writes to it, and every run derives its own
// schedules and curves from scratch.
type Parameters struct {
	LifespanYears    float64 `json:"lifespanYears" yaml:"lifespanYears"`
	ReplacementCost  float64 `json:"replacementCost" yaml:"replacementCost"`
	RiskAlpha        float64 `json:"riskAlpha" yaml:"riskAlpha"`
	MinLOF           float64 `json:"minLof" yaml:"minLof"`
	CycleLengthYears float64 `json:"cycleLengthYears" yaml:"cycleLengthYears"`
	Threshold        float64 `json:"threshold" yaml:"threshold"`
	Points           int     `json:"points" yaml:"points"`
}

// Validate rejects parameters the engine cannot evaluate. Everything else
// is accepted across its full mathematical domain.
func (p Parameters) Validate() error {
	if p.Points < 2 {
		return fmt.Errorf("points must be at least 2, got %d", p.Points)
	}
	if p.LifespanYears <= 0 {
		return fmt.Errorf("lifespanYears must be positive, got %g", p.LifespanYears)
	}
	if p.CycleLengthYears <= 0 {
		return fmt.Errorf("cycleLengthYears must be positive, got %g", p.CycleLengthYears)
	}
	return nil
}

// CurvePoint is one time sample. Values holds one entry per Strategy:
// cumulative dollars on cost curves, expected-loss dollars on risk curves.
type CurvePoint struct {
	Time     float64              `json:"time"`
	TimeNorm float64              `json:"timeNorm"`
	Values   map[Strategy]float64 `json:"values"`
}

// Result is the complete output of one simulation run: both curve sets
// over the full lifespan plus the per-strategy summaries.
type Result struct {
	Cost            []CurvePoint         `json:"cost"`
	Risk            []CurvePoint         `json:"risk"`
	TotalCost       map[Strategy]float64 `json:"totalCost"`
	AverageRisk     map[Strategy]float64 `json:"averageRisk"`
	ThresholdDollar float64              `json:"thresholdDollar"`
}
