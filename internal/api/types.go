package api

import "github.com/okampfer/lifesim/internal/sim"

// SimulateRequest carries one ad-hoc parameter record.
type SimulateRequest struct {
	Parameters sim.Parameters `json:"parameters"`
}

// RunMetadata stamps one simulation run.
type RunMetadata struct {
	RunID       string `json:"runId"`
	StartedAt   string `json:"startedAt"`
	CompletedAt string `json:"completedAt"`
	DurationMs  int64  `json:"durationMs"`
}

// SimulateResponse is the full payload for an ad-hoc run.
type SimulateResponse struct {
	Metadata RunMetadata `json:"metadata"`
	Result   *sim.Result `json:"result"`
}

// ScenarioSummary is one row of the scenario listing.
type ScenarioSummary struct {
	ID            string  `json:"id"`
	Asset         string  `json:"asset"`
	LifespanYears float64 `json:"lifespanYears"`
	Points        int     `json:"points"`
}

// ScenarioListResponse lists the loaded scenarios.
type ScenarioListResponse struct {
	Scenarios []ScenarioSummary `json:"scenarios"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse represents the readiness check response.
type ReadyResponse struct {
	Ready           bool     `json:"ready"`
	ScenariosLoaded int      `json:"scenariosLoaded"`
	Reasons         []string `json:"reasons,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
