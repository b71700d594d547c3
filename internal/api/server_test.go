package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/okampfer/lifesim/internal/catalog"
	"github.com/okampfer/lifesim/internal/sim"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()

	cat := catalog.New("../../fixtures/scenarios/valid", "../../schemas/scenario_v1.json")
	if err := cat.Load(); err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}

	return NewServer(cat, ":0", 4)
}

func TestHealthEndpoint(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	server.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status=ok, got %s", resp.Status)
	}
}

func TestReadyEndpoint(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest("GET", "/readyz", nil)
	w := httptest.NewRecorder()

	server.handleReady(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp ReadyResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Ready {
		t.Error("expected ready=true")
	}
	if resp.ScenariosLoaded != 2 {
		t.Errorf("expected 2 scenarios loaded, got %d", resp.ScenariosLoaded)
	}
}

func TestScenarioListEndpoint(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest("GET", "/v1/scenarios", nil)
	w := httptest.NewRecorder()

	server.handleScenarioList(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp ScenarioListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(resp.Scenarios))
	}
}

func TestScenarioGetEndpoint(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{name: "known scenario", path: "/v1/scenarios/substation-transformer", expectedStatus: http.StatusOK},
		{name: "known result", path: "/v1/scenarios/substation-transformer/result", expectedStatus: http.StatusOK},
		{name: "unknown scenario", path: "/v1/scenarios/nope", expectedStatus: http.StatusNotFound},
		{name: "unknown result", path: "/v1/scenarios/nope/result", expectedStatus: http.StatusNotFound},
		{name: "empty id", path: "/v1/scenarios/", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := setupTestServer(t)

			req := httptest.NewRequest("GET", tt.path, nil)
			w := httptest.NewRecorder()

			server.handleScenario(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestScenarioResultPayload(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest("GET", "/v1/scenarios/raw-water-pump/result", nil)
	w := httptest.NewRecorder()

	server.handleScenario(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var result sim.Result
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if len(result.Cost) != 300 || len(result.Risk) != 300 {
		t.Errorf("expected 300-sample curves, got %d/%d", len(result.Cost), len(result.Risk))
	}
	if len(result.TotalCost) != 4 || len(result.AverageRisk) != 4 {
		t.Errorf("expected 4 strategies in summaries, got %d/%d",
			len(result.TotalCost), len(result.AverageRisk))
	}
}

func TestSimulateEndpoint(t *testing.T) {
	server := setupTestServer(t)

	body, err := json.Marshal(SimulateRequest{
		Parameters: sim.Parameters{
			LifespanYears:    30,
			ReplacementCost:  1_000_000,
			RiskAlpha:        6,
			MinLOF:           0.05,
			CycleLengthYears: 5,
			Threshold:        0.4,
			Points:           500,
		},
	})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req := httptest.NewRequest("POST", "/v1/simulate", bytes.NewReader(body))
	w := httptest.NewRecorder()

	server.handleSimulate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp SimulateResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Metadata.RunID == "" {
		t.Error("expected a run ID")
	}
	if resp.Result == nil {
		t.Fatal("expected a result")
	}
	if len(resp.Result.Cost) != 500 {
		t.Errorf("expected 500 samples, got %d", len(resp.Result.Cost))
	}
	if resp.Result.ThresholdDollar != 400_000 {
		t.Errorf("expected threshold dollars 400000, got %v", resp.Result.ThresholdDollar)
	}
}

func TestSimulateEndpointInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "one point", body: `{"parameters":{"lifespanYears":30,"replacementCost":1000000,"riskAlpha":6,"minLof":0.05,"cycleLengthYears":5,"threshold":0.4,"points":1}}`},
		{name: "zero lifespan", body: `{"parameters":{"lifespanYears":0,"replacementCost":1000000,"riskAlpha":6,"minLof":0.05,"cycleLengthYears":5,"threshold":0.4,"points":100}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := setupTestServer(t)

			req := httptest.NewRequest("POST", "/v1/simulate", bytes.NewReader([]byte(tt.body)))
			w := httptest.NewRecorder()

			server.handleSimulate(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestSimulateEndpointDeterministic(t *testing.T) {
	server := setupTestServer(t)
	body := []byte(`{"parameters":{"lifespanYears":30,"replacementCost":1000000,"riskAlpha":6,"minLof":0.05,"cycleLengthYears":5,"threshold":0.4,"points":100}}`)

	run := func() *sim.Result {
		req := httptest.NewRequest("POST", "/v1/simulate", bytes.NewReader(body))
		w := httptest.NewRecorder()
		server.handleSimulate(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		var resp SimulateResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		return resp.Result
	}

	first := run()
	second := run()

	for _, s := range sim.Strategies {
		if first.TotalCost[s] != second.TotalCost[s] {
			t.Errorf("%s: total cost diverged across runs", s)
		}
		if first.AverageRisk[s] != second.AverageRisk[s] {
			t.Errorf("%s: average risk diverged across runs", s)
		}
	}
}
