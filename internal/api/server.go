package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/okampfer/lifesim/internal/catalog"
	"github.com/okampfer/lifesim/internal/sim"
)

// Server is the HTTP API server.
type Server struct {
	catalog *catalog.Catalog
	runs    *semaphore.Weighted
	server  *http.Server
}

// NewServer creates a new API server. maxConcurrentRuns bounds how many
// ad-hoc simulations may execute at once; each run owns its own sequence
// generators, so the bound is purely a resource limit.
func NewServer(cat *catalog.Catalog, addr string, maxConcurrentRuns int64) *Server {
	s := &Server{
		catalog: cat,
		runs:    semaphore.NewWeighted(maxConcurrentRuns),
	}

	mux := http.NewServeMux()

	// Health endpoints
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)

	// Scenario endpoints
	mux.HandleFunc("/v1/scenarios", s.handleScenarioList)
	mux.HandleFunc("/v1/scenarios/", s.handleScenario)

	// Ad-hoc simulation endpoint
	mux.HandleFunc("/v1/simulate", s.handleSimulate)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      loggingMiddleware(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return s
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	log.Printf("Starting API server on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down API server...")
	return s.server.Shutdown(ctx)
}

// handleHealth handles GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// handleReady handles GET /readyz
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	loaded := len(s.catalog.Scenarios())
	ready := loaded > 0
	reasons := []string{}
	if loaded == 0 {
		reasons = append(reasons, "no scenarios loaded")
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	respondJSON(w, status, ReadyResponse{
		Ready:           ready,
		ScenariosLoaded: loaded,
		Reasons:         reasons,
	})
}

// handleScenarioList handles GET /v1/scenarios
func (s *Server) handleScenarioList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	scenarios := s.catalog.Scenarios()

	summaries := make([]ScenarioSummary, 0, len(scenarios))
	for _, sf := range scenarios {
		summaries = append(summaries, ScenarioSummary{
			ID:            sf.Scenario.Metadata.ID,
			Asset:         sf.Scenario.Metadata.Asset,
			LifespanYears: sf.Scenario.Spec.LifespanYears,
			Points:        sf.Scenario.Spec.Points,
		})
	}

	respondJSON(w, http.StatusOK, ScenarioListResponse{Scenarios: summaries})
}

// handleScenario handles GET /v1/scenarios/{id} and GET /v1/scenarios/{id}/result
func (s *Server) handleScenario(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/v1/scenarios/")
	id, wantResult := strings.CutSuffix(path, "/result")
	if id == "" || strings.Contains(id, "/") {
		respondError(w, http.StatusBadRequest, "invalid path, expected /v1/scenarios/{id}[/result]")
		return
	}

	if wantResult {
		result, err := s.catalog.Result(id)
		if err != nil {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, result)
		return
	}

	sc, ok := s.catalog.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, fmt.Sprintf("scenario not found: %s", id))
		return
	}
	respondJSON(w, http.StatusOK, sc)
}

// handleSimulate handles POST /v1/simulate
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := s.runs.Acquire(ctx, 1); err != nil {
		respondError(w, http.StatusServiceUnavailable, "too many concurrent simulations")
		return
	}
	defer s.runs.Release(1)

	started := time.Now()
	result, err := sim.Simulate(req.Parameters)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	completed := time.Now()

	respondJSON(w, http.StatusOK, SimulateResponse{
		Metadata: RunMetadata{
			RunID:       uuid.New().String(),
			StartedAt:   started.UTC().Format(time.RFC3339Nano),
			CompletedAt: completed.UTC().Format(time.RFC3339Nano),
			DurationMs:  completed.Sub(started).Milliseconds(),
		},
		Result: result,
	})
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
