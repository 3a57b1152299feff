// Package api - Thin, deterministic HTTP layer
// The API is only responsible for input ingestion, engine orchestration
// and output serialization. It never computes costs itself.
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"datacenter-tco/core/compare"
	"datacenter-tco/core/engine"
	"datacenter-tco/core/scenario"
	"datacenter-tco/core/sensitivity"
	"datacenter-tco/internal/errors"
)

// Server is the API server
type Server struct {
	engine  *engine.Engine
	mux     *http.ServeMux
	version string
	logger  *zap.Logger
}

// NewServer creates an API server around an engine
func NewServer(e *engine.Engine, version string, logger *zap.Logger) *Server {
	s := &Server{
		engine:  e,
		mux:     http.NewServeMux(),
		version: version,
		logger:  logger,
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /compute", s.instrument("compute", s.handleCompute))
	s.mux.HandleFunc("POST /compute/batch", s.instrument("compute_batch", s.handleComputeBatch))
	s.mux.HandleFunc("POST /sensitivity", s.instrument("sensitivity", s.handleSensitivity))
	s.mux.HandleFunc("POST /compare", s.instrument("compare", s.handleCompare))

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
	s.mux.Handle("GET /metrics", promhttp.Handler())
}

// statusRecorder captures the status code a handler writes
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument wraps a handler with request metrics
func (s *Server) instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(recorder, r)
		recordRequest(endpoint, recorder.status, time.Since(start).Seconds())
	}
}

// handleCompute handles POST /compute
func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	if err := scenario.Validate(req.Scenario); err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	breakdown := s.engine.Compute(req.Scenario, req.Base, req.Context)
	recordComputations("compute", 1)

	s.logger.Info("computed scenario",
		zap.String("scenario_id", breakdown.ScenarioID),
		zap.Float64("grand_total", breakdown.Totals.GrandTotal),
	)

	s.writeJSON(w, ComputeResponse{
		Breakdown: breakdown,
		Metadata:  s.metadata(req, start),
	}, http.StatusOK)
}

// handleComputeBatch handles POST /compute/batch
func (s *Server) handleComputeBatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req BatchComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	if len(req.Scenarios) == 0 {
		s.writeError(w, "VALIDATION_ERROR", "scenarios must not be empty", http.StatusBadRequest)
		return
	}
	for i, params := range req.Scenarios {
		if err := scenario.Validate(params); err != nil {
			s.writeError(w, "VALIDATION_ERROR", fmt.Sprintf("scenarios[%d]: %s", i, err), http.StatusBadRequest)
			return
		}
	}

	breakdowns, err := s.engine.ComputeBatch(r.Context(), req.Scenarios, req.Base, req.Context)
	if err != nil {
		s.writeError(w, "ENGINE_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}
	recordComputations("compute_batch", len(breakdowns))

	s.logger.Info("computed scenario batch",
		zap.Int("scenarios", len(breakdowns)),
	)

	s.writeJSON(w, BatchComputeResponse{
		Breakdowns: breakdowns,
		Metadata:   s.metadata(req, start),
	}, http.StatusOK)
}

// handleSensitivity handles POST /sensitivity
func (s *Server) handleSensitivity(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req SensitivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	if err := scenario.Validate(req.Scenario); err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	results, err := s.runSensitivity(req)
	if err != nil {
		if errors.IsType(err, errors.TypeInput) {
			s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		} else {
			s.writeError(w, "ENGINE_ERROR", err.Error(), http.StatusInternalServerError)
		}
		return
	}
	recordComputations("sensitivity", 3*len(results))

	s.logger.Info("analyzed sensitivity",
		zap.String("scenario_id", req.Scenario.ID),
		zap.Int("sweeps", len(results)),
	)

	s.writeJSON(w, SensitivityResponse{
		Results:  results,
		Metadata: s.metadata(req, start),
	}, http.StatusOK)
}

// runSensitivity dispatches between a single-parameter sweep and the full
// sweep over every supported parameter
func (s *Server) runSensitivity(req SensitivityRequest) ([]*sensitivity.Result, error) {
	if req.Parameter == "" {
		return sensitivity.AnalyzeAll(s.engine, req.Scenario, req.Base, req.Context, req.Fraction)
	}

	parameter, err := sensitivity.ParseParameter(req.Parameter)
	if err != nil {
		return nil, err
	}
	result, err := sensitivity.Analyze(s.engine, req.Scenario, req.Base, req.Context, parameter, req.Fraction)
	if err != nil {
		return nil, err
	}
	return []*sensitivity.Result{result}, nil
}

// handleCompare handles POST /compare
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	if err := scenario.Validate(req.ScenarioA); err != nil {
		s.writeError(w, "VALIDATION_ERROR", "scenario_a: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := scenario.Validate(req.ScenarioB); err != nil {
		s.writeError(w, "VALIDATION_ERROR", "scenario_b: "+err.Error(), http.StatusBadRequest)
		return
	}

	breakdownA := s.engine.Compute(req.ScenarioA, req.Base, req.Context)
	breakdownB := s.engine.Compute(req.ScenarioB, req.Base, req.Context)
	comparison := compare.Compare(breakdownA, breakdownB, req.ScenarioA, req.ScenarioB)
	recordComputations("compare", 2)

	s.logger.Info("compared scenarios",
		zap.String("scenario_a", req.ScenarioA.ID),
		zap.String("scenario_b", req.ScenarioB.ID),
		zap.Float64("grand_total_delta", comparison.Deltas.GrandTotal),
	)

	s.writeJSON(w, CompareResponse{
		Comparison: comparison,
		BreakdownA: breakdownA,
		BreakdownB: breakdownB,
		Metadata:   s.metadata(req, start),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "datacenter-tco",
	}, http.StatusOK)
}

// metadata stamps a response with the request digest, build version and
// handler timing
func (s *Server) metadata(req interface{}, start time.Time) ResponseMetadata {
	return ResponseMetadata{
		InputHash:     computeInputHash(req),
		EngineVersion: s.version,
		DurationMs:    time.Since(start).Milliseconds(),
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// computeInputHash digests the request so identical inputs are recognizable
// across responses
func computeInputHash(req interface{}) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
