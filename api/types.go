// Package api - Request and response shapes
package api

import (
	"datacenter-tco/core/compare"
	"datacenter-tco/core/sensitivity"
	"datacenter-tco/core/types"
)

// ComputeRequest asks for one scenario breakdown
type ComputeRequest struct {
	// Scenario is the what-if description
	Scenario types.ScenarioParameters `json:"scenario"`

	// Base holds the pre-priced infrastructure totals
	Base types.BaseTCOInput `json:"base_costs"`

	// Context holds the deployment scale factors
	Context types.ComputationContext `json:"context"`
}

// ComputeResponse carries the breakdown plus request metadata
type ComputeResponse struct {
	Breakdown *types.ComputationBreakdown `json:"breakdown"`
	Metadata  ResponseMetadata            `json:"metadata"`
}

// BatchComputeRequest asks for breakdowns of many scenarios against the
// same base costs and context
type BatchComputeRequest struct {
	Scenarios []types.ScenarioParameters `json:"scenarios"`
	Base      types.BaseTCOInput         `json:"base_costs"`
	Context   types.ComputationContext   `json:"context"`
}

// BatchComputeResponse carries one breakdown per scenario, in request order
type BatchComputeResponse struct {
	Breakdowns []*types.ComputationBreakdown `json:"breakdowns"`
	Metadata   ResponseMetadata              `json:"metadata"`
}

// SensitivityRequest asks for a perturbation sweep. An empty parameter
// sweeps all supported parameters; a zero fraction uses the default.
type SensitivityRequest struct {
	Scenario types.ScenarioParameters `json:"scenario"`
	Base     types.BaseTCOInput       `json:"base_costs"`
	Context  types.ComputationContext `json:"context"`

	// Parameter is the input to perturb (energy, labor, security)
	Parameter string `json:"parameter,omitempty"`

	// Fraction is the perturbation size in each direction
	Fraction float64 `json:"fraction,omitempty"`
}

// SensitivityResponse carries one sweep per requested parameter
type SensitivityResponse struct {
	Results  []*sensitivity.Result `json:"results"`
	Metadata ResponseMetadata      `json:"metadata"`
}

// CompareRequest asks for a two-scenario comparison against shared base
// costs and context
type CompareRequest struct {
	ScenarioA types.ScenarioParameters `json:"scenario_a"`
	ScenarioB types.ScenarioParameters `json:"scenario_b"`
	Base      types.BaseTCOInput       `json:"base_costs"`
	Context   types.ComputationContext `json:"context"`
}

// CompareResponse carries the comparison plus both full breakdowns
type CompareResponse struct {
	Comparison compare.Comparison          `json:"comparison"`
	BreakdownA *types.ComputationBreakdown `json:"breakdown_a"`
	BreakdownB *types.ComputationBreakdown `json:"breakdown_b"`
	Metadata   ResponseMetadata            `json:"metadata"`
}

// ResponseMetadata describes how a response was produced
type ResponseMetadata struct {
	// InputHash is a deterministic digest of the request body
	InputHash string `json:"input_hash"`

	// EngineVersion is the running build version
	EngineVersion string `json:"engine_version"`

	// DurationMs is the handler execution time
	DurationMs int64 `json:"duration_ms"`
}

// ErrorResponse is the error envelope returned on every failure
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine-readable code and the human message
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
