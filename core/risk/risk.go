// Package risk implements the bounded logarithmic expected annual loss
// model.
//
// Security spend buys down incident probability with diminishing returns:
// the reduction follows a log curve normalized so it is 0 at zero spend,
// reaches the scenario's cap exactly at the saturation spend, and never
// exceeds the cap beyond it. Loss can be reduced but never eliminated.
package risk

import (
	"fmt"
	"math"

	"datacenter-tco/core/types"
)

// Config holds the model calibration constants. They shape the curve, not
// the cap; the cap comes from the scenario's risk parameters.
type Config struct {
	// ReferenceInvestment normalizes the log curve
	ReferenceInvestment float64 `json:"reference_investment"`

	// SaturationInvestment is the spend at which the reduction reaches the
	// scenario's cap
	SaturationInvestment float64 `json:"saturation_investment"`
}

// DefaultConfig returns the standard calibration.
func DefaultConfig() Config {
	return Config{
		ReferenceInvestment:  50_000,
		SaturationInvestment: 500_000,
	}
}

// InvestmentRatio returns ln(1+inv/ref) / ln(1+sat/ref) clamped to [0, 1].
// Degenerate calibrations (non-positive reference or saturation) yield 0.
func InvestmentRatio(investment float64, cfg Config) float64 {
	if investment <= 0 || cfg.ReferenceInvestment <= 0 || cfg.SaturationInvestment <= 0 {
		return 0
	}
	denominator := math.Log(1 + cfg.SaturationInvestment/cfg.ReferenceInvestment)
	if denominator <= 0 {
		return 0
	}
	ratio := math.Log(1+investment/cfg.ReferenceInvestment) / denominator
	if ratio > 1 {
		return 1
	}
	return ratio
}

// Calculate computes the expected annual loss for the scenario's risk
// parameters given the total security spend.
func Calculate(params types.RiskParameters, investment float64, cfg Config) types.RiskBreakdown {
	ratio := InvestmentRatio(investment, cfg)
	reduction := math.Min(params.MaxSecurityReduction, ratio*params.MaxSecurityReduction)
	adjusted := params.BaseIncidentProbability * (1 - reduction)
	loss := adjusted * params.AverageImpactCost

	return types.RiskBreakdown{
		SecurityInvestment:   investment,
		ReferenceInvestment:  cfg.ReferenceInvestment,
		SaturationInvestment: cfg.SaturationInvestment,
		InvestmentRatio:      ratio,
		MaxReduction:         params.MaxSecurityReduction,
		Reduction:            reduction,
		BaseProbability:      params.BaseIncidentProbability,
		AdjustedProbability:  adjusted,
		AverageImpactCost:    params.AverageImpactCost,
		ExpectedAnnualLoss:   loss,
		Formula: fmt.Sprintf("%.4f * (1 - %.4f) * $%.2f",
			params.BaseIncidentProbability, reduction, params.AverageImpactCost),
	}
}
