// Package engine provides the API-primary scenario computation pipeline.
// CLI and HTTP surfaces are thin wrappers around this engine.
//
// The engine owns no state across calls: every computation takes the
// scenario, base costs and deployment context by value and returns a fresh
// breakdown. Callers own their inputs; the engine never mutates them and
// never touches persistence.
package engine

import (
	"time"

	"datacenter-tco/core/adjustment"
	"datacenter-tco/core/compliance"
	"datacenter-tco/core/multiplier"
	"datacenter-tco/core/risk"
	"datacenter-tco/core/security"
	"datacenter-tco/core/types"
)

// Config calibrates the computation pipeline.
type Config struct {
	// BaselineYear anchors time escalation; years at or before it do not
	// escalate
	BaselineYear int `json:"baseline_year"`

	// DocumentationHourlyRate prices compliance documentation effort
	DocumentationHourlyRate float64 `json:"documentation_hourly_rate"`

	// Risk calibrates the expected annual loss curve
	Risk risk.Config `json:"risk"`
}

// DefaultConfig returns the standard calibration.
func DefaultConfig() Config {
	return Config{
		BaselineYear:            2024,
		DocumentationHourlyRate: compliance.DefaultHourlyRate,
		Risk:                    risk.DefaultConfig(),
	}
}

// Engine computes scenario breakdowns.
type Engine struct {
	config Config
}

// NewEngine creates an engine with the given calibration.
func NewEngine(config Config) *Engine {
	return &Engine{config: config}
}

// Config returns the engine's calibration.
func (e *Engine) Config() Config {
	return e.config
}

// Compute runs the full pipeline for one scenario against a base cost model
// and deployment context. The result is a fresh object on every call, keyed
// by scenario id for caller-side caching.
func (e *Engine) Compute(scenario types.ScenarioParameters, base types.BaseTCOInput, ctx types.ComputationContext) *types.ComputationBreakdown {
	regionSet := multiplier.ResolveRegion(scenario.Region)
	timeSet := multiplier.ResolveTime(scenario.Time, e.config.BaselineYear)
	workloadSet := multiplier.ResolveWorkload(scenario.Workload)
	regulatorySet := multiplier.ResolveRegulatory(scenario.Regulatory)
	combined := multiplier.Combine(regionSet, timeSet, workloadSet, regulatorySet)

	// The regulatory axis moves only the compliance factor, so feeding the
	// four-axis combined set to the adjustment layer applies exactly the
	// region * time * workload product to energy, labor and cooling.
	adjustments := adjustment.Apply(base, combined)

	complianceCosts := compliance.Calculate(
		scenario.Regulatory,
		combined.Compliance,
		e.config.DocumentationHourlyRate,
		scenario.Security.UserCount,
	)

	securityCosts := security.Calculate(scenario.Security, ctx)

	riskCosts := risk.Calculate(scenario.Risk, securityCosts.TotalSpend, e.config.Risk)

	baseTotal := base.Total()
	totals := types.TotalsBreakdown{
		BaseTCO:     baseTotal,
		Adjustments: adjustments.Total,
		Compliance:  complianceCosts.Total,
		Security:    securityCosts.TotalSpend,
		Risk:        riskCosts.ExpectedAnnualLoss,
	}
	totals.GrandTotal = totals.BaseTCO + totals.Adjustments + totals.Compliance + totals.Security + totals.Risk

	return &types.ComputationBreakdown{
		ScenarioID:   scenario.ID,
		ScenarioName: scenario.Name,
		ComputedAt:   time.Now().UTC(),
		Base: types.BaseBreakdown{
			Input: base,
			Total: baseTotal,
		},
		Multipliers: types.MultiplierBreakdown{
			Region:     regionSet,
			Time:       timeSet,
			Workload:   workloadSet,
			Regulatory: regulatorySet,
			Combined:   combined,
		},
		Adjustments: adjustments,
		Compliance:  complianceCosts,
		Security:    securityCosts,
		Risk:        riskCosts,
		Totals:      totals,
	}
}
