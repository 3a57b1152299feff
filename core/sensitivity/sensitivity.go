// Package sensitivity perturbs one scenario input and reruns the full
// pipeline to show how the grand total responds.
//
// A sweep produces three breakdowns: the input reduced by the perturbation
// fraction, the unmodified base case, and the input increased by the same
// fraction. Perturbing the security investment deliberately moves only the
// risk layer and the investment itself; the itemized security controls are
// priced from scale, not from budget, and stay fixed.
package sensitivity

import (
	"datacenter-tco/core/engine"
	"datacenter-tco/core/types"
	"datacenter-tco/internal/errors"
)

// Parameter selects which input the analyzer perturbs.
type Parameter string

const (
	// ParameterEnergy perturbs the base energy cost
	ParameterEnergy Parameter = "energy"

	// ParameterLabor perturbs the base labor cost
	ParameterLabor Parameter = "labor"

	// ParameterSecurity perturbs the scenario's annual security investment
	ParameterSecurity Parameter = "security"
)

// DefaultFraction is the perturbation used when the caller passes zero.
const DefaultFraction = 0.20

// Parameters lists the supported perturbation targets.
func Parameters() []Parameter {
	return []Parameter{ParameterEnergy, ParameterLabor, ParameterSecurity}
}

// ParseParameter converts a user-supplied name into a Parameter.
func ParseParameter(name string) (Parameter, error) {
	switch Parameter(name) {
	case ParameterEnergy, ParameterLabor, ParameterSecurity:
		return Parameter(name), nil
	default:
		return "", errors.Inputf("unknown sensitivity parameter: %q (choose energy, labor or security)", name)
	}
}

// Result carries the three breakdowns of one sweep.
type Result struct {
	// Parameter that was perturbed
	Parameter Parameter `json:"parameter"`

	// Fraction the input was moved by in each direction
	Fraction float64 `json:"fraction"`

	// Low is the breakdown with the input reduced by the fraction
	Low *types.ComputationBreakdown `json:"low"`

	// Base is the unperturbed breakdown
	Base *types.ComputationBreakdown `json:"base"`

	// High is the breakdown with the input increased by the fraction
	High *types.ComputationBreakdown `json:"high"`
}

// Spread is the grand-total distance between the high and low branches.
func (r *Result) Spread() float64 {
	return r.High.Totals.GrandTotal - r.Low.Totals.GrandTotal
}

// Analyze runs one sweep. A zero fraction selects DefaultFraction; a
// negative fraction is rejected.
func Analyze(e *engine.Engine, scenario types.ScenarioParameters, base types.BaseTCOInput, ctx types.ComputationContext, parameter Parameter, fraction float64) (*Result, error) {
	if fraction < 0 {
		return nil, errors.Inputf("perturbation fraction must not be negative: %v", fraction)
	}
	if fraction == 0 {
		fraction = DefaultFraction
	}

	lowScenario, highScenario := scenario, scenario
	lowBase, highBase := base, base

	switch parameter {
	case ParameterEnergy:
		lowBase.Energy = base.Energy * (1 - fraction)
		highBase.Energy = base.Energy * (1 + fraction)
	case ParameterLabor:
		lowBase.Labor = base.Labor * (1 - fraction)
		highBase.Labor = base.Labor * (1 + fraction)
	case ParameterSecurity:
		lowScenario.Security.AnnualInvestment = scenario.Security.AnnualInvestment * (1 - fraction)
		highScenario.Security.AnnualInvestment = scenario.Security.AnnualInvestment * (1 + fraction)
	default:
		return nil, errors.Inputf("unknown sensitivity parameter: %q", parameter)
	}

	return &Result{
		Parameter: parameter,
		Fraction:  fraction,
		Low:       e.Compute(lowScenario, lowBase, ctx),
		Base:      e.Compute(scenario, base, ctx),
		High:      e.Compute(highScenario, highBase, ctx),
	}, nil
}

// AnalyzeAll sweeps every supported parameter with the same fraction,
// returned in the order of Parameters().
func AnalyzeAll(e *engine.Engine, scenario types.ScenarioParameters, base types.BaseTCOInput, ctx types.ComputationContext, fraction float64) ([]*Result, error) {
	results := make([]*Result, 0, len(Parameters()))
	for _, parameter := range Parameters() {
		result, err := Analyze(e, scenario, base, ctx, parameter, fraction)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
