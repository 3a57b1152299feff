// Package compare provides category-level diffing of two computed
// scenarios.
//
// A comparison is directional: deltas are B minus A, and the percentage
// change is expressed against A's grand total. A zero grand total on the A
// side makes the percentage undefined; the comparison says so explicitly
// instead of letting NaN or Inf leak into output.
package compare

import (
	"fmt"

	"datacenter-tco/core/types"
)

// CategoryDeltas carries the B minus A difference per category.
type CategoryDeltas struct {
	// BaseTCO delta
	BaseTCO float64 `json:"base_tco"`

	// Adjustments delta
	Adjustments float64 `json:"adjustments"`

	// Compliance delta
	Compliance float64 `json:"compliance"`

	// Security delta
	Security float64 `json:"security"`

	// Risk delta
	Risk float64 `json:"risk"`

	// GrandTotal delta
	GrandTotal float64 `json:"grand_total"`
}

// Comparison is the complete diff between two computed scenarios.
type Comparison struct {
	// ScenarioA identifies the reference side
	ScenarioA string `json:"scenario_a"`

	// ScenarioB identifies the compared side
	ScenarioB string `json:"scenario_b"`

	// Deltas are the per-category differences, B minus A
	Deltas CategoryDeltas `json:"deltas"`

	// PercentageChange is the grand-total delta as a percentage of A's
	// grand total; meaningful only when PercentageDefined is true
	PercentageChange float64 `json:"percentage_change"`

	// PercentageDefined is false when A's grand total is zero and the
	// delta is not, leaving no base to express a percentage against
	PercentageDefined bool `json:"percentage_defined"`

	// ParameterDifferences lists the scenario inputs that differ, in
	// human-readable "field: a -> b" form
	ParameterDifferences []string `json:"parameter_differences"`
}

// Compare diffs two breakdowns and their source scenarios.
func Compare(breakdownA, breakdownB *types.ComputationBreakdown, scenarioA, scenarioB types.ScenarioParameters) Comparison {
	deltas := CategoryDeltas{
		BaseTCO:     breakdownB.Totals.BaseTCO - breakdownA.Totals.BaseTCO,
		Adjustments: breakdownB.Totals.Adjustments - breakdownA.Totals.Adjustments,
		Compliance:  breakdownB.Totals.Compliance - breakdownA.Totals.Compliance,
		Security:    breakdownB.Totals.Security - breakdownA.Totals.Security,
		Risk:        breakdownB.Totals.Risk - breakdownA.Totals.Risk,
		GrandTotal:  breakdownB.Totals.GrandTotal - breakdownA.Totals.GrandTotal,
	}

	percentage := 0.0
	defined := true
	switch {
	case deltas.GrandTotal == 0:
		// No change is 0% regardless of the base.
	case breakdownA.Totals.GrandTotal == 0:
		defined = false
	default:
		percentage = deltas.GrandTotal / breakdownA.Totals.GrandTotal * 100
	}

	return Comparison{
		ScenarioA:            scenarioName(breakdownA, scenarioA),
		ScenarioB:            scenarioName(breakdownB, scenarioB),
		Deltas:               deltas,
		PercentageChange:     percentage,
		PercentageDefined:    defined,
		ParameterDifferences: parameterDifferences(scenarioA, scenarioB),
	}
}

func scenarioName(breakdown *types.ComputationBreakdown, scenario types.ScenarioParameters) string {
	if scenario.Name != "" {
		return scenario.Name
	}
	return breakdown.ScenarioName
}

// parameterDifferences compares a fixed set of scalar inputs by strict
// equality. Fields outside this set do not appear even when they differ.
func parameterDifferences(a, b types.ScenarioParameters) []string {
	differences := []string{}

	if a.Region != b.Region {
		differences = append(differences, fmt.Sprintf("region: %s -> %s", a.Region, b.Region))
	}
	if a.Time.Year != b.Time.Year {
		differences = append(differences, fmt.Sprintf("year: %d -> %d", a.Time.Year, b.Time.Year))
	}
	if a.Workload.Class != b.Workload.Class {
		differences = append(differences, fmt.Sprintf("workload class: %s -> %s", a.Workload.Class, b.Workload.Class))
	}
	if a.Workload.AIAccelerated != b.Workload.AIAccelerated {
		differences = append(differences, fmt.Sprintf("ai accelerated: %t -> %t", a.Workload.AIAccelerated, b.Workload.AIAccelerated))
	}
	if a.Regulatory != b.Regulatory {
		differences = append(differences, fmt.Sprintf("regulatory intensity: %s -> %s", a.Regulatory, b.Regulatory))
	}
	if a.Security.AnnualInvestment != b.Security.AnnualInvestment {
		differences = append(differences, fmt.Sprintf("security investment: $%.2f -> $%.2f", a.Security.AnnualInvestment, b.Security.AnnualInvestment))
	}

	return differences
}
