// Package types - Computation breakdown
package types

import "time"

// CostLine is one itemized cost with its quantity, rate and the formula that
// produced the amount. Formula strings are for audit display only; the amount
// is always the authoritative value.
type CostLine struct {
	// Label identifies the line item
	Label string `json:"label"`

	// Quantity is the count or volume the rate applies to
	Quantity float64 `json:"quantity"`

	// Rate is the effective unit rate after multipliers
	Rate float64 `json:"rate"`

	// Amount is the annual dollar amount for this line
	Amount float64 `json:"amount"`

	// Formula shows how the amount was derived
	Formula string `json:"formula"`
}

// AdjustmentLine is one dollar delta derived from a base cost and its
// combined multiplier: amount = base * (multiplier - 1)
type AdjustmentLine struct {
	// Base is the unadjusted annual cost the multiplier applies to
	Base float64 `json:"base"`

	// Multiplier is the combined multiplier for this category
	Multiplier float64 `json:"multiplier"`

	// Amount is the dollar delta (negative when multiplier < 1)
	Amount float64 `json:"amount"`

	// Formula shows how the delta was derived
	Formula string `json:"formula"`
}

// BaseBreakdown records the base TCO inputs and their sum before any
// scenario effects are applied.
type BaseBreakdown struct {
	// Input is the base cost model the scenario was computed against
	Input BaseTCOInput `json:"input"`

	// Total is the sum of all base categories
	Total float64 `json:"total"`
}

// MultiplierBreakdown records the multiplier set resolved for each scenario
// axis and their field-wise product.
type MultiplierBreakdown struct {
	// Region multipliers from the deployment region
	Region MultiplierSet `json:"region"`

	// Time multipliers from escalation and shock
	Time MultiplierSet `json:"time"`

	// Workload multipliers from intensity class and AI acceleration
	Workload MultiplierSet `json:"workload"`

	// Regulatory multipliers from the regulatory intensity
	Regulatory MultiplierSet `json:"regulatory"`

	// Combined is the field-wise product of all four axes
	Combined MultiplierSet `json:"combined"`
}

// AdjustmentBreakdown itemizes the dollar deltas the combined multipliers
// induce on the base costs.
type AdjustmentBreakdown struct {
	// Energy delta from the combined energy multiplier
	Energy AdjustmentLine `json:"energy"`

	// Labor delta from the combined labor multiplier
	Labor AdjustmentLine `json:"labor"`

	// Cooling delta on the cooling share of power distribution
	Cooling AdjustmentLine `json:"cooling"`

	// Total is the sum of all deltas
	Total float64 `json:"total"`
}

// ComplianceBreakdown itemizes the annual compliance program cost for the
// scenario's regulatory intensity.
type ComplianceBreakdown struct {
	// Intensity the profile was selected for
	Intensity RegulatoryIntensity `json:"intensity"`

	// Multiplier is the combined compliance multiplier applied to the
	// multiplier-sensitive lines
	Multiplier float64 `json:"multiplier"`

	// Audit is the external audit line
	Audit CostLine `json:"audit"`

	// Documentation is the internal documentation effort line
	Documentation CostLine `json:"documentation"`

	// Advisory is the external advisory retainer line (zero amount when the
	// profile does not include advisory)
	Advisory CostLine `json:"advisory"`

	// Certification is the certification maintenance line
	Certification CostLine `json:"certification"`

	// Training is the staff training line
	Training CostLine `json:"training"`

	// Tooling is the compliance tooling line
	Tooling CostLine `json:"tooling"`

	// Total is the sum of all lines
	Total float64 `json:"total"`
}

// SecurityBreakdown itemizes annual security operations cost.
type SecurityBreakdown struct {
	// Siem is the per-node SIEM ingestion line
	Siem CostLine `json:"siem"`

	// Iam is the per-user identity management line
	Iam CostLine `json:"iam"`

	// Encryption is the per-terabyte encryption line
	Encryption CostLine `json:"encryption"`

	// IncidentResponse is the flat incident response retainer line
	IncidentResponse CostLine `json:"incident_response"`

	// ItemizedTotal is the sum of the four lines above
	ItemizedTotal float64 `json:"itemized_total"`

	// AnnualInvestment is the discretionary security budget on top of the
	// itemized operations cost
	AnnualInvestment float64 `json:"annual_investment"`

	// TotalSpend is ItemizedTotal + AnnualInvestment; it feeds both the
	// security category total and the risk model
	TotalSpend float64 `json:"total_spend"`
}

// RiskBreakdown records every intermediate of the expected annual loss
// computation so the bounded-log model can be audited.
type RiskBreakdown struct {
	// SecurityInvestment is the total security spend fed into the model
	SecurityInvestment float64 `json:"security_investment"`

	// ReferenceInvestment is the model's log normalization constant
	ReferenceInvestment float64 `json:"reference_investment"`

	// SaturationInvestment is the spend at which the reduction saturates
	SaturationInvestment float64 `json:"saturation_investment"`

	// InvestmentRatio is ln(1+inv/ref) / ln(1+sat/ref), clamped to [0,1]
	InvestmentRatio float64 `json:"investment_ratio"`

	// MaxReduction is the scenario's cap on probability reduction
	MaxReduction float64 `json:"max_reduction"`

	// Reduction is the realized probability reduction, min(MaxReduction,
	// MaxReduction*InvestmentRatio)
	Reduction float64 `json:"reduction"`

	// BaseProbability is the annual incident probability before security
	BaseProbability float64 `json:"base_probability"`

	// AdjustedProbability is BaseProbability * (1 - Reduction)
	AdjustedProbability float64 `json:"adjusted_probability"`

	// AverageImpactCost is the expected cost of one incident
	AverageImpactCost float64 `json:"average_impact_cost"`

	// ExpectedAnnualLoss is AdjustedProbability * AverageImpactCost
	ExpectedAnnualLoss float64 `json:"expected_annual_loss"`

	// Formula shows how the loss was derived
	Formula string `json:"formula"`
}

// TotalsBreakdown is the category roll-up. GrandTotal is always the exact
// sum of the five categories.
type TotalsBreakdown struct {
	// BaseTCO is the unadjusted base total
	BaseTCO float64 `json:"base_tco"`

	// Adjustments is the multiplier-induced dollar delta total
	Adjustments float64 `json:"adjustments"`

	// Compliance is the compliance program total
	Compliance float64 `json:"compliance"`

	// Security is the total security spend
	Security float64 `json:"security"`

	// Risk is the expected annual loss
	Risk float64 `json:"risk"`

	// GrandTotal is the sum of the five categories
	GrandTotal float64 `json:"grand_total"`
}

// ComputationBreakdown is the full, self-describing result of computing one
// scenario against a base cost model. Every layer's intermediates are
// retained so any total can be traced back to its inputs.
type ComputationBreakdown struct {
	// ScenarioID identifies the scenario that was computed
	ScenarioID string `json:"scenario_id"`

	// ScenarioName is the human-readable scenario name
	ScenarioName string `json:"scenario_name"`

	// ComputedAt is when the computation ran
	ComputedAt time.Time `json:"computed_at"`

	// Base is the base cost layer
	Base BaseBreakdown `json:"base"`

	// Multipliers is the resolved multiplier layer
	Multipliers MultiplierBreakdown `json:"multipliers"`

	// Adjustments is the dollar delta layer
	Adjustments AdjustmentBreakdown `json:"adjustments"`

	// Compliance is the compliance cost layer
	Compliance ComplianceBreakdown `json:"compliance"`

	// Security is the security cost layer
	Security SecurityBreakdown `json:"security"`

	// Risk is the expected annual loss layer
	Risk RiskBreakdown `json:"risk"`

	// Totals is the category roll-up
	Totals TotalsBreakdown `json:"totals"`
}
