// Package types defines the scenario data model shared by every layer.
// Scenario and input objects are plain value types: the engine receives
// them by value, treats them as read-only, and returns freshly allocated
// results.
package types

import "time"

// Region identifies a deployment region
type Region string

const (
	RegionUS   Region = "US"
	RegionEU   Region = "EU"
	RegionAPAC Region = "APAC"
)

// String returns the string representation
func (r Region) String() string {
	return string(r)
}

// WorkloadClass is the utilization class of the data center
type WorkloadClass string

const (
	WorkloadLow    WorkloadClass = "low"
	WorkloadMedium WorkloadClass = "medium"
	WorkloadHigh   WorkloadClass = "high"
)

// String returns the string representation
func (w WorkloadClass) String() string {
	return string(w)
}

// RegulatoryIntensity is the regulatory burden level
type RegulatoryIntensity string

const (
	RegulatoryLow    RegulatoryIntensity = "low"
	RegulatoryMedium RegulatoryIntensity = "medium"
	RegulatoryHigh   RegulatoryIntensity = "high"
)

// String returns the string representation
func (r RegulatoryIntensity) String() string {
	return string(r)
}

// TimeParameters describes the time horizon of a scenario
type TimeParameters struct {
	// Year is the scenario target year
	Year int `json:"year" yaml:"year" hcl:"year"`

	// EscalationRate is the annual cost escalation rate (convention: [0, 0.2])
	EscalationRate float64 `json:"escalation_rate" yaml:"escalation_rate" hcl:"escalation_rate"`

	// ShockFactor is a one-off energy price shock multiplier (convention: [1, 3])
	ShockFactor float64 `json:"shock_factor" yaml:"shock_factor" hcl:"shock_factor,optional"`

	// ShockEnabled applies the shock factor to energy costs
	ShockEnabled bool `json:"shock_enabled" yaml:"shock_enabled" hcl:"shock_enabled,optional"`
}

// WorkloadParameters describes workload intensity
type WorkloadParameters struct {
	// Class is the utilization class
	Class WorkloadClass `json:"class" yaml:"class" hcl:"class"`

	// AIAccelerated stacks the AI acceleration multipliers on top of the class
	AIAccelerated bool `json:"ai_accelerated" yaml:"ai_accelerated" hcl:"ai_accelerated,optional"`
}

// SecurityParameters holds the security spend knobs.
// AnnualInvestment is the general hardening budget; the per-unit rates price
// itemized controls. The two pools are additive and non-overlapping.
type SecurityParameters struct {
	// AnnualInvestment is the general security hardening budget (USD/year)
	AnnualInvestment float64 `json:"annual_investment" yaml:"annual_investment" hcl:"annual_investment"`

	// SiemPerNode is the SIEM licensing rate (USD/node/year)
	SiemPerNode float64 `json:"siem_per_node" yaml:"siem_per_node" hcl:"siem_per_node"`

	// IamPerUser is the identity management rate (USD/user/year)
	IamPerUser float64 `json:"iam_per_user" yaml:"iam_per_user" hcl:"iam_per_user"`

	// EncryptionPerTB is the at-rest encryption rate (USD/TB/year)
	EncryptionPerTB float64 `json:"encryption_per_tb" yaml:"encryption_per_tb" hcl:"encryption_per_tb"`

	// IncidentResponseRetainer is the fixed IR retainer (USD/year)
	IncidentResponseRetainer float64 `json:"incident_response_retainer" yaml:"incident_response_retainer" hcl:"incident_response_retainer"`

	// UserCount is the number of provisioned users
	UserCount int `json:"user_count" yaml:"user_count" hcl:"user_count"`
}

// RiskParameters holds the incident risk exposure knobs
type RiskParameters struct {
	// BaseIncidentProbability is the annual incident probability before
	// security reduction (convention: [0, 1])
	BaseIncidentProbability float64 `json:"base_incident_probability" yaml:"base_incident_probability" hcl:"base_incident_probability"`

	// AverageImpactCost is the expected cost of one incident (USD)
	AverageImpactCost float64 `json:"average_impact_cost" yaml:"average_impact_cost" hcl:"average_impact_cost"`

	// MaxSecurityReduction caps how much of the probability security spend
	// can remove (convention: [0, 1])
	MaxSecurityReduction float64 `json:"max_security_reduction" yaml:"max_security_reduction" hcl:"max_security_reduction"`
}

// ScenarioParameters is a complete what-if scenario description.
// It is owned by the caller; the engine never mutates it.
type ScenarioParameters struct {
	// ID uniquely identifies the scenario (breakdowns are keyed by it)
	ID string `json:"id" yaml:"id" hcl:"id,optional"`

	// Name is a human-readable label
	Name string `json:"name" yaml:"name" hcl:"name"`

	// CreatedAt is when the scenario was created
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// UpdatedAt is when the scenario was last modified
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`

	// IsBaseline marks the scenario used as the comparison reference
	IsBaseline bool `json:"is_baseline" yaml:"is_baseline" hcl:"is_baseline,optional"`

	// Region selects the regional cost profile
	Region Region `json:"region" yaml:"region" hcl:"region"`

	// Time is the time horizon
	Time TimeParameters `json:"time" yaml:"time" hcl:"time,block"`

	// Workload is the workload intensity
	Workload WorkloadParameters `json:"workload" yaml:"workload" hcl:"workload,block"`

	// Regulatory is the regulatory burden level
	Regulatory RegulatoryIntensity `json:"regulatory" yaml:"regulatory" hcl:"regulatory"`

	// Security holds the security spend knobs
	Security SecurityParameters `json:"security" yaml:"security" hcl:"security,block"`

	// Risk holds the risk exposure knobs
	Risk RiskParameters `json:"risk" yaml:"risk" hcl:"risk,block"`
}
