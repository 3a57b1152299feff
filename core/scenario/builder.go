// Package scenario provides construction, revision and validation of
// scenario records.
//
// The builder always produces a complete, validated ScenarioParameters
// value. There are no partial records: revisions start from an existing
// record via FromExisting, apply explicit setters, and re-validate on
// Build. The engine itself performs no validation, so every record entering
// it is expected to have passed through here or an equivalent gate.
package scenario

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"datacenter-tco/core/types"
	"datacenter-tco/internal/errors"
)

// Range conventions enforced by Validate.
const (
	MaxEscalationRate = 0.2
	MinShockFactor    = 1.0
	MaxShockFactor    = 3.0
)

// DefaultParameters returns the canonical baseline: every multiplier
// resolves to 1.0 and the security and risk knobs carry the standard
// reference deployment values.
func DefaultParameters() types.ScenarioParameters {
	return types.ScenarioParameters{
		Region:     types.RegionUS,
		Time:       types.TimeParameters{Year: 2024, EscalationRate: 0},
		Workload:   types.WorkloadParameters{Class: types.WorkloadMedium},
		Regulatory: types.RegulatoryMedium,
		Security: types.SecurityParameters{
			AnnualInvestment:         250_000,
			SiemPerNode:              120,
			IamPerUser:               45,
			EncryptionPerTB:          8.5,
			IncidentResponseRetainer: 42_000,
			UserCount:                350,
		},
		Risk: types.RiskParameters{
			BaseIncidentProbability: 0.15,
			AverageImpactCost:       2_000_000,
			MaxSecurityReduction:    0.6,
		},
	}
}

// Builder assembles a scenario record.
type Builder struct {
	params types.ScenarioParameters
}

// NewBuilder starts a fresh record with a generated id and baseline
// defaults.
func NewBuilder(name string) *Builder {
	params := DefaultParameters()
	params.ID = uuid.NewString()
	params.Name = name
	return &Builder{params: params}
}

// FromExisting starts a revision of an existing record. The id and creation
// time are kept; Build refreshes the update time.
func FromExisting(params types.ScenarioParameters) *Builder {
	return &Builder{params: params}
}

// Name sets the scenario name
func (b *Builder) Name(name string) *Builder {
	b.params.Name = name
	return b
}

// Baseline marks or unmarks the scenario as the comparison reference
func (b *Builder) Baseline(isBaseline bool) *Builder {
	b.params.IsBaseline = isBaseline
	return b
}

// Region sets the deployment region
func (b *Builder) Region(region types.Region) *Builder {
	b.params.Region = region
	return b
}

// Year sets the scenario year
func (b *Builder) Year(year int) *Builder {
	b.params.Time.Year = year
	return b
}

// EscalationRate sets the annual OPEX escalation rate
func (b *Builder) EscalationRate(rate float64) *Builder {
	b.params.Time.EscalationRate = rate
	return b
}

// Shock enables the energy price shock with the given factor
func (b *Builder) Shock(factor float64) *Builder {
	b.params.Time.ShockFactor = factor
	b.params.Time.ShockEnabled = true
	return b
}

// NoShock disables the energy price shock
func (b *Builder) NoShock() *Builder {
	b.params.Time.ShockFactor = 0
	b.params.Time.ShockEnabled = false
	return b
}

// WorkloadClass sets the utilization class
func (b *Builder) WorkloadClass(class types.WorkloadClass) *Builder {
	b.params.Workload.Class = class
	return b
}

// AIAccelerated toggles AI-accelerated hardware
func (b *Builder) AIAccelerated(enabled bool) *Builder {
	b.params.Workload.AIAccelerated = enabled
	return b
}

// Regulatory sets the regulatory intensity
func (b *Builder) Regulatory(intensity types.RegulatoryIntensity) *Builder {
	b.params.Regulatory = intensity
	return b
}

// SecurityInvestment sets the discretionary annual security budget
func (b *Builder) SecurityInvestment(amount float64) *Builder {
	b.params.Security.AnnualInvestment = amount
	return b
}

// SecurityRates sets the per-unit security control rates
func (b *Builder) SecurityRates(siemPerNode, iamPerUser, encryptionPerTB, incidentResponseRetainer float64) *Builder {
	b.params.Security.SiemPerNode = siemPerNode
	b.params.Security.IamPerUser = iamPerUser
	b.params.Security.EncryptionPerTB = encryptionPerTB
	b.params.Security.IncidentResponseRetainer = incidentResponseRetainer
	return b
}

// UserCount sets the staff count used by IAM and training lines
func (b *Builder) UserCount(count int) *Builder {
	b.params.Security.UserCount = count
	return b
}

// RiskProfile sets the incident probability, impact cost and reduction cap
func (b *Builder) RiskProfile(baseIncidentProbability, averageImpactCost, maxSecurityReduction float64) *Builder {
	b.params.Risk.BaseIncidentProbability = baseIncidentProbability
	b.params.Risk.AverageImpactCost = averageImpactCost
	b.params.Risk.MaxSecurityReduction = maxSecurityReduction
	return b
}

// Build validates the record and stamps identity and timestamps. The
// returned value is complete; the builder can keep being used to derive
// further records.
func (b *Builder) Build() (types.ScenarioParameters, error) {
	params := b.params
	if params.ID == "" {
		params.ID = uuid.NewString()
	}

	if err := Validate(params); err != nil {
		return types.ScenarioParameters{}, err
	}

	now := time.Now().UTC()
	if params.CreatedAt.IsZero() {
		params.CreatedAt = now
	}
	params.UpdatedAt = now
	return params, nil
}

// Validate checks the record against the documented range conventions.
// Violations are collected and reported together.
func Validate(params types.ScenarioParameters) error {
	var issues []string

	if strings.TrimSpace(params.Name) == "" {
		issues = append(issues, "name must not be empty")
	}

	switch params.Region {
	case types.RegionUS, types.RegionEU, types.RegionAPAC:
	default:
		issues = append(issues, "region must be one of US, EU, APAC")
	}

	switch params.Workload.Class {
	case types.WorkloadLow, types.WorkloadMedium, types.WorkloadHigh:
	default:
		issues = append(issues, "workload class must be one of low, medium, high")
	}

	switch params.Regulatory {
	case types.RegulatoryLow, types.RegulatoryMedium, types.RegulatoryHigh:
	default:
		issues = append(issues, "regulatory intensity must be one of low, medium, high")
	}

	if params.Time.EscalationRate < 0 || params.Time.EscalationRate > MaxEscalationRate {
		issues = append(issues, "escalation rate must be within [0, 0.2]")
	}
	if params.Time.ShockEnabled && (params.Time.ShockFactor < MinShockFactor || params.Time.ShockFactor > MaxShockFactor) {
		issues = append(issues, "shock factor must be within [1, 3] when the shock is enabled")
	}

	if params.Security.AnnualInvestment < 0 {
		issues = append(issues, "annual security investment must not be negative")
	}
	if params.Security.SiemPerNode < 0 || params.Security.IamPerUser < 0 ||
		params.Security.EncryptionPerTB < 0 || params.Security.IncidentResponseRetainer < 0 {
		issues = append(issues, "security rates must not be negative")
	}
	if params.Security.UserCount < 0 {
		issues = append(issues, "user count must not be negative")
	}

	if params.Risk.BaseIncidentProbability < 0 || params.Risk.BaseIncidentProbability > 1 {
		issues = append(issues, "base incident probability must be within [0, 1]")
	}
	if params.Risk.MaxSecurityReduction < 0 || params.Risk.MaxSecurityReduction > 1 {
		issues = append(issues, "max security reduction must be within [0, 1]")
	}
	if params.Risk.AverageImpactCost < 0 {
		issues = append(issues, "average impact cost must not be negative")
	}

	if len(issues) > 0 {
		return errors.Input("invalid scenario: " + strings.Join(issues, "; "))
	}
	return nil
}
