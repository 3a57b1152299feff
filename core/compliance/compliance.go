// Package compliance prices the annual regulatory compliance program for a
// scenario.
//
// The program is a six-line model: external audits, internal documentation
// effort, an optional external advisory retainer, certification maintenance,
// staff training and compliance tooling. Audit, documentation and advisory
// lines are effort-driven and priced directly from the profile; the
// certification, training and tooling lines scale with the combined
// compliance multiplier (region and regulatory axes).
package compliance

import (
	"fmt"

	"datacenter-tco/core/types"
)

// DefaultHourlyRate is the documentation labor rate used when the caller
// does not supply one.
const DefaultHourlyRate = 75.0

// AdvisoryRetainer is the annual cost of the external advisory engagement
// included in high-intensity profiles.
const AdvisoryRetainer = 60_000.0

// Profile describes the compliance program shape for one regulatory
// intensity level.
type Profile struct {
	// AuditFrequency is the number of external audits per year
	AuditFrequency int `json:"audit_frequency"`

	// CostPerAudit is the cost of one external audit
	CostPerAudit float64 `json:"cost_per_audit"`

	// DocumentationHours is the annual internal documentation effort
	DocumentationHours float64 `json:"documentation_hours"`

	// ExternalAdvisory includes the advisory retainer when true
	ExternalAdvisory bool `json:"external_advisory"`

	// BaseCertificationCost is the certification maintenance cost before
	// the compliance multiplier
	BaseCertificationCost float64 `json:"base_certification_cost"`

	// TrainingPerEmployee is the annual training cost per staff member
	// before the compliance multiplier
	TrainingPerEmployee float64 `json:"training_per_employee"`

	// BaseToolingCost is the compliance tooling cost before the
	// compliance multiplier
	BaseToolingCost float64 `json:"base_tooling_cost"`
}

var profiles = map[types.RegulatoryIntensity]Profile{
	types.RegulatoryLow: {
		AuditFrequency:        1,
		CostPerAudit:          15_000,
		DocumentationHours:    120,
		ExternalAdvisory:      false,
		BaseCertificationCost: 10_000,
		TrainingPerEmployee:   150,
		BaseToolingCost:       12_000,
	},
	types.RegulatoryMedium: {
		AuditFrequency:        2,
		CostPerAudit:          25_000,
		DocumentationHours:    320,
		ExternalAdvisory:      false,
		BaseCertificationCost: 35_000,
		TrainingPerEmployee:   300,
		BaseToolingCost:       30_000,
	},
	types.RegulatoryHigh: {
		AuditFrequency:        4,
		CostPerAudit:          40_000,
		DocumentationHours:    800,
		ExternalAdvisory:      true,
		BaseCertificationCost: 90_000,
		TrainingPerEmployee:   600,
		BaseToolingCost:       75_000,
	},
}

// ProfileFor returns the program profile for an intensity. Unknown
// intensities resolve to the medium profile.
func ProfileFor(intensity types.RegulatoryIntensity) Profile {
	if p, ok := profiles[intensity]; ok {
		return p
	}
	return profiles[types.RegulatoryMedium]
}

// Calculate prices the compliance program. multiplier is the combined
// compliance multiplier from the region and regulatory axes; hourlyRate is
// the documentation labor rate (DefaultHourlyRate when <= 0); userCount
// sizes the training line.
func Calculate(intensity types.RegulatoryIntensity, multiplier, hourlyRate float64, userCount int) types.ComplianceBreakdown {
	if hourlyRate <= 0 {
		hourlyRate = DefaultHourlyRate
	}
	profile := ProfileFor(intensity)

	audit := types.CostLine{
		Label:    "external audits",
		Quantity: float64(profile.AuditFrequency),
		Rate:     profile.CostPerAudit,
		Amount:   float64(profile.AuditFrequency) * profile.CostPerAudit,
		Formula:  fmt.Sprintf("%d audits * $%.2f", profile.AuditFrequency, profile.CostPerAudit),
	}

	documentation := types.CostLine{
		Label:    "documentation effort",
		Quantity: profile.DocumentationHours,
		Rate:     hourlyRate,
		Amount:   profile.DocumentationHours * hourlyRate,
		Formula:  fmt.Sprintf("%.0f hours * $%.2f/hour", profile.DocumentationHours, hourlyRate),
	}

	advisory := types.CostLine{
		Label:   "external advisory",
		Formula: "not included",
	}
	if profile.ExternalAdvisory {
		advisory.Quantity = 1
		advisory.Rate = AdvisoryRetainer
		advisory.Amount = AdvisoryRetainer
		advisory.Formula = fmt.Sprintf("annual retainer $%.2f", AdvisoryRetainer)
	}

	certification := types.CostLine{
		Label:    "certification maintenance",
		Quantity: 1,
		Rate:     profile.BaseCertificationCost * multiplier,
		Amount:   profile.BaseCertificationCost * multiplier,
		Formula:  fmt.Sprintf("$%.2f * %.4f", profile.BaseCertificationCost, multiplier),
	}

	training := types.CostLine{
		Label:    "staff training",
		Quantity: float64(userCount),
		Rate:     profile.TrainingPerEmployee * multiplier,
		Amount:   profile.TrainingPerEmployee * multiplier * float64(userCount),
		Formula:  fmt.Sprintf("%d staff * $%.2f * %.4f", userCount, profile.TrainingPerEmployee, multiplier),
	}

	tooling := types.CostLine{
		Label:    "compliance tooling",
		Quantity: 1,
		Rate:     profile.BaseToolingCost * multiplier,
		Amount:   profile.BaseToolingCost * multiplier,
		Formula:  fmt.Sprintf("$%.2f * %.4f", profile.BaseToolingCost, multiplier),
	}

	total := audit.Amount + documentation.Amount + advisory.Amount +
		certification.Amount + training.Amount + tooling.Amount

	return types.ComplianceBreakdown{
		Intensity:     intensity,
		Multiplier:    multiplier,
		Audit:         audit,
		Documentation: documentation,
		Advisory:      advisory,
		Certification: certification,
		Training:      training,
		Tooling:       tooling,
		Total:         total,
	}
}
