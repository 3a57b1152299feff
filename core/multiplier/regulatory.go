// Package multiplier - Regulatory axis
package multiplier

import "datacenter-tco/core/types"

// complianceFactors holds the compliance factor per regulatory intensity.
// All other fields stay 1.0 on this axis.
var complianceFactors = map[types.RegulatoryIntensity]float64{
	types.RegulatoryLow:    0.70,
	types.RegulatoryMedium: 1.00,
	types.RegulatoryHigh:   1.45,
}

// ResolveRegulatory returns the multiplier set for the regulatory axis.
// Unknown intensities resolve to the identity set.
func ResolveRegulatory(intensity types.RegulatoryIntensity) types.MultiplierSet {
	set := types.IdentityMultipliers()
	if factor, ok := complianceFactors[intensity]; ok {
		set.Compliance = factor
	}
	return set
}
