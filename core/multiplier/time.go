// Package multiplier - Time axis
package multiplier

import (
	"math"

	"datacenter-tco/core/types"
)

// EscalationFactor returns the compounded growth factor (1+rate)^n for n
// years past the baseline. Years at or before the baseline return exactly
// 1.0: past years never deflate costs.
func EscalationFactor(year, baselineYear int, rate float64) float64 {
	years := year - baselineYear
	if years <= 0 {
		return 1.0
	}
	return math.Pow(1.0+rate, float64(years))
}

// ResolveTime returns the multiplier set for the time axis. Energy, labor
// and cooling all follow the escalation factor. The shock factor applies to
// energy only, on top of escalation, and is independent of the baseline
// clamp.
func ResolveTime(params types.TimeParameters, baselineYear int) types.MultiplierSet {
	factor := EscalationFactor(params.Year, baselineYear, params.EscalationRate)

	set := types.IdentityMultipliers()
	set.Energy = factor
	set.Labor = factor
	set.Cooling = factor
	if params.ShockEnabled {
		set.Energy *= params.ShockFactor
	}
	return set
}
