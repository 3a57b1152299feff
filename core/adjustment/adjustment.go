// Package adjustment converts combined multipliers into dollar deltas on
// the base costs.
//
// Base inputs are pre-priced totals, so multipliers are never applied to the
// base directly. Each category's delta is base * (multiplier - 1), which
// keeps the base layer and the scenario effect separable in the breakdown
// and goes negative in deflationary scenarios.
package adjustment

import (
	"fmt"

	"datacenter-tco/core/types"
)

// CoolingShare is the fraction of the power-distribution base treated as
// cooling load. The remainder is switchgear and distribution, which the
// cooling multiplier does not touch.
const CoolingShare = 0.4

// Apply computes the dollar deltas the combined multiplier set induces on
// the base costs. Only energy, labor and cooling carry adjustments; the
// compliance factor is consumed by the compliance layer instead.
func Apply(base types.BaseTCOInput, combined types.MultiplierSet) types.AdjustmentBreakdown {
	energy := delta(base.Energy, combined.Energy)
	labor := delta(base.Labor, combined.Labor)
	cooling := delta(base.PowerDistribution*CoolingShare, combined.Cooling)

	return types.AdjustmentBreakdown{
		Energy:  energy,
		Labor:   labor,
		Cooling: cooling,
		Total:   energy.Amount + labor.Amount + cooling.Amount,
	}
}

func delta(base, multiplier float64) types.AdjustmentLine {
	return types.AdjustmentLine{
		Base:       base,
		Multiplier: multiplier,
		Amount:     base * (multiplier - 1),
		Formula:    fmt.Sprintf("$%.2f * (%.4f - 1)", base, multiplier),
	}
}
