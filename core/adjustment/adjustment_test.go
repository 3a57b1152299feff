// Package adjustment - Adjustment applier tests
package adjustment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"datacenter-tco/core/types"
)

const tolerance = 1e-9

func testBase() types.BaseTCOInput {
	return types.BaseTCOInput{
		Land:              500_000,
		Servers:           2_000_000,
		Storage:           600_000,
		Network:           400_000,
		PowerDistribution: 800_000,
		Energy:            1_200_000,
		Software:          300_000,
		Labor:             1_500_000,
	}
}

func TestApplyIdentityIsZero(t *testing.T) {
	result := Apply(testBase(), types.IdentityMultipliers())

	assert.Equal(t, 0.0, result.Energy.Amount)
	assert.Equal(t, 0.0, result.Labor.Amount)
	assert.Equal(t, 0.0, result.Cooling.Amount)
	assert.Equal(t, 0.0, result.Total)
}

func TestApplyDeltas(t *testing.T) {
	combined := types.MultiplierSet{Energy: 1.5, Labor: 1.2, Compliance: 1.45, Cooling: 1.25, Monitoring: 1.1}
	result := Apply(testBase(), combined)

	t.Run("energy delta", func(t *testing.T) {
		assert.InDelta(t, 1_200_000*0.5, result.Energy.Amount, tolerance)
		assert.Equal(t, 1_200_000.0, result.Energy.Base)
		assert.Equal(t, 1.5, result.Energy.Multiplier)
	})

	t.Run("labor delta", func(t *testing.T) {
		assert.InDelta(t, 1_500_000*0.2, result.Labor.Amount, tolerance)
	})

	t.Run("cooling delta uses the cooling share of power distribution", func(t *testing.T) {
		assert.InDelta(t, 800_000*CoolingShare*0.25, result.Cooling.Amount, tolerance)
		assert.InDelta(t, 800_000*CoolingShare, result.Cooling.Base, tolerance)
	})

	t.Run("total is the sum of the three deltas", func(t *testing.T) {
		sum := result.Energy.Amount + result.Labor.Amount + result.Cooling.Amount
		assert.Equal(t, sum, result.Total)
	})

	t.Run("compliance and monitoring factors are not applied here", func(t *testing.T) {
		// Only the three adjustment lines exist; a compliance or monitoring
		// factor must never leak into them.
		identityExceptCompliance := types.MultiplierSet{Energy: 1, Labor: 1, Compliance: 2.0, Cooling: 1, Monitoring: 3.0}
		zero := Apply(testBase(), identityExceptCompliance)
		assert.Equal(t, 0.0, zero.Total)
	})
}

func TestApplyDeflationaryScenario(t *testing.T) {
	combined := types.MultiplierSet{Energy: 0.75, Labor: 0.90, Compliance: 1.0, Cooling: 0.80, Monitoring: 1.0}
	result := Apply(testBase(), combined)

	assert.Less(t, result.Energy.Amount, 0.0)
	assert.Less(t, result.Labor.Amount, 0.0)
	assert.Less(t, result.Cooling.Amount, 0.0)
	assert.Less(t, result.Total, 0.0)
	assert.InDelta(t, 1_200_000*-0.25, result.Energy.Amount, tolerance)
}

func TestApplyZeroBase(t *testing.T) {
	result := Apply(types.BaseTCOInput{}, types.MultiplierSet{Energy: 2.0, Labor: 2.0, Compliance: 2.0, Cooling: 2.0, Monitoring: 2.0})
	assert.Equal(t, 0.0, result.Total)
}
