// Package risk - Risk model tests
package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"datacenter-tco/core/types"
)

const tolerance = 1e-9

func testParams() types.RiskParameters {
	return types.RiskParameters{
		BaseIncidentProbability: 0.15,
		AverageImpactCost:       2_000_000,
		MaxSecurityReduction:    0.6,
	}
}

func TestInvestmentRatioBounds(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("zero investment is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, InvestmentRatio(0, cfg))
	})

	t.Run("negative investment is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, InvestmentRatio(-10_000, cfg))
	})

	t.Run("saturation investment is exactly one", func(t *testing.T) {
		assert.Equal(t, 1.0, InvestmentRatio(cfg.SaturationInvestment, cfg))
	})

	t.Run("beyond saturation stays one", func(t *testing.T) {
		assert.Equal(t, 1.0, InvestmentRatio(cfg.SaturationInvestment*10, cfg))
	})

	t.Run("non-decreasing in investment", func(t *testing.T) {
		previous := 0.0
		for investment := 0.0; investment <= 1_000_000; investment += 25_000 {
			ratio := InvestmentRatio(investment, cfg)
			assert.GreaterOrEqual(t, ratio, previous, "ratio decreased at investment %.0f", investment)
			previous = ratio
		}
	})

	t.Run("degenerate calibration yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, InvestmentRatio(100_000, Config{}))
		assert.Equal(t, 0.0, InvestmentRatio(100_000, Config{ReferenceInvestment: -1, SaturationInvestment: 500_000}))
	})
}

func TestCalculateReductionBounds(t *testing.T) {
	cfg := DefaultConfig()
	params := testParams()

	t.Run("zero investment means no reduction", func(t *testing.T) {
		result := Calculate(params, 0, cfg)
		assert.Equal(t, 0.0, result.Reduction)
		assert.Equal(t, params.BaseIncidentProbability, result.AdjustedProbability)
		assert.InDelta(t, 0.15*2_000_000, result.ExpectedAnnualLoss, tolerance)
	})

	t.Run("saturation investment hits the cap exactly", func(t *testing.T) {
		result := Calculate(params, cfg.SaturationInvestment, cfg)
		assert.Equal(t, params.MaxSecurityReduction, result.Reduction)
	})

	t.Run("reduction never exceeds the cap", func(t *testing.T) {
		for investment := 0.0; investment <= 5_000_000; investment += 100_000 {
			result := Calculate(params, investment, cfg)
			assert.GreaterOrEqual(t, result.Reduction, 0.0)
			assert.LessOrEqual(t, result.Reduction, params.MaxSecurityReduction)
		}
	})
}

func TestCalculateDiminishingReturns(t *testing.T) {
	cfg := DefaultConfig()
	params := testParams()

	first := Calculate(params, 50_000, cfg).Reduction
	second := Calculate(params, 100_000, cfg).Reduction - first
	assert.Greater(t, first, second, "the first $50k must buy more reduction than the next $50k")
}

func TestCalculateLossNonNegative(t *testing.T) {
	cfg := DefaultConfig()
	params := testParams()

	for investment := 0.0; investment <= 2_000_000; investment += 250_000 {
		result := Calculate(params, investment, cfg)
		assert.GreaterOrEqual(t, result.ExpectedAnnualLoss, 0.0)
	}

	t.Run("zero impact means zero loss", func(t *testing.T) {
		params := testParams()
		params.AverageImpactCost = 0
		assert.Equal(t, 0.0, Calculate(params, 100_000, cfg).ExpectedAnnualLoss)
	})
}

func TestCalculateIntermediatesExposed(t *testing.T) {
	cfg := DefaultConfig()
	result := Calculate(testParams(), 150_000, cfg)

	assert.Equal(t, 150_000.0, result.SecurityInvestment)
	assert.Equal(t, cfg.ReferenceInvestment, result.ReferenceInvestment)
	assert.Equal(t, cfg.SaturationInvestment, result.SaturationInvestment)
	assert.Equal(t, 0.6, result.MaxReduction)
	assert.InDelta(t, result.BaseProbability*(1-result.Reduction), result.AdjustedProbability, tolerance)
	assert.InDelta(t, result.AdjustedProbability*result.AverageImpactCost, result.ExpectedAnnualLoss, tolerance)
	assert.NotEmpty(t, result.Formula)
}
