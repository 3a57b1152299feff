// Package scenario - Builder and validation tests
package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datacenter-tco/core/types"
	"datacenter-tco/internal/errors"
)

func TestNewBuilderDefaults(t *testing.T) {
	params, err := NewBuilder("Fresh").Build()
	require.NoError(t, err)

	assert.NotEmpty(t, params.ID)
	assert.Equal(t, "Fresh", params.Name)
	assert.Equal(t, types.RegionUS, params.Region)
	assert.Equal(t, 2024, params.Time.Year)
	assert.Equal(t, types.WorkloadMedium, params.Workload.Class)
	assert.Equal(t, types.RegulatoryMedium, params.Regulatory)
	assert.False(t, params.IsBaseline)
	assert.False(t, params.CreatedAt.IsZero())
	assert.Equal(t, params.CreatedAt, params.UpdatedAt)
}

func TestBuilderSetters(t *testing.T) {
	params, err := NewBuilder("EU Expansion").
		Region(types.RegionEU).
		Year(2028).
		EscalationRate(0.04).
		Shock(1.5).
		WorkloadClass(types.WorkloadHigh).
		AIAccelerated(true).
		Regulatory(types.RegulatoryHigh).
		SecurityInvestment(400_000).
		SecurityRates(150, 50, 10, 60_000).
		UserCount(500).
		RiskProfile(0.2, 3_000_000, 0.7).
		Baseline(true).
		Build()
	require.NoError(t, err)

	assert.Equal(t, types.RegionEU, params.Region)
	assert.Equal(t, 2028, params.Time.Year)
	assert.Equal(t, 0.04, params.Time.EscalationRate)
	assert.True(t, params.Time.ShockEnabled)
	assert.Equal(t, 1.5, params.Time.ShockFactor)
	assert.Equal(t, types.WorkloadHigh, params.Workload.Class)
	assert.True(t, params.Workload.AIAccelerated)
	assert.Equal(t, types.RegulatoryHigh, params.Regulatory)
	assert.Equal(t, 400_000.0, params.Security.AnnualInvestment)
	assert.Equal(t, 150.0, params.Security.SiemPerNode)
	assert.Equal(t, 500, params.Security.UserCount)
	assert.Equal(t, 0.2, params.Risk.BaseIncidentProbability)
	assert.True(t, params.IsBaseline)
}

func TestFromExistingKeepsIdentity(t *testing.T) {
	original, err := NewBuilder("Original").Build()
	require.NoError(t, err)

	revised, err := FromExisting(original).
		Name("Revised").
		Region(types.RegionAPAC).
		Build()
	require.NoError(t, err)

	assert.Equal(t, original.ID, revised.ID)
	assert.Equal(t, original.CreatedAt, revised.CreatedAt)
	assert.Equal(t, "Revised", revised.Name)
	assert.Equal(t, types.RegionAPAC, revised.Region)

	t.Run("original record is untouched", func(t *testing.T) {
		assert.Equal(t, "Original", original.Name)
		assert.Equal(t, types.RegionUS, original.Region)
	})
}

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
		issue   string
	}{
		{"empty name", NewBuilder("  "), "name"},
		{"unknown region", NewBuilder("x").Region(types.Region("MARS")), "region"},
		{"unknown workload", NewBuilder("x").WorkloadClass(types.WorkloadClass("extreme")), "workload"},
		{"unknown regulatory", NewBuilder("x").Regulatory(types.RegulatoryIntensity("none")), "regulatory"},
		{"escalation too high", NewBuilder("x").EscalationRate(0.25), "escalation"},
		{"negative escalation", NewBuilder("x").EscalationRate(-0.01), "escalation"},
		{"shock factor out of range", NewBuilder("x").Shock(5.0), "shock"},
		{"negative investment", NewBuilder("x").SecurityInvestment(-1), "investment"},
		{"negative user count", NewBuilder("x").UserCount(-5), "user count"},
		{"probability above one", NewBuilder("x").RiskProfile(1.5, 1_000_000, 0.5), "probability"},
		{"reduction above one", NewBuilder("x").RiskProfile(0.1, 1_000_000, 1.5), "reduction"},
		{"negative impact", NewBuilder("x").RiskProfile(0.1, -1, 0.5), "impact"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeInput))
			assert.Contains(t, err.Error(), tt.issue)
		})
	}

	t.Run("violations are collected", func(t *testing.T) {
		_, err := NewBuilder("x").EscalationRate(0.5).SecurityInvestment(-1).Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "escalation")
		assert.Contains(t, err.Error(), "investment")
	})

	t.Run("disabled shock is not range checked", func(t *testing.T) {
		_, err := NewBuilder("x").NoShock().Build()
		assert.NoError(t, err)
	})
}

func TestValidateAcceptsBoundaryValues(t *testing.T) {
	params, err := NewBuilder("bounds").
		EscalationRate(MaxEscalationRate).
		Shock(MaxShockFactor).
		RiskProfile(1.0, 0, 1.0).
		SecurityInvestment(0).
		UserCount(0).
		Build()
	require.NoError(t, err)
	assert.NoError(t, Validate(params))
}

func TestBuildGeneratesDistinctIDs(t *testing.T) {
	a, err := NewBuilder("a").Build()
	require.NoError(t, err)
	b, err := NewBuilder("b").Build()
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}
