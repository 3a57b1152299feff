// Package multiplier - Axis resolver and combiner tests
package multiplier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"datacenter-tco/core/types"
)

const tolerance = 1e-9

func TestCombineIdentity(t *testing.T) {
	t.Run("no sets returns identity", func(t *testing.T) {
		combined := Combine()
		assert.Equal(t, types.IdentityMultipliers(), combined)
	})

	t.Run("single set returns that set", func(t *testing.T) {
		set := types.MultiplierSet{Energy: 1.35, Labor: 1.15, Compliance: 1.25, Cooling: 1.0, Monitoring: 1.0}
		assert.Equal(t, set, Combine(set))
	})

	t.Run("identity is neutral", func(t *testing.T) {
		set := types.MultiplierSet{Energy: 2.0, Labor: 0.5, Compliance: 1.3, Cooling: 1.1, Monitoring: 0.9}
		combined := Combine(set, types.IdentityMultipliers())
		assert.InDelta(t, set.Energy, combined.Energy, tolerance)
		assert.InDelta(t, set.Labor, combined.Labor, tolerance)
		assert.InDelta(t, set.Compliance, combined.Compliance, tolerance)
		assert.InDelta(t, set.Cooling, combined.Cooling, tolerance)
		assert.InDelta(t, set.Monitoring, combined.Monitoring, tolerance)
	})
}

func TestCombineOrderIndependent(t *testing.T) {
	a := ResolveRegion(types.RegionEU)
	b := ResolveTime(types.TimeParameters{Year: 2027, EscalationRate: 0.025}, 2024)
	c := ResolveWorkload(types.WorkloadParameters{Class: types.WorkloadHigh, AIAccelerated: true})
	d := ResolveRegulatory(types.RegulatoryHigh)

	reference := Combine(a, b, c, d)
	permutations := [][]types.MultiplierSet{
		{a, b, d, c},
		{b, a, c, d},
		{d, c, b, a},
		{c, d, a, b},
	}

	for _, perm := range permutations {
		combined := Combine(perm...)
		assert.InDelta(t, reference.Energy, combined.Energy, tolerance)
		assert.InDelta(t, reference.Labor, combined.Labor, tolerance)
		assert.InDelta(t, reference.Compliance, combined.Compliance, tolerance)
		assert.InDelta(t, reference.Cooling, combined.Cooling, tolerance)
		assert.InDelta(t, reference.Monitoring, combined.Monitoring, tolerance)
	}

	t.Run("associative", func(t *testing.T) {
		left := Combine(Combine(a, b), Combine(c, d))
		assert.InDelta(t, reference.Energy, left.Energy, tolerance)
		assert.InDelta(t, reference.Compliance, left.Compliance, tolerance)
	})
}

func TestResolveRegion(t *testing.T) {
	tests := []struct {
		region     types.Region
		energy     float64
		labor      float64
		compliance float64
	}{
		{types.RegionUS, 1.00, 1.00, 1.00},
		{types.RegionEU, 1.35, 1.15, 1.25},
		{types.RegionAPAC, 1.18, 0.90, 1.10},
	}

	for _, tt := range tests {
		t.Run(string(tt.region), func(t *testing.T) {
			set := ResolveRegion(tt.region)
			assert.InDelta(t, tt.energy, set.Energy, tolerance)
			assert.InDelta(t, tt.labor, set.Labor, tolerance)
			assert.InDelta(t, tt.compliance, set.Compliance, tolerance)
			assert.Equal(t, 1.0, set.Cooling)
			assert.Equal(t, 1.0, set.Monitoring)
		})
	}

	t.Run("unknown region resolves to identity", func(t *testing.T) {
		assert.Equal(t, types.IdentityMultipliers(), ResolveRegion(types.Region("MARS")))
	})
}

func TestEscalationFactor(t *testing.T) {
	t.Run("baseline year is exactly one", func(t *testing.T) {
		assert.Equal(t, 1.0, EscalationFactor(2024, 2024, 0.10))
	})

	t.Run("past years clamp to one", func(t *testing.T) {
		assert.Equal(t, 1.0, EscalationFactor(2020, 2024, 0.10))
	})

	t.Run("compounds for future years", func(t *testing.T) {
		assert.InDelta(t, 1.025*1.025*1.025, EscalationFactor(2027, 2024, 0.025), tolerance)
	})

	t.Run("zero rate is one for any year", func(t *testing.T) {
		assert.Equal(t, 1.0, EscalationFactor(2030, 2024, 0))
	})
}

func TestResolveTime(t *testing.T) {
	t.Run("escalation moves energy labor cooling", func(t *testing.T) {
		set := ResolveTime(types.TimeParameters{Year: 2027, EscalationRate: 0.025}, 2024)
		factor := 1.025 * 1.025 * 1.025
		assert.InDelta(t, factor, set.Energy, tolerance)
		assert.InDelta(t, factor, set.Labor, tolerance)
		assert.InDelta(t, factor, set.Cooling, tolerance)
		assert.Equal(t, 1.0, set.Compliance)
		assert.Equal(t, 1.0, set.Monitoring)
	})

	t.Run("shock applies to energy only", func(t *testing.T) {
		set := ResolveTime(types.TimeParameters{Year: 2026, EscalationRate: 0.03, ShockFactor: 1.5, ShockEnabled: true}, 2024)
		factor := 1.03 * 1.03
		assert.InDelta(t, factor*1.5, set.Energy, tolerance)
		assert.InDelta(t, factor, set.Labor, tolerance)
		assert.InDelta(t, factor, set.Cooling, tolerance)
	})

	t.Run("shock survives the baseline clamp", func(t *testing.T) {
		set := ResolveTime(types.TimeParameters{Year: 2024, EscalationRate: 0.05, ShockFactor: 2.0, ShockEnabled: true}, 2024)
		assert.InDelta(t, 2.0, set.Energy, tolerance)
		assert.Equal(t, 1.0, set.Labor)
	})

	t.Run("disabled shock is ignored", func(t *testing.T) {
		set := ResolveTime(types.TimeParameters{Year: 2024, ShockFactor: 3.0, ShockEnabled: false}, 2024)
		assert.Equal(t, 1.0, set.Energy)
	})
}

func TestResolveWorkload(t *testing.T) {
	tests := []struct {
		class      types.WorkloadClass
		energy     float64
		cooling    float64
		monitoring float64
	}{
		{types.WorkloadLow, 0.75, 0.80, 0.90},
		{types.WorkloadMedium, 1.00, 1.00, 1.00},
		{types.WorkloadHigh, 1.40, 1.35, 1.20},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			set := ResolveWorkload(types.WorkloadParameters{Class: tt.class})
			assert.InDelta(t, tt.energy, set.Energy, tolerance)
			assert.InDelta(t, tt.cooling, set.Cooling, tolerance)
			assert.InDelta(t, tt.monitoring, set.Monitoring, tolerance)
			assert.Equal(t, 1.0, set.Labor)
			assert.Equal(t, 1.0, set.Compliance)
		})
	}

	t.Run("ai acceleration stacks multiplicatively", func(t *testing.T) {
		set := ResolveWorkload(types.WorkloadParameters{Class: types.WorkloadHigh, AIAccelerated: true})
		assert.InDelta(t, 1.40*1.8, set.Energy, tolerance)
		assert.InDelta(t, 1.35*1.6, set.Cooling, tolerance)
		assert.InDelta(t, 1.20*1.3, set.Monitoring, tolerance)
		assert.Equal(t, 1.0, set.Labor)
	})

	t.Run("ai on medium gives bare ai factors", func(t *testing.T) {
		set := ResolveWorkload(types.WorkloadParameters{Class: types.WorkloadMedium, AIAccelerated: true})
		assert.InDelta(t, 1.8, set.Energy, tolerance)
		assert.InDelta(t, 1.6, set.Cooling, tolerance)
		assert.InDelta(t, 1.3, set.Monitoring, tolerance)
	})

	t.Run("unknown class resolves to identity", func(t *testing.T) {
		set := ResolveWorkload(types.WorkloadParameters{Class: types.WorkloadClass("extreme")})
		assert.Equal(t, types.IdentityMultipliers(), set)
	})
}

func TestResolveRegulatory(t *testing.T) {
	tests := []struct {
		intensity  types.RegulatoryIntensity
		compliance float64
	}{
		{types.RegulatoryLow, 0.70},
		{types.RegulatoryMedium, 1.00},
		{types.RegulatoryHigh, 1.45},
	}

	for _, tt := range tests {
		t.Run(string(tt.intensity), func(t *testing.T) {
			set := ResolveRegulatory(tt.intensity)
			assert.InDelta(t, tt.compliance, set.Compliance, tolerance)
			assert.Equal(t, 1.0, set.Energy)
			assert.Equal(t, 1.0, set.Labor)
			assert.Equal(t, 1.0, set.Cooling)
			assert.Equal(t, 1.0, set.Monitoring)
		})
	}

	t.Run("unknown intensity resolves to identity", func(t *testing.T) {
		assert.Equal(t, types.IdentityMultipliers(), ResolveRegulatory(types.RegulatoryIntensity("extreme")))
	})
}

func TestCombinedScenarioExamples(t *testing.T) {
	t.Run("eu 2027 escalation", func(t *testing.T) {
		combined := Combine(
			ResolveRegion(types.RegionEU),
			ResolveTime(types.TimeParameters{Year: 2027, EscalationRate: 0.025}, 2024),
		)
		assert.InDelta(t, 1.35*1.025*1.025*1.025, combined.Energy, tolerance)
		assert.InDelta(t, 1.454, combined.Energy, 0.001)
	})

	t.Run("high workload with ai in us 2024", func(t *testing.T) {
		combined := Combine(
			ResolveRegion(types.RegionUS),
			ResolveTime(types.TimeParameters{Year: 2024}, 2024),
			ResolveWorkload(types.WorkloadParameters{Class: types.WorkloadHigh, AIAccelerated: true}),
		)
		assert.InDelta(t, 2.52, combined.Energy, tolerance)
	})

	t.Run("canonical baseline is identity", func(t *testing.T) {
		combined := Combine(
			ResolveRegion(types.RegionUS),
			ResolveTime(types.TimeParameters{Year: 2024, EscalationRate: 0}, 2024),
			ResolveWorkload(types.WorkloadParameters{Class: types.WorkloadMedium}),
			ResolveRegulatory(types.RegulatoryMedium),
		)
		assert.Equal(t, types.IdentityMultipliers(), combined)
	})
}
