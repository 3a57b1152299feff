// Package multiplier - Workload axis
package multiplier

import "datacenter-tco/core/types"

// workloadFactors holds the energy, cooling and monitoring factors per
// utilization class. Labor and compliance are workload-independent.
var workloadFactors = map[types.WorkloadClass]types.MultiplierSet{
	types.WorkloadLow:    {Energy: 0.75, Labor: 1.0, Compliance: 1.0, Cooling: 0.80, Monitoring: 0.90},
	types.WorkloadMedium: {Energy: 1.00, Labor: 1.0, Compliance: 1.0, Cooling: 1.00, Monitoring: 1.00},
	types.WorkloadHigh:   {Energy: 1.40, Labor: 1.0, Compliance: 1.0, Cooling: 1.35, Monitoring: 1.20},
}

// aiFactors stack multiplicatively on the class factors when the scenario
// runs AI-accelerated hardware.
var aiFactors = types.MultiplierSet{Energy: 1.8, Labor: 1.0, Compliance: 1.0, Cooling: 1.6, Monitoring: 1.3}

// ResolveWorkload returns the multiplier set for the workload axis. Unknown
// classes resolve to the medium (identity) factors before AI stacking.
func ResolveWorkload(params types.WorkloadParameters) types.MultiplierSet {
	set, ok := workloadFactors[params.Class]
	if !ok {
		set = types.IdentityMultipliers()
	}
	if params.AIAccelerated {
		set = set.Mul(aiFactors)
	}
	return set
}
