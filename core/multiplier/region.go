// Package multiplier - Region axis
package multiplier

import "datacenter-tco/core/types"

// regionFactors holds the energy, labor and compliance factors per region.
// US is the reference region. Cooling and monitoring are region-independent.
var regionFactors = map[types.Region]types.MultiplierSet{
	types.RegionUS:   {Energy: 1.00, Labor: 1.00, Compliance: 1.00, Cooling: 1.0, Monitoring: 1.0},
	types.RegionEU:   {Energy: 1.35, Labor: 1.15, Compliance: 1.25, Cooling: 1.0, Monitoring: 1.0},
	types.RegionAPAC: {Energy: 1.18, Labor: 0.90, Compliance: 1.10, Cooling: 1.0, Monitoring: 1.0},
}

// ResolveRegion returns the multiplier set for a deployment region.
// Unknown regions resolve to the identity set.
func ResolveRegion(region types.Region) types.MultiplierSet {
	if set, ok := regionFactors[region]; ok {
		return set
	}
	return types.IdentityMultipliers()
}
