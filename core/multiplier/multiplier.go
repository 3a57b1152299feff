// Package multiplier resolves scenario axes into multiplier sets and folds
// them into a combined set.
//
// Each axis resolver returns a types.MultiplierSet with only the fields its
// axis influences different from 1.0, so resolvers stay independent and can
// be combined in any order.
package multiplier

import "datacenter-tco/core/types"

// Combine returns the field-wise product of the given sets. With no
// arguments it returns the identity set.
func Combine(sets ...types.MultiplierSet) types.MultiplierSet {
	combined := types.IdentityMultipliers()
	for _, set := range sets {
		combined = combined.Mul(set)
	}
	return combined
}
