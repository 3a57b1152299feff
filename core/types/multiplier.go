// Package types - Multiplier sets
package types

// MultiplierSet carries the five multiplicative cost factors contributed by
// one scenario axis. 1.0 means no effect on that factor.
type MultiplierSet struct {
	// Energy scales the energy base cost
	Energy float64 `json:"energy"`

	// Labor scales the labor base cost
	Labor float64 `json:"labor"`

	// Compliance scales certification, training and tooling costs
	Compliance float64 `json:"compliance"`

	// Cooling scales the cooling share of power distribution
	Cooling float64 `json:"cooling"`

	// Monitoring scales observability effort (reported for audit; no base
	// cost is bound to it in the current cost model)
	Monitoring float64 `json:"monitoring"`
}

// IdentityMultipliers returns the neutral set {1,1,1,1,1}
func IdentityMultipliers() MultiplierSet {
	return MultiplierSet{
		Energy:     1.0,
		Labor:      1.0,
		Compliance: 1.0,
		Cooling:    1.0,
		Monitoring: 1.0,
	}
}

// Mul returns the field-wise product of two sets
func (m MultiplierSet) Mul(other MultiplierSet) MultiplierSet {
	return MultiplierSet{
		Energy:     m.Energy * other.Energy,
		Labor:      m.Labor * other.Labor,
		Compliance: m.Compliance * other.Compliance,
		Cooling:    m.Cooling * other.Cooling,
		Monitoring: m.Monitoring * other.Monitoring,
	}
}
