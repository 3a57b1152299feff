// Package types - Base cost inputs and computation context
package types

// BaseTCOInput holds the eight pre-priced infrastructure totals, in USD.
// Pricing of these line items happens upstream; the engine never re-prices
// them, it only layers scenario effects on top.
type BaseTCOInput struct {
	// Land is the site acquisition total
	Land float64 `json:"land" yaml:"land" hcl:"land"`

	// Servers is the compute hardware total
	Servers float64 `json:"servers" yaml:"servers" hcl:"servers"`

	// Storage is the storage hardware total
	Storage float64 `json:"storage" yaml:"storage" hcl:"storage"`

	// Network is the network hardware total
	Network float64 `json:"network" yaml:"network" hcl:"network"`

	// PowerDistribution is the power distribution and conditioning total
	PowerDistribution float64 `json:"power_distribution" yaml:"power_distribution" hcl:"power_distribution"`

	// Energy is the annual energy bill
	Energy float64 `json:"energy" yaml:"energy" hcl:"energy"`

	// Software is the software licensing total
	Software float64 `json:"software" yaml:"software" hcl:"software"`

	// Labor is the annual operations labor total
	Labor float64 `json:"labor" yaml:"labor" hcl:"labor"`
}

// Total sums the eight base inputs
func (b BaseTCOInput) Total() float64 {
	return b.Land + b.Servers + b.Storage + b.Network +
		b.PowerDistribution + b.Energy + b.Software + b.Labor
}

// ComputationContext carries the infrastructure scale factors used to price
// per-unit security controls.
type ComputationContext struct {
	// NodeCount is the number of monitored nodes
	NodeCount int `json:"node_count" yaml:"node_count" hcl:"node_count"`

	// TotalStorageTB is the encrypted storage footprint in terabytes
	TotalStorageTB float64 `json:"total_storage_tb" yaml:"total_storage_tb" hcl:"total_storage_tb"`
}
