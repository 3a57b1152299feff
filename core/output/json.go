// Package output - JSON rendering
package output

import (
	"encoding/json"
	"io"

	"datacenter-tco/core/compare"
	"datacenter-tco/core/sensitivity"
	"datacenter-tco/core/types"
)

// JSONFormatter emits results verbatim as indented JSON. This is the only
// format that preserves every intermediate of the breakdown.
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// RenderBreakdown writes the full breakdown
func (f *JSONFormatter) RenderBreakdown(w io.Writer, breakdown *types.ComputationBreakdown) error {
	return encodeJSON(w, breakdown)
}

// RenderComparison writes the comparison
func (f *JSONFormatter) RenderComparison(w io.Writer, comparison compare.Comparison) error {
	return encodeJSON(w, comparison)
}

// RenderSensitivity writes the sweep with all three breakdowns
func (f *JSONFormatter) RenderSensitivity(w io.Writer, result *sensitivity.Result) error {
	return encodeJSON(w, result)
}

func encodeJSON(w io.Writer, value interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
