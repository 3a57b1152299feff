// Package output renders computation results for people and machines.
// The JSON form carries the full breakdown verbatim; the table, CSV and
// markdown forms are readable projections of the same numbers.
package output

import (
	"io"

	"github.com/shopspring/decimal"

	"datacenter-tco/core/compare"
	"datacenter-tco/core/sensitivity"
	"datacenter-tco/core/types"
	"datacenter-tco/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatTable is a human-readable CLI table
	FormatTable Format = "table"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatCSV is a flat spreadsheet export
	FormatCSV Format = "csv"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatTable, FormatJSON, FormatCSV, FormatMarkdown:
		return Format(name), nil
	default:
		return "", errors.Inputf("unknown output format: %q (choose table, json, csv or markdown)", name)
	}
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderBreakdown writes one scenario's full breakdown
	RenderBreakdown(w io.Writer, breakdown *types.ComputationBreakdown) error

	// RenderComparison writes a two-scenario comparison
	RenderComparison(w io.Writer, comparison compare.Comparison) error

	// RenderSensitivity writes a sensitivity sweep
	RenderSensitivity(w io.Writer, result *sensitivity.Result) error
}

// New returns the formatter for a format.
func New(format Format) (Formatter, error) {
	switch format {
	case FormatTable:
		return &TableFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatCSV:
		return &CSVFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{}, nil
	default:
		return nil, errors.Inputf("unknown output format: %q", format)
	}
}

// money renders a dollar amount with two fixed decimals.
func money(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

// signedMoney keeps an explicit sign on deltas.
func signedMoney(amount float64) string {
	if amount >= 0 {
		return "+" + money(amount)
	}
	return "-" + money(-amount)
}

// factor renders a multiplier with four fixed decimals.
func factor(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(4)
}

// percentage renders the comparison percentage, or "n/a" when it is
// undefined against a zero base.
func percentage(comparison compare.Comparison) string {
	if !comparison.PercentageDefined {
		return "n/a"
	}
	return decimal.NewFromFloat(comparison.PercentageChange).StringFixed(2) + "%"
}
