// Package output - CSV rendering
package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"datacenter-tco/core/compare"
	"datacenter-tco/core/sensitivity"
	"datacenter-tco/core/types"
)

// CSVFormatter flattens results into spreadsheet rows. Amounts are plain
// numbers with two decimals so downstream tools can sum them.
type CSVFormatter struct{}

// Format returns the format type
func (f *CSVFormatter) Format() Format { return FormatCSV }

// RenderBreakdown writes one row per cost line plus category totals
func (f *CSVFormatter) RenderBreakdown(w io.Writer, breakdown *types.ComputationBreakdown) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"section", "item", "quantity", "rate", "amount", "formula"}); err != nil {
		return err
	}

	rows := [][]string{
		{"base", "land", "", "", amount(breakdown.Base.Input.Land), ""},
		{"base", "servers", "", "", amount(breakdown.Base.Input.Servers), ""},
		{"base", "storage", "", "", amount(breakdown.Base.Input.Storage), ""},
		{"base", "network", "", "", amount(breakdown.Base.Input.Network), ""},
		{"base", "power distribution", "", "", amount(breakdown.Base.Input.PowerDistribution), ""},
		{"base", "energy", "", "", amount(breakdown.Base.Input.Energy), ""},
		{"base", "software", "", "", amount(breakdown.Base.Input.Software), ""},
		{"base", "labor", "", "", amount(breakdown.Base.Input.Labor), ""},
		{"base", "total", "", "", amount(breakdown.Base.Total), ""},
	}
	rows = append(rows,
		adjustmentRow("energy", breakdown.Adjustments.Energy),
		adjustmentRow("labor", breakdown.Adjustments.Labor),
		adjustmentRow("cooling", breakdown.Adjustments.Cooling),
		[]string{"adjustments", "total", "", "", amount(breakdown.Adjustments.Total), ""},
	)
	rows = append(rows,
		costLineRow("compliance", breakdown.Compliance.Audit),
		costLineRow("compliance", breakdown.Compliance.Documentation),
		costLineRow("compliance", breakdown.Compliance.Advisory),
		costLineRow("compliance", breakdown.Compliance.Certification),
		costLineRow("compliance", breakdown.Compliance.Training),
		costLineRow("compliance", breakdown.Compliance.Tooling),
		[]string{"compliance", "total", "", "", amount(breakdown.Compliance.Total), ""},
	)
	rows = append(rows,
		costLineRow("security", breakdown.Security.Siem),
		costLineRow("security", breakdown.Security.Iam),
		costLineRow("security", breakdown.Security.Encryption),
		costLineRow("security", breakdown.Security.IncidentResponse),
		[]string{"security", "itemized total", "", "", amount(breakdown.Security.ItemizedTotal), ""},
		[]string{"security", "annual investment", "", "", amount(breakdown.Security.AnnualInvestment), ""},
		[]string{"security", "total spend", "", "", amount(breakdown.Security.TotalSpend), ""},
	)
	rows = append(rows,
		[]string{"risk", "expected annual loss", "", "", amount(breakdown.Risk.ExpectedAnnualLoss), breakdown.Risk.Formula},
	)
	rows = append(rows,
		[]string{"totals", "base tco", "", "", amount(breakdown.Totals.BaseTCO), ""},
		[]string{"totals", "adjustments", "", "", amount(breakdown.Totals.Adjustments), ""},
		[]string{"totals", "compliance", "", "", amount(breakdown.Totals.Compliance), ""},
		[]string{"totals", "security", "", "", amount(breakdown.Totals.Security), ""},
		[]string{"totals", "risk", "", "", amount(breakdown.Totals.Risk), ""},
		[]string{"totals", "grand total", "", "", amount(breakdown.Totals.GrandTotal), ""},
	)

	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}

// RenderComparison writes per-category delta rows, the percentage and the
// parameter differences
func (f *CSVFormatter) RenderComparison(w io.Writer, comparison compare.Comparison) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"category", "delta"}); err != nil {
		return err
	}

	rows := [][]string{
		{"base tco", amount(comparison.Deltas.BaseTCO)},
		{"adjustments", amount(comparison.Deltas.Adjustments)},
		{"compliance", amount(comparison.Deltas.Compliance)},
		{"security", amount(comparison.Deltas.Security)},
		{"risk", amount(comparison.Deltas.Risk)},
		{"grand total", amount(comparison.Deltas.GrandTotal)},
		{"percentage change", percentage(comparison)},
	}
	for _, difference := range comparison.ParameterDifferences {
		rows = append(rows, []string{"parameter", difference})
	}

	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}

// RenderSensitivity writes one row per branch
func (f *CSVFormatter) RenderSensitivity(w io.Writer, result *sensitivity.Result) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"parameter", "branch", "grand_total"}); err != nil {
		return err
	}

	rows := [][]string{
		{string(result.Parameter), "low", amount(result.Low.Totals.GrandTotal)},
		{string(result.Parameter), "base", amount(result.Base.Totals.GrandTotal)},
		{string(result.Parameter), "high", amount(result.High.Totals.GrandTotal)},
		{string(result.Parameter), "spread", amount(result.Spread())},
	}

	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}

func amount(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}

func quantity(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func adjustmentRow(name string, line types.AdjustmentLine) []string {
	return []string{"adjustments", name, amount(line.Base), factor(line.Multiplier), amount(line.Amount), line.Formula}
}

func costLineRow(section string, line types.CostLine) []string {
	return []string{section, line.Label, quantity(line.Quantity), amount(line.Rate), amount(line.Amount), line.Formula}
}
