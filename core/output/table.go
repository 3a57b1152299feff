// Package output - CLI table rendering
package output

import (
	"fmt"
	"io"

	"datacenter-tco/core/compare"
	"datacenter-tco/core/sensitivity"
	"datacenter-tco/core/types"
)

// TableFormatter draws a boxed summary for terminals.
type TableFormatter struct{}

// Format returns the format type
func (f *TableFormatter) Format() Format { return FormatTable }

// RenderBreakdown writes the boxed category summary
func (f *TableFormatter) RenderBreakdown(w io.Writer, breakdown *types.ComputationBreakdown) error {
	tableTop(w)
	tableTitle(w, "TCO SCENARIO BREAKDOWN")
	tableDivider(w)
	tableRow(w, "Scenario", breakdown.ScenarioName)
	tableRow(w, "Combined energy multiplier", factor(breakdown.Multipliers.Combined.Energy))
	tableRow(w, "Combined labor multiplier", factor(breakdown.Multipliers.Combined.Labor))
	tableRow(w, "Combined compliance multiplier", factor(breakdown.Multipliers.Combined.Compliance))
	tableDivider(w)
	tableRow(w, "Base TCO", money(breakdown.Totals.BaseTCO))
	tableRow(w, "Adjustments", signedMoney(breakdown.Totals.Adjustments))
	tableRow(w, "  energy", signedMoney(breakdown.Adjustments.Energy.Amount))
	tableRow(w, "  labor", signedMoney(breakdown.Adjustments.Labor.Amount))
	tableRow(w, "  cooling", signedMoney(breakdown.Adjustments.Cooling.Amount))
	tableRow(w, "Compliance", money(breakdown.Totals.Compliance))
	tableRow(w, "Security", money(breakdown.Totals.Security))
	tableRow(w, "Risk (expected annual loss)", money(breakdown.Totals.Risk))
	tableDivider(w)
	tableRow(w, "GRAND TOTAL", money(breakdown.Totals.GrandTotal))
	return tableBottom(w)
}

// RenderComparison writes the boxed delta summary
func (f *TableFormatter) RenderComparison(w io.Writer, comparison compare.Comparison) error {
	tableTop(w)
	tableTitle(w, "SCENARIO COMPARISON")
	tableDivider(w)
	tableRow(w, "A", comparison.ScenarioA)
	tableRow(w, "B", comparison.ScenarioB)
	tableDivider(w)
	tableRow(w, "Base TCO delta", signedMoney(comparison.Deltas.BaseTCO))
	tableRow(w, "Adjustments delta", signedMoney(comparison.Deltas.Adjustments))
	tableRow(w, "Compliance delta", signedMoney(comparison.Deltas.Compliance))
	tableRow(w, "Security delta", signedMoney(comparison.Deltas.Security))
	tableRow(w, "Risk delta", signedMoney(comparison.Deltas.Risk))
	tableDivider(w)
	tableRow(w, "Grand total delta", signedMoney(comparison.Deltas.GrandTotal))
	tableRow(w, "Change", percentage(comparison))
	if err := tableBottom(w); err != nil {
		return err
	}

	if len(comparison.ParameterDifferences) > 0 {
		fmt.Fprintln(w, "\nParameter differences:")
		for _, difference := range comparison.ParameterDifferences {
			if _, err := fmt.Fprintf(w, "  - %s\n", difference); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderSensitivity writes the boxed three-branch summary
func (f *TableFormatter) RenderSensitivity(w io.Writer, result *sensitivity.Result) error {
	tableTop(w)
	tableTitle(w, "SENSITIVITY SWEEP")
	tableDivider(w)
	tableRow(w, "Parameter", string(result.Parameter))
	tableRow(w, "Fraction", fmt.Sprintf("+/- %.0f%%", result.Fraction*100))
	tableDivider(w)
	tableRow(w, "Low grand total", money(result.Low.Totals.GrandTotal))
	tableRow(w, "Base grand total", money(result.Base.Totals.GrandTotal))
	tableRow(w, "High grand total", money(result.High.Totals.GrandTotal))
	tableRow(w, "Spread", money(result.Spread()))
	return tableBottom(w)
}

const tableWidth = 73

func tableTop(w io.Writer) {
	fmt.Fprintln(w, "┌─────────────────────────────────────────────────────────────────────────┐")
}

func tableBottom(w io.Writer) error {
	_, err := fmt.Fprintln(w, "└─────────────────────────────────────────────────────────────────────────┘")
	return err
}

func tableDivider(w io.Writer) {
	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")
}

func tableTitle(w io.Writer, title string) {
	fmt.Fprintf(w, "│ %-*s │\n", tableWidth-2, centered(title, tableWidth-2))
}

func tableRow(w io.Writer, label, value string) {
	fmt.Fprintf(w, "│ %-50s %20s │\n", label, value)
}

func centered(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return fmt.Sprintf("%*s%s", left, "", s)
}
