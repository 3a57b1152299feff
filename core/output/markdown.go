// Package output - Markdown rendering
package output

import (
	"fmt"
	"io"

	"datacenter-tco/core/compare"
	"datacenter-tco/core/sensitivity"
	"datacenter-tco/core/types"
)

// MarkdownFormatter produces report-style markdown suitable for wikis and
// pull-request comments.
type MarkdownFormatter struct{}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format { return FormatMarkdown }

// RenderBreakdown writes the breakdown as a set of tables
func (f *MarkdownFormatter) RenderBreakdown(w io.Writer, breakdown *types.ComputationBreakdown) error {
	if _, err := fmt.Fprintf(w, "# TCO Breakdown: %s\n\n", breakdown.ScenarioName); err != nil {
		return err
	}

	fmt.Fprintf(w, "## Multipliers\n\n")
	fmt.Fprintf(w, "| Axis | Energy | Labor | Compliance | Cooling | Monitoring |\n")
	fmt.Fprintf(w, "|------|--------|-------|------------|---------|------------|\n")
	writeMultiplierRow(w, "Region", breakdown.Multipliers.Region)
	writeMultiplierRow(w, "Time", breakdown.Multipliers.Time)
	writeMultiplierRow(w, "Workload", breakdown.Multipliers.Workload)
	writeMultiplierRow(w, "Regulatory", breakdown.Multipliers.Regulatory)
	writeMultiplierRow(w, "**Combined**", breakdown.Multipliers.Combined)

	fmt.Fprintf(w, "\n## Adjustments\n\n")
	fmt.Fprintf(w, "| Category | Base | Multiplier | Delta |\n")
	fmt.Fprintf(w, "|----------|------|------------|-------|\n")
	writeAdjustmentRow(w, "Energy", breakdown.Adjustments.Energy)
	writeAdjustmentRow(w, "Labor", breakdown.Adjustments.Labor)
	writeAdjustmentRow(w, "Cooling", breakdown.Adjustments.Cooling)
	fmt.Fprintf(w, "| **Total** | | | %s |\n", signedMoney(breakdown.Adjustments.Total))

	fmt.Fprintf(w, "\n## Compliance (%s)\n\n", breakdown.Compliance.Intensity)
	fmt.Fprintf(w, "| Item | Amount | Formula |\n")
	fmt.Fprintf(w, "|------|--------|---------|\n")
	for _, line := range []types.CostLine{
		breakdown.Compliance.Audit,
		breakdown.Compliance.Documentation,
		breakdown.Compliance.Advisory,
		breakdown.Compliance.Certification,
		breakdown.Compliance.Training,
		breakdown.Compliance.Tooling,
	} {
		fmt.Fprintf(w, "| %s | %s | %s |\n", line.Label, money(line.Amount), line.Formula)
	}
	fmt.Fprintf(w, "| **Total** | %s | |\n", money(breakdown.Compliance.Total))

	fmt.Fprintf(w, "\n## Security\n\n")
	fmt.Fprintf(w, "| Item | Amount | Formula |\n")
	fmt.Fprintf(w, "|------|--------|---------|\n")
	for _, line := range []types.CostLine{
		breakdown.Security.Siem,
		breakdown.Security.Iam,
		breakdown.Security.Encryption,
		breakdown.Security.IncidentResponse,
	} {
		fmt.Fprintf(w, "| %s | %s | %s |\n", line.Label, money(line.Amount), line.Formula)
	}
	fmt.Fprintf(w, "| itemized total | %s | |\n", money(breakdown.Security.ItemizedTotal))
	fmt.Fprintf(w, "| annual investment | %s | |\n", money(breakdown.Security.AnnualInvestment))
	fmt.Fprintf(w, "| **total spend** | %s | |\n", money(breakdown.Security.TotalSpend))

	fmt.Fprintf(w, "\n## Risk\n\n")
	fmt.Fprintf(w, "Expected annual loss: **%s** (%s)\n", money(breakdown.Risk.ExpectedAnnualLoss), breakdown.Risk.Formula)
	fmt.Fprintf(w, "\nReduction %s of probability at %s invested (cap %s).\n",
		factor(breakdown.Risk.Reduction), money(breakdown.Risk.SecurityInvestment), factor(breakdown.Risk.MaxReduction))

	fmt.Fprintf(w, "\n## Totals\n\n")
	fmt.Fprintf(w, "| Category | Amount |\n")
	fmt.Fprintf(w, "|----------|--------|\n")
	fmt.Fprintf(w, "| Base TCO | %s |\n", money(breakdown.Totals.BaseTCO))
	fmt.Fprintf(w, "| Adjustments | %s |\n", signedMoney(breakdown.Totals.Adjustments))
	fmt.Fprintf(w, "| Compliance | %s |\n", money(breakdown.Totals.Compliance))
	fmt.Fprintf(w, "| Security | %s |\n", money(breakdown.Totals.Security))
	fmt.Fprintf(w, "| Risk | %s |\n", money(breakdown.Totals.Risk))
	_, err := fmt.Fprintf(w, "| **Grand Total** | **%s** |\n", money(breakdown.Totals.GrandTotal))
	return err
}

// RenderComparison writes the comparison as a delta table
func (f *MarkdownFormatter) RenderComparison(w io.Writer, comparison compare.Comparison) error {
	if _, err := fmt.Fprintf(w, "# Scenario Comparison: %s vs %s\n\n", comparison.ScenarioA, comparison.ScenarioB); err != nil {
		return err
	}

	fmt.Fprintf(w, "| Category | Delta |\n")
	fmt.Fprintf(w, "|----------|-------|\n")
	fmt.Fprintf(w, "| Base TCO | %s |\n", signedMoney(comparison.Deltas.BaseTCO))
	fmt.Fprintf(w, "| Adjustments | %s |\n", signedMoney(comparison.Deltas.Adjustments))
	fmt.Fprintf(w, "| Compliance | %s |\n", signedMoney(comparison.Deltas.Compliance))
	fmt.Fprintf(w, "| Security | %s |\n", signedMoney(comparison.Deltas.Security))
	fmt.Fprintf(w, "| Risk | %s |\n", signedMoney(comparison.Deltas.Risk))
	fmt.Fprintf(w, "| **Grand Total** | **%s** (%s) |\n", signedMoney(comparison.Deltas.GrandTotal), percentage(comparison))

	if len(comparison.ParameterDifferences) > 0 {
		fmt.Fprintf(w, "\n## Parameter Differences\n\n")
		for _, difference := range comparison.ParameterDifferences {
			fmt.Fprintf(w, "- %s\n", difference)
		}
	}
	return nil
}

// RenderSensitivity writes the sweep as a three-branch table
func (f *MarkdownFormatter) RenderSensitivity(w io.Writer, result *sensitivity.Result) error {
	if _, err := fmt.Fprintf(w, "# Sensitivity: %s (+/- %.0f%%)\n\n", result.Parameter, result.Fraction*100); err != nil {
		return err
	}

	fmt.Fprintf(w, "| Branch | Grand Total |\n")
	fmt.Fprintf(w, "|--------|-------------|\n")
	fmt.Fprintf(w, "| Low | %s |\n", money(result.Low.Totals.GrandTotal))
	fmt.Fprintf(w, "| Base | %s |\n", money(result.Base.Totals.GrandTotal))
	fmt.Fprintf(w, "| High | %s |\n", money(result.High.Totals.GrandTotal))
	_, err := fmt.Fprintf(w, "| Spread | %s |\n", money(result.Spread()))
	return err
}

func writeMultiplierRow(w io.Writer, axis string, set types.MultiplierSet) {
	fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s |\n",
		axis, factor(set.Energy), factor(set.Labor), factor(set.Compliance), factor(set.Cooling), factor(set.Monitoring))
}

func writeAdjustmentRow(w io.Writer, name string, line types.AdjustmentLine) {
	fmt.Fprintf(w, "| %s | %s | %s | %s |\n", name, money(line.Base), factor(line.Multiplier), signedMoney(line.Amount))
}
