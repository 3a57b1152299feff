// Package cmd - compare command
package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"datacenter-tco/adapters/scenariofile"
	"datacenter-tco/core/compare"
	"datacenter-tco/core/engine"
	"datacenter-tco/core/output"
)

var (
	compareFormat string
	compareOut    string
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <document-a> <document-b>",
	Short: "Compare two scenarios over the same base costs",
	Long: `Compute both scenarios and report the per-category deltas between them.

The base costs and deployment context always come from the first
document, so the comparison isolates the scenario parameters. The
second document only contributes its scenario block.

Examples:
  datacenter-tco compare current.hcl proposed.hcl
  datacenter-tco compare --format json current.hcl proposed.hcl
  datacenter-tco compare --format markdown --out delta.md current.hcl proposed.hcl`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareFormat, "format", "f", "", "output format (table, json, csv, markdown)")
	compareCmd.Flags().StringVarP(&compareOut, "out", "o", "", "write output to a file instead of stdout")
}

func runCompare(cmd *cobra.Command, args []string) error {
	documentA, err := loadComputable(args[0])
	if err != nil {
		return err
	}
	scenarioB, err := scenariofile.LoadScenario(args[1])
	if err != nil {
		return err
	}

	e := engine.NewEngine(cfg.Engine)
	base := *documentA.Base
	ctx := documentContext(documentA)

	breakdownA := e.Compute(*documentA.Scenario, base, ctx)
	breakdownB := e.Compute(scenarioB, base, ctx)
	comparison := compare.Compare(breakdownA, breakdownB, *documentA.Scenario, scenarioB)

	return renderTo(compareFormat, compareOut, func(f output.Formatter, w io.Writer) error {
		return f.RenderComparison(w, comparison)
	})
}
