// Package cmd - compute command
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"datacenter-tco/core/engine"
	"datacenter-tco/core/output"
	"datacenter-tco/core/scenario"
)

var (
	computeFormat string
	computeOut    string
	computeSave   bool
)

// computeCmd represents the compute command
var computeCmd = &cobra.Command{
	Use:   "compute <document>",
	Short: "Compute a scenario breakdown from a document",
	Long: `Compute the full TCO breakdown for one scenario document.

The document carries the scenario, the pre-priced base costs and the
deployment context, in HCL (.hcl, .tco), YAML or JSON form.

Examples:
  datacenter-tco compute scenario.hcl
  datacenter-tco compute --format json scenario.hcl
  datacenter-tco compute --format csv --out breakdown.csv scenario.hcl
  datacenter-tco compute --save scenario.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runCompute,
}

func init() {
	computeCmd.Flags().StringVarP(&computeFormat, "format", "f", "", "output format (table, json, csv, markdown)")
	computeCmd.Flags().StringVarP(&computeOut, "out", "o", "", "write output to a file instead of stdout")
	computeCmd.Flags().BoolVar(&computeSave, "save", false, "save the scenario record to the store")
}

func runCompute(cmd *cobra.Command, args []string) error {
	document, err := loadComputable(args[0])
	if err != nil {
		return err
	}

	e := engine.NewEngine(cfg.Engine)
	breakdown := e.Compute(*document.Scenario, *document.Base, documentContext(document))

	logger.Debug("computed scenario",
		zap.String("scenario_id", breakdown.ScenarioID),
		zap.Float64("grand_total", breakdown.Totals.GrandTotal),
	)

	if computeSave {
		record, err := scenario.FromExisting(*document.Scenario).Build()
		if err != nil {
			return err
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Save(cmd.Context(), record); err != nil {
			return err
		}
		fmt.Printf("Saved scenario %s (%s)\n\n", record.Name, record.ID)
	}

	return renderTo(computeFormat, computeOut, func(f output.Formatter, w io.Writer) error {
		return f.RenderBreakdown(w, breakdown)
	})
}
