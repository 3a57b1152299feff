// Package cmd - sensitivity command
package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"datacenter-tco/adapters/scenariofile"
	"datacenter-tco/core/engine"
	"datacenter-tco/core/output"
	"datacenter-tco/core/sensitivity"
)

var (
	sensitivityParameter string
	sensitivityFraction  float64
	sensitivityFormat    string
	sensitivityOut       string
)

// sensitivityCmd represents the sensitivity command
var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity <document>",
	Short: "Sweep cost drivers up and down around a scenario",
	Long: `Perturb cost drivers by a fraction in both directions and recompute
the breakdown for each variant.

Without --parameter every supported driver is swept. The fraction
defaults to 0.20 (plus and minus twenty percent).

Examples:
  datacenter-tco sensitivity scenario.hcl
  datacenter-tco sensitivity --parameter energy scenario.hcl
  datacenter-tco sensitivity --parameter labor --fraction 0.1 scenario.hcl
  datacenter-tco sensitivity --format markdown --out sweep.md scenario.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runSensitivity,
}

func init() {
	sensitivityCmd.Flags().StringVarP(&sensitivityParameter, "parameter", "p", "", "single driver to sweep (energy, labor, security)")
	sensitivityCmd.Flags().Float64Var(&sensitivityFraction, "fraction", 0, "perturbation fraction, 0 means the default")
	sensitivityCmd.Flags().StringVarP(&sensitivityFormat, "format", "f", "", "output format (table, json, csv, markdown)")
	sensitivityCmd.Flags().StringVarP(&sensitivityOut, "out", "o", "", "write output to a file instead of stdout")
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	document, err := loadComputable(args[0])
	if err != nil {
		return err
	}

	e := engine.NewEngine(cfg.Engine)
	results, err := sweep(e, document)
	if err != nil {
		return err
	}

	return renderTo(sensitivityFormat, sensitivityOut, func(f output.Formatter, w io.Writer) error {
		for _, result := range results {
			if err := f.RenderSensitivity(w, result); err != nil {
				return err
			}
		}
		return nil
	})
}

func sweep(e *engine.Engine, document *scenariofile.Document) ([]*sensitivity.Result, error) {
	scenario := *document.Scenario
	base := *document.Base
	ctx := documentContext(document)

	if sensitivityParameter == "" {
		return sensitivity.AnalyzeAll(e, scenario, base, ctx, sensitivityFraction)
	}

	parameter, err := sensitivity.ParseParameter(sensitivityParameter)
	if err != nil {
		return nil, err
	}
	result, err := sensitivity.Analyze(e, scenario, base, ctx, parameter, sensitivityFraction)
	if err != nil {
		return nil, err
	}
	return []*sensitivity.Result{result}, nil
}
