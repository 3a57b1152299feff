// Package cmd provides the CLI commands for datacenter-tco.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"datacenter-tco/internal/config"
	"datacenter-tco/internal/logging"
)

// version is stamped into version output and saved reports.
const version = "0.1.0"

var (
	cfgFile string
	verbose bool

	// cfg and logger are set by the root PersistentPreRunE and shared by
	// every command.
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "datacenter-tco",
	Short: "Compute data-center TCO under what-if scenarios",
	Long: `datacenter-tco is a scenario computation engine for data-center
total cost of ownership.

It layers regional, temporal, workload and regulatory effects over
pre-priced infrastructure totals and produces itemized, reproducible
breakdowns with sensitivity analysis and scenario comparison.

Examples:
  datacenter-tco compute scenario.hcl
  datacenter-tco compute --format json scenario.hcl
  datacenter-tco sensitivity --parameter energy scenario.hcl
  datacenter-tco compare baseline.hcl expansion.hcl`,
	PersistentPreRunE: initRuntime,
	SilenceUsage:      true,
}

// Execute runs the CLI
func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.datacenter-tco/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(sensitivityCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(scenarioCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initRuntime loads configuration and builds the logger before any
// command body runs.
func initRuntime(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	if verbose {
		cfg.Logging.Level = "debug"
	}
	logger, err = logging.New(cfg.Logging)
	return err
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("datacenter-tco version " + version)
	},
}
