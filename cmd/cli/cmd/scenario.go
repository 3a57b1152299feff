// Package cmd - scenario store management
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"datacenter-tco/adapters/scenariofile"
	"datacenter-tco/core/scenario"
	"datacenter-tco/core/types"
	"datacenter-tco/internal/errors"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Manage stored scenario records",
	Long: `Manage the scenario store.

Stored scenarios keep their identity across edits, so a saved record
can be recomputed, compared or promoted to baseline later.`,
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored scenarios",
	RunE:  runScenarioList,
}

var scenarioShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one stored scenario as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioShow,
}

var scenarioSaveCmd = &cobra.Command{
	Use:   "save <document>",
	Short: "Save the scenario block of a document to the store",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioSave,
}

var scenarioDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioDelete,
}

var scenarioBaselineCmd = &cobra.Command{
	Use:   "baseline <id>",
	Short: "Promote a stored scenario to baseline",
	Long: `Promote a stored scenario to baseline.

Only one baseline exists at a time. Promoting a scenario demotes the
previous baseline.`,
	Args: cobra.ExactArgs(1),
	RunE: runScenarioBaseline,
}

var scenarioExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all stored scenarios as a JSON array",
	RunE:  runScenarioExport,
}

var scenarioImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import scenarios from a JSON export",
	Long: `Import scenarios from a JSON export file.

Records keep their identity, so importing over an existing store
updates scenarios with matching IDs instead of duplicating them.`,
	Args: cobra.ExactArgs(1),
	RunE: runScenarioImport,
}

var scenarioExportOut string

func init() {
	scenarioCmd.AddCommand(scenarioListCmd)
	scenarioCmd.AddCommand(scenarioShowCmd)
	scenarioCmd.AddCommand(scenarioSaveCmd)
	scenarioCmd.AddCommand(scenarioDeleteCmd)
	scenarioCmd.AddCommand(scenarioBaselineCmd)
	scenarioCmd.AddCommand(scenarioExportCmd)
	scenarioCmd.AddCommand(scenarioImportCmd)

	scenarioExportCmd.Flags().StringVarP(&scenarioExportOut, "out", "o", "", "write the export to a file instead of stdout")
}

func runScenarioList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No scenarios stored.")
		return nil
	}

	fmt.Printf("%-36s  %-24s  %-6s  %-4s  %s\n", "ID", "NAME", "REGION", "YEAR", "BASELINE")
	for _, record := range records {
		marker := ""
		if record.IsBaseline {
			marker = "*"
		}
		fmt.Printf("%-36s  %-24s  %-6s  %-4d  %s\n",
			record.ID, record.Name, record.Region, record.Time.Year, marker)
	}
	return nil
}

func runScenarioShow(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	record, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(record)
}

func runScenarioSave(cmd *cobra.Command, args []string) error {
	loaded, err := scenariofile.LoadScenario(args[0])
	if err != nil {
		return err
	}

	// Stamp identity and timestamps; file documents rarely carry them.
	params, err := scenario.FromExisting(loaded).Build()
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Save(cmd.Context(), params); err != nil {
		return err
	}
	fmt.Printf("Saved scenario %s (%s)\n", params.Name, params.ID)
	return nil
}

func runScenarioDelete(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted scenario %s\n", args[0])
	return nil
}

func runScenarioBaseline(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	record, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	promoted, err := scenario.FromExisting(record).Baseline(true).Build()
	if err != nil {
		return err
	}
	if err := s.Save(cmd.Context(), promoted); err != nil {
		return err
	}
	fmt.Printf("Scenario %s (%s) is now the baseline\n", promoted.Name, promoted.ID)
	return nil
}

func runScenarioExport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.List(cmd.Context())
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if scenarioExportOut != "" {
		file, err := os.Create(scenarioExportOut)
		if err != nil {
			return errors.Store("failed to create export file", err)
		}
		defer file.Close()
		w = file
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func runScenarioImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Store("failed to read import file", err)
	}

	var records []types.ScenarioParameters
	if err := json.Unmarshal(data, &records); err != nil {
		return errors.Parsing("failed to parse scenario export", err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	for _, record := range records {
		if err := s.Save(cmd.Context(), record); err != nil {
			return err
		}
	}
	fmt.Printf("Imported %d scenarios\n", len(records))
	return nil
}
