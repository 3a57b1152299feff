// Package cmd - Shared document, store and rendering helpers
package cmd

import (
	"io"
	"os"

	"datacenter-tco/adapters/scenariofile"
	"datacenter-tco/adapters/store"
	"datacenter-tco/core/output"
	"datacenter-tco/core/types"
	"datacenter-tco/internal/errors"
)

// loadComputable loads a document and requires the blocks every
// computation needs.
func loadComputable(path string) (*scenariofile.Document, error) {
	document, err := scenariofile.Load(path)
	if err != nil {
		return nil, err
	}
	if document.Scenario == nil {
		return nil, errors.Inputf("document %s has no scenario block", path)
	}
	if document.Base == nil {
		return nil, errors.Inputf("document %s has no base_costs block", path)
	}
	return document, nil
}

// documentContext tolerates a missing context block; per-unit security
// lines then price against zero scale.
func documentContext(document *scenariofile.Document) types.ComputationContext {
	if document.Context == nil {
		return types.ComputationContext{}
	}
	return *document.Context
}

// pickFormat resolves the format flag against the configured default.
func pickFormat(flag string) (output.Format, error) {
	if flag == "" {
		return cfg.Output.DefaultFormat, nil
	}
	return output.ParseFormat(flag)
}

// renderTo resolves the format and destination, then hands the formatter
// and writer to the render callback.
func renderTo(formatFlag, outPath string, render func(output.Formatter, io.Writer) error) error {
	format, err := pickFormat(formatFlag)
	if err != nil {
		return err
	}
	formatter, err := output.New(format)
	if err != nil {
		return err
	}

	if outPath == "" {
		return render(formatter, os.Stdout)
	}

	file, err := os.Create(outPath)
	if err != nil {
		return errors.Store("failed to create output file", err)
	}
	defer file.Close()
	return render(formatter, file)
}

// openStore opens the configured scenario store.
func openStore() (store.Store, error) {
	return store.Open(cfg.Store.Backend, cfg.Store.Path)
}
