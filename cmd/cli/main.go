// Package main is the entry point for the datacenter-tco CLI.
package main

import (
	"os"

	"datacenter-tco/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
