// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/chain-of-draft/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one render cycle and print the full report",
	Long: `Run performs the whole render cycle (steps, metrics, charts) and prints it
in the dashboard's layout. Use --output json or yaml for a machine-readable
report.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringP("output", "o", "text", "output format: text, json, or yaml")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	report, err := buildReport()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch output {
	case "text", "":
		return pipeline.WriteText(w, report)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(report)
	default:
		return fmt.Errorf("unsupported output %q: use text, json, or yaml", output)
	}
}
