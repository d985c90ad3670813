// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/chain-of-draft/internal/pipeline"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Print synthesized latency and token metrics with comparison charts",
	Long: `Metrics samples illustrative latency and token figures for both reasoning
styles and prints them as metric cards followed by two text bar charts.
Values change on every run unless --seed is set.`,
	RunE: runMetrics,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, args []string) error {
	report, err := buildReport()
	if err != nil {
		return err
	}
	return pipeline.WriteMetrics(cmd.OutOrStdout(), report)
}
