// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/chain-of-draft/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the synthesized metrics as CSV, YAML, or JSON",
	Long: `Export runs one render cycle and writes the metrics table (Method,
Latency, Tokens) with one row per reasoning style. CSV output has a header
row and no index column. Use --output - to write to stdout.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "csv", "export format: csv, yaml, or json")
	exportCmd.Flags().String("output", export.DefaultFileName, "output file path, or - for stdout")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	format, err := export.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	report, err := buildReport()
	if err != nil {
		return err
	}

	if output == "-" {
		return export.Write(cmd.OutOrStdout(), format, report.Records)
	}
	if output == "" {
		output = export.DefaultFileName
	}
	if err := export.WriteFile(output, format, report.Records); err != nil {
		return err
	}
	logger.Info("exported metrics", zap.String("path", output), zap.String("format", string(format)))
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", output)
	return nil
}
