// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/chain-of-draft/internal/pipeline"
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Print the Chain of Draft steps and, with --compare, the Chain of Thought steps",
	Long: `Steps prints one line per reasoning step. Chain of Draft steps repeat a
filler word --token-limit times; Chain of Thought steps use a fixed
explanatory sentence. Output is deterministic for a given configuration.`,
	RunE: runSteps,
}

func init() {
	rootCmd.AddCommand(stepsCmd)
}

func runSteps(cmd *cobra.Command, args []string) error {
	cfg, err := runConfig()
	if err != nil {
		return err
	}
	report, err := pipeline.Steps(cfg)
	if err != nil {
		return err
	}
	return pipeline.WriteSteps(cmd.OutOrStdout(), report)
}
