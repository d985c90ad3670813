// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the chain-of-draft CLI. It prints
// mock Chain of Draft and Chain of Thought traces with synthesized metrics,
// exports the metrics, and serves the browser dashboard.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/chain-of-draft/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE; commands log diagnostics through it.
var logger = zap.NewNop()

// rootCmd is the base command for the chain-of-draft CLI.
var rootCmd = &cobra.Command{
	Use:   "chain-of-draft",
	Short: "Compare mock Chain of Draft and Chain of Thought reasoning traces",
	Long: `chain-of-draft renders illustrative Chain of Draft (terse) and Chain of
Thought (verbose) reasoning traces side by side, together with randomly
synthesized latency and token metrics and bar charts comparing them.

Nothing is measured: steps are filler text and metrics are scaled noise.
Use the serve subcommand for the browser dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if viper.GetBool("verbose") {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("using config file", zap.String("path", used))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./chain-of-draft.yaml or ~/.config/chain-of-draft/config.yaml)")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.Int("steps", types.DefaultSteps, fmt.Sprintf("number of reasoning steps (%d-%d)", types.MinSteps, types.MaxSteps))
	pf.Int("token-limit", types.DefaultTokenLimit, fmt.Sprintf("filler words per draft step (%d-%d)", types.MinTokenLimit, types.MaxTokenLimit))
	pf.Bool("compare", true, "include Chain of Thought steps")
	pf.Uint64("seed", 0, "random seed for metrics (0 = fresh seed each run)")

	bindFlag("verbose", "verbose")
	bindFlag("num_steps", "steps")
	bindFlag("token_limit", "token-limit")
	bindFlag("show_comparison", "compare")
	bindFlag("seed", "seed")
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("chain-of-draft")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "chain-of-draft"))
		}
	}

	viper.SetEnvPrefix("CHAIN_OF_DRAFT")
	viper.AutomaticEnv()

	// The file in use is logged once the logger is built.
	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
