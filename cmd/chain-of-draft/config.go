// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/chain-of-draft/internal/pipeline"
	"github.com/pdiddy/chain-of-draft/internal/reasoning"
	"github.com/pdiddy/chain-of-draft/pkg/types"
)

// runConfig reads the render configuration from flags, environment, and the
// config file, in viper's precedence order.
func runConfig() (types.RunConfig, error) {
	cfg := types.DefaultRunConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	if err := reasoning.Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// serverConfig reads the server.* keys. Keys are read one by one because
// UnmarshalKey does not see flags bound to nested keys.
func serverConfig() types.ServerConfig {
	return types.ServerConfig{
		Addr:            viper.GetString("server.addr"),
		ReadTimeout:     viper.GetDuration("server.read_timeout"),
		ShutdownTimeout: viper.GetDuration("server.shutdown_timeout"),
		Debug:           viper.GetBool("server.debug"),
	}
}

// buildReport runs one render cycle with the configured inputs.
func buildReport() (*types.Report, error) {
	cfg, err := runConfig()
	if err != nil {
		return nil, err
	}
	logger.Debug("render cycle",
		zap.Int("num_steps", cfg.NumSteps),
		zap.Int("token_limit", cfg.TokenLimit),
		zap.Bool("show_comparison", cfg.ShowComparison),
		zap.Uint64("seed", cfg.Seed))
	return pipeline.Run(cfg, nil)
}
