// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Bounds shared by the CLI sliders, the dashboard form and validation.
const (
	MinSteps = 1
	MaxSteps = 10

	MinTokenLimit = 1
	MaxTokenLimit = 10

	DefaultSteps      = 5
	DefaultTokenLimit = 5
)

// RunConfig holds the inputs of one render cycle. It is immutable for the
// duration of the cycle.
type RunConfig struct {
	// NumSteps is the number of reasoning steps to generate (1-10).
	NumSteps int `json:"num_steps" yaml:"num_steps" mapstructure:"num_steps" validate:"min=1,max=10"`

	// TokenLimit is the number of filler words per draft step (1-10).
	TokenLimit int `json:"token_limit" yaml:"token_limit" mapstructure:"token_limit" validate:"min=1,max=10"`

	// ShowComparison controls whether Chain of Thought steps are generated.
	ShowComparison bool `json:"show_comparison" yaml:"show_comparison" mapstructure:"show_comparison"`

	// Seed fixes the random source. Zero draws a fresh seed per cycle.
	Seed uint64 `json:"seed,omitempty" yaml:"seed,omitempty" mapstructure:"seed"`
}

// DefaultRunConfig returns the configuration the dashboard opens with.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		NumSteps:       DefaultSteps,
		TokenLimit:     DefaultTokenLimit,
		ShowComparison: true,
	}
}

// ServerConfig holds settings for the dashboard HTTP server.
type ServerConfig struct {
	// Addr is the listen address (default ":8501").
	Addr string `json:"addr" yaml:"addr"`

	// ReadTimeout bounds reading a request including its headers.
	ReadTimeout time.Duration `json:"read_timeout" yaml:"read_timeout"`

	// ShutdownTimeout bounds graceful shutdown after a signal.
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`

	// Debug puts gin in debug mode.
	Debug bool `json:"debug" yaml:"debug"`
}

// ExportFormat selects the encoding of exported metrics.
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportYAML ExportFormat = "yaml"
	ExportJSON ExportFormat = "json"
)
