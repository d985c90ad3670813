// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one render cycle: validate the configuration,
// generate the reasoning steps, synthesize metrics, and project them for
// export. It also prints a report in the dashboard's layout.
package pipeline

import (
	"fmt"
	"io"

	"github.com/pdiddy/chain-of-draft/internal/chart"
	"github.com/pdiddy/chain-of-draft/internal/export"
	"github.com/pdiddy/chain-of-draft/internal/metrics"
	"github.com/pdiddy/chain-of-draft/internal/reasoning"
	"github.com/pdiddy/chain-of-draft/pkg/types"
)

// textChartWidth is the bar width of the CLI charts.
const textChartWidth = 40

// Steps validates cfg and generates the reasoning steps only. It draws no
// metrics, so its result depends on cfg alone.
func Steps(cfg types.RunConfig) (*types.Report, error) {
	if err := reasoning.Validate(cfg); err != nil {
		return nil, err
	}

	draft, err := reasoning.GenerateDraftSteps(cfg.NumSteps, cfg.TokenLimit)
	if err != nil {
		return nil, fmt.Errorf("generating draft steps: %w", err)
	}

	var thought []types.ReasoningStep
	if cfg.ShowComparison {
		thought, err = reasoning.GenerateThoughtSteps(cfg.NumSteps)
		if err != nil {
			return nil, fmt.Errorf("generating thought steps: %w", err)
		}
	}
	return &types.Report{Config: cfg, DraftSteps: draft, ThoughtSteps: thought}, nil
}

// Run executes one render cycle against src. When src is nil a source is
// built from cfg.Seed.
func Run(cfg types.RunConfig, src metrics.Source) (*types.Report, error) {
	r, err := Steps(cfg)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = metrics.NewSource(cfg.Seed)
	}

	m, err := metrics.Synthesize(cfg.NumSteps, cfg.TokenLimit, src)
	if err != nil {
		return nil, fmt.Errorf("synthesizing metrics: %w", err)
	}

	r.Metrics = m
	r.Widgets = metrics.Widgets(m)
	r.Records = export.FromMetrics(m)
	return r, nil
}

// WriteSteps prints the draft steps and, when present, the thought steps.
func WriteSteps(w io.Writer, r *types.Report) error {
	p := &printer{w: w}
	p.header("Chain of Draft Reasoning")
	p.subheader("Chain of Draft Steps")
	p.steps(r.DraftSteps)
	if r.ThoughtSteps != nil {
		p.header("Comparison with Chain of Thought")
		p.subheader("Chain of Thought Steps")
		p.steps(r.ThoughtSteps)
	}
	return p.err
}

// WriteMetrics prints the metric cards and both comparison charts.
func WriteMetrics(w io.Writer, r *types.Report) error {
	p := &printer{w: w}
	p.header("Performance Metrics")
	for _, wd := range r.Widgets {
		p.printf("%-16s %s\n", wd.Label, wd.Value)
	}
	p.subheader("Performance Visualization")
	if p.err != nil {
		return p.err
	}
	for _, c := range []chart.BarChart{chart.LatencyChart(r.Metrics), chart.TokenChart(r.Metrics)} {
		if err := c.WriteText(w, textChartWidth); err != nil {
			return fmt.Errorf("rendering %s: %w", c.Title, err)
		}
		p.printf("\n")
	}
	return p.err
}

// WriteText prints the full report.
func WriteText(w io.Writer, r *types.Report) error {
	if err := WriteSteps(w, r); err != nil {
		return err
	}
	return WriteMetrics(w, r)
}

// printer keeps the first write error so the layout code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) header(s string) {
	p.printf("\n== %s ==\n", s)
}

func (p *printer) subheader(s string) {
	p.printf("\n-- %s --\n", s)
}

func (p *printer) steps(steps []types.ReasoningStep) {
	for _, s := range steps {
		p.printf("%s\n", s.Text)
	}
}
