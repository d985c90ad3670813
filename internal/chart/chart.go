// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chart builds the latency and token-usage comparison charts and
// renders them as inline SVG for the dashboard or as text for the CLI.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/pdiddy/chain-of-draft/pkg/types"
)

// Bar colors, in Methods order.
const (
	ColorDraft   = "blue"
	ColorThought = "red"
)

// Rendered size of each SVG chart.
const (
	svgWidth  = 6 * vg.Inch
	svgHeight = 2.5 * vg.Inch
	barWidth  = vg.Length(28)

	minTextWidth = 10
)

// ErrNegativeValue is returned when a bar value is negative or NaN.
var ErrNegativeValue = errors.New("bar value must be non-negative")

// ErrUnknownColor is returned when a bar color is not a CSS color name.
var ErrUnknownColor = errors.New("unknown bar color")

// Bar is one horizontal bar.
type Bar struct {
	Label string
	Value float64
	Color string
}

// BarChart is a titled horizontal bar chart with a labeled x axis.
type BarChart struct {
	Title  string
	XLabel string
	Bars   []Bar
}

// LatencyChart returns the latency comparison chart for m.
func LatencyChart(m types.PerformanceMetrics) BarChart {
	return comparison("Latency Comparison", "Latency (s)", m.Latencies())
}

// TokenChart returns the token usage comparison chart for m.
func TokenChart(m types.PerformanceMetrics) BarChart {
	return comparison("Token Usage Comparison", "Token Usage", m.Tokens())
}

func comparison(title, xlabel string, values []float64) BarChart {
	colors := []string{ColorDraft, ColorThought}
	bars := make([]Bar, len(types.Methods))
	for i, method := range types.Methods {
		bars[i] = Bar{Label: string(method), Value: values[i], Color: colors[i]}
	}
	return BarChart{Title: title, XLabel: xlabel, Bars: bars}
}

// Validate reports the first bar whose value cannot be drawn.
func (c BarChart) Validate() error {
	for _, b := range c.Bars {
		if math.IsNaN(b.Value) || math.IsInf(b.Value, 0) || b.Value < 0 {
			return fmt.Errorf("%w: %s = %v", ErrNegativeValue, b.Label, b.Value)
		}
	}
	return nil
}

func (c BarChart) max() float64 {
	var m float64
	for _, b := range c.Bars {
		m = math.Max(m, b.Value)
	}
	return m
}

// SVG renders the chart as an inline <svg> element. The first bar sits at
// the bottom of the y axis; a zero maximum draws empty bars.
func (c BarChart) SVG() (string, error) {
	p, err := c.build()
	if err != nil {
		return "", err
	}
	wt, err := p.WriterTo(svgWidth, svgHeight, "svg")
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", c.Title, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("rendering %s: %w", c.Title, err)
	}

	// Drop the XML prolog so the element can be embedded in HTML.
	out := buf.String()
	if i := strings.Index(out, "<svg"); i > 0 {
		out = out[i:]
	}
	return strings.TrimSpace(out), nil
}

// build lays the bars out on a gonum plot, one single-value bar chart per
// bar so each can carry its own color.
func (c BarChart) build() (*plot.Plot, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.X.Min = 0
	if c.max() == 0 {
		p.X.Max = 1
	}

	labels := make([]string, len(c.Bars))
	for i, bar := range c.Bars {
		col, ok := colornames.Map[strings.ToLower(bar.Color)]
		if !ok {
			return nil, fmt.Errorf("%w: %s = %q", ErrUnknownColor, bar.Label, bar.Color)
		}
		bc, err := plotter.NewBarChart(plotter.Values{bar.Value}, barWidth)
		if err != nil {
			return nil, fmt.Errorf("bar %s: %w", bar.Label, err)
		}
		bc.Horizontal = true
		bc.XMin = float64(i)
		bc.Color = col
		bc.LineStyle.Width = 0
		p.Add(bc)
		labels[i] = bar.Label
	}
	p.NominalY(labels...)
	return p, nil
}

// WriteText renders the chart as text bars scaled so the largest value spans
// width columns.
func (c BarChart) WriteText(w io.Writer, width int) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if width < minTextWidth {
		width = minTextWidth
	}

	labelW := 0
	for _, bar := range c.Bars {
		labelW = max(labelW, len(bar.Label))
	}
	maxV := c.max()

	if _, err := fmt.Fprintln(w, c.Title); err != nil {
		return err
	}
	for _, bar := range c.Bars {
		n := 0
		if maxV > 0 {
			n = int(math.Round(float64(width) * bar.Value / maxV))
		}
		if _, err := fmt.Fprintf(w, "%-*s | %s %s\n", labelW, bar.Label, strings.Repeat("#", n), tickLabel(bar.Value)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%*s   %s\n", labelW, "", c.XLabel)
	return err
}

func tickLabel(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
