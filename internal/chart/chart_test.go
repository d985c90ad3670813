// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chart

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/chain-of-draft/pkg/types"
)

var sample = types.PerformanceMetrics{CoDLatency: 1.25, CoTLatency: 10, CoDTokens: 9, CoTTokens: 120}

func TestComparisonCharts(t *testing.T) {
	lat := LatencyChart(sample)
	assert.Equal(t, "Latency Comparison", lat.Title)
	assert.Equal(t, "Latency (s)", lat.XLabel)
	assert.Equal(t, []Bar{
		{Label: "Chain of Draft", Value: 1.25, Color: "blue"},
		{Label: "Chain of Thought", Value: 10, Color: "red"},
	}, lat.Bars)

	tok := TokenChart(sample)
	assert.Equal(t, "Token Usage Comparison", tok.Title)
	assert.Equal(t, "Token Usage", tok.XLabel)
	assert.Equal(t, 9.0, tok.Bars[0].Value)
	assert.Equal(t, 120.0, tok.Bars[1].Value)
}

func TestSVG(t *testing.T) {
	svg, err := LatencyChart(sample).SVG()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.NotContains(t, svg, "<?xml")
	assert.Contains(t, svg, "Latency Comparison")
	assert.Contains(t, svg, "Latency (s)")
	assert.Contains(t, svg, "Chain of Draft")
	assert.Contains(t, svg, "Chain of Thought")
}

func TestBuildLayout(t *testing.T) {
	p, err := TokenChart(sample).build()
	require.NoError(t, err)

	assert.Equal(t, "Token Usage Comparison", p.Title.Text)
	assert.Equal(t, "Token Usage", p.X.Label.Text)
	assert.Equal(t, 0.0, p.X.Min)
	assert.GreaterOrEqual(t, p.X.Max, 120.0)
}

func TestSVGEscapesLabels(t *testing.T) {
	c := BarChart{Title: "<b>", Bars: []Bar{{Label: "a&b", Value: 1, Color: "blue"}}}
	svg, err := c.SVG()
	require.NoError(t, err)
	assert.NotContains(t, svg, "<b>")
}

func TestSVGZeroValues(t *testing.T) {
	p, err := TokenChart(types.PerformanceMetrics{}).build()
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.X.Min)
	assert.Equal(t, 1.0, p.X.Max)

	_, err = TokenChart(types.PerformanceMetrics{}).SVG()
	assert.NoError(t, err)
}

func TestSVGUnknownColor(t *testing.T) {
	c := BarChart{Bars: []Bar{{Label: "x", Value: 1, Color: "not-a-color"}}}
	_, err := c.SVG()
	assert.ErrorIs(t, err, ErrUnknownColor)
}

func TestInvalidValues(t *testing.T) {
	for _, v := range []float64{-1, math.NaN(), math.Inf(1)} {
		c := BarChart{Bars: []Bar{{Label: "x", Value: v}}}
		_, err := c.SVG()
		assert.ErrorIs(t, err, ErrNegativeValue)
		assert.ErrorIs(t, c.WriteText(&bytes.Buffer{}, 20), ErrNegativeValue)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, LatencyChart(sample).WriteText(&buf, 40))

	want := "Latency Comparison\n" +
		"Chain of Draft   | " + strings.Repeat("#", 5) + " 1.25\n" +
		"Chain of Thought | " + strings.Repeat("#", 40) + " 10\n" +
		strings.Repeat(" ", 19) + "Latency (s)\n"
	assert.Equal(t, want, buf.String())
}
