// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics synthesizes the illustrative latency and token figures
// shown next to the reasoning traces. The figures are random noise scaled by
// the run configuration; nothing is measured.
package metrics

import (
	"fmt"
	"math/rand/v2"

	"github.com/pdiddy/chain-of-draft/internal/reasoning"
	"github.com/pdiddy/chain-of-draft/pkg/types"
)

// Sampling ranges. Float ranges are [lo, hi); integer ranges are [lo, hi).
const (
	draftLatencyLo   = 0.5
	draftLatencyHi   = 1.5
	thoughtLatencyLo = 1.5
	thoughtLatencyHi = 3.0

	draftTokensLo   = 5
	draftTokensHi   = 15
	thoughtTokensLo = 20
	thoughtTokensHi = 30
)

// Source supplies the random draws. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// NewSource returns a PCG-backed source. A zero seed draws a fresh seed.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = FreshSeed()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FreshSeed returns a non-zero seed from the runtime's global generator.
func FreshSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

// Synthesize draws the four metrics for numSteps and tokenLimit from src.
// Bounds are checked before any draw so an invalid call consumes nothing.
func Synthesize(numSteps, tokenLimit int, src Source) (types.PerformanceMetrics, error) {
	if err := reasoning.CheckBounds(numSteps, tokenLimit); err != nil {
		return types.PerformanceMetrics{}, err
	}
	if src == nil {
		return types.PerformanceMetrics{}, fmt.Errorf("metrics: nil random source")
	}

	n := float64(numSteps)
	t := float64(tokenLimit)

	return types.PerformanceMetrics{
		CoDLatency: uniform(src, draftLatencyLo, draftLatencyHi) * n / t,
		CoTLatency: uniform(src, thoughtLatencyLo, thoughtLatencyHi) * n,
		CoDTokens:  float64(intRange(src, draftTokensLo, draftTokensHi)) * n / t,
		CoTTokens:  float64(intRange(src, thoughtTokensLo, thoughtTokensHi)) * n,
	}, nil
}

// Widgets formats m as the four metric cards: latencies to two decimals,
// token counts truncated to integers.
func Widgets(m types.PerformanceMetrics) []types.MetricWidget {
	return []types.MetricWidget{
		{Label: "CoD Latency (s)", Value: fmt.Sprintf("%.2f", m.CoDLatency)},
		{Label: "CoT Latency (s)", Value: fmt.Sprintf("%.2f", m.CoTLatency)},
		{Label: "CoD Tokens", Value: fmt.Sprintf("%d", int(m.CoDTokens))},
		{Label: "CoT Tokens", Value: fmt.Sprintf("%d", int(m.CoTTokens))},
	}
}

func uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

func intRange(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo)
}
