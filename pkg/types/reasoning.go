// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Method names a reasoning style shown on the dashboard.
type Method string

const (
	MethodDraft   Method = "Chain of Draft"
	MethodThought Method = "Chain of Thought"
)

// Methods lists the reasoning styles in display order.
var Methods = []Method{MethodDraft, MethodThought}

// ReasoningStep is one labeled unit of generated placeholder text.
type ReasoningStep struct {
	// Index is the 1-based position of the step in its sequence.
	Index int `json:"index" yaml:"index"`

	// Text is the full rendered step, including the "Step N: " prefix.
	Text string `json:"text" yaml:"text"`
}

func (s ReasoningStep) String() string {
	return s.Text
}

// PerformanceMetrics holds the synthesized latency and token figures for
// one render cycle. Values are illustrative noise, not measurements.
type PerformanceMetrics struct {
	CoDLatency float64 `json:"cod_latency" yaml:"cod_latency"`
	CoTLatency float64 `json:"cot_latency" yaml:"cot_latency"`
	CoDTokens  float64 `json:"cod_tokens" yaml:"cod_tokens"`
	CoTTokens  float64 `json:"cot_tokens" yaml:"cot_tokens"`
}

// Latencies returns latency values in Methods order.
func (m PerformanceMetrics) Latencies() []float64 {
	return []float64{m.CoDLatency, m.CoTLatency}
}

// Tokens returns token values in Methods order.
func (m PerformanceMetrics) Tokens() []float64 {
	return []float64{m.CoDTokens, m.CoTTokens}
}

// ExportRecord is one row of the metrics export table.
type ExportRecord struct {
	Method  string  `json:"method" yaml:"method"`
	Latency float64 `json:"latency" yaml:"latency"`
	Tokens  float64 `json:"tokens" yaml:"tokens"`
}

// MetricWidget is a labeled, pre-formatted metric card.
type MetricWidget struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Report is the output of one render cycle.
type Report struct {
	Config RunConfig `json:"config" yaml:"config"`

	// DraftSteps is always populated.
	DraftSteps []ReasoningStep `json:"draft_steps" yaml:"draft_steps"`

	// ThoughtSteps is nil when Config.ShowComparison is false.
	ThoughtSteps []ReasoningStep `json:"thought_steps,omitempty" yaml:"thought_steps,omitempty"`

	Metrics PerformanceMetrics `json:"metrics" yaml:"metrics"`
	Widgets []MetricWidget     `json:"widgets" yaml:"widgets"`
	Records []ExportRecord     `json:"records" yaml:"records"`
}
