// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"html/template"

	"github.com/pdiddy/chain-of-draft/pkg/types"
)

// instructions are shown in the sidebar below the form.
var instructions = []string{
	"Adjust the number of reasoning steps and token limit using the sliders.",
	"Toggle the comparison view to see detailed steps for Chain of Thought.",
	"Observe the latency and token usage changes based on parameters.",
	"Download the performance metrics for further analysis.",
}

func parsePage() (*template.Template, error) {
	return template.New("page").Funcs(template.FuncMap{
		"instructions": func() []string { return instructions },
		"minSteps":     func() int { return types.MinSteps },
		"maxSteps":     func() int { return types.MaxSteps },
		"minTokens":    func() int { return types.MinTokenLimit },
		"maxTokens":    func() int { return types.MaxTokenLimit },
	}).Parse(pageTemplate)
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>ChainOfDraftApp</title>
<style>
:root { --bg: #fff; --fg: #262730; --side: #f0f2f6; --border: #dee2e6; --muted: #6c757d; --accent: #ff4b4b; }
* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; color: var(--fg); background: var(--bg); display: flex; min-height: 100vh; }
aside { width: 300px; background: var(--side); padding: 1.5rem; border-right: 1px solid var(--border); }
main { flex: 1; padding: 2rem 3rem; max-width: 960px; }
h1 { font-size: 2rem; margin-top: 0; }
h2 { font-size: 1.4rem; margin-top: 2rem; }
h3 { font-size: 1.1rem; }
label { display: block; margin: 1rem 0 .25rem; font-size: .875rem; }
input[type=range] { width: 100%; }
.value { font-weight: 600; color: var(--accent); }
button, .download { display: inline-block; margin-top: 1rem; padding: .4rem .9rem; border: 1px solid var(--border); border-radius: 6px; background: #fff; color: var(--fg); text-decoration: none; cursor: pointer; font-size: .875rem; }
.steps { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-size: .875rem; white-space: pre-wrap; margin: 0; padding: 0; list-style: none; }
.metrics { display: grid; grid-template-columns: repeat(2, 1fr); grid-template-rows: repeat(2, auto); grid-auto-flow: column; gap: 1rem; }
.metric .label { font-size: .875rem; color: var(--muted); }
.metric .number { font-size: 2rem; }
.charts svg { display: block; margin: 1rem 0; max-width: 100%; height: auto; }
.error { background: #ffe9e9; border: 1px solid var(--accent); border-radius: 6px; padding: .75rem 1rem; }
.info { background: #e8f1fb; border-radius: 6px; padding: .75rem 1rem; font-size: .875rem; }
.info ul { margin: 0; padding-left: 1.1rem; }
</style>
</head>
<body>
<aside>
  <h2>Configuration</h2>
  <form method="get" action="/">
    <input type="hidden" name="submitted" value="1">
    {{- if .Config.Seed}}
    <input type="hidden" name="seed" value="{{.Config.Seed}}">
    {{- end}}
    <label for="num_steps">Number of Reasoning Steps: <span class="value">{{.Config.NumSteps}}</span></label>
    <input type="range" id="num_steps" name="num_steps" min="{{minSteps}}" max="{{maxSteps}}" step="1" value="{{.Config.NumSteps}}" list="step-ticks">
    <datalist id="step-ticks">{{range .StepRange}}<option value="{{.}}"></option>{{end}}</datalist>
    <label for="token_limit">Token Limit per Step: <span class="value">{{.Config.TokenLimit}}</span></label>
    <input type="range" id="token_limit" name="token_limit" min="{{minTokens}}" max="{{maxTokens}}" step="1" value="{{.Config.TokenLimit}}" list="token-ticks">
    <datalist id="token-ticks">{{range .TokenRange}}<option value="{{.}}"></option>{{end}}</datalist>
    <label><input type="checkbox" name="show_comparison" value="on"{{if .Config.ShowComparison}} checked{{end}}> Show CoT vs CoD Comparison</label>
    <button type="submit">Apply</button>
  </form>

  <h2>Download Results</h2>
  {{- if .ExportURL}}
  <a class="download" href="{{.ExportURL}}" download="performance_metrics.csv">Download metrics as CSV</a>
  {{- else}}
  <p class="info">Fix the configuration to enable the download.</p>
  {{- end}}

  <h2>Instructions</h2>
  <div class="info"><ul>{{range instructions}}<li>{{.}}</li>{{end}}</ul></div>
</aside>
<main>
  <h1>ChainOfDraftApp</h1>
  {{- if .Error}}
  <div class="error" role="alert">{{.Error}}</div>
  {{- end}}
  {{- with .Report}}
  <h2>Chain of Draft Reasoning</h2>
  <h3>Chain of Draft Steps</h3>
  <ul class="steps" id="draft-steps">{{range .DraftSteps}}<li>{{.Text}}</li>{{end}}</ul>
  {{- if .ThoughtSteps}}
  <h2>Comparison with Chain of Thought</h2>
  <h3>Chain of Thought Steps</h3>
  <ul class="steps" id="thought-steps">{{range .ThoughtSteps}}<li>{{.Text}}</li>{{end}}</ul>
  {{- end}}

  <h2>Performance Metrics</h2>
  <div class="metrics">
    {{- range .Widgets}}
    <div class="metric"><div class="label">{{.Label}}</div><div class="number">{{.Value}}</div></div>
    {{- end}}
  </div>
  {{- end}}
  {{- if .Report}}
  <h3>Performance Visualization</h3>
  <div class="charts">
    {{.LatencyChart}}
    {{.TokenChart}}
  </div>
  {{- end}}
</main>
</body>
</html>
`
