// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export projects performance metrics into a two-row table and
// serializes it as CSV, YAML, or JSON.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/chain-of-draft/pkg/types"
)

// DefaultFileName is the name offered for downloaded metrics.
const DefaultFileName = "performance_metrics.csv"

// ContentTypeCSV is the MIME type of the CSV export.
const ContentTypeCSV = "text/csv"

// ErrLengthMismatch is returned when the method, latency, and token columns
// have different lengths.
var ErrLengthMismatch = errors.New("export columns differ in length")

var header = []string{"Method", "Latency", "Tokens"}

// Records zips the three columns into rows.
func Records(methods []string, latencies, tokens []float64) ([]types.ExportRecord, error) {
	if len(methods) != len(latencies) || len(methods) != len(tokens) {
		return nil, fmt.Errorf("%w: %d methods, %d latencies, %d tokens",
			ErrLengthMismatch, len(methods), len(latencies), len(tokens))
	}
	records := make([]types.ExportRecord, len(methods))
	for i := range methods {
		records[i] = types.ExportRecord{
			Method:  methods[i],
			Latency: latencies[i],
			Tokens:  tokens[i],
		}
	}
	return records, nil
}

// FromMetrics returns the Chain of Draft and Chain of Thought rows for m.
func FromMetrics(m types.PerformanceMetrics) []types.ExportRecord {
	return []types.ExportRecord{
		{Method: string(types.MethodDraft), Latency: m.CoDLatency, Tokens: m.CoDTokens},
		{Method: string(types.MethodThought), Latency: m.CoTLatency, Tokens: m.CoTTokens},
	}
}

// BuildCSV returns the CSV text for the given columns: a header row, one row
// per method, no index column.
func BuildCSV(methods []string, latencies, tokens []float64) (string, error) {
	records, err := Records(methods, latencies, tokens)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteCSV writes records as CSV to w.
func WriteCSV(w io.Writer, records []types.ExportRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{r.Method, formatLatency(r.Latency), formatTokens(r.Tokens)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %q: %w", r.Method, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// WriteYAML writes records as a YAML sequence to w.
func WriteYAML(w io.Writer, records []types.ExportRecord) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing YAML: %w", err)
	}
	return nil
}

// WriteJSON writes records as an indented JSON array to w.
func WriteJSON(w io.Writer, records []types.ExportRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}

// Write encodes records to w in the given format.
func Write(w io.Writer, format types.ExportFormat, records []types.ExportRecord) error {
	switch format {
	case types.ExportCSV, "":
		return WriteCSV(w, records)
	case types.ExportYAML:
		return WriteYAML(w, records)
	case types.ExportJSON:
		return WriteJSON(w, records)
	default:
		return fmt.Errorf("unsupported format %q: use csv, yaml, or json", format)
	}
}

// WriteFile encodes records into path. The file is only created once the
// encoding succeeded.
func WriteFile(path string, format types.ExportFormat, records []types.ExportRecord) error {
	var buf bytes.Buffer
	if err := Write(&buf, format, records); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ParseFormat maps a flag value to an ExportFormat.
func ParseFormat(s string) (types.ExportFormat, error) {
	switch f := types.ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case types.ExportCSV, types.ExportYAML, types.ExportJSON:
		return f, nil
	case "":
		return types.ExportCSV, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use csv, yaml, or json", s)
	}
}

// formatLatency prints the shortest representation with at least one
// decimal place, so 1 becomes "1.0".
func formatLatency(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func formatTokens(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
