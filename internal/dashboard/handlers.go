// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/chain-of-draft/internal/chart"
	"github.com/pdiddy/chain-of-draft/internal/export"
	"github.com/pdiddy/chain-of-draft/internal/metrics"
	"github.com/pdiddy/chain-of-draft/internal/pipeline"
	"github.com/pdiddy/chain-of-draft/internal/reasoning"
	"github.com/pdiddy/chain-of-draft/pkg/types"
)

// reportQuery is the query string accepted by every report endpoint.
// Pointer fields distinguish "absent" from a zero value.
type reportQuery struct {
	NumSteps       *int    `form:"num_steps"`
	TokenLimit     *int    `form:"token_limit"`
	ShowComparison *string `form:"show_comparison"`
	Submitted      bool    `form:"submitted"`
	Seed           *uint64 `form:"seed"`
}

// runConfig parses the query on top of the server defaults. A submitted
// form without show_comparison means the checkbox was cleared.
func (s *Server) runConfig(c *gin.Context) (types.RunConfig, error) {
	cfg := s.defaults

	var q reportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return cfg, fmt.Errorf("%w: %v", reasoning.ErrInvalidConfig, err)
	}
	if q.NumSteps != nil {
		cfg.NumSteps = *q.NumSteps
	}
	if q.TokenLimit != nil {
		cfg.TokenLimit = *q.TokenLimit
	}
	if q.Seed != nil {
		cfg.Seed = *q.Seed
	}
	switch {
	case q.ShowComparison != nil:
		show, err := parseCheckbox(*q.ShowComparison)
		if err != nil {
			return cfg, err
		}
		cfg.ShowComparison = show
	case q.Submitted:
		cfg.ShowComparison = false
	}
	return cfg, nil
}

func parseCheckbox(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on":
		return true, nil
	case "", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: show_comparison %q is not a boolean", reasoning.ErrInvalidConfig, v)
	}
	return b, nil
}

func statusFor(err error) int {
	if errors.Is(err, reasoning.ErrInvalidConfig) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// pageData feeds the page template.
type pageData struct {
	Config       types.RunConfig
	Error        string
	Report       *types.Report
	LatencyChart template.HTML
	TokenChart   template.HTML
	ExportURL    string
	StepRange    []int
	TokenRange   []int
}

func (s *Server) handleIndex(c *gin.Context) {
	cfg, err := s.runConfig(c)
	data := pageData{
		Config:     cfg,
		StepRange:  intRange(types.MinSteps, types.MaxSteps),
		TokenRange: intRange(types.MinTokenLimit, types.MaxTokenLimit),
	}

	// Pin the seed so the download link reproduces the figures on the page.
	if cfg.Seed == 0 {
		cfg.Seed = metrics.FreshSeed()
	}

	status := http.StatusOK
	if err == nil {
		data.Report, err = pipeline.Run(cfg, nil)
	}
	if err == nil {
		err = data.charts()
	}
	if err != nil {
		_ = c.Error(err)
		status = statusFor(err)
		data.Report = nil
		data.Error = err.Error()
	} else {
		data.ExportURL = "/export.csv?" + encodeConfig(cfg)
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "rendering page: %v", err)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func (d *pageData) charts() error {
	lat, err := chart.LatencyChart(d.Report.Metrics).SVG()
	if err != nil {
		return err
	}
	tok, err := chart.TokenChart(d.Report.Metrics).SVG()
	if err != nil {
		return err
	}
	// The SVG writer XML-escapes every text node.
	d.LatencyChart = template.HTML(lat)
	d.TokenChart = template.HTML(tok)
	return nil
}

func (s *Server) handleExportCSV(c *gin.Context) {
	report, err := s.report(c)
	if err != nil {
		c.String(statusFor(err), "%v\n", err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, report.Records); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "%v\n", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.DefaultFileName))
	c.Data(http.StatusOK, export.ContentTypeCSV+"; charset=utf-8", buf.Bytes())
}

func (s *Server) handleReport(c *gin.Context) {
	report, err := s.report(c)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) report(c *gin.Context) (*types.Report, error) {
	cfg, err := s.runConfig(c)
	if err != nil {
		_ = c.Error(err)
		return nil, err
	}
	report, err := pipeline.Run(cfg, nil)
	if err != nil {
		_ = c.Error(err)
		return nil, err
	}
	return report, nil
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// encodeConfig renders cfg as the query string the form would submit.
func encodeConfig(cfg types.RunConfig) string {
	v := url.Values{}
	v.Set("num_steps", strconv.Itoa(cfg.NumSteps))
	v.Set("token_limit", strconv.Itoa(cfg.TokenLimit))
	v.Set("show_comparison", strconv.FormatBool(cfg.ShowComparison))
	if cfg.Seed != 0 {
		v.Set("seed", strconv.FormatUint(cfg.Seed, 10))
	}
	return v.Encode()
}

func intRange(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}
