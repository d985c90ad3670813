// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdiddy/chain-of-draft/internal/export"
	"github.com/pdiddy/chain-of-draft/internal/pipeline"
	"github.com/pdiddy/chain-of-draft/pkg/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(types.ServerConfig{}, types.DefaultRunConfig(), zap.NewNop())
	require.NoError(t, err)
	return s
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestIndexDefaults(t *testing.T) {
	s := newTestServer(t)
	w := get(t, s, "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()

	assert.Contains(t, body, "<h1>ChainOfDraftApp</h1>")
	assert.Contains(t, body, "Step 5: word word word word word")
	assert.Contains(t, body, `id="thought-steps"`)
	assert.Contains(t, body, "Step 5: Detailed explanation of step 5.")
	assert.Contains(t, body, "CoD Latency (s)")
	assert.Contains(t, body, "CoT Tokens")
	assert.Contains(t, body, "Latency Comparison")
	assert.Contains(t, body, "Token Usage Comparison")
	assert.Contains(t, body, "<svg ")
	assert.Contains(t, body, "/export.csv?")
	assert.Contains(t, body, "seed=")
	assert.Contains(t, body, " checked>")
	assert.Contains(t, body, "Download the performance metrics for further analysis.")
}

func TestIndexSubmittedWithoutComparison(t *testing.T) {
	s := newTestServer(t)
	w := get(t, s, "/?submitted=1&num_steps=2&token_limit=3")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Step 2: word word word")
	assert.NotContains(t, body, "Step 3: word")
	assert.NotContains(t, body, `id="thought-steps"`)
	assert.NotContains(t, body, " checked>")
}

func TestIndexSeededMatchesPipeline(t *testing.T) {
	s := newTestServer(t)
	w := get(t, s, "/?num_steps=4&token_limit=2&seed=42")
	require.Equal(t, http.StatusOK, w.Code)

	want, err := pipeline.Run(types.RunConfig{NumSteps: 4, TokenLimit: 2, ShowComparison: true, Seed: 42}, nil)
	require.NoError(t, err)
	for _, wd := range want.Widgets {
		assert.Contains(t, w.Body.String(), `<div class="number">`+wd.Value+`</div>`)
	}
	assert.Contains(t, w.Body.String(), `name="seed" value="42"`)
}

func TestIndexInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		target string
		errMsg string
	}{
		{name: "zero steps", target: "/?num_steps=0", errMsg: "number of steps 0"},
		{name: "token limit too high", target: "/?token_limit=11", errMsg: "token limit 11"},
		{name: "non-numeric", target: "/?num_steps=abc", errMsg: "invalid configuration"},
		{name: "bad checkbox", target: "/?show_comparison=maybe", errMsg: "show_comparison"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			w := get(t, s, tt.target)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := w.Body.String()
			assert.Contains(t, body, `role="alert"`)
			assert.Contains(t, body, tt.errMsg)
			assert.NotContains(t, body, "<svg ")
			assert.NotContains(t, body, "/export.csv?")
		})
	}
}

func TestExportCSV(t *testing.T) {
	s := newTestServer(t)
	w := get(t, s, "/export.csv?num_steps=3&token_limit=2&show_comparison=false&seed=42")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Equal(t, `attachment; filename="performance_metrics.csv"`, w.Header().Get("Content-Disposition"))

	report, err := pipeline.Run(types.RunConfig{NumSteps: 3, TokenLimit: 2, Seed: 42}, nil)
	require.NoError(t, err)
	var want bytes.Buffer
	require.NoError(t, export.WriteCSV(&want, report.Records))
	assert.Equal(t, want.String(), w.Body.String())

	lines := strings.Split(strings.TrimSuffix(w.Body.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Method,Latency,Tokens", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Chain of Draft,"))
	assert.True(t, strings.HasPrefix(lines[2], "Chain of Thought,"))
}

func TestExportCSVInvalid(t *testing.T) {
	s := newTestServer(t)
	w := get(t, s, "/export.csv?token_limit=0")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "token limit 0")
}

func TestAPIReport(t *testing.T) {
	s := newTestServer(t)
	w := get(t, s, "/api/report?seed=7")
	require.Equal(t, http.StatusOK, w.Code)

	var got types.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, types.DefaultSteps, got.Config.NumSteps)
	assert.Equal(t, uint64(7), got.Config.Seed)
	assert.Len(t, got.DraftSteps, types.DefaultSteps)
	assert.Len(t, got.ThoughtSteps, types.DefaultSteps)
	assert.Len(t, got.Records, 2)

	w = get(t, s, "/api/report?num_steps=42")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errBody map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.Contains(t, errBody["error"], "number of steps 42")
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := get(t, s, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestEncodeConfig(t *testing.T) {
	q := encodeConfig(types.RunConfig{NumSteps: 3, TokenLimit: 4, ShowComparison: true})
	assert.Equal(t, "num_steps=3&show_comparison=true&token_limit=4", q)

	q = encodeConfig(types.RunConfig{NumSteps: 1, TokenLimit: 1, Seed: 9})
	assert.Equal(t, "num_steps=1&seed=9&show_comparison=false&token_limit=1", q)
}
