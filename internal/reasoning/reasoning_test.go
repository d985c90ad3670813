// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reasoning

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/chain-of-draft/pkg/types"
)

func texts(steps []types.ReasoningStep) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Text
	}
	return out
}

func TestGenerateDraftSteps(t *testing.T) {
	steps, err := GenerateDraftSteps(3, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Step 1: word word",
		"Step 2: word word",
		"Step 3: word word",
	}, texts(steps))
	for i, s := range steps {
		assert.Equal(t, i+1, s.Index)
	}
}

func TestGenerateDraftStepsAllInRange(t *testing.T) {
	for n := types.MinSteps; n <= types.MaxSteps; n++ {
		for k := types.MinTokenLimit; k <= types.MaxTokenLimit; k++ {
			steps, err := GenerateDraftSteps(n, k)
			require.NoError(t, err)
			require.Len(t, steps, n)

			words := make([]string, k)
			for i := range words {
				words[i] = "word"
			}
			for i, s := range steps {
				want := fmt.Sprintf("Step %d: %s", i+1, strings.Join(words, " "))
				assert.Equal(t, want, s.Text, "n=%d k=%d step=%d", n, k, i+1)
			}
		}
	}
}

func TestGenerateThoughtSteps(t *testing.T) {
	steps, err := GenerateThoughtSteps(2)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Step 1: Detailed explanation of step 1.",
		"Step 2: Detailed explanation of step 2.",
	}, texts(steps))
}

func TestGenerateThoughtStepsAllInRange(t *testing.T) {
	for n := types.MinSteps; n <= types.MaxSteps; n++ {
		steps, err := GenerateThoughtSteps(n)
		require.NoError(t, err)
		require.Len(t, steps, n)
		for i, s := range steps {
			assert.Equal(t, fmt.Sprintf("Step %d: Detailed explanation of step %d.", i+1, i+1), s.String())
		}
	}
}

func TestGeneratorsDeterministic(t *testing.T) {
	a, err := GenerateDraftSteps(7, 4)
	require.NoError(t, err)
	b, err := GenerateDraftSteps(7, 4)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := GenerateThoughtSteps(7)
	require.NoError(t, err)
	d, err := GenerateThoughtSteps(7)
	require.NoError(t, err)
	assert.Equal(t, c, d)
}

func TestGenerateDraftStepsInvalid(t *testing.T) {
	tests := []struct {
		name       string
		numSteps   int
		tokenLimit int
		errMsg     string
	}{
		{name: "zero token limit", numSteps: 3, tokenLimit: 0, errMsg: "token limit 0"},
		{name: "negative token limit", numSteps: 3, tokenLimit: -2, errMsg: "token limit -2"},
		{name: "token limit above max", numSteps: 3, tokenLimit: 11, errMsg: "token limit 11"},
		{name: "zero steps", numSteps: 0, tokenLimit: 3, errMsg: "number of steps 0"},
		{name: "steps above max", numSteps: 11, tokenLimit: 3, errMsg: "number of steps 11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, err := GenerateDraftSteps(tt.numSteps, tt.tokenLimit)
			require.Error(t, err)
			assert.Nil(t, steps)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestGenerateThoughtStepsInvalid(t *testing.T) {
	for _, n := range []int{-1, 0, 11} {
		_, err := GenerateThoughtSteps(n)
		assert.ErrorIs(t, err, ErrInvalidConfig, "numSteps=%d", n)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     types.RunConfig
		wantErr []string
	}{
		{name: "defaults", cfg: types.DefaultRunConfig()},
		{name: "lower bounds", cfg: types.RunConfig{NumSteps: 1, TokenLimit: 1}},
		{name: "upper bounds", cfg: types.RunConfig{NumSteps: 10, TokenLimit: 10}},
		{
			name:    "both zero",
			cfg:     types.RunConfig{},
			wantErr: []string{"number of steps 0", "token limit 0"},
		},
		{
			name:    "steps too high",
			cfg:     types.RunConfig{NumSteps: 11, TokenLimit: 5},
			wantErr: []string{"number of steps 11"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
			for _, msg := range tt.wantErr {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestCheckBounds(t *testing.T) {
	assert.NoError(t, CheckBounds(5, 5))
	assert.ErrorIs(t, CheckBounds(5, 0), ErrInvalidConfig)
	assert.ErrorIs(t, CheckBounds(0, 5), ErrInvalidConfig)
}
