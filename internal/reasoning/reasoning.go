// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reasoning generates the placeholder Chain of Draft and Chain of
// Thought step sequences and validates run configuration.
package reasoning

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pdiddy/chain-of-draft/pkg/types"
)

const (
	draftWord = "word"

	stepsRule      = "min=1,max=10"
	tokenLimitRule = "min=1,max=10"
)

// ErrInvalidConfig is returned when a step count or token limit falls
// outside the accepted range.
var ErrInvalidConfig = errors.New("invalid configuration")

var validate = validator.New()

// Validate checks every bounded field of cfg and reports all violations in
// one error wrapping ErrInvalidConfig.
func Validate(cfg types.RunConfig) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating configuration: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe.Field(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// GenerateDraftSteps returns numSteps steps, each "Step i: " followed by
// tokenLimit space-separated filler words.
func GenerateDraftSteps(numSteps, tokenLimit int) ([]types.ReasoningStep, error) {
	if err := checkSteps(numSteps); err != nil {
		return nil, err
	}
	if err := checkVar("TokenLimit", tokenLimit, tokenLimitRule); err != nil {
		return nil, err
	}

	body := strings.TrimSuffix(strings.Repeat(draftWord+" ", tokenLimit), " ")
	steps := make([]types.ReasoningStep, numSteps)
	for i := range steps {
		n := i + 1
		steps[i] = types.ReasoningStep{
			Index: n,
			Text:  fmt.Sprintf("Step %d: %s", n, body),
		}
	}
	return steps, nil
}

// GenerateThoughtSteps returns numSteps templated explanation steps.
func GenerateThoughtSteps(numSteps int) ([]types.ReasoningStep, error) {
	if err := checkSteps(numSteps); err != nil {
		return nil, err
	}

	steps := make([]types.ReasoningStep, numSteps)
	for i := range steps {
		n := i + 1
		steps[i] = types.ReasoningStep{
			Index: n,
			Text:  fmt.Sprintf("Step %d: Detailed explanation of step %d.", n, n),
		}
	}
	return steps, nil
}

// CheckBounds validates a step count and token limit pair outside of a
// full RunConfig.
func CheckBounds(numSteps, tokenLimit int) error {
	if err := checkSteps(numSteps); err != nil {
		return err
	}
	return checkVar("TokenLimit", tokenLimit, tokenLimitRule)
}

func checkSteps(numSteps int) error {
	return checkVar("NumSteps", numSteps, stepsRule)
}

func checkVar(field string, value int, rule string) error {
	if err := validate.Var(value, rule); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating %s: %w", field, err)
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, describe(field, value))
	}
	return nil
}

func describe(field string, value any) string {
	switch field {
	case "NumSteps":
		return fmt.Sprintf("number of steps %v out of range [%d, %d]", value, types.MinSteps, types.MaxSteps)
	case "TokenLimit":
		return fmt.Sprintf("token limit %v out of range [%d, %d]", value, types.MinTokenLimit, types.MaxTokenLimit)
	default:
		return fmt.Sprintf("%s %v is invalid", field, value)
	}
}
