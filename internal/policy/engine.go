// Package policy evaluates chat admission rules with OPA.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Decision is the outcome of an admission check.
type Decision string

const (
	DecisionAllow         Decision = "allow"
	DecisionRejectEmpty   Decision = "reject_empty"
	DecisionRejectTooLong Decision = "reject_too_long"
)

// Input is the document the admission policy is evaluated against.
type Input struct {
	Text      string `json:"text"`
	MaxLength int    `json:"max_length"`
}

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine prepares the admission query from the given policy module.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.concierge.admission.decision"),
		rego.Module("admission.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}
	return &Engine{query: query}, nil
}

// Evaluate returns the admission decision for a chat message.
func (e *Engine) Evaluate(ctx context.Context, in Input) (Decision, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(map[string]interface{}{
		"text":       in.Text,
		"max_length": in.MaxLength,
	}))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	// The module defines a default, so an empty result set means the query itself is wrong.
	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return "", fmt.Errorf("admission policy produced no decision")
	}

	s, ok := results[0].Expressions[0].Value.(string)
	if !ok {
		return "", fmt.Errorf("admission policy returned %T, want string", results[0].Expressions[0].Value)
	}
	switch d := Decision(s); d {
	case DecisionAllow, DecisionRejectEmpty, DecisionRejectTooLong:
		return d, nil
	default:
		return "", fmt.Errorf("admission policy returned unknown decision %q", s)
	}
}

// DefaultPolicy rejects blank messages and messages longer than max_length runes.
const DefaultPolicy = `
package concierge.admission

import rego.v1

default decision := "allow"

decision := "reject_empty" if {
	trim_space(input.text) == ""
} else := "reject_too_long" if {
	count(input.text) > input.max_length
}
`
