// Package llm provides an abstraction over text-generation providers.
package llm

import (
	"context"
	"errors"
)

//go:generate mockgen -destination=llmmock/provider.go -package=llmmock . Provider

// Provider generates a single-turn reply.
type Provider interface {
	// Generate sends one prompt with a system instruction and returns the
	// provider's visible text. An empty string with a nil error means the
	// provider answered without text.
	Generate(ctx context.Context, req *GenerateRequest) (string, error)
}

// GenerateRequest is a single-turn generation request.
type GenerateRequest struct {
	Model             string
	Prompt            string
	SystemInstruction string
	Temperature       float32
}

// ErrMissingCredential is returned by NewProvider when no API key is configured.
var ErrMissingCredential = errors.New("llm provider credential is not configured")

// Ensure implementations satisfy Provider.
var (
	_ Provider = (*GeminiClient)(nil)
	_ Provider = (*OpenAIClient)(nil)
	_ Provider = (*MockClient)(nil)
)
