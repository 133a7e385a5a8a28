package llm

import (
	"context"
	"fmt"
)

// MockClient is an offline Provider used when VYRA_MODE=MOCK.
type MockClient struct{}

// NewMockClient creates a new mock provider.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Generate echoes the prompt back in a fixed envelope.
func (m *MockClient) Generate(ctx context.Context, req *GenerateRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if req.Prompt == "" {
		return "[MOCK] This is a mock concierge reply.", nil
	}
	return fmt.Sprintf("[MOCK] Received your message: %q. This is a mock concierge reply.", truncate(req.Prompt, 100)), nil
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
