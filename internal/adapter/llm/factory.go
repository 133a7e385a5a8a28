package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Provider names accepted by NewProvider.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// ProviderConfig selects and configures a Provider.
type ProviderConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Mock     bool
}

// NewProvider creates a Provider. Mock mode always returns a MockClient;
// otherwise a missing API key yields ErrMissingCredential.
func NewProvider(ctx context.Context, cfg ProviderConfig) (Provider, error) {
	if cfg.Mock {
		slog.Info("llm_provider_selected", "provider", "mock")
		return NewMockClient(), nil
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingCredential
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderGemini:
		slog.Info("llm_provider_selected", "provider", ProviderGemini)
		return NewGeminiClient(ctx, cfg.APIKey)
	case ProviderOpenAI:
		slog.Info("llm_provider_selected", "provider", ProviderOpenAI, "base_url", cfg.BaseURL)
		return NewOpenAIClient(cfg.APIKey, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
