// Package config provides configuration for the concierge service.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// ModeMock replaces the text-generation provider with a local mock.
	ModeMock = "MOCK"

	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// Config holds the service configuration.
type Config struct {
	// Server settings
	HTTPPort      int    `envconfig:"HTTP_PORT" default:"8080"`
	AllowedOrigin string `envconfig:"ALLOWED_ORIGIN" default:"*"`
	// Bearer token for the /v1/operator routes; they are not served when empty.
	OperatorToken string `envconfig:"OPERATOR_TOKEN"`

	// Database
	DatabaseURL string `envconfig:"DATABASE_URL" default:"file:vyra.db?cache=shared&mode=rwc"`

	// Static content override; the embedded catalog is used when empty.
	ContentFile string `envconfig:"CONTENT_FILE"`

	// Provider settings
	Mode         string `envconfig:"VYRA_MODE"`
	LLMProvider  string `envconfig:"LLM_PROVIDER" default:"gemini"`
	APIKey       string `envconfig:"API_KEY"`
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	LLMModel     string `envconfig:"LLM_MODEL"`
	LLMBaseURL   string `envconfig:"LLM_BASE_URL"`

	// Chat settings
	ConciergeTimeout     time.Duration `envconfig:"CONCIERGE_TIMEOUT" default:"30s"`
	ChatMaxMessageLength int           `envconfig:"CHAT_MAX_MESSAGE_LENGTH" default:"2000"`
	SessionTTL           time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	SessionSweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"1m"`

	// WebSocket settings
	WSPingInterval   time.Duration `envconfig:"WS_PING_INTERVAL" default:"30s"`
	WSWriteTimeout   time.Duration `envconfig:"WS_WRITE_TIMEOUT" default:"10s"`
	WSReadTimeout    time.Duration `envconfig:"WS_READ_TIMEOUT" default:"60s"`
	WSMaxMessageSize int64         `envconfig:"WS_MAX_MESSAGE_SIZE" default:"65536"`

	// Logging
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
	LogFile   string `envconfig:"LOG_FILE"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.LLMProvider = strings.ToLower(strings.TrimSpace(cfg.LLMProvider))
	cfg.Mode = strings.ToUpper(strings.TrimSpace(cfg.Mode))

	if cfg.LLMProvider == "" {
		cfg.LLMProvider = ProviderGemini
	}
	switch cfg.LLMProvider {
	case ProviderGemini, ProviderOpenAI, ProviderMock:
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.LLMProvider)
	}
	if cfg.ChatMaxMessageLength <= 0 {
		return nil, fmt.Errorf("CHAT_MAX_MESSAGE_LENGTH must be positive, got %d", cfg.ChatMaxMessageLength)
	}
	return &cfg, nil
}

// MockMode reports whether the provider is replaced by the local mock.
func (c *Config) MockMode() bool {
	return c.Mode == ModeMock || c.LLMProvider == ProviderMock
}

// Credential returns the provider credential. API_KEY wins over GEMINI_API_KEY.
// In mock mode a placeholder is returned so the concierge answers locally.
func (c *Config) Credential() string {
	if key := strings.TrimSpace(c.APIKey); key != "" {
		return key
	}
	if key := strings.TrimSpace(c.GeminiAPIKey); key != "" {
		return key
	}
	if c.MockMode() {
		return "mock"
	}
	return ""
}
