// Package concierge turns a guest's free-text question into a single reply.
package concierge

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/helloasmak/vyra/internal/adapter/llm"
)

// Fixed replies. Each outcome has its own string so guests and operators can tell them apart.
const (
	CredentialMissingReply = "Our apologies, our digital concierge is currently in a meeting. Please call us at +212 661 111 525 for immediate assistance."
	ProviderFailedReply    = "Our apologies, our digital concierge is temporarily unavailable. Please call us at +212 661 111 525 for immediate assistance."
	ProviderEmptyReply     = "I am currently attending to another guest. How else may I assist you with your luxury travel in Marrakech?"
)

// SystemInstruction is the concierge persona sent with every request.
const SystemInstruction = "You are the Vyra Luxury Marrakech Concierge. You are elegant, helpful, and highly knowledgeable about luxury travel in Marrakech, Morocco. Your goal is to help users understand our services (Airport Transfers, Golf, Tours, Corporate) and provide travel tips for Marrakech. Be concise and professional. Use a tone of high-end Moroccan hospitality."

const (
	DefaultModel   = llm.DefaultGeminiModel
	DefaultTimeout = 30 * time.Second
	Temperature    = float32(0.7)
)

// Options configures a Responder.
type Options struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	Logger  *slog.Logger
}

// Responder answers concierge questions through a text-generation provider.
type Responder struct {
	provider llm.Provider
	apiKey   string
	model    string
	timeout  time.Duration
	logger   *slog.Logger
}

// New creates a Responder. provider may be nil when no credential is configured.
func New(provider llm.Provider, opts Options) *Responder {
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Responder{
		provider: provider,
		apiKey:   strings.TrimSpace(opts.APIKey),
		model:    model,
		timeout:  timeout,
		logger:   logger,
	}
}

// GetResponse returns the concierge reply for prompt. It never returns an
// empty string and makes at most one provider call. Cancelling ctx does not
// abort a call already in flight; the configured timeout bounds it instead.
func (r *Responder) GetResponse(ctx context.Context, prompt string) (reply string) {
	if r.apiKey == "" || r.provider == nil {
		r.logger.WarnContext(ctx, "concierge_credential_missing")
		return CredentialMissingReply
	}

	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.ErrorContext(ctx, "concierge_provider_failed", "panic", rec)
			reply = ProviderFailedReply
		}
	}()

	start := time.Now()
	text, err := r.provider.Generate(callCtx, &llm.GenerateRequest{
		Model:             r.model,
		Prompt:            prompt,
		SystemInstruction: SystemInstruction,
		Temperature:       Temperature,
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "concierge_provider_failed",
			"model", r.model,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return ProviderFailedReply
	}
	if strings.TrimSpace(text) == "" {
		r.logger.WarnContext(ctx, "concierge_provider_empty", "model", r.model)
		return ProviderEmptyReply
	}

	r.logger.DebugContext(ctx, "concierge_replied",
		"model", r.model,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return text
}
