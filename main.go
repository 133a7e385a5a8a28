package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/helloasmak/vyra/internal/adapter/llm"
	"github.com/helloasmak/vyra/internal/concierge"
	"github.com/helloasmak/vyra/internal/config"
	"github.com/helloasmak/vyra/internal/content"
	"github.com/helloasmak/vyra/internal/hub"
	"github.com/helloasmak/vyra/internal/logging"
	"github.com/helloasmak/vyra/internal/policy"
	"github.com/helloasmak/vyra/internal/repository"
	"github.com/helloasmak/vyra/internal/service"
	"github.com/helloasmak/vyra/internal/session"
	server "github.com/helloasmak/vyra/internal/transport/http"
	"github.com/helloasmak/vyra/internal/transport/ws"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if _, err := logging.Init(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile}); err != nil {
		slog.Warn("log_file_unavailable", "path", cfg.LogFile, "error", err)
	}

	slog.Info("vyra_starting",
		"http_port", cfg.HTTPPort,
		"database", cfg.DatabaseURL,
		"llm_provider", cfg.LLMProvider,
		"mock_mode", cfg.MockMode(),
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Static content
	catalog, err := content.LoadFile(cfg.ContentFile)
	if err != nil {
		fatal("content_load_failed", err)
	}

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		fatal("store_init_failed", err)
	}
	defer db.Close()

	// Initialize policy engine
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		fatal("policy_init_failed", err)
	}

	// Initialize text-generation provider. Without a credential the concierge
	// answers with its fixed fallback and never reaches a provider.
	provider, err := llm.NewProvider(ctx, llm.ProviderConfig{
		Provider: cfg.LLMProvider,
		APIKey:   cfg.Credential(),
		BaseURL:  cfg.LLMBaseURL,
		Mock:     cfg.MockMode(),
	})
	if errors.Is(err, llm.ErrMissingCredential) {
		slog.Warn("llm_credential_missing", "provider", cfg.LLMProvider)
		provider = nil
	} else if err != nil {
		fatal("llm_init_failed", err)
	}

	model := cfg.LLMModel
	if model == "" && cfg.LLMProvider == config.ProviderOpenAI {
		model = llm.DefaultOpenAIModel
	}
	responder := concierge.New(provider, concierge.Options{
		APIKey:  cfg.Credential(),
		Model:   model,
		Timeout: cfg.ConciergeTimeout,
	})

	// Initialize service
	sessions := session.NewStore(cfg.SessionTTL)
	svc := service.New(db, responder, sessions, catalog, cfg, policyEngine)
	go svc.RunSessionJanitor(ctx)

	// Realtime chat
	h := hub.NewHub()
	go h.Run(ctx)
	wsServer := ws.NewServer(cfg, h, svc)

	e := server.NewServer(svc, cfg, wsServer)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			fatal("http_server_failed", err)
		}
	}()

	slog.Info("vyra_started", "addr", fmt.Sprintf(":%d", cfg.HTTPPort))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("vyra_shutting_down")
	stop()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("http_shutdown_failed", "error", err)
	}

	slog.Info("vyra_stopped")
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
