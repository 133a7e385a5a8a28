package service

import (
	"context"

	"github.com/helloasmak/vyra/internal/config"
	"github.com/helloasmak/vyra/internal/content"
	"github.com/helloasmak/vyra/internal/inquiry"
	"github.com/helloasmak/vyra/internal/policy"
	"github.com/helloasmak/vyra/internal/repository"
	"github.com/helloasmak/vyra/internal/session"
)

// Concierge answers a single guest question. Implementations never fail.
type Concierge interface {
	GetResponse(ctx context.Context, prompt string) string
}

type Service struct {
	store        store.Store
	concierge    Concierge
	sessions     *session.Store
	catalog      *content.Store
	desk         *inquiry.Desk
	config       *config.Config
	policyEngine *policy.Engine
}

func New(store store.Store, concierge Concierge, sessions *session.Store, catalog *content.Store, cfg *config.Config, policyEngine *policy.Engine) *Service {
	return &Service{
		store:        store,
		concierge:    concierge,
		sessions:     sessions,
		catalog:      catalog,
		desk:         inquiry.NewDesk(inquiry.NewValidator(catalog.ServiceTitles()), store),
		config:       cfg,
		policyEngine: policyEngine,
	}
}

// Ping reports whether the backing database is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
