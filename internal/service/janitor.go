package service

import (
	"context"
	"log/slog"
	"time"
)

const defaultSweepInterval = time.Minute

// RunSessionJanitor evicts idle chat sessions until ctx is cancelled.
func (s *Service) RunSessionJanitor(ctx context.Context) {
	interval := s.config.SessionSweepInterval
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.sweepSessions(ctx, now)
		}
	}
}

func (s *Service) sweepSessions(ctx context.Context, now time.Time) {
	evicted := s.sessions.Sweep(now)
	if len(evicted) == 0 {
		return
	}
	slog.InfoContext(ctx, "chat_sessions_evicted", "count", len(evicted), "remaining", s.sessions.Len())
}
