package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/helloasmak/vyra/internal/domain"
	"github.com/helloasmak/vyra/internal/policy"
)

// StartChat opens a new chat session seeded with the welcome message.
func (s *Service) StartChat(ctx context.Context) domain.ChatSession {
	sess := s.sessions.Create()
	slog.InfoContext(ctx, "chat_session_started", "session_id", sess.SessionID)
	return sess
}

// ChatHistory returns the transcript of a session.
func (s *Service) ChatHistory(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	return s.sessions.Messages(sessionID)
}

// SendChatMessage admits the guest's text, records it, asks the concierge and
// records the reply. It returns the reply and the full transcript.
func (s *Service) SendChatMessage(ctx context.Context, sessionID, text string) (domain.ChatMessage, []domain.ChatMessage, error) {
	if err := s.AcceptChatMessage(ctx, sessionID, text); err != nil {
		return domain.ChatMessage{}, nil, err
	}
	return s.ReplyToChatMessage(ctx, sessionID, text)
}

// AcceptChatMessage admits the guest's text and records it, marking the
// session busy. Every rejection happens here, before any reply is pending.
func (s *Service) AcceptChatMessage(ctx context.Context, sessionID, text string) error {
	if _, err := s.sessions.Get(sessionID); err != nil {
		return err
	}
	if err := s.admit(ctx, text); err != nil {
		return err
	}
	return s.sessions.Begin(sessionID, text)
}

// ReplyToChatMessage asks the concierge about an accepted message and records
// the reply, clearing the busy flag.
func (s *Service) ReplyToChatMessage(ctx context.Context, sessionID, text string) (domain.ChatMessage, []domain.ChatMessage, error) {
	// The session stays busy until a reply is recorded, even if the caller goes away.
	reply := s.concierge.GetResponse(context.WithoutCancel(ctx), text)

	transcript, err := s.sessions.Complete(sessionID, reply)
	if err != nil {
		return domain.ChatMessage{}, nil, fmt.Errorf("failed to record reply: %w", err)
	}
	return domain.ChatMessage{Role: domain.RoleAssistant, Text: reply}, transcript, nil
}

// Ask is the stateless form of the concierge: one question in, one reply out.
func (s *Service) Ask(ctx context.Context, text string) (string, error) {
	if err := s.admit(ctx, text); err != nil {
		return "", err
	}
	return s.concierge.GetResponse(ctx, text), nil
}

func (s *Service) admit(ctx context.Context, text string) error {
	decision, err := s.policyEngine.Evaluate(ctx, policy.Input{
		Text:      text,
		MaxLength: s.config.ChatMaxMessageLength,
	})
	if err != nil {
		return fmt.Errorf("failed to evaluate admission policy: %w", err)
	}

	switch decision {
	case policy.DecisionAllow:
		return nil
	case policy.DecisionRejectEmpty:
		return fmt.Errorf("%w: %w", domain.ErrMessageRejected, domain.ErrEmptyMessage)
	case policy.DecisionRejectTooLong:
		return fmt.Errorf("%w: %w (limit %d characters)", domain.ErrMessageRejected, domain.ErrMessageTooLong, s.config.ChatMaxMessageLength)
	default:
		return fmt.Errorf("%w: %s", domain.ErrMessageRejected, decision)
	}
}
