// Package session holds chat transcripts in memory for the lifetime of a chat widget.
package session

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/helloasmak/vyra/internal/domain"
)

// DefaultTTL is how long an idle session survives when no TTL is configured.
const DefaultTTL = 30 * time.Minute

type entry struct {
	session *domain.ChatSession
}

// Store is a concurrency-safe in-memory session store.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates an empty store. A non-positive ttl uses DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a session seeded with the concierge welcome message.
func (s *Store) Create() domain.ChatSession {
	now := s.now()
	sess := &domain.ChatSession{
		SessionID:    "sess_" + uuid.New().String(),
		CreatedAt:    now,
		LastActiveAt: now,
		Messages: []domain.ChatMessage{
			{Role: domain.RoleAssistant, Text: domain.WelcomeMessage},
		},
	}

	s.mu.Lock()
	s.sessions[sess.SessionID] = &entry{session: sess}
	s.mu.Unlock()

	return snapshot(sess)
}

// Get returns a copy of the session.
func (s *Store) Get(id string) (domain.ChatSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[id]
	if !ok {
		return domain.ChatSession{}, domain.ErrSessionNotFound
	}
	return snapshot(e.session), nil
}

// Messages returns a copy of the session transcript.
func (s *Store) Messages(id string) ([]domain.ChatMessage, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return sess.Messages, nil
}

// Begin appends the guest's message and marks the session busy until Complete.
func (s *Store) Begin(id, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	if e.session.Busy {
		return domain.ErrSessionBusy
	}
	e.session.Messages = append(e.session.Messages, domain.ChatMessage{Role: domain.RoleUser, Text: text})
	e.session.Busy = true
	e.session.LastActiveAt = s.now()
	return nil
}

// Complete appends the concierge reply, clears the busy flag and returns the transcript.
func (s *Store) Complete(id, reply string) ([]domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	e.session.Messages = append(e.session.Messages, domain.ChatMessage{Role: domain.RoleAssistant, Text: reply})
	e.session.Busy = false
	e.session.LastActiveAt = s.now()
	return append([]domain.ChatMessage(nil), e.session.Messages...), nil
}

// Sweep evicts sessions idle for longer than the TTL and returns their ids.
// Busy sessions are kept.
func (s *Store) Sweep(now time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	expired := lo.Keys(lo.PickBy(s.sessions, func(_ string, e *entry) bool {
		return !e.session.Busy && now.Sub(e.session.LastActiveAt) > s.ttl
	}))
	for _, id := range expired {
		delete(s.sessions, id)
	}
	sort.Strings(expired)
	return expired
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func snapshot(sess *domain.ChatSession) domain.ChatSession {
	out := *sess
	out.Messages = append([]domain.ChatMessage(nil), sess.Messages...)
	return out
}
