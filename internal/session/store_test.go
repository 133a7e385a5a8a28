package session

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helloasmak/vyra/internal/domain"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *time.Time) {
	t.Helper()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := NewStore(ttl)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestCreateSeedsWelcome(t *testing.T) {
	s, _ := newTestStore(t, time.Minute)

	sess := s.Create()
	assert.True(t, strings.HasPrefix(sess.SessionID, "sess_"))
	require.Len(t, sess.Messages, 1)
	assert.Equal(t, domain.RoleAssistant, sess.Messages[0].Role)
	assert.Equal(t, domain.WelcomeMessage, sess.Messages[0].Text)
	assert.False(t, sess.Busy)
	assert.Equal(t, 1, s.Len())
}

func TestTranscriptOrdering(t *testing.T) {
	s, _ := newTestStore(t, time.Minute)
	sess := s.Create()

	require.NoError(t, s.Begin(sess.SessionID, "Hello"))
	_, err := s.Complete(sess.SessionID, "Marhaba.")
	require.NoError(t, err)
	require.NoError(t, s.Begin(sess.SessionID, "What services do you offer?"))
	msgs, err := s.Complete(sess.SessionID, "Airport transfers, golf and more.")
	require.NoError(t, err)

	want := []domain.ChatMessage{
		{Role: domain.RoleAssistant, Text: domain.WelcomeMessage},
		{Role: domain.RoleUser, Text: "Hello"},
		{Role: domain.RoleAssistant, Text: "Marhaba."},
		{Role: domain.RoleUser, Text: "What services do you offer?"},
		{Role: domain.RoleAssistant, Text: "Airport transfers, golf and more."},
	}
	assert.Equal(t, want, msgs)

	stored, err := s.Messages(sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, want, stored)
}

func TestBeginWhileBusy(t *testing.T) {
	s, _ := newTestStore(t, time.Minute)
	sess := s.Create()

	require.NoError(t, s.Begin(sess.SessionID, "first"))
	assert.ErrorIs(t, s.Begin(sess.SessionID, "second"), domain.ErrSessionBusy)

	got, err := s.Get(sess.SessionID)
	require.NoError(t, err)
	assert.True(t, got.Busy)
	assert.Len(t, got.Messages, 2)
}

func TestUnknownSession(t *testing.T) {
	s, _ := newTestStore(t, time.Minute)

	_, err := s.Get("sess_missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = s.Messages("sess_missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, s.Begin("sess_missing", "hi"), domain.ErrSessionNotFound)
	_, err = s.Complete("sess_missing", "hi")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestMessagesReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t, time.Minute)
	sess := s.Create()

	msgs, err := s.Messages(sess.SessionID)
	require.NoError(t, err)
	msgs[0].Text = "tampered"

	again, err := s.Messages(sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.WelcomeMessage, again[0].Text)
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	s, now := newTestStore(t, time.Minute)
	idle := s.Create()
	busy := s.Create()
	require.NoError(t, s.Begin(busy.SessionID, "still waiting"))

	*now = now.Add(30 * time.Second)
	fresh := s.Create()

	evicted := s.Sweep(now.Add(45 * time.Second))
	assert.Equal(t, []string{idle.SessionID}, evicted)

	_, err := s.Get(idle.SessionID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = s.Get(busy.SessionID)
	assert.NoError(t, err)
	_, err = s.Get(fresh.SessionID)
	assert.NoError(t, err)
}

func TestConcurrentSessionsAreIndependent(t *testing.T) {
	s := NewStore(time.Minute)
	const n = 20

	ids := make([]string, n)
	for i := range ids {
		ids[i] = s.Create().SessionID
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := s.Begin(id, "Hello"); err != nil {
				t.Errorf("begin %s: %v", id, err)
				return
			}
			if _, err := s.Complete(id, "Marhaba."); err != nil {
				t.Errorf("complete %s: %v", id, err)
			}
		}(id)
	}
	wg.Wait()

	for _, id := range ids {
		msgs, err := s.Messages(id)
		require.NoError(t, err)
		assert.Len(t, msgs, 3)
	}
}
