package concierge

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/helloasmak/vyra/internal/adapter/llm"
	"github.com/helloasmak/vyra/internal/adapter/llm/llmmock"
)

func newTestResponder(t *testing.T, apiKey string) (*Responder, *llmmock.MockProvider, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	provider := llmmock.NewMockProvider(ctrl)
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(provider, Options{APIKey: apiKey, Logger: logger}), provider, &logs
}

func TestGetResponseWithoutCredentialMakesNoCall(t *testing.T) {
	r, _, logs := newTestResponder(t, "")

	got := r.GetResponse(context.Background(), "Hello")
	assert.Equal(t, CredentialMissingReply, got)
	assert.Contains(t, logs.String(), "concierge_credential_missing")
}

func TestGetResponseWithNilProvider(t *testing.T) {
	r := New(nil, Options{APIKey: "key"})
	assert.Equal(t, CredentialMissingReply, r.GetResponse(context.Background(), "Hello"))
}

func TestGetResponseReturnsProviderTextVerbatim(t *testing.T) {
	r, provider, _ := newTestResponder(t, "key")

	provider.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *llm.GenerateRequest) (string, error) {
			assert.Equal(t, "Hello", req.Prompt)
			assert.Equal(t, SystemInstruction, req.SystemInstruction)
			assert.Equal(t, DefaultModel, req.Model)
			assert.InDelta(t, 0.7, req.Temperature, 1e-6)
			return "Bonjour, how may I help?", nil
		}).
		Times(1)

	assert.Equal(t, "Bonjour, how may I help?", r.GetResponse(context.Background(), "Hello"))
}

func TestGetResponseProviderFailure(t *testing.T) {
	r, provider, logs := newTestResponder(t, "key")
	provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("connection reset")).Times(1)

	got := r.GetResponse(context.Background(), "Hello")
	assert.Equal(t, ProviderFailedReply, got)
	assert.NotEqual(t, CredentialMissingReply, got)
	assert.Contains(t, logs.String(), "concierge_provider_failed")
	assert.Contains(t, logs.String(), "connection reset")
}

func TestGetResponseProviderEmpty(t *testing.T) {
	for _, text := range []string{"", "   \n"} {
		r, provider, logs := newTestResponder(t, "key")
		provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(text, nil).Times(1)

		got := r.GetResponse(context.Background(), "Hello")
		assert.Equal(t, ProviderEmptyReply, got)
		assert.Contains(t, logs.String(), "concierge_provider_empty")
	}
}

func TestGetResponseRecoversFromPanic(t *testing.T) {
	r, provider, _ := newTestResponder(t, "key")
	provider.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req *llm.GenerateRequest) (string, error) {
			panic("malformed response")
		})

	assert.Equal(t, ProviderFailedReply, r.GetResponse(context.Background(), "Hello"))
}

func TestGetResponseIgnoresCallerCancellation(t *testing.T) {
	r, provider, _ := newTestResponder(t, "key")
	provider.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req *llm.GenerateRequest) (string, error) {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			return "Still here.", nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, "Still here.", r.GetResponse(ctx, "Hello"))
}

func TestGetResponseTimeoutBoundsCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := llmmock.NewMockProvider(ctrl)
	r := New(provider, Options{APIKey: "key", Timeout: 20 * time.Millisecond})

	provider.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req *llm.GenerateRequest) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	assert.Equal(t, ProviderFailedReply, r.GetResponse(context.Background(), "Hello"))
}

func TestRepliesAreDistinctAndNonEmpty(t *testing.T) {
	replies := []string{CredentialMissingReply, ProviderFailedReply, ProviderEmptyReply}
	seen := map[string]bool{}
	for _, reply := range replies {
		require.NotEmpty(t, reply)
		assert.False(t, seen[reply], "duplicate reply %q", reply)
		seen[reply] = true
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	r := New(nil, Options{Model: "  "})
	assert.Equal(t, DefaultModel, r.model)
	assert.Equal(t, DefaultTimeout, r.timeout)
	assert.NotNil(t, r.logger)
}
