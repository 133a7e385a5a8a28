package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLogLevel(in), "level %q", in)
	}
}

func TestNewHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler("text", &buf, nil))
	logger.Info("concierge_ready", "model", "m1")
	assert.Contains(t, buf.String(), "msg=concierge_ready")

	buf.Reset()
	logger = slog.New(newHandler("json", &buf, nil))
	logger.Info("concierge_ready")
	assert.Contains(t, buf.String(), `"msg":"concierge_ready"`)
}

func TestInitWritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "vyra.log")
	logger, err := Init(Options{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)

	logger.Log(context.Background(), slog.LevelDebug, "session_created", "session_id", "sess_1")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session_created")
}
