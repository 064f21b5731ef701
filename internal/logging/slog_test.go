package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if l == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(l), &m))
		out = append(out, m)
	}
	return out
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newJSONLogger(slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "request started", "kind", "login")
	log.Info(ctx, "logged in", "user_id", "u1")
	log.Warn(ctx, "dropping stale response", "generation", 2)
	log.Error(ctx, "encode session snapshot", "error", "boom")

	got := lines(t, buf)
	require.Len(t, got, 4)
	assert.Equal(t, "DEBUG", got[0]["level"])
	assert.Equal(t, "login", got[0]["kind"])
	assert.Equal(t, "INFO", got[1]["level"])
	assert.Equal(t, "u1", got[1]["user_id"])
	assert.Equal(t, "WARN", got[2]["level"])
	assert.Equal(t, float64(2), got[2]["generation"])
	assert.Equal(t, "ERROR", got[3]["level"])
	assert.Equal(t, "encode session snapshot", got[3]["msg"])
}

func TestSlogLogger_Threshold(t *testing.T) {
	log, buf := newJSONLogger(slog.LevelWarn)
	log.Info(context.Background(), "quiet")
	log.Warn(context.Background(), "loud")

	got := lines(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "loud", got[0]["msg"])
}

func TestSlogLogger_WithAndRequestID(t *testing.T) {
	log, buf := newJSONLogger(slog.LevelDebug)
	ctx := ContextWithRequestID(context.Background(), "req-1")

	log.With("service", "auth").Info(ctx, "otp verified", "user_id", "u1")

	got := lines(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "auth", got[0]["service"])
	assert.Equal(t, "u1", got[0]["user_id"])
	assert.Equal(t, "req-1", got[0][RequestIDKey])
}

func TestRequestIDFrom(t *testing.T) {
	assert.Empty(t, RequestIDFrom(context.Background()))
	assert.Equal(t, "x", RequestIDFrom(ContextWithRequestID(context.Background(), "x")))

	args := []any{"a", 1}
	out := withRequestID(ContextWithRequestID(context.Background(), "x"), args)
	assert.Equal(t, []any{"a", 1, RequestIDKey, "x"}, out)
	assert.Len(t, args, 2)
}

func TestNop(t *testing.T) {
	var l Logger = Nop{}
	ctx := context.TODO()
	assert.NotPanics(t, func() {
		l.Debug(ctx, "x")
		l.Info(ctx, "x")
		l.Warn(ctx, "x")
		l.Error(ctx, "x")
		l.With("a", 1).Info(ctx, "y")
	})
}
