package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mle-ats/assignmail/pkg/logger"
)

type ctxKey struct{}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("request_id", id), true
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestNewWithWriter_JSONWithExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, logger.Config{Level: "info", Format: "json"}, requestIDExtractor, nil)

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	log.With(slog.String("component", "resolver")).InfoContext(ctx, "resolved", slog.String("job_id", "job-1"))

	rec := decode(t, &buf)
	require.Equal(t, "resolved", rec["msg"])
	require.Equal(t, "req-1", rec["request_id"])
	require.Equal(t, "resolver", rec["component"])
	require.Equal(t, "job-1", rec["job_id"])
}

func TestNewWithWriter_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, logger.Config{Level: "warn"})

	log.Info("dropped")
	require.Zero(t, buf.Len())

	log.Warn("kept")
	require.Equal(t, "kept", decode(t, &buf)["msg"])
}

func TestNewWithWriter_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger.NewWithWriter(&buf, logger.Config{Format: "text"}).Info("hello", slog.Int("n", 1))

	require.Contains(t, buf.String(), "msg=hello")
	require.Contains(t, buf.String(), "n=1")
}

func TestNewWithWriter_GroupKeepsExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, logger.Config{}, requestIDExtractor).WithGroup("mail")

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-2")
	log.InfoContext(ctx, "sent", slog.String("id", "m-1"))

	rec := decode(t, &buf)
	group, ok := rec["mail"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "m-1", group["id"])
	require.Equal(t, "req-2", group["request_id"])
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for in, want := range tests {
		require.Equal(t, want, logger.ParseLevel(in), in)
	}
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		logger.NewNope().Error("discarded", slog.String("k", "v"))
	})
}
