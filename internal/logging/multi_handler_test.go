package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingHandler struct{ err error }

func (f failingHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (f failingHandler) Handle(context.Context, slog.Record) error { return f.err }
func (f failingHandler) WithAttrs([]slog.Attr) slog.Handler        { return f }
func (f failingHandler) WithGroup(string) slog.Handler             { return f }

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	handler := NewMultiHandler(
		slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	logger := slog.New(handler)
	logger.Info("just info")
	logger.Error("something broke", "error", "boom")

	assert.Contains(t, a.String(), "just info")
	assert.Contains(t, a.String(), "something broke")
	// The error-level handler only sees the error record.
	assert.NotContains(t, b.String(), "just info")
	assert.Contains(t, b.String(), "something broke")
}

func TestMultiHandlerFailingSinkDoesNotBlockOthers(t *testing.T) {
	var out bytes.Buffer
	sinkErr := errors.New("sink down")
	handler := NewMultiHandler(
		failingHandler{err: sinkErr},
		slog.NewJSONHandler(&out, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	var record slog.Record
	record.Level = slog.LevelError
	record.Message = "still delivered"

	err := handler.Handle(context.Background(), record)
	assert.ErrorIs(t, err, sinkErr)
	assert.Contains(t, out.String(), "still delivered")
}

func TestMultiHandlerEnabled(t *testing.T) {
	handler := NewMultiHandler(
		slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	ctx := context.Background()
	assert.False(t, handler.Enabled(ctx, slog.LevelInfo))
	assert.True(t, handler.Enabled(ctx, slog.LevelError))
}
