package caseconv

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}

	// All methods are no-ops and must not panic.
	l.Debug("debug", "k", "v")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")

	assert.Equal(t, NopLogger{}, l.With("k", "v"))
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	adapter := NewSlogAdapter(slog.New(handler))

	adapter.Warn("absent input resolves to empty output", "convention", "kebab")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "absent input resolves to empty output")
	assert.Contains(t, out, "convention=kebab")
}

func TestSlogAdapterWith(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, nil)
	adapter := NewSlogAdapter(slog.New(handler))

	child := adapter.With("component", "converter")
	child.Info("ready")

	assert.Contains(t, buf.String(), "component=converter")
}

func TestSlogAdapterNilLogger(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	require.NotNil(t, adapter)
	// Falls back to slog.Default(); logging must not panic.
	adapter.Debug("using default logger")
}
