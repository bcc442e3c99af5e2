package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerNotNil(t *testing.T) {
	logger := NewLogger(Config{})
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	logger := NewLogger(Config{Level: "warn"})

	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("expected info level to be disabled")
	}
	if !logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Fatal("expected warn level to be enabled")
	}
}

func TestNewLoggerAttachesServiceFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Service: "postgame-bot", Version: "v1", Output: &buf})

	logger.Info("hello")
	out := buf.String()
	if !strings.Contains(out, "service=postgame-bot") {
		t.Fatalf("expected service field in output, got %q", out)
	}
	if !strings.Contains(out, "version=v1") {
		t.Fatalf("expected version field in output, got %q", out)
	}
}

func TestNewLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: "json", Output: &buf})

	logger.Info("hello")
	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Fatalf("expected JSON output, got %q", buf.String())
	}
}

func TestFromContextFallsBack(t *testing.T) {
	fallback := NewNop()
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected fallback logger")
	}

	stored := NewNop()
	ctx := WithLogger(context.Background(), stored)
	if got := FromContext(ctx, fallback); got != stored {
		t.Fatal("expected stored logger from context")
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	Info(nil, "msg")
	Warn(nil, "msg")
	Error(nil, "msg", nil)
}
