package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestPrettyHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newPrettyHandler(&buf, lvl))

	logger = NewComponentLogger(logger, "engine")
	logger.Info("scan complete", Int("directories", 3), String("root", "/tmp/media library"))

	line := buf.String()
	if !strings.Contains(line, "INFO engine: scan complete") {
		t.Errorf("line missing component prefix: %q", line)
	}
	if !strings.Contains(line, "directories=3") {
		t.Errorf("line missing int attr: %q", line)
	}
	if !strings.Contains(line, `root="/tmp/media library"`) {
		t.Errorf("line missing quoted path attr: %q", line)
	}
}

func TestWithContextAddsRunID(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newPrettyHandler(&buf, lvl))

	ctx := WithRunID(context.Background(), "abc123")
	WithContext(ctx, logger).Info("grouping shows")

	if !strings.Contains(buf.String(), "run_id=abc123") {
		t.Errorf("line missing run_id: %q", buf.String())
	}
}

func TestWithContextNilLogger(t *testing.T) {
	logger := WithContext(context.Background(), nil)
	// Must not panic and must be usable.
	logger.Info("noop")
}
