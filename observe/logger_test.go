package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestLogger_LevelFiltering verifies entries below the configured level are
// dropped.
func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("warn", &buf)
	ctx := context.Background()

	logger.Debug(ctx, "dropped debug")
	logger.Info(ctx, "dropped info")
	logger.Warn(ctx, "kept warn")
	logger.Error(ctx, "kept error")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "kept warn") {
		t.Errorf("first line = %q, want warn entry", lines[0])
	}
	if !strings.Contains(lines[1], "kept error") {
		t.Errorf("second line = %q, want error entry", lines[1])
	}
}

// TestLogger_JSONShape verifies entries are valid JSON with the standard keys.
func TestLogger_JSONShape(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Info(context.Background(), "computed", Field{Key: "m", Value: 2}, Field{Key: "n", Value: "2"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log entry is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "computed" {
		t.Errorf("msg = %v, want %q", entry["msg"], "computed")
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("entry has no timestamp")
	}
	if entry["n"] != "2" {
		t.Errorf("field n = %v, want %q", entry["n"], "2")
	}
}

// TestLogger_With verifies attached fields appear on every subsequent entry
// and that the parent logger is unaffected.
func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLoggerWithWriter("info", &buf)
	child := parent.With(Field{Key: "strategy", Value: "iterative"})

	child.Info(context.Background(), "first")
	parent.Info(context.Background(), "second")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "iterative") {
		t.Errorf("child entry missing attached field: %q", lines[0])
	}
	if strings.Contains(lines[1], "iterative") {
		t.Errorf("parent entry gained child field: %q", lines[1])
	}
}

func TestNopLogger(t *testing.T) {
	// Must not panic and must discard everything.
	l := NopLogger()
	l.Info(context.Background(), "discarded")
	l.With(Field{Key: "k", Value: "v"}).Error(context.Background(), "also discarded")
}
