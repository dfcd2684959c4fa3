package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelWarn, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info")
	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("output = %q", out)
	}
}

func TestWithRun(t *testing.T) {
	var buf bytes.Buffer
	logger, runID := WithRun(New(&buf, "debug"), "main.tri")
	if _, err := uuid.Parse(runID); err != nil {
		t.Fatalf("run id %q: %v", runID, err)
	}
	logger.Info("compiling")
	if out := buf.String(); !strings.Contains(out, "run="+runID) || !strings.Contains(out, "file=main.tri") {
		t.Errorf("output = %q", out)
	}

	_, other := WithRun(nil, "main.tri")
	if other == runID {
		t.Error("run ids repeat")
	}
}
