package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.WarnLevel},
		{"loud", log.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", "text")

	logger.Info("creating database", "path", "sqlite.db")
	if buf.Len() != 0 {
		t.Errorf("expected info to be suppressed at warn level, got %q", buf.String())
	}

	logger.Warn("slow disk")
	if !strings.Contains(buf.String(), "slow disk") {
		t.Errorf("expected warning in output, got %q", buf.String())
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", "json")

	logger.Info("creating database", "path", "sqlite.db")

	out := buf.String()
	if !strings.Contains(out, `"msg":"creating database"`) {
		t.Errorf("expected JSON message field, got %q", out)
	}
	if !strings.Contains(out, `"path":"sqlite.db"`) {
		t.Errorf("expected JSON path field, got %q", out)
	}
}
