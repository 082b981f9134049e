package logging

import (
	"bytes"
	"strings"
	"testing"

	"titlectl/internal/domain/interfaces"
)

func TestLogrusLogger_EmitsFields(t *testing.T) {
	logger := NewLogrusLogger(false)
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Info("removal complete", interfaces.F("label", "firefox"), interfaces.F("deleted", 2))

	out := buf.String()
	if !strings.Contains(out, "removal complete") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "label=firefox") {
		t.Errorf("output missing structured field: %q", out)
	}
}

func TestLogrusLogger_DebugSuppressedByDefault(t *testing.T) {
	logger := NewLogrusLogger(false)
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Debug("noisy detail")
	if buf.Len() != 0 {
		t.Errorf("debug output present without debug mode: %q", buf.String())
	}
}

func TestLogrusLogger_DebugEnabled(t *testing.T) {
	logger := NewLogrusLogger(true)
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Debug("noisy detail")
	if !strings.Contains(buf.String(), "noisy detail") {
		t.Errorf("debug output missing in debug mode: %q", buf.String())
	}
}
