package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	logger.Info().Str("file", "input.csv").Msg("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected output to contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, "input.csv") {
		t.Errorf("Expected output to contain field value, got: %s", output)
	}
}

func TestSetDefault(t *testing.T) {
	original := Default()
	defer SetDefault(*original)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	SetDefault(logger)

	Default().Info().Msg("via default")

	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("Expected default logger to write to buffer, got: %s", buf.String())
	}
}

func TestPackageLevelEvents(t *testing.T) {
	tl := CaptureLoggingForTest(t)

	Info().Msg("info event")
	Warn().Msg("warn event")

	if !tl.Contains("info event") {
		t.Error("Expected info event in output")
	}
	if !tl.Contains("warn event") {
		t.Error("Expected warn event in output")
	}
}

func TestNopDiscardsOutput(t *testing.T) {
	// Should not panic, produces nothing
	Nop.Info().Msg("discarded")
}
