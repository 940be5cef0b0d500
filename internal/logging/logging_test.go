package logging

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestSetupVerbose(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	var buf bytes.Buffer
	Setup(true)
	// Replace with a buffer-backed handler at the same level Setup would use
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	slog.Debug("test debug")
	slog.Warn("test warn")

	output := buf.String()
	if !bytes.Contains([]byte(output), []byte("test debug")) {
		t.Error("expected debug message visible in verbose mode")
	}
	if !bytes.Contains([]byte(output), []byte("test warn")) {
		t.Error("expected warn message visible in verbose mode")
	}
}

func TestSetupQuiet(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	var buf bytes.Buffer
	Setup(false)
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	slog.Debug("hidden debug")
	slog.Info("hidden info")
	slog.Warn("visible warn")

	output := buf.Bytes()
	if bytes.Contains(output, []byte("hidden")) {
		t.Error("expected debug and info suppressed")
	}
	if !bytes.Contains(output, []byte("visible warn")) {
		t.Error("expected warn visible")
	}
}
