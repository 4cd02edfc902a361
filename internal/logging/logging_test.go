package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// restoreDefaults puts the process-wide loggers back after the test
func restoreDefaults(t *testing.T) {
	t.Helper()
	previous := slog.Default()
	previousOut := log.Writer()
	t.Cleanup(func() {
		slog.SetDefault(previous)
		log.SetOutput(previousOut)
	})
}

func TestInitAt_WritesToFile(t *testing.T) {
	restoreDefaults(t)

	logDir := filepath.Join(t.TempDir(), "logs")
	if err := InitAt(logDir); err != nil {
		t.Fatalf("InitAt() failed: %v", err)
	}

	slog.Debug("cursor moved", "cursor", 3)

	data, err := os.ReadFile(filepath.Join(logDir, "asta.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "cursor moved") || !strings.Contains(string(data), "cursor=3") {
		t.Errorf("log file missing record: %q", string(data))
	}
	if Logger == nil {
		t.Error("Logger should be set after InitAt")
	}
}

func TestInit_UsesHomeDirectory(t *testing.T) {
	restoreDefaults(t)

	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".asta", "logs", "asta.log")); err != nil {
		t.Errorf("log file not created under HOME: %v", err)
	}
}
