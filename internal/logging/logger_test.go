package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	t.Cleanup(func() { SetLogger(nil) })

	if err := Initialize(Options{}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected nop logger when no level is configured")
	}
}

func TestInitialize_WritesToFile(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	path := filepath.Join(t.TempDir(), "mystore.log")

	if err := Initialize(Options{Level: "debug", File: path}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	LogStoreMutation("add", "abc", 0)
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "Store mutation") {
		t.Errorf("log file missing entry, got %q", data)
	}
}

func TestInitialize_EnvLevel(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	t.Setenv(LogLevelEnvVar, "warn")
	t.Setenv(LogFileEnvVar, filepath.Join(t.TempDir(), "env.log"))

	if err := Initialize(Options{}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !GetLogger().Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{" warn ", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHelpers_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	LogStoreMutation("remove", "id-1", 3)
	LogScreenTransition("login", "dashboard")
	LogViewRecompute("mug", "", "asc", 4, 2)

	if logs.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", logs.Len())
	}

	mutation := logs.FilterMessage("Store mutation").All()
	if len(mutation) != 1 {
		t.Fatal("missing store mutation entry")
	}
	fields := mutation[0].ContextMap()
	if fields["op"] != "remove" || fields["product_id"] != "id-1" || fields["index"] != int64(3) {
		t.Errorf("unexpected fields: %v", fields)
	}

	view := logs.FilterMessage("View recomputed").All()[0].ContextMap()
	if view["view_len"] != int64(2) {
		t.Errorf("view_len = %v, want 2", view["view_len"])
	}
}
