package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/formatting/foundation/core/log"
	"github.com/msto63/formatting/pkg/core/config"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", buf.String(), err)
	}
	return entry
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("fmtx")

	if cfg.Name != "fmtx" {
		t.Errorf("Name = %v, want fmtx", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %v, want console", cfg.Format)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.General.LogLevel = "debug"
	cfg.General.LogFormat = "json"

	lc := FromConfig(cfg, "number")
	if lc.Level != "debug" || lc.Format != "json" || lc.Name != "number" {
		t.Errorf("FromConfig() = %+v", lc)
	}

	if got := FromConfig(nil, "x"); got.Level != "warn" {
		t.Errorf("FromConfig(nil).Level = %v, want warn", got.Level)
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel mdwlog.Level
	}{
		{"debug", "debug", mdwlog.LevelDebug},
		{"warning", "warning", mdwlog.LevelWarn},
		{"error", "error", mdwlog.LevelError},
		{"invalid defaults to info", "invalid", mdwlog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(LoggerConfig{Name: "test", Level: tt.level, Output: &bytes.Buffer{}})
			if logger.GetLevel() != tt.wantLevel {
				t.Errorf("GetLevel() = %v, want %v", logger.GetLevel(), tt.wantLevel)
			}
		})
	}
}

func TestNewLogger_CorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Name: "test", Level: "info", Format: "json", Output: &buf})
	logger.Info("hello")

	entry := decodeLine(t, &buf)
	id, _ := entry["correlation_id"].(string)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("correlation_id = %q, want a UUID", id)
	}
	if entry["logger"] != "test" {
		t.Errorf("logger = %v, want test", entry["logger"])
	}

	buf.Reset()
	logger = NewLogger(LoggerConfig{Level: "info", Format: "json", Output: &buf, CorrelationID: "run-1"})
	logger.Info("hello")
	if got := decodeLine(t, &buf)["correlation_id"]; got != "run-1" {
		t.Errorf("correlation_id = %v, want run-1", got)
	}
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:             "info",
		Format:            "logfmt",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})
	logger.Info("loaded")

	if primary.Len() == 0 || primary.String() != extra.String() {
		t.Errorf("outputs differ: %q vs %q", primary.String(), extra.String())
	}
}

func TestNewSimpleLogger(t *testing.T) {
	logger := NewSimpleLogger("test-service")

	if logger == nil {
		t.Fatal("NewSimpleLogger() returned nil")
	}
	if logger.Name() != "test-service" {
		t.Errorf("Name() = %v, want test-service", logger.Name())
	}
}

func TestNewCorrelationID(t *testing.T) {
	a, b := NewCorrelationID(), NewCorrelationID()
	if a == b {
		t.Errorf("NewCorrelationID() returned %q twice", a)
	}
}

func TestLogger_KeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := Wrap(NewLogger(LoggerConfig{Name: "kv", Level: "debug", Format: "json", Output: &buf}))

	tests := []struct {
		name string
		log  func()
		want map[string]interface{}
	}{
		{"pairs", func() { logger.Info("message", "key1", "value1", "key2", 42) },
			map[string]interface{}{"key1": "value1", "key2": float64(42)}},
		{"odd count drops orphan", func() { logger.Warn("message", "key1", "value1", "orphan") },
			map[string]interface{}{"key1": "value1"}},
		{"non-string key skipped", func() { logger.Debug("message", 123, "value") },
			map[string]interface{}{}},
		{"context fields", func() { logger.With("layout", "{dd}").Error("message") },
			map[string]interface{}{"layout": "{dd}"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log()

			entry := decodeLine(t, &buf)
			for k, v := range tt.want {
				if entry[k] != v {
					t.Errorf("%s = %v, want %v", k, entry[k], v)
				}
			}
			if _, ok := entry["orphan"]; ok {
				t.Error("orphan key should be dropped")
			}
		})
	}
}

func TestLogger_WithLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Wrap(NewLogger(LoggerConfig{Name: "test", Level: "debug", Format: "text", Output: &buf}))
	result := logger.WithLevel(mdwlog.LevelError)

	if result.name != "test" {
		t.Errorf("name should be preserved: got %v", result.name)
	}

	result.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info entry written below error level: %q", buf.String())
	}
	result.Error("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("error entry missing: %q", buf.String())
	}
}

func TestToFields(t *testing.T) {
	if fields := toFields(); fields != nil {
		t.Error("toFields() with no args should return nil")
	}

	fields := toFields("key1", "value1", "key2", 42)
	if fields["key1"] != "value1" {
		t.Errorf("fields[key1] = %v, want value1", fields["key1"])
	}
	if fields["key2"] != 42 {
		t.Errorf("fields[key2] = %v, want 42", fields["key2"])
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	logger := Wrap(NewLogger(LoggerConfig{Name: "benchmark", Level: "info", Output: io.Discard}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", "iteration", i)
	}
}
