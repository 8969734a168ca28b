package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"kanjize-hq/kanjize/pkg/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		config     Config
		wantFormat LogFormat
		wantErr    bool
	}{
		{name: "json", config: Config{Level: "info", Format: "json"}, wantFormat: FormatJSON},
		{name: "text", config: Config{Level: "debug", Format: "text"}, wantFormat: FormatText},
		{name: "console", config: Config{Level: "warn", Format: "console"}, wantFormat: FormatConsole},
		{name: "empty defaults", config: Config{}, wantFormat: FormatJSON},
		{name: "upper case", config: Config{Level: "ERROR", Format: "TEXT"}, wantFormat: FormatText},
		{name: "invalid level", config: Config{Level: "verbose"}, wantErr: true},
		{name: "invalid format", config: Config{Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.Writer = &bytes.Buffer{}
			logger, err := New(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if logger.Format() != tt.wantFormat {
				t.Errorf("Format() = %q, want %q", logger.Format(), tt.wantFormat)
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "warn", Format: "json", Writer: buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("expected debug and info to be filtered, got %s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("expected warn and error in output, got %s", out)
	}
}

func TestLogger_SetLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "error", Writer: buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	child := logger.With("component", "server")

	child.Info("before")
	if err := logger.SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel() error = %v", err)
	}
	child.Info("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Error("expected message before SetLevel to be filtered")
	}
	if !strings.Contains(out, "after") {
		t.Error("expected derived logger to follow the new level")
	}
	if logger.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", logger.Level())
	}

	if err := logger.SetLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLogger_ContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "json", Writer: buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithTraceID(ctx, "trace-1")
	ctx = WithOperation(ctx, "to_kanji")

	logger.InfoContext(ctx, "converted", "input", "2025")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode log line %q: %v", buf.String(), err)
	}
	for key, want := range map[string]string{
		"msg":        "converted",
		"request_id": "req-1",
		"trace_id":   "trace-1",
		"operation":  "to_kanji",
		"input":      "2025",
	} {
		if entry[key] != want {
			t.Errorf("%s = %v, want %q", key, entry[key], want)
		}
	}
	if _, ok := entry["span_id"]; ok {
		t.Error("empty span_id should be omitted")
	}
}

func TestLogger_SlogCarriesContext(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Format: "text", Writer: buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Slog().InfoContext(WithRequestID(context.Background(), "abc"), "hello")
	if !strings.Contains(buf.String(), "request_id=abc") {
		t.Errorf("expected request_id in %q", buf.String())
	}
}

func TestLogger_WithContext(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Format: "text", Writer: buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if logger.WithContext(context.Background()) != logger {
		t.Error("WithContext without fields should return the same logger")
	}

	logger.WithContext(WithSpanID(context.Background(), "span-9")).Info("bound")
	if !strings.Contains(buf.String(), "span_id=span-9") {
		t.Errorf("expected span_id in %q", buf.String())
	}
}

func TestLogger_ConsoleOmitsTime(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Format: "console", Writer: buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("plain")
	if strings.Contains(buf.String(), "time=") {
		t.Errorf("console output should not contain time: %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("dropped")
	if logger.Slog().Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard logger should not enable any level")
	}
}

func TestFromConfig(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := FromConfig(config.LoggingConfig{Level: "debug", Format: "text", AddSource: true}, buf)
	if cfg.Level != "debug" || cfg.Format != "text" || !cfg.AddSource || cfg.Writer != buf {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestSetDefault(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	buf := &bytes.Buffer{}
	logger, err := New(Config{Format: "text", Writer: buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	SetDefault(logger)

	slog.InfoContext(WithRequestID(context.Background(), "global"), "via default")
	if !strings.Contains(buf.String(), "request_id=global") {
		t.Errorf("expected default logger to use the handler, got %q", buf.String())
	}
}
