package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"mercator-hq/textutil/pkg/config"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("failed to decode log line %q: %v", buf.String(), err)
	}
	return entry
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"valid JSON config", Config{Level: "info", Format: "json"}, false},
		{"valid text config", Config{Level: "debug", Format: "text"}, false},
		{"defaults", Config{}, false},
		{"upper case level", Config{Level: "WARN"}, false},
		{"invalid log level", Config{Level: "invalid", Format: "json"}, true},
		{"invalid format", Config{Level: "info", Format: "invalid"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.Writer = &bytes.Buffer{}
			logger, err := New(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && logger == nil {
				t.Error("expected logger")
			}
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn should be logged, got %q", buf.String())
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Format: "text", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hello", "k", "v")
	if !strings.Contains(buf.String(), "msg=hello") || !strings.Contains(buf.String(), "k=v") {
		t.Errorf("unexpected text output %q", buf.String())
	}
}

func TestNew_RequestIDFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	ctx := WithRequestID(context.Background(), "req-123")
	logger.InfoContext(ctx, "processing")

	entry := decodeLine(t, &buf)
	if entry["request_id"] != "req-123" {
		t.Errorf("expected request_id, got %v", entry)
	}
}

func TestNew_RequestIDThroughWith(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	child := logger.With("component", "llm")
	child.InfoContext(WithRequestID(context.Background(), "req-9"), "call")

	entry := decodeLine(t, &buf)
	if entry["request_id"] != "req-9" || entry["component"] != "llm" {
		t.Errorf("expected both fields, got %v", entry)
	}
}

func TestNew_Redaction(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("outbound",
		"api_key", "sk-live-abcdef123456",
		"header", "Authorization: Bearer abc.def.ghi",
		"prompt_tokens", 12,
		"question", "How to reset password?",
	)

	entry := decodeLine(t, &buf)
	if entry["api_key"] != "sk-l***" {
		t.Errorf("api_key not masked: %v", entry["api_key"])
	}
	if entry["header"] != "Authorization: Bearer ***" {
		t.Errorf("bearer token not redacted: %v", entry["header"])
	}
	if entry["prompt_tokens"] != float64(12) {
		t.Errorf("token counters must survive, got %v", entry["prompt_tokens"])
	}
	if entry["question"] != "How to reset password?" {
		t.Errorf("ordinary values must survive, got %v", entry["question"])
	}
}

func TestNew_DisableRedaction(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Writer: &buf, DisableRedaction: true})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("outbound", "api_key", "sk-live-abcdef123456")

	if decodeLine(t, &buf)["api_key"] != "sk-live-abcdef123456" {
		t.Error("redaction should be disabled")
	}
}

func TestSetup_InstallsDefault(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	if _, err := Setup(Config{Writer: &buf}); err != nil {
		t.Fatal(err)
	}

	slog.Info("via default")
	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger not installed, got %q", buf.String())
	}
}

func TestFromConfig(t *testing.T) {
	cfg := FromConfig(config.LoggingConfig{Level: "debug", Format: "text", AddSource: true})
	if cfg.Level != "debug" || cfg.Format != "text" || !cfg.AddSource {
		t.Errorf("unexpected conversion %+v", cfg)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"ERROR":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}
