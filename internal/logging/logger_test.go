package logging_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"substation/internal/logging"
)

func TestNewConsoleLoggerPromotesComponent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.log")
	logger, err := logging.New(logging.Options{
		Level:       "debug",
		Format:      "console",
		OutputPaths: []string{path},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logging.WithComponent(logger, "styling").Info("subtitle converted",
		logging.Int("cues", 42),
		logging.String("output", "/out/movie file.ass"),
	)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := strings.TrimSpace(string(data))
	if !strings.Contains(line, " INFO styling: subtitle converted") {
		t.Fatalf("component not promoted into prefix: %q", line)
	}
	if !strings.Contains(line, "cues=42") {
		t.Fatalf("missing attribute: %q", line)
	}
	if !strings.Contains(line, `output="/out/movie file.ass"`) {
		t.Fatalf("value with spaces should be quoted: %q", line)
	}
}

func TestNewJSONLoggerRemapsKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "json.log")
	logger, err := logging.New(logging.Options{
		Level:       "info",
		Format:      "json",
		OutputPaths: []string{path},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Warn("queue stalled", logging.Int("pending", 3))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, data)
	}
	if record["msg"] != "queue stalled" {
		t.Fatalf("unexpected msg: %#v", record)
	}
	if record["level"] != "warn" {
		t.Fatalf("unexpected level: %#v", record)
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("missing ts key: %#v", record)
	}
	if record["pending"] != float64(3) {
		t.Fatalf("unexpected attribute: %#v", record)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.log")
	logger, err := logging.New(logging.Options{
		Level:       "error",
		Format:      "console",
		OutputPaths: []string{path},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("should be dropped")
	logger.Error("should be kept")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	if strings.Contains(text, "should be dropped") {
		t.Fatalf("info record leaked at error level: %q", text)
	}
	if !strings.Contains(text, "should be kept") {
		t.Fatalf("error record missing: %q", text)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAddsStandardFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "context.log")
	logger, err := logging.New(logging.Options{Format: "console", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx := logging.WithRequestID(logging.WithStage(logging.WithItemID(context.Background(), 7), "styling"), "req-123")
	logging.WithContext(ctx, logger).Info("stage started")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	for _, want := range []string{"item_id=7", "stage=styling", "request_id=req-123"} {
		if !strings.Contains(line, want) {
			t.Fatalf("missing %q in %q", want, line)
		}
	}
}

func TestRequestIDFromContext(t *testing.T) {
	if _, ok := logging.RequestIDFromContext(context.Background()); ok {
		t.Fatal("expected no request id on empty context")
	}
	ctx := logging.WithRequestID(context.Background(), "abc")
	id, ok := logging.RequestIDFromContext(ctx)
	if !ok || id != "abc" {
		t.Fatalf("unexpected request id: %q ok=%v", id, ok)
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Info("goes nowhere")
	logger.Error("also nowhere")
}
