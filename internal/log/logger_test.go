package log_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	applog "github.com/laudwin/Dashlite-v5/internal/log"
)

func TestWithComponent_ReplacesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := applog.New(applog.Config{Level: slog.LevelInfo, Output: &buf})

	loader := logger.WithComponent(applog.ComponentLoader).WithComponent(applog.ComponentLoader)
	loader.Info("dataset loaded")

	out := buf.String()
	if n := strings.Count(out, applog.FieldComponent+"="); n != 1 {
		t.Fatalf("expected one component key, got %d: %s", n, out)
	}
	if !strings.Contains(out, "component=loader") {
		t.Fatalf("expected loader component, got: %s", out)
	}
	if loader.Component() != applog.ComponentLoader {
		t.Fatalf("expected component %q, got %q", applog.ComponentLoader, loader.Component())
	}
}

func TestWithComponent_KeepsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := applog.New(applog.Config{Level: slog.LevelInfo, Output: &buf})

	logger.With(applog.FieldRequestID, "abc").WithComponent(applog.ComponentHTTP).Info("handled")

	out := buf.String()
	if !strings.Contains(out, "request_id=abc") || !strings.Contains(out, "component=http") {
		t.Fatalf("unexpected log output: %s", out)
	}
	if strings.Contains(out, "component=app") {
		t.Fatalf("expected app component to be replaced: %s", out)
	}
}
