package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_WithAndComponentFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).Component("schedule_resolver").With("season", 2024)

	logger.WarnContext(context.Background(), "upstream week failed", "week", 6, "error", errors.New("rate limited"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "schedule_resolver" {
		t.Fatalf("missing component field: %v", fields)
	}
	if fields["season"] != int64(2024) || fields["week"] != int64(6) {
		t.Fatalf("unexpected numeric fields: %v", fields)
	}
	if fields["error"] != "rate limited" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
}

func TestNew_ConsoleAndJSONFormats(t *testing.T) {
	t.Parallel()

	var jsonBuf, consoleBuf bytes.Buffer
	New(Options{Level: LevelInfo, Format: FormatJSON, Output: &jsonBuf}).Info("hello", "k", "v")
	New(Options{Level: LevelInfo, Format: FormatConsole, Output: &consoleBuf}).Info("hello", "k", "v")

	if !strings.Contains(jsonBuf.String(), `"msg":"hello"`) {
		t.Fatalf("unexpected json output: %s", jsonBuf.String())
	}
	if strings.Contains(consoleBuf.String(), `"msg"`) || !strings.Contains(consoleBuf.String(), "hello") {
		t.Fatalf("unexpected console output: %s", consoleBuf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{"debug": LevelDebug, "": LevelInfo, "WARNING": LevelWarn, "error": LevelError}
	for in, want := range cases {
		got, ok := ParseLevel(in)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, ok)
		}
	}
	if _, ok := ParseLevel("loud"); ok {
		t.Fatalf("expected unknown level to be rejected")
	}
}
