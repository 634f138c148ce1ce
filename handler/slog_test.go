package handler

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/philipp01105/safelog/core"
)

func TestSlogHandler_Basic(t *testing.T) {
	var buf bytes.Buffer
	inner := NewConsole(ConsoleConfig{Writer: &buf})
	cat := core.NewCategory("bridge", core.DebugLevel)

	log := slog.New(NewSlogHandler(inner, cat, core.InfoLevel))
	log.Info("via slog", "user", "alice", "count", 3)

	out := buf.String()
	if !strings.Contains(out, "via slog") {
		t.Errorf("missing message, got: %s", out)
	}
	if !strings.Contains(out, "user=alice") {
		t.Errorf("missing attr, got: %s", out)
	}
	if !strings.Contains(out, "count=3") {
		t.Errorf("missing attr, got: %s", out)
	}
	if !strings.Contains(out, "bridge") {
		t.Errorf("missing category, got: %s", out)
	}
}

func TestSlogHandler_LevelGate(t *testing.T) {
	var buf bytes.Buffer
	inner := NewConsole(ConsoleConfig{Writer: &buf})

	log := slog.New(NewSlogHandler(inner, nil, core.WarnLevel))
	log.Info("should not appear")
	if buf.Len() > 0 {
		t.Errorf("info record passed a warn gate: %s", buf.String())
	}
	log.Warn("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("warn record missing: %s", buf.String())
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	inner := NewConsole(ConsoleConfig{Writer: &buf})

	log := slog.New(NewSlogHandler(inner, nil, core.DebugLevel)).
		With("app", "test").
		WithGroup("req")
	log.Info("grouped", "id", 7)

	out := buf.String()
	if !strings.Contains(out, "app=test") {
		t.Errorf("missing pre-set attr, got: %s", out)
	}
	if !strings.Contains(out, "req.id=7") {
		t.Errorf("missing group-prefixed attr, got: %s", out)
	}
}
