package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerRedactsPersonalFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	log := FromZap(zap.New(core))

	log.Info("submission accepted", "email", "ada@example.com", "topic", "Technology", "fullName", "Ada")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["email"] != "[REDACTED]" {
		t.Fatalf("email not redacted: %v", fields["email"])
	}
	if fields["fullName"] != "[REDACTED]" {
		t.Fatalf("fullName not redacted: %v", fields["fullName"])
	}
	if fields["topic"] != "Technology" {
		t.Fatalf("topic should pass through: %v", fields["topic"])
	}
}

func TestSanitizeKeepsDanglingKey(t *testing.T) {
	t.Parallel()

	out := sanitizeKVs([]any{"topic", "Health", "orphan"})
	if len(out) != 3 || out[2] != "orphan" {
		t.Fatalf("unexpected output %v", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	if _, err := New("dev", "loud"); err == nil {
		t.Fatalf("expected level parse error")
	}
	l, err := New("production", "warn")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Sync()
}
