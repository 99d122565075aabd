package logger

import (
	"strings"
	"testing"
)

func TestSanitizeKVs(t *testing.T) {
	got := sanitizeKVs([]interface{}{
		"guide_id", 7,
		"db_password", "hunter2",
		"client_ip", "10.0.0.1",
		"addr", "postgres://app:secret@db:5432/stainsolver",
		"dangling",
	})
	if len(got) != 9 {
		t.Fatalf("expected 9 entries, got %d: %v", len(got), got)
	}
	if got[1] != 7 {
		t.Fatalf("plain values must pass through, got %v", got[1])
	}
	if got[3] != "[REDACTED]" {
		t.Fatalf("password not redacted: %v", got[3])
	}
	if ip, _ := got[5].(string); !strings.HasPrefix(ip, "hash:") || strings.Contains(ip, "10.0.0.1") {
		t.Fatalf("client ip not hashed: %v", got[5])
	}
	if got[7] != "[REDACTED]" {
		t.Fatalf("dsn not redacted: %v", got[7])
	}
	if got[8] != "dangling" {
		t.Fatalf("odd trailing key must be kept, got %v", got[8])
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	if _, err := New("development"); err == nil {
		t.Fatalf("expected an error for an unknown LOG_LEVEL")
	}
	t.Setenv("LOG_LEVEL", "error")
	if _, err := New("test"); err != nil {
		t.Fatalf("New: %v", err)
	}
}
