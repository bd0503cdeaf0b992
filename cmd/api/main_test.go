package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"manolos-gestion/internal/config"
)

func TestNewLogger_UsesLoggingConfig(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(config.LoggingConfig{Level: "warn", Format: "json", App: "manolos-gestion"}, &buf)

	log.Info("hidden", nil)
	log.Warn("storage fallback", map[string]any{"backend": "memory"})

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected a single json line, got %q: %v", buf.String(), err)
	}
	if entry["app"] != "manolos-gestion" || entry["msg"] != "storage fallback" || entry["backend"] != "memory" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
}
