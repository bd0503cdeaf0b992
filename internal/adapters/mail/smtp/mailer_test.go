package smtp

import (
	"context"
	"errors"
	"testing"

	"manolos-gestion/internal/ports/mailer"
)

func TestMailer_NotConfigured(t *testing.T) {
	m := New(Config{})

	if err := m.Send(context.Background(), "ana@x.com", "s", "b"); !errors.Is(err, mailer.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if err := m.Verify(context.Background()); !errors.Is(err, mailer.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestMailer_BadRecipientFailsBeforeDial(t *testing.T) {
	m := New(Config{Host: "smtp.invalid", From: "gestion@x.com"})

	if err := m.Send(context.Background(), "not an address", "s", "b"); err == nil {
		t.Fatalf("expected address error")
	}
}

func TestNew_Defaults(t *testing.T) {
	m := New(Config{Host: " smtp.x.com ", From: "a@x.com"})
	if m.cfg.Port != 587 || m.cfg.Host != "smtp.x.com" || m.cfg.Timeout == 0 {
		t.Fatalf("unexpected defaults: %#v", m.cfg)
	}
}
