package reports

import (
	"context"
	"testing"
	"time"

	"manolos-gestion/internal/domain/charges"
	"manolos-gestion/internal/domain/clients"
	"manolos-gestion/internal/domain/services"
)

type fakeCharges []charges.Charge

func (f fakeCharges) List(ctx context.Context, _ charges.ListFilter) ([]charges.Charge, error) {
	return f, nil
}

type fakeClients []clients.Client

func (f fakeClients) List(ctx context.Context) ([]clients.Client, error) { return f, nil }

type fakeServices []services.Service

func (f fakeServices) List(ctx context.Context) ([]services.Service, error) { return f, nil }

func newTestService() *Service {
	return NewService(
		fakeCharges{
			{ID: "b1", ClientID: "c1", ServiceID: "s1", Date: "2025-01-10T10:00:00Z", Quantity: 2, UnitAmount: 15000, Status: charges.StatusPaid},
			{ID: "b2", ClientID: "c2", ServiceID: "s2", Date: "2025-02-01T18:00:00Z", Quantity: 1, UnitAmount: 25000, Status: charges.StatusPending},
			{ID: "b3", ClientID: "gone", ServiceID: "s1", Date: "2025-03-05T09:00:00Z", Quantity: 1, UnitAmount: 15000, Status: charges.StatusOverdue},
		},
		fakeClients{{ID: "c1", Name: "Laura Rojas"}, {ID: "c2", Name: "Carlos Pérez"}},
		fakeServices{{ID: "s1", Name: "Paseo diario"}, {ID: "s2", Name: "Baño y corte"}},
	)
}

func TestService_ChargeRows_AllWithNames(t *testing.T) {
	rows, err := newTestService().ChargeRows(context.Background(), Range{})
	if err != nil {
		t.Fatalf("ChargeRows error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Client != "Laura Rojas" || rows[0].Service != "Paseo diario" || rows[0].Amount != 30000 {
		t.Fatalf("unexpected first row: %#v", rows[0])
	}
	if rows[2].Client != "-" {
		t.Fatalf("missing client must render as '-', got %q", rows[2].Client)
	}
}

func TestService_ChargeRows_Range(t *testing.T) {
	rng, err := parseRange("2025-01-15", "2025-02-01")
	if err != nil {
		t.Fatalf("parseRange error: %v", err)
	}

	rows, err := newTestService().ChargeRows(context.Background(), rng)
	if err != nil {
		t.Fatalf("ChargeRows error: %v", err)
	}
	// to de solo fecha incluye todo el día
	if len(rows) != 1 || rows[0].ChargeID != "b2" {
		t.Fatalf("expected only b2, got %#v", rows)
	}
}

func TestParseRange_Invalid(t *testing.T) {
	if _, err := parseRange("ayer", ""); err == nil {
		t.Fatalf("expected error for bad from")
	}
	if _, err := parseRange("2025-02-01", "2025-01-01"); err == nil {
		t.Fatalf("expected error for inverted range")
	}
	rng, err := parseRange("", "2025-01-01T00:00:00Z")
	if err != nil || rng.From != nil || !rng.To.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected range: %#v (%v)", rng, err)
	}
}
