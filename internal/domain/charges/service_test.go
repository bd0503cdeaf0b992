package charges

import (
	"context"
	"errors"
	"testing"
	"time"

	"manolos-gestion/internal/domain/clients"
	"manolos-gestion/internal/domain/services"
)

type testRepo struct {
	byID map[string]Charge
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Charge{}}
}

func (r *testRepo) Create(ctx context.Context, c Charge) error {
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Update(ctx context.Context, c Charge) error {
	if _, ok := r.byID[c.ID]; !ok {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Charge, error) {
	c, ok := r.byID[id]
	if !ok {
		return Charge{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) List(ctx context.Context, f ListFilter) ([]Charge, error) {
	out := make([]Charge, 0)
	for _, c := range r.byID {
		if f.ClientID != "" && c.ClientID != f.ClientID {
			continue
		}
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) DeleteByClient(ctx context.Context, clientID string) (int, error) {
	n := 0
	for id, c := range r.byID {
		if c.ClientID == clientID {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

type testClients map[string]clients.Client

func (c testClients) GetByID(ctx context.Context, id string) (clients.Client, error) {
	cl, ok := c[id]
	if !ok {
		return clients.Client{}, clients.ErrNotFound
	}
	return cl, nil
}

type testServices map[string]services.Service

func (s testServices) GetByID(ctx context.Context, id string) (services.Service, error) {
	sv, ok := s[id]
	if !ok {
		return services.Service{}, services.ErrNotFound
	}
	return sv, nil
}

func newTestService() (*Service, testServices) {
	svcs := testServices{"s1": {ID: "s1", Name: "Paseo diario", Rate: 15000}}
	s := NewService(newTestRepo(), testClients{"c1": {ID: "c1", Name: "Laura Rojas"}}, svcs)
	s.now = func() time.Time { return time.Date(2025, 5, 10, 9, 30, 0, 0, time.UTC) }
	return s, svcs
}

func TestService_Create_CapturesRateAndDefaults(t *testing.T) {
	s, svcs := newTestService()
	qty := 2

	c, err := s.Create(context.Background(), CreateInput{ClientID: "c1", ServiceID: "s1", Quantity: &qty})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.UnitAmount != 15000 || c.Total() != 30000 {
		t.Fatalf("expected 15000 x 2 = 30000, got %d / %d", c.UnitAmount, c.Total())
	}
	if c.Status != StatusPending {
		t.Fatalf("expected pending, got %s", c.Status)
	}
	if c.Date != "2025-05-10T09:30:00Z" {
		t.Fatalf("expected default date now, got %s", c.Date)
	}

	// la tarifa del servicio cambia, el cobro no
	sv := svcs["s1"]
	sv.Rate = 20000
	svcs["s1"] = sv

	got, _ := s.GetByID(context.Background(), c.ID)
	if got.Total() != 30000 {
		t.Fatalf("captured rate must not change, total=%d", got.Total())
	}
}

func TestService_Create_Validation(t *testing.T) {
	s, _ := newTestService()
	zero := 0

	cases := []CreateInput{
		{ClientID: "", ServiceID: "s1"},
		{ClientID: "c1", ServiceID: "s1", Quantity: &zero},
		{ClientID: "c1", ServiceID: "s1", Status: "done"},
		{ClientID: "c1", ServiceID: "s1", Date: "10/05/2025"},
		{ClientID: "ghost", ServiceID: "s1"},
		{ClientID: "c1", ServiceID: "ghost"},
	}
	for i, in := range cases {
		if _, err := s.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestService_Create_DateOnlyNormalized(t *testing.T) {
	s, _ := newTestService()

	c, err := s.Create(context.Background(), CreateInput{ClientID: "c1", ServiceID: "s1", Date: "2025-01-31"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.Date != "2025-01-31T00:00:00Z" {
		t.Fatalf("unexpected date %s", c.Date)
	}
}

func TestService_Update_UnitAmountImmutable(t *testing.T) {
	s, _ := newTestService()
	c, _ := s.Create(context.Background(), CreateInput{ClientID: "c1", ServiceID: "s1"})

	other := int64(1)
	if _, err := s.Update(context.Background(), c.ID, UpdateInput{UnitAmount: &other}); !errors.Is(err, ErrImmutableField) {
		t.Fatalf("expected ErrImmutableField, got %v", err)
	}

	same := c.UnitAmount
	qty := 3
	got, err := s.Update(context.Background(), c.ID, UpdateInput{UnitAmount: &same, Quantity: &qty})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Total() != 45000 {
		t.Fatalf("expected 45000, got %d", got.Total())
	}

	paid := StatusPaid
	if _, err := s.Update(context.Background(), c.ID, UpdateInput{Status: &paid}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected status via /status only, got %v", err)
	}
}

func TestService_SetStatus(t *testing.T) {
	s, _ := newTestService()
	c, _ := s.Create(context.Background(), CreateInput{ClientID: "c1", ServiceID: "s1"})

	if _, err := s.SetStatus(context.Background(), c.ID, StatusPaid); err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	got, err := s.SetStatus(context.Background(), c.ID, StatusPending)
	if err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if got.Status != StatusPending || got.UnitAmount != c.UnitAmount || got.Date != c.Date || got.Quantity != c.Quantity {
		t.Fatalf("status change must leave other fields alone: %#v", got)
	}

	if _, err := s.SetStatus(context.Background(), c.ID, "bogus"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := s.SetStatus(context.Background(), "missing", StatusPaid); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Receipt_MissingServiceShowsDash(t *testing.T) {
	s, svcs := newTestService()
	c, _ := s.Create(context.Background(), CreateInput{ClientID: "c1", ServiceID: "s1"})
	delete(svcs, "s1")

	rc, err := s.Receipt(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("Receipt error: %v", err)
	}
	if rc.Client != "Laura Rojas" || rc.Service != "-" || rc.Total != 15000 {
		t.Fatalf("unexpected receipt: %#v", rc)
	}
}
