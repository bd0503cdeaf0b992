package clients

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Client
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Client{}}
}

func (r *testRepo) Create(ctx context.Context, c Client) error {
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Update(ctx context.Context, c Client) error {
	if _, ok := r.byID[c.ID]; !ok {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return Client{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) List(ctx context.Context) ([]Client, error) {
	out := make([]Client, 0, len(r.byID))
	for _, c := range r.byID {
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

type fakeCascader struct {
	n     int
	err   error
	calls []string
}

func (f *fakeCascader) DeleteByClient(ctx context.Context, clientID string) (int, error) {
	f.calls = append(f.calls, clientID)
	return f.n, f.err
}

func TestService_Create_ValidatesAndStamps(t *testing.T) {
	svc := NewService(newTestRepo())
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	c, err := svc.Create(context.Background(), CreateInput{Name: " Ana ", Email: "ana@x.com", Phone: "3000000000"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if c.ID == "" || c.Name != "Ana" || !c.CreatedAt.Equal(now) {
		t.Fatalf("unexpected client: %#v", c)
	}

	_, err = svc.Create(context.Background(), CreateInput{Name: "Ana", Email: "nope", Phone: ""})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Update_OnlyPresentFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	c, _ := svc.Create(context.Background(), CreateInput{Name: "Ana", Email: "ana@x.com", Phone: "300", Address: "Calle 1"})

	phone := "311"
	got, err := svc.Update(context.Background(), c.ID, UpdateInput{Phone: &phone})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Phone != "311" || got.Name != "Ana" || got.Address != "Calle 1" {
		t.Fatalf("unexpected merge: %#v", got)
	}

	bad := "x"
	if _, err := svc.Update(context.Background(), c.ID, UpdateInput{Email: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.byID[c.ID].Email != "ana@x.com" {
		t.Fatalf("invalid update must not be stored")
	}

	if _, err := svc.Update(context.Background(), "missing", UpdateInput{Phone: &phone}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete_Cascades(t *testing.T) {
	pets := &fakeCascader{n: 2}
	charges := &fakeCascader{n: 1}
	svc := NewService(newTestRepo(), pets)
	svc.AddDependents(charges)

	c, _ := svc.Create(context.Background(), CreateInput{Name: "Ana", Email: "ana@x.com", Phone: "300"})

	n, err := svc.Delete(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 dependents removed, got %d", n)
	}
	if len(pets.calls) != 1 || pets.calls[0] != c.ID || len(charges.calls) != 1 {
		t.Fatalf("cascade not applied: %v %v", pets.calls, charges.calls)
	}
}

func TestService_Delete_UnknownSkipsCascade(t *testing.T) {
	pets := &fakeCascader{}
	svc := NewService(newTestRepo(), pets)

	if _, err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(pets.calls) != 0 {
		t.Fatalf("cascade must not run for unknown client")
	}
}

func TestService_Delete_CascadeErrorReported(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(newTestRepo(), &fakeCascader{err: boom}, &fakeCascader{n: 4})
	c, _ := svc.Create(context.Background(), CreateInput{Name: "Ana", Email: "ana@x.com", Phone: "300"})

	n, err := svc.Delete(context.Background(), c.ID)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped cascade error, got %v", err)
	}
	if n != 4 {
		t.Fatalf("expected remaining cascades to run, got %d", n)
	}
	if _, err := svc.GetByID(context.Background(), c.ID); err != nil {
		t.Fatalf("client must survive a failed cascade, got %v", err)
	}
}

func TestService_Delete_RetryAfterCascadeError(t *testing.T) {
	pets := &fakeCascader{err: errors.New("boom")}
	repo := newTestRepo()
	svc := NewService(repo, pets)
	c, _ := svc.Create(context.Background(), CreateInput{Name: "Ana", Email: "ana@x.com", Phone: "300"})

	if _, err := svc.Delete(context.Background(), c.ID); err == nil {
		t.Fatalf("expected cascade error")
	}

	pets.err = nil
	if _, err := svc.Delete(context.Background(), c.ID); err != nil {
		t.Fatalf("retry should succeed, got %v", err)
	}
	if _, ok := repo.byID[c.ID]; ok {
		t.Fatalf("client still stored after successful retry")
	}
	if len(pets.calls) != 2 {
		t.Fatalf("expected cascade on both attempts, got %v", pets.calls)
	}
}
