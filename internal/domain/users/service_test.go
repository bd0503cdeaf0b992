package users

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"manolos-gestion/internal/ports/auth"
)

type testRepo struct {
	byID map[string]User
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

type testIssuer struct {
	last auth.Claims
}

func (i *testIssuer) Issue(c auth.Claims) (string, error) {
	i.last = c
	return "token-" + c.UserID, nil
}

func newTestService() (*Service, *testRepo, *testIssuer) {
	repo := newTestRepo()
	iss := &testIssuer{}
	svc := NewService(repo, iss)
	svc.cost = bcrypt.MinCost
	return svc, repo, iss
}

func TestService_RegisterAndLogin(t *testing.T) {
	svc, repo, iss := newTestService()

	u, err := svc.Register(context.Background(), RegisterInput{Name: "Manolo", Email: " Manolo@Correo.com ", Password: "secreto"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.Role != RoleAdmin || u.Email != "manolo@correo.com" {
		t.Fatalf("unexpected user: %#v", u)
	}
	if repo.byID[u.ID].PasswordHash == "secreto" {
		t.Fatalf("password must be stored hashed")
	}

	token, got, err := svc.Login(context.Background(), "MANOLO@correo.com", "secreto")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if token != "token-"+u.ID || got.ID != u.ID {
		t.Fatalf("unexpected login result: %s %#v", token, got)
	}
	if iss.last.Email != "manolo@correo.com" || iss.last.Role != RoleAdmin {
		t.Fatalf("unexpected claims: %#v", iss.last)
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	in := RegisterInput{Name: "Manolo", Email: "m@x.com", Password: "1234"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate, got %v", err)
	}
}

func TestService_Register_ShortPassword(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.Register(context.Background(), RegisterInput{Name: "M", Email: "m@x.com", Password: "123"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newTestService()
	_, _ = svc.Register(context.Background(), RegisterInput{Name: "M", Email: "m@x.com", Password: "1234"})

	if _, _, err := svc.Login(context.Background(), "m@x.com", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost@x.com", "1234"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
