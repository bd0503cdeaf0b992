package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"manolos-gestion/internal/platform/validate"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("client not found")
)

// Cascader borra los registros que cuelgan de un cliente (mascotas, cobros, recordatorios).
type Cascader interface {
	DeleteByClient(ctx context.Context, clientID string) (int, error)
}

type Service struct {
	repo       Repository
	dependents []Cascader
	now        func() time.Time
}

func NewService(repo Repository, dependents ...Cascader) *Service {
	return &Service{
		repo:       repo,
		dependents: dependents,
		now:        time.Now,
	}
}

// AddDependents registra cascadas después de construir el servicio
// (los dependientes necesitan al servicio de clientes para validar).
func (s *Service) AddDependents(d ...Cascader) {
	s.dependents = append(s.dependents, d...)
}

type CreateInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Client, error) {
	var v validate.Errors
	v.Required("name", in.Name)
	v.Required("email", in.Email)
	v.Email("email", in.Email)
	v.Required("phone", in.Phone)
	if err := v.Err(ErrInvalidInput); err != nil {
		return Client{}, err
	}

	c := Client{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Client{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Client{}, err
	}

	var v validate.Errors
	if in.Name != nil {
		v.Required("name", *in.Name)
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		v.Required("email", *in.Email)
		v.Email("email", *in.Email)
		c.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		v.Required("phone", *in.Phone)
		c.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		c.Address = strings.TrimSpace(*in.Address)
	}
	if err := v.Err(ErrInvalidInput); err != nil {
		return Client{}, err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return Client{}, err
	}
	return c, nil
}

// Delete borra primero los dependientes y al final el cliente. Si alguna
// cascada falla el cliente queda en pie y el borrado se puede reintentar.
// Devuelve cuántos dependientes se borraron.
func (s *Service) Delete(ctx context.Context, id string) (int, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return 0, err
	}

	removed := 0
	var merr *multierror.Error
	for _, d := range s.dependents {
		n, err := d.DeleteByClient(ctx, id)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		removed += n
	}
	if err := merr.ErrorOrNil(); err != nil {
		return removed, fmt.Errorf("cascade client %s: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return removed, err
	}
	return removed, nil
}
