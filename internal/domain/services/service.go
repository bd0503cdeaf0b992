package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"manolos-gestion/internal/platform/validate"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("service not found")
)

// Catalog administra los servicios ofrecidos.
type Catalog struct {
	repo Repository
	now  func() time.Time
}

func NewCatalog(repo Repository) *Catalog {
	return &Catalog{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name        string
	Description string
	Rate        int64
	Duration    string
	Active      *bool // nil => true
}

type UpdateInput struct {
	Name        *string
	Description *string
	Rate        *int64
	Duration    *string
	Active      *bool
}

func (c *Catalog) Create(ctx context.Context, in CreateInput) (Service, error) {
	var v validate.Errors
	v.Required("name", in.Name)
	if in.Rate < 0 {
		v.Add("rate must be >= 0")
	}
	if err := v.Err(ErrInvalidInput); err != nil {
		return Service{}, err
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	s := Service{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Rate:        in.Rate,
		Duration:    strings.TrimSpace(in.Duration),
		Active:      active,
		CreatedAt:   c.now().UTC(),
	}
	if err := c.repo.Create(ctx, s); err != nil {
		return Service{}, err
	}
	return s, nil
}

func (c *Catalog) GetByID(ctx context.Context, id string) (Service, error) {
	return c.repo.GetByID(ctx, id)
}

func (c *Catalog) List(ctx context.Context) ([]Service, error) {
	return c.repo.List(ctx)
}

// Update no toca los cobros existentes: cada cobro guarda su propia tarifa.
func (c *Catalog) Update(ctx context.Context, id string, in UpdateInput) (Service, error) {
	s, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return Service{}, err
	}

	var v validate.Errors
	if in.Name != nil {
		v.Required("name", *in.Name)
		s.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		s.Description = strings.TrimSpace(*in.Description)
	}
	if in.Rate != nil {
		if *in.Rate < 0 {
			v.Add("rate must be >= 0")
		}
		s.Rate = *in.Rate
	}
	if in.Duration != nil {
		s.Duration = strings.TrimSpace(*in.Duration)
	}
	if in.Active != nil {
		s.Active = *in.Active
	}
	if err := v.Err(ErrInvalidInput); err != nil {
		return Service{}, err
	}

	if err := c.repo.Update(ctx, s); err != nil {
		return Service{}, err
	}
	return s, nil
}

func (c *Catalog) Delete(ctx context.Context, id string) error {
	return c.repo.Delete(ctx, id)
}
