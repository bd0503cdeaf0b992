package charges

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"manolos-gestion/internal/domain/clients"
	"manolos-gestion/internal/domain/services"
	"manolos-gestion/internal/platform/validate"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("charge not found")
	ErrImmutableField = errors.New("field cannot be changed")
)

type ClientLookup interface {
	GetByID(ctx context.Context, id string) (clients.Client, error)
}

type ServiceLookup interface {
	GetByID(ctx context.Context, id string) (services.Service, error)
}

type Service struct {
	repo     Repository
	clients  ClientLookup
	services ServiceLookup
	now      func() time.Time
}

func NewService(repo Repository, clients ClientLookup, services ServiceLookup) *Service {
	return &Service{
		repo:     repo,
		clients:  clients,
		services: services,
		now:      time.Now,
	}
}

type CreateInput struct {
	ClientID   string
	ServiceID  string
	Date       string // RFC3339 o YYYY-MM-DD; vacío => ahora
	Quantity   *int   // nil => 1
	UnitAmount *int64 // nil => tarifa actual del servicio
	Status     Status // vacío => pending
}

// UpdateInput: nil = no tocar. Status va por SetStatus.
type UpdateInput struct {
	Date       *string
	Quantity   *int
	UnitAmount *int64
	Status     *Status
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Charge, error) {
	var v validate.Errors
	v.Required("clientId", in.ClientID)
	v.Required("serviceId", in.ServiceID)

	qty := 1
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	if qty < 1 {
		v.Add("quantity must be >= 1")
	}
	if in.UnitAmount != nil && *in.UnitAmount < 0 {
		v.Add("unitAmount must be >= 0")
	}

	status := in.Status
	if status == "" {
		status = StatusPending
	}
	if !status.Valid() {
		v.Add("status must be one of pending, paid, overdue")
	}

	date, err := s.normalizeDate(in.Date)
	if err != nil {
		v.Add("%s", err.Error())
	}
	if err := v.Err(ErrInvalidInput); err != nil {
		return Charge{}, err
	}

	if _, err := s.clients.GetByID(ctx, in.ClientID); err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return Charge{}, fmt.Errorf("%w: client %s does not exist", ErrInvalidInput, in.ClientID)
		}
		return Charge{}, err
	}
	svc, err := s.services.GetByID(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return Charge{}, fmt.Errorf("%w: service %s does not exist", ErrInvalidInput, in.ServiceID)
		}
		return Charge{}, err
	}

	amount := svc.Rate
	if in.UnitAmount != nil {
		amount = *in.UnitAmount
	}

	c := Charge{
		ID:         uuid.NewString(),
		ClientID:   strings.TrimSpace(in.ClientID),
		ServiceID:  strings.TrimSpace(in.ServiceID),
		Date:       date,
		Quantity:   qty,
		UnitAmount: amount,
		Status:     status,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Charge{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Charge, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Charge, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, f.Status)
	}
	return s.repo.List(ctx, f)
}

// Update cambia fecha y/o cantidad. unitAmount solo se acepta si no cambia.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Charge, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Charge{}, err
	}

	if in.UnitAmount != nil && *in.UnitAmount != c.UnitAmount {
		return Charge{}, fmt.Errorf("%w: unitAmount", ErrImmutableField)
	}
	if in.Status != nil {
		return Charge{}, fmt.Errorf("%w: status changes go through /charges/%s/status", ErrInvalidInput, id)
	}

	var v validate.Errors
	if in.Quantity != nil {
		if *in.Quantity < 1 {
			v.Add("quantity must be >= 1")
		}
		c.Quantity = *in.Quantity
	}
	if in.Date != nil {
		if strings.TrimSpace(*in.Date) == "" {
			v.Add("date is required")
		} else if d, err := s.normalizeDate(*in.Date); err != nil {
			v.Add("%s", err.Error())
		} else {
			c.Date = d
		}
	}
	if err := v.Err(ErrInvalidInput); err != nil {
		return Charge{}, err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return Charge{}, err
	}
	return c, nil
}

func (s *Service) SetStatus(ctx context.Context, id string, status Status) (Charge, error) {
	if !status.Valid() {
		return Charge{}, fmt.Errorf("%w: status must be one of pending, paid, overdue", ErrInvalidInput)
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Charge{}, err
	}
	c.Status = status
	if err := s.repo.Update(ctx, c); err != nil {
		return Charge{}, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// DeleteByClient implementa clients.Cascader.
func (s *Service) DeleteByClient(ctx context.Context, clientID string) (int, error) {
	return s.repo.DeleteByClient(ctx, clientID)
}

// Receipt arma los datos del comprobante. Cliente o servicio borrados se muestran como "-".
func (s *Service) Receipt(ctx context.Context, id string) (Receipt, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Receipt{}, err
	}

	rc := Receipt{
		ChargeID:   c.ID,
		Client:     "-",
		Service:    "-",
		Date:       c.Date,
		Quantity:   c.Quantity,
		UnitAmount: c.UnitAmount,
		Total:      c.Total(),
		Status:     c.Status,
	}
	if cl, err := s.clients.GetByID(ctx, c.ClientID); err == nil {
		rc.Client = cl.Name
	}
	if sv, err := s.services.GetByID(ctx, c.ServiceID); err == nil {
		rc.Service = sv.Name
	}
	return rc, nil
}

// normalizeDate acepta RFC3339 o YYYY-MM-DD y devuelve RFC3339 en UTC.
func (s *Service) normalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.now().UTC().Format(time.RFC3339), nil
	}
	t, err := ParseDate(raw)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339), nil
}

// ParseDate acepta RFC3339 o YYYY-MM-DD.
func ParseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("date must be RFC3339 or YYYY-MM-DD, got %q", raw)
}
