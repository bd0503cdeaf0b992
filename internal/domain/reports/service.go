package reports

import (
	"context"
	"errors"
	"time"

	"manolos-gestion/internal/domain/charges"
	"manolos-gestion/internal/domain/clients"
	"manolos-gestion/internal/domain/services"
)

var ErrInvalidInput = errors.New("invalid input")

type ChargeLister interface {
	List(ctx context.Context, f charges.ListFilter) ([]charges.Charge, error)
}

type ClientLister interface {
	List(ctx context.Context) ([]clients.Client, error)
}

type ServiceLister interface {
	List(ctx context.Context) ([]services.Service, error)
}

// Range acota por fecha del cobro; límites nil = abierto. Ambos inclusivos.
type Range struct {
	From *time.Time
	To   *time.Time
}

func (r Range) contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

func (r Range) open() bool { return r.From == nil && r.To == nil }

type Service struct {
	charges  ChargeLister
	clients  ClientLister
	services ServiceLister
}

func NewService(ch ChargeLister, cl ClientLister, sv ServiceLister) *Service {
	return &Service{charges: ch, clients: cl, services: sv}
}

// ChargeRows arma las filas del reporte en el orden en que se crearon los cobros.
func (s *Service) ChargeRows(ctx context.Context, rng Range) ([]ChargeRow, error) {
	items, err := s.charges.List(ctx, charges.ListFilter{})
	if err != nil {
		return nil, err
	}

	clientNames, err := s.clientNames(ctx)
	if err != nil {
		return nil, err
	}
	serviceNames, err := s.serviceNames(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ChargeRow, 0, len(items))
	for _, c := range items {
		if !rng.open() {
			t, err := charges.ParseDate(c.Date)
			if err != nil || !rng.contains(t) {
				continue
			}
		}
		out = append(out, ChargeRow{
			ChargeID: c.ID,
			Client:   nameOr(clientNames, c.ClientID),
			Service:  nameOr(serviceNames, c.ServiceID),
			Date:     c.Date,
			Status:   string(c.Status),
			Amount:   c.Total(),
		})
	}
	return out, nil
}

func (s *Service) clientNames(ctx context.Context) (map[string]string, error) {
	items, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(items))
	for _, c := range items {
		m[c.ID] = c.Name
	}
	return m, nil
}

func (s *Service) serviceNames(ctx context.Context) (map[string]string, error) {
	items, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(items))
	for _, sv := range items {
		m[sv.ID] = sv.Name
	}
	return m, nil
}

func nameOr(m map[string]string, id string) string {
	if n, ok := m[id]; ok && n != "" {
		return n
	}
	return "-"
}
