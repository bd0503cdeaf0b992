package router

import (
	"context"
	"fmt"

	"manolos-gestion/internal/domain/charges"
	"manolos-gestion/internal/domain/clients"
	"manolos-gestion/internal/domain/pets"
	"manolos-gestion/internal/domain/services"
)

type seeder struct {
	clients *clients.Service
	pets    *pets.Service
	catalog *services.Catalog
	charges *charges.Service
}

// seed carga datos de ejemplo solo si no hay clientes.
func (s seeder) seed(ctx context.Context) (bool, error) {
	existing, err := s.clients.List(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	laura, err := s.clients.Create(ctx, clients.CreateInput{Name: "Laura Rojas", Email: "laura@correo.com", Phone: "3115551234"})
	if err != nil {
		return false, fmt.Errorf("seed client: %w", err)
	}
	carlos, err := s.clients.Create(ctx, clients.CreateInput{Name: "Carlos Pérez", Email: "carlos@correo.com", Phone: "3102229876"})
	if err != nil {
		return false, fmt.Errorf("seed client: %w", err)
	}

	for _, in := range []pets.CreateInput{
		{ClientID: laura.ID, Name: "Luna", Species: "Perro", Breed: "Labrador"},
		{ClientID: carlos.ID, Name: "Michi", Species: "Gato", Breed: "Siames"},
	} {
		if _, err := s.pets.Create(ctx, in); err != nil {
			return false, fmt.Errorf("seed pet: %w", err)
		}
	}

	walk, err := s.catalog.Create(ctx, services.CreateInput{Name: "Paseo diario", Rate: 15000, Duration: "1 hora"})
	if err != nil {
		return false, fmt.Errorf("seed service: %w", err)
	}
	bath, err := s.catalog.Create(ctx, services.CreateInput{Name: "Baño y corte", Rate: 25000, Duration: "45 min"})
	if err != nil {
		return false, fmt.Errorf("seed service: %w", err)
	}

	for _, in := range []charges.CreateInput{
		{ClientID: laura.ID, ServiceID: walk.ID},
		{ClientID: carlos.ID, ServiceID: bath.ID, Status: charges.StatusPaid},
	} {
		if _, err := s.charges.Create(ctx, in); err != nil {
			return false, fmt.Errorf("seed charge: %w", err)
		}
	}
	return true, nil
}
