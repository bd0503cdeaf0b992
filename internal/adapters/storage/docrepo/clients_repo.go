package docrepo

import (
	"context"

	"manolos-gestion/internal/domain/clients"
	"manolos-gestion/internal/ports/docstore"
)

type clientsRepo struct {
	base[clients.Client]
}

func NewClientsRepo(store docstore.Store) clients.Repository {
	return &clientsRepo{newBase(store, docstore.Clients, func(c clients.Client) string { return c.ID }, clients.ErrNotFound)}
}

func (r *clientsRepo) List(ctx context.Context) ([]clients.Client, error) {
	return r.list(ctx, nil)
}
