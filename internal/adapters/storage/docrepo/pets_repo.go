package docrepo

import (
	"context"

	"manolos-gestion/internal/domain/pets"
	"manolos-gestion/internal/ports/docstore"
)

type petsRepo struct {
	base[pets.Pet]
}

func NewPetsRepo(store docstore.Store) pets.Repository {
	return &petsRepo{newBase(store, docstore.Pets, func(p pets.Pet) string { return p.ID }, pets.ErrNotFound)}
}

func (r *petsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.list(ctx, nil)
}

func (r *petsRepo) ListByClient(ctx context.Context, clientID string) ([]pets.Pet, error) {
	return r.list(ctx, docstore.Filter{"clientId": clientID})
}

func (r *petsRepo) CountByClient(ctx context.Context, clientID string) (int, error) {
	return r.col.Count(ctx, docstore.Filter{"clientId": clientID})
}

func (r *petsRepo) DeleteByClient(ctx context.Context, clientID string) (int, error) {
	return r.deleteByClient(ctx, clientID)
}
