package docrepo

import (
	"context"

	"manolos-gestion/internal/domain/services"
	"manolos-gestion/internal/ports/docstore"
)

type servicesRepo struct {
	base[services.Service]
}

func NewServicesRepo(store docstore.Store) services.Repository {
	return &servicesRepo{newBase(store, docstore.Services, func(s services.Service) string { return s.ID }, services.ErrNotFound)}
}

func (r *servicesRepo) List(ctx context.Context) ([]services.Service, error) {
	return r.list(ctx, nil)
}
