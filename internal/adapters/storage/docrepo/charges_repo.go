package docrepo

import (
	"context"

	"manolos-gestion/internal/domain/charges"
	"manolos-gestion/internal/ports/docstore"
)

type chargesRepo struct {
	base[charges.Charge]
}

func NewChargesRepo(store docstore.Store) charges.Repository {
	return &chargesRepo{newBase(store, docstore.Charges, func(c charges.Charge) string { return c.ID }, charges.ErrNotFound)}
}

func (r *chargesRepo) List(ctx context.Context, f charges.ListFilter) ([]charges.Charge, error) {
	filter := docstore.Filter{}
	if f.ClientID != "" {
		filter["clientId"] = f.ClientID
	}
	if f.Status != "" {
		filter["status"] = string(f.Status)
	}
	return r.list(ctx, filter)
}

func (r *chargesRepo) DeleteByClient(ctx context.Context, clientID string) (int, error) {
	return r.deleteByClient(ctx, clientID)
}
