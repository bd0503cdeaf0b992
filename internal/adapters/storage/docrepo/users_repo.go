package docrepo

import (
	"context"

	"manolos-gestion/internal/domain/users"
	"manolos-gestion/internal/ports/docstore"
)

type usersRepo struct {
	base[users.User]
}

func NewUsersRepo(store docstore.Store) users.Repository {
	return &usersRepo{newBase(store, docstore.Users, func(u users.User) string { return u.ID }, users.ErrNotFound)}
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	items, err := r.list(ctx, docstore.Filter{"email": email})
	if err != nil {
		return users.User{}, err
	}
	if len(items) == 0 {
		return users.User{}, users.ErrNotFound
	}
	return items[0], nil
}
