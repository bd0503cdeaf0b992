package docrepo

import (
	"context"

	"manolos-gestion/internal/domain/reminders"
	"manolos-gestion/internal/ports/docstore"
)

type remindersRepo struct {
	base[reminders.Reminder]
}

func NewRemindersRepo(store docstore.Store) reminders.Repository {
	return &remindersRepo{newBase(store, docstore.Reminders, func(r reminders.Reminder) string { return r.ID }, reminders.ErrNotFound)}
}

func (r *remindersRepo) List(ctx context.Context, clientID string) ([]reminders.Reminder, error) {
	if clientID == "" {
		return r.list(ctx, nil)
	}
	return r.list(ctx, docstore.Filter{"clientId": clientID})
}

func (r *remindersRepo) DeleteByClient(ctx context.Context, clientID string) (int, error) {
	return r.deleteByClient(ctx, clientID)
}
