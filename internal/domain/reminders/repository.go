package reminders

import "context"

type Repository interface {
	Create(ctx context.Context, r Reminder) error
	Update(ctx context.Context, r Reminder) error
	GetByID(ctx context.Context, id string) (Reminder, error)
	List(ctx context.Context, clientID string) ([]Reminder, error)
	DeleteByClient(ctx context.Context, clientID string) (int, error)
}
