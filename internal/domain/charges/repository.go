package charges

import "context"

type Repository interface {
	Create(ctx context.Context, c Charge) error
	Update(ctx context.Context, c Charge) error
	GetByID(ctx context.Context, id string) (Charge, error)
	List(ctx context.Context, f ListFilter) ([]Charge, error)
	Delete(ctx context.Context, id string) error
	DeleteByClient(ctx context.Context, clientID string) (int, error)
}
