package docrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"manolos-gestion/internal/ports/docstore"
)

// base adapta una docstore.Collection a los repositorios de dominio:
// traduce docstore.ErrNotFound al sentinel del módulo y guarda el registro completo en Update.
type base[T any] struct {
	col      *docstore.Collection[T]
	idOf     func(T) string
	notFound error
}

func newBase[T any](store docstore.Store, name string, idOf func(T) string, notFound error) base[T] {
	return base[T]{
		col:      docstore.NewCollection(store, name, idOf),
		idOf:     idOf,
		notFound: notFound,
	}
}

func (b base[T]) Create(ctx context.Context, v T) error {
	return b.col.Create(ctx, v)
}

func (b base[T]) GetByID(ctx context.Context, id string) (T, error) {
	v, err := b.col.GetByID(ctx, id)
	return v, b.mapErr(err)
}

func (b base[T]) Update(ctx context.Context, v T) error {
	set, err := toSet(v)
	if err != nil {
		return fmt.Errorf("%s: %w", b.col.Name(), err)
	}
	return b.mapErr(b.col.Update(ctx, b.idOf(v), set))
}

func (b base[T]) Delete(ctx context.Context, id string) error {
	return b.mapErr(b.col.Delete(ctx, id))
}

func (b base[T]) list(ctx context.Context, f docstore.Filter) ([]T, error) {
	return b.col.List(ctx, f)
}

func (b base[T]) deleteByClient(ctx context.Context, clientID string) (int, error) {
	return b.col.DeleteWhere(ctx, docstore.Filter{"clientId": clientID})
}

func (b base[T]) mapErr(err error) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return b.notFound
	}
	return err
}

// toSet convierte el registro a campos sueltos para el merge del store.
func toSet(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	delete(m, "_id")
	return m, nil
}
