package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Collection es una vista tipada de una colección del Store.
// T debe serializar su id como "_id".
type Collection[T any] struct {
	store Store
	name  string
	idOf  func(T) string
}

func NewCollection[T any](store Store, name string, idOf func(T) string) *Collection[T] {
	return &Collection[T]{store: store, name: name, idOf: idOf}
}

func (c *Collection[T]) Name() string { return c.name }

func (c *Collection[T]) Create(ctx context.Context, v T) error {
	id := strings.TrimSpace(c.idOf(v))
	if id == "" {
		return fmt.Errorf("%s: id required", c.name)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: marshal: %w", c.name, err)
	}
	return c.store.Insert(ctx, c.name, id, b)
}

func (c *Collection[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, ErrNotFound
	}
	b, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		return zero, err
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		return zero, fmt.Errorf("%s: unmarshal %s: %w", c.name, id, err)
	}
	return out, nil
}

func (c *Collection[T]) List(ctx context.Context, filter Filter) ([]T, error) {
	docs, err := c.store.List(ctx, c.name, filter)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for _, b := range docs {
		var v T
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("%s: unmarshal: %w", c.name, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (c *Collection[T]) Update(ctx context.Context, id string, set map[string]any) error {
	if len(set) == 0 {
		// nada que mezclar, pero el id igual debe existir
		_, err := c.store.Get(ctx, c.name, id)
		return err
	}
	return c.store.Update(ctx, c.name, id, set)
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.store.Delete(ctx, c.name, id)
}

func (c *Collection[T]) DeleteWhere(ctx context.Context, filter Filter) (int, error) {
	return c.store.DeleteWhere(ctx, c.name, filter)
}

func (c *Collection[T]) Count(ctx context.Context, filter Filter) (int, error) {
	return c.store.Count(ctx, c.name, filter)
}
