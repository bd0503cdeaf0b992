// Package appdata mantiene en memoria un espejo de las colecciones del gateway.
// Se carga una vez; después cada mutación va primero al gateway y solo al
// confirmarse se aplica el parche local.
package appdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"manolos-gestion/internal/platform/httpclient"
	"manolos-gestion/internal/platform/logger"
)

const basePath = "/api/"

type Cache struct {
	api *httpclient.Client
	log logger.Logger

	mu     sync.RWMutex
	data   Data
	loaded bool
}

// New crea un cache vacío. api debe tener BaseURL apuntando al gateway.
func New(api *httpclient.Client, log logger.Logger) *Cache {
	if log == nil {
		log = logger.Nop()
	}
	return &Cache{
		api:  api,
		log:  log.With(map[string]any{"component": "appdata"}),
		data: emptyData(),
	}
}

func emptyData() Data {
	return Data{
		Users:     []User{},
		Clients:   []Client{},
		Pets:      []Pet{},
		Services:  []Service{},
		Charges:   []Charge{},
		Reminders: []Reminder{},
	}
}

// Load trae clientes, mascotas, servicios, cobros y recordatorios en paralelo.
// Los usuarios no se cargan. Si cualquiera falla el espejo sigue vacío y se
// puede volver a llamar; tras una carga exitosa devuelve ErrAlreadyLoaded.
func (c *Cache) Load(ctx context.Context) error {
	if c.Loaded() {
		return ErrAlreadyLoaded
	}

	next := emptyData()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return fetchAll(gctx, c.api, "clients", &next.Clients) })
	g.Go(func() error { return fetchAll(gctx, c.api, "pets", &next.Pets) })
	g.Go(func() error { return fetchAll(gctx, c.api, "services", &next.Services) })
	g.Go(func() error { return fetchAll(gctx, c.api, "charges", &next.Charges) })
	g.Go(func() error { return fetchAll(gctx, c.api, "reminders", &next.Reminders) })

	if err := g.Wait(); err != nil {
		c.log.Error("initial load failed", map[string]any{"error": err})
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return ErrAlreadyLoaded
	}
	c.data = next
	c.loaded = true

	c.log.Info("mirror loaded", map[string]any{
		"clients":   len(next.Clients),
		"pets":      len(next.Pets),
		"services":  len(next.Services),
		"charges":   len(next.Charges),
		"reminders": len(next.Reminders),
	})
	return nil
}

func fetchAll[T any](ctx context.Context, api *httpclient.Client, resource string, dst *[]T) error {
	var docs []json.RawMessage
	if err := api.DoJSON(ctx, http.MethodGet, basePath+resource, nil, nil, &docs); err != nil {
		return fmt.Errorf("load %s: %w", resource, err)
	}

	out := make([]T, 0, len(docs))
	for i, d := range docs {
		v, err := decodeDoc[T](d)
		if err != nil {
			return fmt.Errorf("load %s[%d]: %w", resource, i, err)
		}
		out = append(out, v)
	}
	*dst = out
	return nil
}

func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Snapshot copia el espejo completo. La copia no cambia con mutaciones posteriores.
func (c *Cache) Snapshot() Data {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Data{
		Users:     slices.Clone(c.data.Users),
		Clients:   slices.Clone(c.data.Clients),
		Pets:      slices.Clone(c.data.Pets),
		Services:  slices.Clone(c.data.Services),
		Charges:   slices.Clone(c.data.Charges),
		Reminders: slices.Clone(c.data.Reminders),
	}
}

func (c *Cache) Users() []User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.data.Users)
}

func (c *Cache) Clients() []Client {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.data.Clients)
}

func (c *Cache) Pets() []Pet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.data.Pets)
}

func (c *Cache) Services() []Service {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.data.Services)
}

func (c *Cache) Charges() []Charge {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.data.Charges)
}

func (c *Cache) Reminders() []Reminder {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.data.Reminders)
}

func (c *Cache) Client(id string) (Client, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return find(c.data.Clients, id)
}

func (c *Cache) Pet(id string) (Pet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return find(c.data.Pets, id)
}

func (c *Cache) Service(id string) (Service, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return find(c.data.Services, id)
}

func (c *Cache) Charge(id string) (Charge, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return find(c.data.Charges, id)
}

func (c *Cache) Reminder(id string) (Reminder, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return find(c.data.Reminders, id)
}

// PetsOf devuelve las mascotas de un cliente en orden de llegada.
func (c *Cache) PetsOf(clientID string) []Pet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []Pet{}
	for _, p := range c.data.Pets {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out
}

// ChargesOf devuelve los cobros de un cliente en orden de llegada.
func (c *Cache) ChargesOf(clientID string) []Charge {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []Charge{}
	for _, ch := range c.data.Charges {
		if ch.ClientID == clientID {
			out = append(out, ch)
		}
	}
	return out
}

type record interface {
	key() string
}

func find[T record](items []T, id string) (T, bool) {
	for _, v := range items {
		if v.key() == id {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// patchByID aplica fn al registro con ese id; si no está, no hace nada.
func patchByID[T record](items []T, id string, fn func(*T)) {
	for i := range items {
		if items[i].key() == id {
			fn(&items[i])
			return
		}
	}
}

// replaceOrPatch deja el registro tal como lo guardó el gateway; sin registro
// en la respuesta, mezcla el patch sobre el local.
func replaceOrPatch[T record](items []T, id string, rec *T, fn func(*T)) {
	patchByID(items, id, func(v *T) {
		if rec != nil {
			*v = *rec
			return
		}
		fn(v)
	})
}

func withoutID[T record](items []T, id string) []T {
	return slices.DeleteFunc(items, func(v T) bool { return v.key() == id })
}
