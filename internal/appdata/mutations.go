package appdata

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"manolos-gestion/internal/platform/httpclient"
)

// call describe el request de una mutación.
type call struct {
	op       string
	resource string
	method   string
	path     string
	body     any
}

func (k call) fail(stage Stage, err error) *MutationError {
	return &MutationError{Op: k.op, Resource: k.resource, Stage: stage, Err: err}
}

// mutate: request, esperar confirmación, parche local. read nil => el body de
// la respuesta se ignora (cualquier 2xx es éxito). El parche solo corre si el
// gateway confirmó y la respuesta se pudo leer.
func mutate[R any](ctx context.Context, c *Cache, k call, read func([]byte) (R, error), patch func(d *Data, r R)) (R, error) {
	var zero R

	raw, err := c.api.Send(ctx, k.method, k.path, k.body)
	if err != nil {
		stage := StageTransport
		if httpclient.AsHTTPError(err) != nil {
			stage = StageRejected
		}
		return zero, c.report(k.fail(stage, err))
	}

	var r R
	if read != nil {
		if r, err = read(raw); err != nil {
			return zero, c.report(k.fail(StageDecode, err))
		}
	}

	c.mu.Lock()
	patch(&c.data, r)
	c.mu.Unlock()
	return r, nil
}

func (c *Cache) report(e *MutationError) *MutationError {
	fields := map[string]any{"op": e.Op, "resource": e.Resource, "stage": e.Stage.String(), "error": e.Err}
	if he := httpclient.AsHTTPError(e.Err); he != nil {
		fields["status"] = he.StatusCode
	}
	c.log.Warn("mutation failed", fields)
	return e
}

func collectionPath(resource string) string {
	return basePath + resource
}

func itemPath(resource, id string) string {
	return basePath + resource + "/" + url.PathEscape(id)
}

func notAttempted(op, resource, msg string) *MutationError {
	return &MutationError{Op: op, Resource: resource, Stage: StageNotAttempted, Err: errors.New(msg)}
}

// --- clients ---

func (c *Cache) AddClient(ctx context.Context, in NewClient) (string, error) {
	k := call{op: "add", resource: "clients", method: http.MethodPost, path: collectionPath("clients"), body: in}
	rec, err := mutate(ctx, c, k, created[Client](in), func(d *Data, rec Client) {
		d.Clients = append(d.Clients, rec)
	})
	return rec.ID, err
}

func (c *Cache) UpdateClient(ctx context.Context, id string, p ClientPatch) error {
	if p == (ClientPatch{}) {
		return notAttempted("update", "clients", "empty patch")
	}
	k := call{op: "update", resource: "clients", method: http.MethodPut, path: itemPath("clients", id), body: p}
	_, err := mutate(ctx, c, k, stored[Client], func(d *Data, rec *Client) {
		replaceOrPatch(d.Clients, id, rec, p.apply)
	})
	return err
}

// DeleteClient borra el cliente y, tras esa única confirmación, quita del
// espejo sus mascotas, cobros y recordatorios.
func (c *Cache) DeleteClient(ctx context.Context, id string) error {
	k := call{op: "delete", resource: "clients", method: http.MethodDelete, path: itemPath("clients", id)}
	_, err := mutate(ctx, c, k, nil, func(d *Data, _ struct{}) {
		d.Clients = withoutID(d.Clients, id)
		d.Pets = dropByClient(d.Pets, id, func(p Pet) string { return p.ClientID })
		d.Charges = dropByClient(d.Charges, id, func(ch Charge) string { return ch.ClientID })
		d.Reminders = dropByClient(d.Reminders, id, func(r Reminder) string { return r.ClientID })
	})
	return err
}

func dropByClient[T any](items []T, clientID string, owner func(T) string) []T {
	out := items[:0]
	for _, v := range items {
		if owner(v) != clientID {
			out = append(out, v)
		}
	}
	return out
}

// --- pets ---

func (c *Cache) AddPet(ctx context.Context, in NewPet) (string, error) {
	k := call{op: "add", resource: "pets", method: http.MethodPost, path: collectionPath("pets"), body: in}
	rec, err := mutate(ctx, c, k, created[Pet](in), func(d *Data, rec Pet) {
		d.Pets = append(d.Pets, rec)
	})
	return rec.ID, err
}

func (c *Cache) UpdatePet(ctx context.Context, id string, p PetPatch) error {
	if p == (PetPatch{}) {
		return notAttempted("update", "pets", "empty patch")
	}
	k := call{op: "update", resource: "pets", method: http.MethodPut, path: itemPath("pets", id), body: p}
	_, err := mutate(ctx, c, k, stored[Pet], func(d *Data, rec *Pet) {
		replaceOrPatch(d.Pets, id, rec, p.apply)
	})
	return err
}

func (c *Cache) DeletePet(ctx context.Context, id string) error {
	k := call{op: "delete", resource: "pets", method: http.MethodDelete, path: itemPath("pets", id)}
	_, err := mutate(ctx, c, k, nil, func(d *Data, _ struct{}) {
		d.Pets = withoutID(d.Pets, id)
	})
	return err
}

// --- services ---

func (c *Cache) AddService(ctx context.Context, in NewService) (string, error) {
	k := call{op: "add", resource: "services", method: http.MethodPost, path: collectionPath("services"), body: in}
	rec, err := mutate(ctx, c, k, created[Service](in), func(d *Data, rec Service) {
		d.Services = append(d.Services, rec)
	})
	return rec.ID, err
}

func (c *Cache) UpdateService(ctx context.Context, id string, p ServicePatch) error {
	if p == (ServicePatch{}) {
		return notAttempted("update", "services", "empty patch")
	}
	k := call{op: "update", resource: "services", method: http.MethodPut, path: itemPath("services", id), body: p}
	_, err := mutate(ctx, c, k, stored[Service], func(d *Data, rec *Service) {
		replaceOrPatch(d.Services, id, rec, p.apply)
	})
	return err
}

func (c *Cache) DeleteService(ctx context.Context, id string) error {
	k := call{op: "delete", resource: "services", method: http.MethodDelete, path: itemPath("services", id)}
	_, err := mutate(ctx, c, k, nil, func(d *Data, _ struct{}) {
		d.Services = withoutID(d.Services, id)
	})
	return err
}

// --- charges ---

func (c *Cache) AddCharge(ctx context.Context, in NewCharge) (string, error) {
	k := call{op: "add", resource: "charges", method: http.MethodPost, path: collectionPath("charges"), body: in}
	rec, err := mutate(ctx, c, k, created[Charge](in), func(d *Data, rec Charge) {
		d.Charges = append(d.Charges, rec)
	})
	return rec.ID, err
}

type statusBody struct {
	Status ChargeStatus `json:"status"`
}

// UpdateCharge: un patch con Status va a /charges/{id}/status; fecha y
// cantidad van a /charges/{id}. Las dos cosas juntas no se envían.
func (c *Cache) UpdateCharge(ctx context.Context, id string, p ChargePatch) error {
	if p == (ChargePatch{}) {
		return notAttempted("update", "charges", "empty patch")
	}

	k := call{op: "update", resource: "charges", method: http.MethodPut, path: itemPath("charges", id), body: p}
	if p.Status != nil {
		if p.Date != nil || p.Quantity != nil {
			return notAttempted("update", "charges", "status cannot be combined with other fields")
		}
		k.path = itemPath("charges", id) + "/status"
		k.body = statusBody{Status: *p.Status}
	}

	_, err := mutate(ctx, c, k, stored[Charge], func(d *Data, rec *Charge) {
		replaceOrPatch(d.Charges, id, rec, p.apply)
	})
	return err
}

func (c *Cache) SetChargeStatus(ctx context.Context, id string, status ChargeStatus) error {
	return c.UpdateCharge(ctx, id, ChargePatch{Status: &status})
}

func (c *Cache) DeleteCharge(ctx context.Context, id string) error {
	k := call{op: "delete", resource: "charges", method: http.MethodDelete, path: itemPath("charges", id)}
	_, err := mutate(ctx, c, k, nil, func(d *Data, _ struct{}) {
		d.Charges = withoutID(d.Charges, id)
	})
	return err
}

// ChargeReceipt descarga el PDF del recibo. No toca el espejo.
func (c *Cache) ChargeReceipt(ctx context.Context, id string) ([]byte, error) {
	k := call{op: "receipt", resource: "charges", method: http.MethodGet, path: itemPath("charges", id) + "/receipt"}
	doc, _, err := c.api.Download(ctx, k.path)
	if err != nil {
		stage := StageTransport
		if httpclient.AsHTTPError(err) != nil {
			stage = StageRejected
		}
		return nil, c.report(k.fail(stage, err))
	}
	return doc, nil
}

// --- reminders (solo alta) ---

// AddReminder crea el recordatorio. El estado (sent/failed para Email) lo
// decide el gateway y se toma de su respuesta.
func (c *Cache) AddReminder(ctx context.Context, in NewReminder) (Reminder, error) {
	k := call{op: "add", resource: "reminders", method: http.MethodPost, path: collectionPath("reminders"), body: in}
	read := func(raw []byte) (Reminder, error) {
		rec, err := created[Reminder](in)(raw)
		if err == nil && rec.Status == "" {
			rec.Status = ReminderPending
		}
		return rec, err
	}
	return mutate(ctx, c, k, read, func(d *Data, rec Reminder) {
		d.Reminders = append(d.Reminders, rec)
	})
}

// --- sesión ---

type session struct {
	Token string
	User  User
}

// SignIn inicia sesión, deja el token en el cliente HTTP y al usuario en Users.
// Llamar antes de Load y de cualquier mutación: el token no se protege con lock.
func (c *Cache) SignIn(ctx context.Context, email, password string) (User, error) {
	k := call{
		op: "signin", resource: "auth", method: http.MethodPost, path: basePath + "auth/login",
		body: map[string]string{"email": email, "password": password},
	}
	s, err := mutate(ctx, c, k, readSession, func(d *Data, s session) {
		d.Users = []User{s.User}
	})
	if err != nil {
		return User{}, err
	}
	c.api.Token = s.Token
	return s.User, nil
}

func readSession(raw []byte) (session, error) {
	var resp struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return session{}, err
	}
	if resp.Token == "" {
		return session{}, errors.New("login response has no token")
	}
	u, err := decodeDoc[User](resp.User)
	if err != nil {
		return session{}, err
	}
	return session{Token: resp.Token, User: u}, nil
}
