package appdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manolos-gestion/internal/platform/httpclient"
	"manolos-gestion/internal/router"
)

type gateway struct {
	cache    *Cache
	url      string
	requests atomic.Int64
}

// newGateway levanta el gateway real (store en memoria) y un cache apuntando a él.
func newGateway(t *testing.T) *gateway {
	t.Helper()
	g := &gateway{}
	h := router.NewRouter(router.Options{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.requests.Add(1)
		h.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)

	api, err := httpclient.NewWithBaseURL(ts.URL, 0)
	require.NoError(t, err)
	g.cache = New(api, nil)
	g.url = ts.URL
	require.NoError(t, g.cache.Load(context.Background()))
	return g
}

func ptr[T any](v T) *T { return &v }

func TestLoad_NormalizesIdentifiers(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/clients":
			_, _ = w.Write([]byte(`[{"_id":{"$oid":"65f0c1"},"name":"Laura Rojas","email":"laura@correo.com","phone":"3115551234"},{"id":7,"name":"Carlos Pérez","email":"carlos@correo.com","phone":"3102229876"}]`))
		case "/api/pets":
			_, _ = w.Write([]byte(`[{"_id":"p1","clientId":{"$oid":"65f0c1"},"name":"Luna","species":"Perro","age":3}]`))
		case "/api/services":
			_, _ = w.Write([]byte(`[{"_id":12,"name":"Paseo diario","rate":15000,"active":true}]`))
		case "/api/charges":
			_, _ = w.Write([]byte(`[{"_id":"b1","clientId":7,"serviceId":12,"date":"2024-03-10T00:00:00Z","quantity":2,"unitAmount":15000,"status":"paid","total":1}]`))
		case "/api/reminders":
			_, _ = w.Write([]byte(`[]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	api, err := httpclient.NewWithBaseURL(ts.URL, 0)
	require.NoError(t, err)
	c := New(api, nil)
	require.NoError(t, c.Load(context.Background()))

	d := c.Snapshot()
	require.Len(t, d.Clients, 2)
	assert.Equal(t, "65f0c1", d.Clients[0].ID)
	assert.Equal(t, "7", d.Clients[1].ID)
	assert.Equal(t, "65f0c1", d.Pets[0].ClientID)
	require.NotNil(t, d.Pets[0].Age)
	assert.Equal(t, 3, *d.Pets[0].Age)
	assert.Equal(t, "12", d.Services[0].ID)
	assert.Equal(t, "7", d.Charges[0].ClientID)
	assert.Equal(t, "12", d.Charges[0].ServiceID)
	assert.Equal(t, int64(30000), d.Charges[0].Total(), "total is derived, the wire value is ignored")
	assert.Empty(t, d.Users)
	assert.Empty(t, d.Reminders)
}

func TestLoad_FailureLeavesMirrorEmpty(t *testing.T) {
	var broken atomic.Bool
	broken.Store(true)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/reminders" && broken.Load() {
			http.Error(w, `{"message":"db down"}`, http.StatusInternalServerError)
			return
		}
		if r.URL.Path == "/api/clients" {
			_, _ = w.Write([]byte(`[{"_id":"c1","name":"Ana","email":"ana@x.com","phone":"3000000000"}]`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	api, err := httpclient.NewWithBaseURL(ts.URL, 0)
	require.NoError(t, err)
	c := New(api, nil)

	err = c.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.False(t, c.Loaded())
	assert.Empty(t, c.Clients(), "no partial collections")

	broken.Store(false)
	require.NoError(t, c.Load(context.Background()))
	assert.Len(t, c.Clients(), 1)

	assert.ErrorIs(t, c.Load(context.Background()), ErrAlreadyLoaded)
}

func TestAdd_AppearsOnceWithReturnedID(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()
	c := g.cache

	clientID, err := c.AddClient(ctx, NewClient{Name: "Ana", Email: "ana@x.com", Phone: "3000000000"})
	require.NoError(t, err)
	require.NotEmpty(t, clientID)

	petID, err := c.AddPet(ctx, NewPet{ClientID: clientID, Name: "Luna", Species: "Perro", Weight: ptr(12.5)})
	require.NoError(t, err)

	svcID, err := c.AddService(ctx, NewService{Name: "Paseo diario", Rate: 15000, Duration: "1 hora"})
	require.NoError(t, err)

	chargeID, err := c.AddCharge(ctx, NewCharge{ClientID: clientID, ServiceID: svcID})
	require.NoError(t, err)

	rem, err := c.AddReminder(ctx, NewReminder{ClientID: clientID, Channel: ChannelWhatsApp})
	require.NoError(t, err)

	d := c.Snapshot()
	assert.Equal(t, []string{clientID}, ids(d.Clients))
	assert.Equal(t, []string{petID}, ids(d.Pets))
	assert.Equal(t, []string{svcID}, ids(d.Services))
	assert.Equal(t, []string{chargeID}, ids(d.Charges))
	assert.Equal(t, []string{rem.ID}, ids(d.Reminders))

	svc, ok := c.Service(svcID)
	require.True(t, ok)
	assert.True(t, svc.Active, "gateway default is echoed back")

	ch, ok := c.Charge(chargeID)
	require.True(t, ok)
	assert.Equal(t, 1, ch.Quantity)
	assert.Equal(t, int64(15000), ch.UnitAmount)
	assert.Equal(t, ChargePending, ch.Status)
	assert.NotEmpty(t, ch.Date)

	assert.Equal(t, ReminderPending, rem.Status)
	assert.NotEmpty(t, rem.Subject)
}

func TestAdd_RejectedLeavesMirrorUnchanged(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()

	_, err := g.cache.AddClient(ctx, NewClient{Name: "Ana", Email: "no-es-correo", Phone: "1"})
	require.Error(t, err)
	assert.True(t, IsRejected(err))
	assert.Contains(t, err.Error(), "email")

	_, err = g.cache.AddPet(ctx, NewPet{ClientID: "missing", Name: "Luna", Species: "Perro"})
	require.Error(t, err)
	assert.True(t, IsRejected(err))

	d := g.cache.Snapshot()
	assert.Empty(t, d.Clients)
	assert.Empty(t, d.Pets)
}

func TestUpdateDelete_UnknownIDLeavesMirrorUnchanged(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()
	c := g.cache

	id, err := c.AddClient(ctx, NewClient{Name: "Ana", Email: "ana@x.com", Phone: "3000000000"})
	require.NoError(t, err)
	before := c.Snapshot()

	err = c.UpdateClient(ctx, "nope", ClientPatch{Name: ptr("X")})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	for _, err := range []error{
		c.DeleteClient(ctx, "nope"),
		c.DeletePet(ctx, "nope"),
		c.DeleteService(ctx, "nope"),
		c.DeleteCharge(ctx, "nope"),
		c.UpdatePet(ctx, "nope", PetPatch{Name: ptr("X")}),
		c.UpdateService(ctx, "nope", ServicePatch{Rate: ptr(int64(1))}),
		c.UpdateCharge(ctx, "nope", ChargePatch{Quantity: ptr(2)}),
		c.SetChargeStatus(ctx, "nope", ChargePaid),
	} {
		require.Error(t, err)
		assert.True(t, IsNotFound(err), "got %v", err)
	}

	assert.Equal(t, before, c.Snapshot())

	// un patch confirmado solo toca los campos presentes
	require.NoError(t, c.UpdateClient(ctx, id, ClientPatch{Address: ptr("Calle 1")}))
	got, ok := c.Client(id)
	require.True(t, ok)
	assert.Equal(t, "Calle 1", got.Address)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "3000000000", got.Phone)
}

func TestDeleteClient_CascadesOnlyDependents(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()
	c := g.cache

	ana, err := c.AddClient(ctx, NewClient{Name: "Ana", Email: "ana@x.com", Phone: "1"})
	require.NoError(t, err)
	luis, err := c.AddClient(ctx, NewClient{Name: "Luis", Email: "luis@x.com", Phone: "2"})
	require.NoError(t, err)
	svc, err := c.AddService(ctx, NewService{Name: "Baño y corte", Rate: 25000})
	require.NoError(t, err)

	for _, owner := range []string{ana, luis, ana} {
		_, err := c.AddPet(ctx, NewPet{ClientID: owner, Name: "pet", Species: "Gato"})
		require.NoError(t, err)
		_, err = c.AddCharge(ctx, NewCharge{ClientID: owner, ServiceID: svc})
		require.NoError(t, err)
		_, err = c.AddReminder(ctx, NewReminder{ClientID: owner, Channel: ChannelWhatsApp})
		require.NoError(t, err)
	}

	sent := g.requests.Load()
	require.NoError(t, c.DeleteClient(ctx, ana))
	assert.Equal(t, sent+1, g.requests.Load(), "one round trip, no per-dependent calls")

	d := c.Snapshot()
	assert.Equal(t, []string{luis}, ids(d.Clients))
	require.Len(t, d.Pets, 1)
	assert.Equal(t, luis, d.Pets[0].ClientID)
	require.Len(t, d.Charges, 1)
	assert.Equal(t, luis, d.Charges[0].ClientID)
	require.Len(t, d.Reminders, 1)
	assert.Equal(t, luis, d.Reminders[0].ClientID)
	assert.Len(t, d.Services, 1)

	// el gateway hizo la misma cascada
	fresh := reload(t, g)
	assert.Len(t, fresh.Pets(), 1)
	assert.Len(t, fresh.Charges(), 1)
	assert.Len(t, fresh.Reminders(), 1)
}

func TestChargeStatus_RoundTripKeepsOtherFields(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()
	c := g.cache

	cl, err := c.AddClient(ctx, NewClient{Name: "Ana", Email: "ana@x.com", Phone: "1"})
	require.NoError(t, err)
	svc, err := c.AddService(ctx, NewService{Name: "Paseo diario", Rate: 15000})
	require.NoError(t, err)
	id, err := c.AddCharge(ctx, NewCharge{ClientID: cl, ServiceID: svc, Date: "2024-03-10", Quantity: 3})
	require.NoError(t, err)
	before, _ := c.Charge(id)

	require.NoError(t, c.UpdateCharge(ctx, id, ChargePatch{Status: ptr(ChargePaid)}))
	mid, _ := c.Charge(id)
	assert.Equal(t, ChargePaid, mid.Status)

	require.NoError(t, c.UpdateCharge(ctx, id, ChargePatch{Status: ptr(ChargePending)}))
	after, _ := c.Charge(id)
	assert.Equal(t, before, after)

	// el gateway coincide
	fromServer, ok := reload(t, g).Charge(id)
	require.True(t, ok)
	assert.Equal(t, after, fromServer)
}

func TestUpdateCharge_MixedPatchNotAttempted(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()

	sent := g.requests.Load()
	err := g.cache.UpdateCharge(ctx, "b1", ChargePatch{Status: ptr(ChargePaid), Quantity: ptr(2)})
	require.Error(t, err)
	assert.True(t, IsNotAttempted(err))
	assert.False(t, IsRejected(err))

	err = g.cache.UpdateClient(ctx, "c1", ClientPatch{})
	assert.True(t, IsNotAttempted(err))

	assert.Equal(t, sent, g.requests.Load(), "nothing reached the gateway")
}

func TestUpdateCharge_DateAndQuantity(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()
	c := g.cache

	cl, err := c.AddClient(ctx, NewClient{Name: "Ana", Email: "ana@x.com", Phone: "1"})
	require.NoError(t, err)
	svc, err := c.AddService(ctx, NewService{Name: "Paseo diario", Rate: 15000})
	require.NoError(t, err)
	id, err := c.AddCharge(ctx, NewCharge{ClientID: cl, ServiceID: svc})
	require.NoError(t, err)

	require.NoError(t, c.UpdateCharge(ctx, id, ChargePatch{Quantity: ptr(4)}))
	ch, _ := c.Charge(id)
	assert.Equal(t, 4, ch.Quantity)
	assert.Equal(t, int64(60000), ch.Total())

	err = c.UpdateCharge(ctx, id, ChargePatch{Quantity: ptr(0)})
	require.Error(t, err)
	assert.True(t, IsRejected(err))
	ch, _ = c.Charge(id)
	assert.Equal(t, 4, ch.Quantity)
}

func TestUpdate_MirrorKeepsStoredRecord(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()
	c := g.cache

	cl, err := c.AddClient(ctx, NewClient{Name: "Ana", Email: "ana@x.com", Phone: "1"})
	require.NoError(t, err)
	svc, err := c.AddService(ctx, NewService{Name: "Paseo diario", Rate: 15000})
	require.NoError(t, err)
	id, err := c.AddCharge(ctx, NewCharge{ClientID: cl, ServiceID: svc})
	require.NoError(t, err)

	// el gateway normaliza: fecha a RFC3339 UTC, textos sin espacios
	require.NoError(t, c.UpdateCharge(ctx, id, ChargePatch{Date: ptr("2025-03-01")}))
	require.NoError(t, c.UpdateClient(ctx, cl, ClientPatch{Name: ptr("  Ana María  ")}))
	require.NoError(t, c.UpdateService(ctx, svc, ServicePatch{Duration: ptr(" 1 hora ")}))

	ch, _ := c.Charge(id)
	assert.Equal(t, "2025-03-01T00:00:00Z", ch.Date)
	got, _ := c.Client(cl)
	assert.Equal(t, "Ana María", got.Name)

	server := reload(t, g)
	assert.Equal(t, server.Charges(), c.Charges())
	assert.Equal(t, server.Clients(), c.Clients())
	assert.Equal(t, server.Services(), c.Services())
}

func TestScenario_PetCap(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()
	c := g.cache

	ana, err := c.AddClient(ctx, NewClient{Name: "Ana", Email: "ana@x.com", Phone: "3000000000"})
	require.NoError(t, err)
	assert.Len(t, c.Clients(), 1)

	for i := 1; i <= 7; i++ {
		_, err := c.AddPet(ctx, NewPet{ClientID: ana, Name: "pet", Species: "Perro"})
		require.NoError(t, err, "pet %d", i)
	}

	_, err = c.AddPet(ctx, NewPet{ClientID: ana, Name: "octava", Species: "Perro"})
	require.Error(t, err)
	assert.True(t, IsRejected(err))
	assert.Contains(t, err.Error(), "maximum of 7")

	var me *MutationError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, "add", me.Op)
	assert.Equal(t, "pets", me.Resource)
	he := httpclient.AsHTTPError(err)
	require.NotNil(t, he)
	assert.Equal(t, http.StatusBadRequest, he.StatusCode)

	assert.Len(t, c.PetsOf(ana), 7)
}

func TestScenario_ChargeCapturesRate(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()
	c := g.cache

	cl, err := c.AddClient(ctx, NewClient{Name: "Ana", Email: "ana@x.com", Phone: "1"})
	require.NoError(t, err)
	svc, err := c.AddService(ctx, NewService{Name: "Paseo diario", Rate: 15000})
	require.NoError(t, err)
	id, err := c.AddCharge(ctx, NewCharge{ClientID: cl, ServiceID: svc, Quantity: 2})
	require.NoError(t, err)

	ch, _ := c.Charge(id)
	assert.Equal(t, int64(15000), ch.UnitAmount)
	assert.Equal(t, int64(30000), ch.Total())

	require.NoError(t, c.UpdateService(ctx, svc, ServicePatch{Rate: ptr(int64(20000))}))
	s, _ := c.Service(svc)
	assert.Equal(t, int64(20000), s.Rate)

	ch, _ = c.Charge(id)
	assert.Equal(t, int64(30000), ch.Total())

	fromServer, _ := reload(t, g).Charge(id)
	assert.Equal(t, int64(30000), fromServer.Total())
}

func TestAddReminder_EmailStatusFromGateway(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()

	cl, err := g.cache.AddClient(ctx, NewClient{Name: "Ana", Email: "ana@x.com", Phone: "1"})
	require.NoError(t, err)

	// sin SMTP el envío falla pero la creación no
	rem, err := g.cache.AddReminder(ctx, NewReminder{ClientID: cl, Channel: ChannelEmail, Subject: "Paseo"})
	require.NoError(t, err)
	assert.Equal(t, ReminderFailed, rem.Status)

	got, ok := g.cache.Reminder(rem.ID)
	require.True(t, ok)
	assert.Equal(t, ReminderFailed, got.Status)
	assert.Equal(t, "Paseo", got.Subject)
}

func TestChargeReceipt(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()
	c := g.cache

	cl, err := c.AddClient(ctx, NewClient{Name: "Ana", Email: "ana@x.com", Phone: "1"})
	require.NoError(t, err)
	svc, err := c.AddService(ctx, NewService{Name: "Paseo diario", Rate: 15000})
	require.NoError(t, err)
	id, err := c.AddCharge(ctx, NewCharge{ClientID: cl, ServiceID: svc})
	require.NoError(t, err)

	pdf, err := c.ChargeReceipt(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(pdf[:5]))

	_, err = c.ChargeReceipt(ctx, "nope")
	assert.True(t, IsNotFound(err))
}

func TestMutation_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	api, err := httpclient.NewWithBaseURL(url, 0)
	require.NoError(t, err)
	c := New(api, nil)

	_, err = c.AddClient(context.Background(), NewClient{Name: "Ana", Email: "ana@x.com", Phone: "1"})
	require.Error(t, err)
	var me *MutationError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, StageTransport, me.Stage)
	assert.False(t, IsRejected(err))
	assert.Empty(t, c.Clients())
}

func TestMutation_UnreadableCreateResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	api, err := httpclient.NewWithBaseURL(ts.URL, 0)
	require.NoError(t, err)
	c := New(api, nil)

	_, err = c.AddService(context.Background(), NewService{Name: "Paseo", Rate: 1})
	var me *MutationError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, StageDecode, me.Stage)
	assert.Empty(t, c.Services())
}

func TestMutation_AckBodiesAreSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			// id numérico y sin record: se usa lo enviado
			_, _ = w.Write([]byte(`{"id": 41}`))
		case http.MethodPut:
			_, _ = w.Write([]byte("OK"))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer ts.Close()

	api, err := httpclient.NewWithBaseURL(ts.URL, 0)
	require.NoError(t, err)
	c := New(api, nil)
	ctx := context.Background()

	id, err := c.AddPet(ctx, NewPet{ClientID: "c1", Name: "Luna", Species: "Perro"})
	require.NoError(t, err)
	assert.Equal(t, "41", id)

	require.NoError(t, c.UpdatePet(ctx, id, PetPatch{Breed: ptr("Labrador")}))
	p, ok := c.Pet(id)
	require.True(t, ok)
	assert.Equal(t, Pet{ID: "41", ClientID: "c1", Name: "Luna", Species: "Perro", Breed: "Labrador"}, p)

	require.NoError(t, c.DeletePet(ctx, id))
	assert.Empty(t, c.Pets())
}

func TestSignIn(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()

	api, err := httpclient.NewWithBaseURL(g.url, 0)
	require.NoError(t, err)
	require.NoError(t, api.DoJSON(ctx, http.MethodPost, "/api/auth/register", nil,
		map[string]string{"name": "Manolo", "email": "manolo@x.com", "password": "secreto"}, nil))

	c := New(api, nil)
	_, err = c.SignIn(ctx, "manolo@x.com", "mala")
	assert.True(t, IsRejected(err))
	assert.Empty(t, c.Users())

	u, err := c.SignIn(ctx, "manolo@x.com", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Role)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, []User{u}, c.Users())
	assert.NotEmpty(t, api.Token)
}

func TestIdentString(t *testing.T) {
	cases := map[string]string{
		`"abc"`:               "abc",
		`42`:                  "42",
		`{"$oid":"65f0c1aa"}`: "65f0c1aa",
		`null`:                "",
	}
	for in, want := range cases {
		got, err := identString([]byte(in))
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := identString([]byte(`true`))
	assert.Error(t, err)
	_, err = identString([]byte(`{"x":1}`))
	assert.Error(t, err)
}

// reload arma un cache nuevo contra el mismo gateway para ver el estado remoto.
func reload(t *testing.T, g *gateway) *Cache {
	t.Helper()
	api, err := httpclient.NewWithBaseURL(g.url, 0)
	require.NoError(t, err)
	c := New(api, nil)
	require.NoError(t, c.Load(context.Background()))
	return c
}

func ids[T record](items []T) []string {
	out := make([]string, 0, len(items))
	for _, v := range items {
		out = append(out, v.key())
	}
	return out
}
