package docrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manolos-gestion/internal/adapters/storage/memory"
	"manolos-gestion/internal/domain/charges"
	"manolos-gestion/internal/domain/clients"
	"manolos-gestion/internal/domain/pets"
	"manolos-gestion/internal/domain/users"
)

func TestClientsRepo_NotFoundMapsToDomain(t *testing.T) {
	repo := NewClientsRepo(memory.NewStore())

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, clients.ErrNotFound)
	assert.ErrorIs(t, repo.Update(context.Background(), clients.Client{ID: "nope", Name: "x"}), clients.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(context.Background(), "nope"), clients.ErrNotFound)
}

func TestClientsRepo_UpdateClearsField(t *testing.T) {
	ctx := context.Background()
	repo := NewClientsRepo(memory.NewStore())
	require.NoError(t, repo.Create(ctx, clients.Client{ID: "c1", Name: "Ana", Address: "Calle 1"}))

	require.NoError(t, repo.Update(ctx, clients.Client{ID: "c1", Name: "Ana"}))
	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, got.Address)
}

func TestPetsRepo_ByClient(t *testing.T) {
	ctx := context.Background()
	repo := NewPetsRepo(memory.NewStore())
	for _, p := range []pets.Pet{{ID: "p1", ClientID: "c1"}, {ID: "p2", ClientID: "c2"}, {ID: "p3", ClientID: "c1"}} {
		require.NoError(t, repo.Create(ctx, p))
	}

	n, err := repo.CountByClient(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	mine, err := repo.ListByClient(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "p1", mine[0].ID)
	assert.Equal(t, "p3", mine[1].ID)

	removed, err := repo.DeleteByClient(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "p2", all[0].ID)
}

func TestChargesRepo_ListFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewChargesRepo(memory.NewStore())
	require.NoError(t, repo.Create(ctx, charges.Charge{ID: "b1", ClientID: "c1", Status: charges.StatusPaid}))
	require.NoError(t, repo.Create(ctx, charges.Charge{ID: "b2", ClientID: "c1", Status: charges.StatusPending}))
	require.NoError(t, repo.Create(ctx, charges.Charge{ID: "b3", ClientID: "c2", Status: charges.StatusPaid}))

	paid, err := repo.List(ctx, charges.ListFilter{Status: charges.StatusPaid})
	require.NoError(t, err)
	assert.Len(t, paid, 2)

	c1Paid, err := repo.List(ctx, charges.ListFilter{ClientID: "c1", Status: charges.StatusPaid})
	require.NoError(t, err)
	require.Len(t, c1Paid, 1)
	assert.Equal(t, "b1", c1Paid[0].ID)
}

func TestUsersRepo_GetByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUsersRepo(memory.NewStore())
	require.NoError(t, repo.Create(ctx, users.User{ID: "u1", Email: "m@x.com"}))

	u, err := repo.GetByEmail(ctx, "m@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = repo.GetByEmail(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, users.ErrNotFound)
}
