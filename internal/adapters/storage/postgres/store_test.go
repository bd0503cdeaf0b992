package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manolos-gestion/internal/ports/docstore"
)

// Requiere un Postgres real: TEST_DB_DSN=postgres://... go test ./...
func TestStore_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	ctx := context.Background()
	db, err := Open(dsn)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Migrate(ctx, db))

	s := NewStore(db)
	col := "test_" + uuid.NewString()
	defer func() { _, _ = s.DeleteWhere(ctx, col, nil) }()

	require.NoError(t, s.Insert(ctx, col, "a", []byte(`{"clientId":"c1","name":"Luna"}`)))
	require.NoError(t, s.Insert(ctx, col, "b", []byte(`{"clientId":"c2","name":"Michi"}`)))
	assert.ErrorIs(t, s.Insert(ctx, col, "a", []byte(`{}`)), docstore.ErrDuplicate)

	require.NoError(t, s.Update(ctx, col, "a", map[string]any{"age": 3}))
	assert.ErrorIs(t, s.Update(ctx, col, "zz", map[string]any{"age": 3}), docstore.ErrNotFound)

	n, err := s.Count(ctx, col, docstore.Filter{"clientId": "c1"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	docs, err := s.List(ctx, col, nil)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Contains(t, string(docs[0]), `"_id": "a"`)
}
