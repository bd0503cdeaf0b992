package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"manolos-gestion/internal/ports/docstore"
)

// Store implementa docstore.Store sobre una tabla JSONB.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, collection, id string, doc []byte) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return docstore.ErrNotFound
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, body)
		VALUES ($1, $2, jsonb_set($3::jsonb, '{_id}', to_jsonb($2::text)))
		ON CONFLICT (collection, id) DO NOTHING
	`, collection, id, string(doc))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return docstore.ErrDuplicate
	}
	return nil
}

func (s *Store) Get(ctx context.Context, collection, id string) ([]byte, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `
		SELECT body::text FROM documents WHERE collection = $1 AND id = $2
	`, collection, id).Scan(&body)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, docstore.ErrNotFound
		}
		return nil, err
	}
	return []byte(body), nil
}

func (s *Store) List(ctx context.Context, collection string, filter docstore.Filter) ([][]byte, error) {
	f, err := filterJSON(filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT body::text
		FROM documents
		WHERE collection = $1 AND body @> $2::jsonb
		ORDER BY seq ASC
	`, collection, f)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([][]byte, 0)
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		out = append(out, []byte(body))
	}
	return out, rows.Err()
}

func (s *Store) Update(ctx context.Context, collection, id string, set map[string]any) error {
	patch := make(map[string]any, len(set))
	for k, v := range set {
		if k == "_id" {
			continue
		}
		patch[k] = v
	}
	b, err := json.Marshal(patch)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE documents SET body = body || $3::jsonb
		WHERE collection = $1 AND id = $2
	`, collection, id, string(b))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM documents WHERE collection = $1 AND id = $2
	`, collection, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteWhere(ctx context.Context, collection string, filter docstore.Filter) (int, error) {
	f, err := filterJSON(filter)
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM documents WHERE collection = $1 AND body @> $2::jsonb
	`, collection, f)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (s *Store) Count(ctx context.Context, collection string, filter docstore.Filter) (int, error) {
	f, err := filterJSON(filter)
	if err != nil {
		return 0, err
	}
	var n int
	err = s.db.QueryRowContext(ctx, `
		SELECT count(*) FROM documents WHERE collection = $1 AND body @> $2::jsonb
	`, collection, f).Scan(&n)
	return n, err
}

// filterJSON: filtro vacío => '{}' (contiene a cualquier documento)
func filterJSON(filter docstore.Filter) (string, error) {
	if len(filter) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(filter)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
