package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"manolos-gestion/internal/ports/docstore"
)

type entry struct {
	seq uint64
	doc map[string]any
}

// Store es el docstore.Store in-memory (modo dev y tests).
type Store struct {
	mu   sync.RWMutex
	seq  uint64
	cols map[string]map[string]*entry
}

func NewStore() *Store {
	return &Store{cols: make(map[string]map[string]*entry)}
}

func (s *Store) Insert(ctx context.Context, collection, id string, doc []byte) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return docstore.ErrNotFound
	}

	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.cols[collection]
	if col == nil {
		col = make(map[string]*entry)
		s.cols[collection] = col
	}
	if _, exists := col[id]; exists {
		return docstore.ErrDuplicate
	}

	s.seq++
	m["_id"] = id
	col[id] = &entry{seq: s.seq, doc: m}
	return nil
}

func (s *Store) Get(ctx context.Context, collection, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.cols[collection][id]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	return json.Marshal(e.doc)
}

func (s *Store) List(ctx context.Context, collection string, filter docstore.Filter) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*entry, 0)
	for _, e := range s.cols[collection] {
		if docstore.Matches(e.doc, filter) {
			matched = append(matched, e)
		}
	}

	// Orden de inserción (el map no lo garantiza)
	sort.Slice(matched, func(i, j int) bool { return matched[i].seq < matched[j].seq })

	out := make([][]byte, 0, len(matched))
	for _, e := range matched {
		b, err := json.Marshal(e.doc)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *Store) Update(ctx context.Context, collection, id string, set map[string]any) error {
	// normalizamos tipos igual que un documento decodificado (int -> float64, etc.)
	b, err := json.Marshal(set)
	if err != nil {
		return err
	}
	var patch map[string]any
	if err := json.Unmarshal(b, &patch); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.cols[collection][id]
	if !ok {
		return docstore.ErrNotFound
	}
	for k, v := range patch {
		if k == "_id" {
			continue
		}
		e.doc[k] = v
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.cols[collection]
	if _, ok := col[id]; !ok {
		return docstore.ErrNotFound
	}
	delete(col, id)
	return nil
}

func (s *Store) DeleteWhere(ctx context.Context, collection string, filter docstore.Filter) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	col := s.cols[collection]
	for id, e := range col {
		if docstore.Matches(e.doc, filter) {
			delete(col, id)
			n++
		}
	}
	return n, nil
}

func (s *Store) Count(ctx context.Context, collection string, filter docstore.Filter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, e := range s.cols[collection] {
		if docstore.Matches(e.doc, filter) {
			n++
		}
	}
	return n, nil
}
