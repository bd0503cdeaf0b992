package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"manolos-gestion/internal/ports/docstore"
)

// Document es la fila que guarda un documento JSON de cualquier colección.
type Document struct {
	Seq        uint      `gorm:"primaryKey;autoIncrement"`
	Collection string    `gorm:"not null;uniqueIndex:idx_collection_doc"`
	DocID      string    `gorm:"column:doc_id;not null;uniqueIndex:idx_collection_doc"`
	Body       string    `gorm:"not null"`
	CreatedAt  time.Time
}

// Store implementa docstore.Store sobre SQLite (driver puro Go) vía gorm.
type Store struct {
	db *gorm.DB
}

// Open abre (o crea) el archivo y migra la tabla de documentos.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
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
	m["_id"] = id
	body, err := json.Marshal(m)
	if err != nil {
		return err
	}

	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Document{Collection: collection, DocID: id, Body: string(body)})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return docstore.ErrDuplicate
	}
	return nil
}

func (s *Store) Get(ctx context.Context, collection, id string) ([]byte, error) {
	var d Document
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, docstore.ErrNotFound
		}
		return nil, err
	}
	return []byte(d.Body), nil
}

func (s *Store) List(ctx context.Context, collection string, filter docstore.Filter) ([][]byte, error) {
	var docs []Document
	err := s.query(ctx, collection, filter).Order("seq ASC").Find(&docs).Error
	if err != nil {
		return nil, err
	}
	out := make([][]byte, 0, len(docs))
	for _, d := range docs {
		out = append(out, []byte(d.Body))
	}
	return out, nil
}

func (s *Store) Update(ctx context.Context, collection, id string, set map[string]any) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d Document
		err := tx.Where("collection = ? AND doc_id = ?", collection, id).First(&d).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return docstore.ErrNotFound
			}
			return err
		}

		var m map[string]any
		if err := json.Unmarshal([]byte(d.Body), &m); err != nil {
			return err
		}
		for k, v := range set {
			if k == "_id" {
				continue
			}
			m[k] = v
		}
		body, err := json.Marshal(m)
		if err != nil {
			return err
		}
		return tx.Model(&d).Update("body", string(body)).Error
	})
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	res := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		Delete(&Document{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteWhere(ctx context.Context, collection string, filter docstore.Filter) (int, error) {
	res := s.query(ctx, collection, filter).Delete(&Document{})
	return int(res.RowsAffected), res.Error
}

func (s *Store) Count(ctx context.Context, collection string, filter docstore.Filter) (int, error) {
	var n int64
	err := s.query(ctx, collection, filter).Model(&Document{}).Count(&n).Error
	return int(n), err
}

func (s *Store) query(ctx context.Context, collection string, filter docstore.Filter) *gorm.DB {
	q := s.db.WithContext(ctx).Where("collection = ?", collection)
	for k, v := range filter {
		q = q.Where("json_extract(body, ?) = ?", "$."+k, v)
	}
	return q
}
