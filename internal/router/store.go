package router

import (
	"context"
	"fmt"
	"strings"

	"manolos-gestion/internal/adapters/storage/memory"
	pg "manolos-gestion/internal/adapters/storage/postgres"
	"manolos-gestion/internal/adapters/storage/sqlite"
	"manolos-gestion/internal/config"
	"manolos-gestion/internal/platform/logger"
	"manolos-gestion/internal/ports/docstore"
)

// OpenStore elige el backend: DB_DSN => Postgres, SQLITE_PATH => SQLite, si no in-memory.
// El closer libera la conexión (no-op en memoria).
func OpenStore(ctx context.Context, cfg config.StorageConfig, log logger.Logger) (docstore.Store, func() error, error) {
	if dsn := strings.TrimSpace(cfg.PostgresDSN); dsn != "" {
		db, err := pg.Open(dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		log.Info("storage ready", map[string]any{"backend": "postgres"})
		return pg.NewStore(db), db.Close, nil
	}

	if path := strings.TrimSpace(cfg.SQLitePath); path != "" {
		s, err := sqlite.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite %s: %w", path, err)
		}
		log.Info("storage ready", map[string]any{"backend": "sqlite", "path": path})
		return s, s.Close, nil
	}

	log.Warn("storage ready (in-memory, data is lost on restart)", map[string]any{"backend": "memory"})
	return memory.NewStore(), func() error { return nil }, nil
}
