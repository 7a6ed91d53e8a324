package persistence

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/osse101/QuestTown_Go/internal/database"
	"github.com/osse101/QuestTown_Go/internal/logger"
)

// Config selects and tunes a storage backend
type Config struct {
	Backend     string
	DataDir     string
	SQLitePath  string
	PostgresURL string
	Pool        database.PoolOptions

	// CacheSize of 0 disables the read cache
	CacheSize int
	CacheTTL  time.Duration
}

// Open builds the configured provider. Postgres and SQLite backends are
// migrated before they are returned.
func Open(ctx context.Context, cfg Config) (Provider, error) {
	log := logger.FromContext(ctx)

	var (
		provider Provider
		err      error
	)

	switch cfg.Backend {
	case BackendMemory:
		provider = NewMemoryProvider()
	case BackendFile, "":
		provider, err = NewFileProvider(cfg.DataDir)
	case BackendSQLite:
		path := cfg.SQLitePath
		if path == "" && cfg.DataDir != "" {
			path = filepath.Join(cfg.DataDir, "questtown.db")
		}
		provider, err = OpenSQLite(ctx, path)
	case BackendPostgres:
		provider, err = openPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgProviderOpened, "backend", cfg.Backend)

	if cfg.CacheSize > 0 {
		log.Info(LogMsgCacheEnabled, "size", cfg.CacheSize, "ttl", cfg.CacheTTL)
		provider = NewCachedProvider(provider, cfg.CacheSize, cfg.CacheTTL)
	}
	return provider, nil
}

func openPostgres(ctx context.Context, cfg Config) (Provider, error) {
	pool, err := database.NewPool(ctx, cfg.PostgresURL, cfg.Pool)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return database.NewBlobStore(pool), nil
}
