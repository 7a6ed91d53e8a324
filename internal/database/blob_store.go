package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/QuestTown_Go/internal/domain"
)

// BlobStore persists game blobs in the game_blobs table
type BlobStore struct {
	pool *pgxpool.Pool
}

// NewBlobStore wraps an open pool. Migrate must have run against it.
func NewBlobStore(pool *pgxpool.Pool) *BlobStore {
	return &BlobStore{pool: pool}
}

// Load returns the blob stored under key or domain.ErrBlobNotFound
func (s *BlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := s.pool.QueryRow(ctx, queryLoadBlob, key).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgFailedToLoadBlob, key, err)
	}
	return blob, nil
}

// Save upserts the blob under key
func (s *BlobStore) Save(ctx context.Context, key string, blob []byte) error {
	if _, err := s.pool.Exec(ctx, querySaveBlob, key, blob); err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgFailedToSaveBlob, key, err)
	}
	return nil
}

// Ping checks database connectivity
func (s *BlobStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the underlying pool
func (s *BlobStore) Close() error {
	s.pool.Close()
	return nil
}
