// Package session hosts one gamestate.Store per player for the server
// surfaces. Stores are cached in memory and rebuilt from persistence after
// eviction; calls for the same player are serialized.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/QuestTown_Go/internal/concurrency"
	"github.com/osse101/QuestTown_Go/internal/content"
	"github.com/osse101/QuestTown_Go/internal/domain"
	"github.com/osse101/QuestTown_Go/internal/gamestate"
	"github.com/osse101/QuestTown_Go/internal/logger"
	"github.com/osse101/QuestTown_Go/internal/metrics"
	"github.com/osse101/QuestTown_Go/internal/persistence"
)

// Config sizes the in-memory store cache
type Config struct {
	CacheSize int
	TTL       time.Duration
}

// Manager owns the live stores
type Manager struct {
	provider persistence.Provider
	table    *content.Table
	opts     []gamestate.Option
	locks    *concurrency.LockManager
	stores   *expirable.LRU[string, *gamestate.Store]
}

// NewManager creates a manager. opts are applied to every store it builds.
func NewManager(provider persistence.Provider, table *content.Table, cfg Config, opts ...gamestate.Option) *Manager {
	size := cfg.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}

	m := &Manager{
		provider: provider,
		table:    table,
		opts:     opts,
		locks:    concurrency.NewLockManager(),
	}
	m.stores = expirable.NewLRU[string, *gamestate.Store](size, m.onEvict, cfg.TTL)
	return m
}

func (m *Manager) onEvict(playerID string, _ *gamestate.Store) {
	logger.Debug(LogMsgSessionEvicted, logger.AttrKeyPlayerID, playerID)
	metrics.ActiveSessions.Dec()
}

// ValidatePlayerID reports whether id can name a player
func ValidatePlayerID(id string) error {
	if !playerIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidPlayerID)
	}
	return nil
}

// Create registers a player and persists a fresh record. An empty id gets a
// generated UUID. Creating an existing player is not an error and keeps
// their progress; created reports whether a new record was written.
func (m *Manager) Create(ctx context.Context, id string) (playerID string, created bool, err error) {
	if id == "" {
		id = uuid.NewString()
	}
	if err := ValidatePlayerID(id); err != nil {
		return "", false, err
	}

	unlock := m.locks.Lock(id)
	defer unlock()

	if m.stores.Contains(id) {
		return id, false, nil
	}

	key := domain.PlayerKey(id)
	_, err = m.provider.Load(ctx, key)
	switch {
	case err == nil:
		return id, false, nil
	case !errors.Is(err, domain.ErrBlobNotFound):
		return "", false, err
	}

	blob, err := gamestate.Encode(domain.DefaultRecord())
	if err != nil {
		return "", false, err
	}
	if err := m.provider.Save(ctx, key, blob); err != nil {
		return "", false, err
	}

	logger.FromContext(ctx).Info(LogMsgPlayerCreated, logger.AttrKeyPlayerID, id)
	return id, true, nil
}

// With runs fn against the player's store while holding the player's lock.
// Unknown players yield domain.ErrPlayerNotFound.
func (m *Manager) With(ctx context.Context, playerID string, fn func(*gamestate.Store) error) error {
	if err := ValidatePlayerID(playerID); err != nil {
		return err
	}

	unlock := m.locks.Lock(playerID)
	defer unlock()

	store, err := m.storeFor(ctx, playerID)
	if err != nil {
		return err
	}
	return fn(store)
}

// storeFor must be called with the player's lock held
func (m *Manager) storeFor(ctx context.Context, playerID string) (*gamestate.Store, error) {
	if store, ok := m.stores.Get(playerID); ok {
		return store, nil
	}

	key := domain.PlayerKey(playerID)
	if _, err := m.provider.Load(ctx, key); err != nil {
		if errors.Is(err, domain.ErrBlobNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
		}
		return nil, err
	}

	opts := append([]gamestate.Option{gamestate.WithKey(key)}, m.opts...)
	store := gamestate.New(ctx, m.provider, m.table, opts...)
	m.stores.Add(playerID, store)
	metrics.ActiveSessions.Inc()

	logger.FromContext(ctx).Debug(LogMsgSessionLoaded, logger.AttrKeyPlayerID, playerID)
	return store, nil
}

// Len reports how many stores are cached
func (m *Manager) Len() int {
	return m.stores.Len()
}

// Table returns the content table stores are built with
func (m *Manager) Table() *content.Table {
	return m.table
}

// Ping checks the persistence provider
func (m *Manager) Ping(ctx context.Context) error {
	return m.provider.Ping(ctx)
}
