package persistence

import (
	"context"
	"sync"

	"github.com/osse101/QuestTown_Go/internal/domain"
)

// MemoryProvider keeps blobs in process memory
type MemoryProvider struct {
	mu     sync.RWMutex
	blobs  map[string][]byte
	closed bool
}

// NewMemoryProvider creates an empty in-memory provider
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{blobs: make(map[string][]byte)}
}

func (p *MemoryProvider) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return nil, ErrClosed
	}
	blob, ok := p.blobs[key]
	if !ok {
		return nil, domain.ErrBlobNotFound
	}
	return cloneBlob(blob), nil
}

func (p *MemoryProvider) Save(ctx context.Context, key string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	p.blobs[key] = cloneBlob(blob)
	return nil
}

func (p *MemoryProvider) Ping(ctx context.Context) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	return ctx.Err()
}

func (p *MemoryProvider) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return nil
}
