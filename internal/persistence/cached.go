package persistence

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/QuestTown_Go/internal/logger"
)

// CachedProvider serves repeated reads from an expirable LRU and writes
// through to the wrapped provider
type CachedProvider struct {
	inner Provider
	lru   *expirable.LRU[string, []byte]
}

// NewCachedProvider wraps inner with a cache of size entries living for ttl
func NewCachedProvider(inner Provider, size int, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		lru:   expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

func (p *CachedProvider) Load(ctx context.Context, key string) ([]byte, error) {
	if blob, ok := p.lru.Get(key); ok {
		return cloneBlob(blob), nil
	}
	blob, err := p.inner.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	p.lru.Add(key, cloneBlob(blob))
	return blob, nil
}

func (p *CachedProvider) Save(ctx context.Context, key string, blob []byte) error {
	if err := p.inner.Save(ctx, key, blob); err != nil {
		// The stored value is unknown now
		p.lru.Remove(key)
		logger.FromContext(ctx).Debug(LogMsgCacheInvalidate, "key", key)
		return err
	}
	p.lru.Add(key, cloneBlob(blob))
	return nil
}

func (p *CachedProvider) Ping(ctx context.Context) error {
	return p.inner.Ping(ctx)
}

func (p *CachedProvider) Close() error {
	p.lru.Purge()
	return p.inner.Close()
}

// Len reports the number of cached blobs
func (p *CachedProvider) Len() int {
	return p.lru.Len()
}
