// Package persistence stores serialized game records as opaque blobs by key.
package persistence

import (
	"context"
	"errors"
)

// Provider is a key-value blob store. Load returns domain.ErrBlobNotFound
// when nothing is stored under key.
type Provider interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// Common persistence errors
var (
	ErrUnknownBackend = errors.New(ErrMsgUnknownBackend)
	ErrClosed         = errors.New(ErrMsgProviderClosed)
)

func cloneBlob(blob []byte) []byte {
	if blob == nil {
		return nil
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out
}
