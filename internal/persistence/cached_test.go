package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestTown_Go/internal/domain"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Load(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	blob, _ := args.Get(0).([]byte)
	return blob, args.Error(1)
}

func (m *mockProvider) Save(ctx context.Context, key string, blob []byte) error {
	return m.Called(ctx, key, blob).Error(0)
}

func (m *mockProvider) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockProvider) Close() error {
	return m.Called().Error(0)
}

func TestCachedProvider_ReadsInnerOnce(t *testing.T) {
	ctx := context.Background()
	inner := new(mockProvider)
	inner.On("Load", ctx, "k").Return([]byte("v"), nil).Once()

	p := NewCachedProvider(inner, 4, 0)
	for i := 0; i < 3; i++ {
		blob, err := p.Load(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v", string(blob))
	}
	inner.AssertExpectations(t)
}

func TestCachedProvider_DoesNotCacheMisses(t *testing.T) {
	ctx := context.Background()
	inner := new(mockProvider)
	inner.On("Load", ctx, "k").Return(nil, domain.ErrBlobNotFound).Twice()

	p := NewCachedProvider(inner, 4, 0)
	for i := 0; i < 2; i++ {
		_, err := p.Load(ctx, "k")
		assert.ErrorIs(t, err, domain.ErrBlobNotFound)
	}
	assert.Equal(t, 0, p.Len())
	inner.AssertExpectations(t)
}

func TestCachedProvider_SaveWritesThrough(t *testing.T) {
	ctx := context.Background()
	inner := new(mockProvider)
	inner.On("Save", ctx, "k", []byte("v2")).Return(nil).Once()

	p := NewCachedProvider(inner, 4, 0)
	require.NoError(t, p.Save(ctx, "k", []byte("v2")))

	// served from cache, inner Load never called
	blob, err := p.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(blob))
	inner.AssertExpectations(t)
}

func TestCachedProvider_FailedSaveDropsEntry(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")

	inner := new(mockProvider)
	inner.On("Save", ctx, "k", []byte("v1")).Return(nil).Once()
	inner.On("Save", ctx, "k", []byte("v2")).Return(boom).Once()
	inner.On("Load", ctx, "k").Return([]byte("v1"), nil).Once()

	p := NewCachedProvider(inner, 4, 0)
	require.NoError(t, p.Save(ctx, "k", []byte("v1")))
	assert.ErrorIs(t, p.Save(ctx, "k", []byte("v2")), boom)

	blob, err := p.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(blob))
	inner.AssertExpectations(t)
}

func TestCachedProvider_CloseClosesInner(t *testing.T) {
	inner := new(mockProvider)
	inner.On("Close").Return(nil).Once()

	p := NewCachedProvider(inner, 4, 0)
	require.NoError(t, p.Close())
	inner.AssertExpectations(t)
}
