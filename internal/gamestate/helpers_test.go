package gamestate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestTown_Go/internal/content"
	"github.com/osse101/QuestTown_Go/internal/domain"
	"github.com/osse101/QuestTown_Go/internal/persistence"
)

var fixedNow = time.Date(2026, time.January, 2, 15, 4, 5, 0, time.UTC)

// flakyProvider fails on demand
type flakyProvider struct {
	*persistence.MemoryProvider
	loadErr error
	saveErr error
	saves   int
}

func newFlakyProvider() *flakyProvider {
	return &flakyProvider{MemoryProvider: persistence.NewMemoryProvider()}
}

func (p *flakyProvider) Load(ctx context.Context, key string) ([]byte, error) {
	if p.loadErr != nil {
		return nil, p.loadErr
	}
	return p.MemoryProvider.Load(ctx, key)
}

func (p *flakyProvider) Save(ctx context.Context, key string, blob []byte) error {
	p.saves++
	if p.saveErr != nil {
		return p.saveErr
	}
	return p.MemoryProvider.Save(ctx, key, blob)
}

func testOptions(opts ...Option) []Option {
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithLocation(time.UTC),
		WithRand(func(n int) int { return 0 }),
	}
	return append(base, opts...)
}

func newTestStore(t *testing.T, provider persistence.Provider, opts ...Option) *Store {
	t.Helper()
	return New(context.Background(), provider, content.Default(), testOptions(opts...)...)
}

// seed stores rec under the default key
func seed(t *testing.T, provider persistence.Provider, rec domain.GameRecord) {
	t.Helper()
	blob, err := Encode(rec)
	require.NoError(t, err)
	require.NoError(t, provider.Save(context.Background(), domain.PersistenceKey, blob))
}

func storedRecord(t *testing.T, provider persistence.Provider) domain.GameRecord {
	t.Helper()
	blob, err := provider.Load(context.Background(), domain.PersistenceKey)
	require.NoError(t, err)
	rec, err := Decode(blob)
	require.NoError(t, err)
	return rec
}

func recordWithCoins(coins int) domain.GameRecord {
	rec := domain.DefaultRecord()
	rec.Coins = coins
	return rec
}
