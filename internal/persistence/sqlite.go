package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/osse101/QuestTown_Go/internal/database/migrations"
	"github.com/osse101/QuestTown_Go/internal/domain"
	"github.com/osse101/QuestTown_Go/internal/logger"
)

// SQLiteProvider persists blobs in a SQLite database file
type SQLiteProvider struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens the database at path and applies the embedded migrations
func OpenSQLite(ctx context.Context, path string) (*SQLiteProvider, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(ErrMsgPathRequired)
	}
	db, err := sql.Open(sqliteDriverName, filepath.Clean(path)+sqliteDSNParams)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenSQLite, err)
	}
	// SQLite allows a single writer
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenSQLite, err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.SQLite())
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	logger.FromContext(ctx).Debug("SQLite migrations applied", "path", path, "applied", len(results))

	return &SQLiteProvider{db: db, now: time.Now}, nil
}

func (p *SQLiteProvider) Load(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := p.db.QueryRowContext(ctx, querySQLiteLoadBlob, key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgFailedToReadBlob, key, err)
	}
	return blob, nil
}

func (p *SQLiteProvider) Save(ctx context.Context, key string, blob []byte) error {
	if _, err := p.db.ExecContext(ctx, querySQLiteSaveBlob, key, blob, p.now().UTC().UnixMilli()); err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgFailedToWriteBlob, key, err)
	}
	return nil
}

func (p *SQLiteProvider) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *SQLiteProvider) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	return p.db.Close()
}
