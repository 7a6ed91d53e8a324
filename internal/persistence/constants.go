package persistence

// Storage backends
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// File backend
const (
	blobFileExt     = ".json"
	tempFilePattern = ".blob-*"
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// SQLite backend
const (
	sqliteDriverName = "sqlite"
	sqliteDSNParams  = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"

	querySQLiteLoadBlob = `SELECT blob FROM game_blobs WHERE blob_key = ?`
	querySQLiteSaveBlob = `INSERT INTO game_blobs (blob_key, blob, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(blob_key) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at`
)

// Error messages
const (
	ErrMsgUnknownBackend     = "unknown storage backend"
	ErrMsgPathRequired       = "storage path is required"
	ErrMsgProviderClosed     = "provider is closed"
	ErrMsgFailedToOpenSQLite = "failed to open sqlite database"
	ErrMsgFailedToMigrate    = "failed to apply migrations"
	ErrMsgFailedToReadBlob   = "failed to read blob"
	ErrMsgFailedToWriteBlob  = "failed to write blob"
)

// Log messages
const (
	LogMsgProviderOpened  = "Persistence provider opened"
	LogMsgCacheEnabled    = "Blob cache enabled"
	LogMsgCacheInvalidate = "Blob cache entry dropped after failed save"
)
