package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
	ErrMsgFailedToLoadBlob        = "failed to load blob"
	ErrMsgFailedToSaveBlob        = "failed to save blob"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)

// SQL statements for the game_blobs table
const (
	queryLoadBlob = `SELECT blob FROM game_blobs WHERE blob_key = $1`
	querySaveBlob = `INSERT INTO game_blobs (blob_key, blob, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (blob_key) DO UPDATE SET blob = EXCLUDED.blob, updated_at = NOW()`
)
