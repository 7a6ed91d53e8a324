package session

import "regexp"

// playerIDPattern restricts player IDs to URL- and key-safe characters
var playerIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Defaults
const (
	DefaultCacheSize = 256
)

// Error messages
const (
	ErrMsgInvalidPlayerID = "player id must be 1-64 letters, digits, '-' or '_'"
)

// Log messages
const (
	LogMsgPlayerCreated  = "Player created"
	LogMsgSessionLoaded  = "Player session loaded"
	LogMsgSessionEvicted = "Player session evicted"
)
