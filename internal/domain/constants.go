package domain

// PersistenceKey is the blob key of the single-player record
const PersistenceKey = "gameState"

// PlayerKeyPrefix prefixes per-player blob keys when many players share a store
const PlayerKeyPrefix = PersistenceKey + ":"

// PlayerKey returns the blob key of one player's record
func PlayerKey(playerID string) string {
	return PlayerKeyPrefix + playerID
}

// LastSaveLayout formats SaveSnapshot.LastSave like a browser locale string
const LastSaveLayout = "1/2/2006, 3:04:05 PM"
