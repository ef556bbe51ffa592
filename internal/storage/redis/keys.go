package redis

import (
	"fmt"

	"github.com/casualfc/matchday/internal/model"
)

// Key prefix for all session data
const keyPrefix = "matchday"

// sessionKey returns the Redis key for a Session document
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionIndexKey returns the Redis key for the SET of all session ids
func sessionIndexKey() string {
	return fmt.Sprintf("%s:sessions", keyPrefix)
}
