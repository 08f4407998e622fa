package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for page body caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// PageKey generates a cache key for a page URL. The version segment
// invalidates old entries when the cached representation changes.
func PageKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "obitwatch:v1:" + hex.EncodeToString(hash[:])
}
