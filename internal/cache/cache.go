// Package cache stores layout extraction results keyed by document content
// hash so repeated runs over the same file skip the delegated service. It
// sits outside the analysis pipeline, wrapping the layout capability at the
// CLI layer.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage contract shared by the memory, disk, and layered
// backends
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// DocumentKey generates a cache key from document bytes
func DocumentKey(data []byte) string {
	hash := sha256.Sum256(data)
	return "clauselens:v1:" + hex.EncodeToString(hash[:])
}
