// Package cache stores external extractor responses keyed by document
// text, so repeated analysis of an unchanged case file skips the
// provider round trip.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from arbitrary input (provider, model and
// document text concatenated by the caller)
func Key(input string) string {
	hash := sha256.Sum256([]byte(input))
	return "docket:v1:" + hex.EncodeToString(hash[:])
}
