// Package cache stores computed stroke plans between runs. Planning a
// large image is the expensive part of a drawing session, so plans are
// cached under a key derived from the pixel set and stroke parameters.
//
// Three backends are provided: a file cache for normal CLI use, a redis
// cache for shared setups, and a null cache that disables caching.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is the interface all backends implement. Get reports a miss with
// a false boolean rather than an error; errors are reserved for backend
// failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Key builds a cache key by hashing the JSON encoding of parts under a
// readable prefix: "prefix:sha256(parts...)".
func Key(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

// Hash returns the SHA-256 of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
